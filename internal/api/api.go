// Package api — JSON-обработчики админских форм поверх менеджеров коллекций.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/montazhpro/smeta/internal/domain/estimates"
	"github.com/montazhpro/smeta/internal/domain/materials"
	"github.com/montazhpro/smeta/internal/domain/persons"
	"github.com/montazhpro/smeta/internal/domain/projects"
	"github.com/montazhpro/smeta/internal/domain/units"
	"github.com/montazhpro/smeta/internal/domain/works"
	"github.com/montazhpro/smeta/internal/infra/notify"
)

type Handler struct {
	log       *slog.Logger
	units     *units.Manager
	materials *materials.Manager
	works     *works.Manager
	persons   *persons.Manager
	projects  *projects.Manager
	estimates *estimates.Manager
	notifier  *notify.Telegram
}

func New(log *slog.Logger,
	unitsRepo *units.Manager, materialsRepo *materials.Manager,
	worksRepo *works.Manager, personsRepo *persons.Manager,
	projectsRepo *projects.Manager, estimatesRepo *estimates.Manager,
	notifier *notify.Telegram) *Handler {

	return &Handler{
		log: log, units: unitsRepo, materials: materialsRepo,
		works: worksRepo, persons: personsRepo,
		projects: projectsRepo, estimates: estimatesRepo,
		notifier: notifier,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/units", h.listUnits)
	mux.HandleFunc("POST /api/units", h.createUnit)
	mux.HandleFunc("GET /api/units/{id}", h.getUnit)
	mux.HandleFunc("PATCH /api/units/{id}", h.updateUnit)
	mux.HandleFunc("DELETE /api/units/{id}", h.deleteUnit)

	mux.HandleFunc("GET /api/materials", h.listMaterials)
	mux.HandleFunc("POST /api/materials", h.createMaterial)
	mux.HandleFunc("POST /api/materials/import", h.importMaterials)
	mux.HandleFunc("GET /api/materials/{id}", h.getMaterial)
	mux.HandleFunc("PATCH /api/materials/{id}", h.updateMaterial)
	mux.HandleFunc("DELETE /api/materials/{id}", h.deleteMaterial)

	mux.HandleFunc("GET /api/works", h.listWorks)
	mux.HandleFunc("POST /api/works", h.createWork)
	mux.HandleFunc("GET /api/works/{id}", h.getWork)
	mux.HandleFunc("PATCH /api/works/{id}", h.updateWork)
	mux.HandleFunc("DELETE /api/works/{id}", h.deleteWork)

	mux.HandleFunc("GET /api/persons", h.listPersons)
	mux.HandleFunc("POST /api/persons", h.createPerson)
	mux.HandleFunc("GET /api/persons/{id}", h.getPerson)
	mux.HandleFunc("PATCH /api/persons/{id}", h.updatePerson)
	mux.HandleFunc("DELETE /api/persons/{id}", h.deletePerson)

	mux.HandleFunc("GET /api/projects", h.listProjects)
	mux.HandleFunc("POST /api/projects", h.createProject)
	mux.HandleFunc("GET /api/projects/{id}", h.getProject)
	mux.HandleFunc("PATCH /api/projects/{id}", h.updateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.deleteProject)

	mux.HandleFunc("GET /api/estimates", h.listEstimates)
	mux.HandleFunc("POST /api/estimates", h.createEstimate)
	mux.HandleFunc("POST /api/estimates/build/item", h.buildItem)
	mux.HandleFunc("POST /api/estimates/build/work", h.buildItemWork)
	mux.HandleFunc("POST /api/estimates/build/line-total", h.lineTotal)
	mux.HandleFunc("GET /api/estimates/{id}", h.getEstimate)
	mux.HandleFunc("PATCH /api/estimates/{id}", h.updateEstimate)
	mux.HandleFunc("DELETE /api/estimates/{id}", h.deleteEstimate)
	mux.HandleFunc("GET /api/estimates/{id}/export", h.exportEstimate)

	mux.HandleFunc("POST /api/contact", h.contact)

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op, "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
