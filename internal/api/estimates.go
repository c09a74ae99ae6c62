package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/montazhpro/smeta/internal/domain/estimates"
	"github.com/montazhpro/smeta/internal/export"
)

func (h *Handler) listEstimates(w http.ResponseWriter, r *http.Request) {
	list, err := h.estimates.List(r.Context())
	if err != nil {
		h.serverError(w, "list estimates", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createEstimate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Number    string           `json:"number"`
		Name      string           `json:"name"`
		ProjectID *string          `json:"projectId"`
		Date      int64            `json:"date"`
		Items     []estimates.Item `json:"items"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	e, err := h.estimates.Create(r.Context(), estimates.Input{
		Number: in.Number, Name: in.Name, ProjectID: in.ProjectID,
		Date: in.Date, Items: in.Items,
	})
	if err != nil {
		h.serverError(w, "create estimate", err)
		return
	}
	if err := h.notifier.EstimateCreated(e); err != nil {
		h.log.Error("estimate notification", "err", err)
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) getEstimate(w http.ResponseWriter, r *http.Request) {
	e, err := h.estimates.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "get estimate", err)
		return
	}
	if e == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) updateEstimate(w http.ResponseWriter, r *http.Request) {
	fr, err := newFieldReader(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	p := estimates.Patch{
		Number:    fr.str("number"),
		Name:      fr.str("name"),
		ProjectID: fr.nstr("projectId"),
		Date:      fr.i64("date"),
		Items:     readField[[]estimates.Item](fr, "items"),
	}
	if fr.err != nil {
		badRequest(w, fr.err.Error())
		return
	}
	ok, err := h.estimates.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		h.serverError(w, "update estimate", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) deleteEstimate(w http.ResponseWriter, r *http.Request) {
	ok, err := h.estimates.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "delete estimate", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// buildItem собирает позицию без записи в хранилище: вызывающий кладёт её
// в смету сам через PATCH/POST.
func (h *Handler) buildItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Number       int                  `json:"number"`
		MaterialID   *string              `json:"materialId"`
		MaterialName string               `json:"materialName"`
		Works        []estimates.ItemWork `json:"works"`
		Notes        string               `json:"notes"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	if in.MaterialID != nil && *in.MaterialID != "" {
		item, err := h.estimates.ItemForMaterial(r.Context(), *in.MaterialID, in.Number, in.Works, in.Notes)
		if err != nil {
			h.serverError(w, "build item", err)
			return
		}
		writeJSON(w, http.StatusOK, item)
		return
	}
	writeJSON(w, http.StatusOK, h.estimates.NewItem(estimates.ItemInput{
		Number: in.Number, MaterialID: in.MaterialID, MaterialName: in.MaterialName,
		Works: in.Works, Notes: in.Notes,
	}))
}

func (h *Handler) buildItemWork(w http.ResponseWriter, r *http.Request) {
	var in struct {
		WorkID       *string  `json:"workId"`
		WorkName     string   `json:"workName"`
		UnitID       *string  `json:"unitId"`
		Quantity     float64  `json:"quantity"`
		PricePerUnit *float64 `json:"pricePerUnit"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	if in.WorkID != nil && *in.WorkID != "" {
		iw, err := h.estimates.ItemWorkFromCatalog(r.Context(), *in.WorkID, in.Quantity)
		if err != nil {
			h.serverError(w, "build item work", err)
			return
		}
		writeJSON(w, http.StatusOK, iw)
		return
	}
	writeJSON(w, http.StatusOK, h.estimates.NewItemWork(estimates.ItemWorkInput{
		WorkID: in.WorkID, WorkName: in.WorkName, UnitID: in.UnitID,
		Quantity: in.Quantity, PricePerUnit: in.PricePerUnit,
	}))
}

// lineTotal — предпросмотр стоимости ещё не сохранённой строки.
func (h *Handler) lineTotal(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PricePerUnit *float64 `json:"pricePerUnit"`
		Quantity     float64  `json:"quantity"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]*float64{
		"totalCost": estimates.LineTotal(in.PricePerUnit, in.Quantity),
	})
}

func (h *Handler) exportEstimate(w http.ResponseWriter, r *http.Request) {
	e, err := h.estimates.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "export estimate", err)
		return
	}
	if e == nil {
		notFound(w)
		return
	}

	projectName := ""
	if e.ProjectID != nil {
		pr, err := h.projects.GetByID(r.Context(), *e.ProjectID)
		if err != nil {
			h.serverError(w, "export estimate", err)
			return
		}
		if pr != nil {
			projectName = pr.Title
		}
	}

	b, err := export.EstimateXLSX(r.Context(), e, h.units, projectName)
	if err != nil {
		h.serverError(w, "export estimate", err)
		return
	}

	name := fmt.Sprintf("estimate_%s_%s.xlsx", e.Number, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(b)
}

func (h *Handler) importMaterials(w http.ResponseWriter, r *http.Request) {
	rep, err := export.ImportMaterials(r.Context(), r.Body, h.materials, h.units)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.notifier.ContactRequest(in.Name, in.Phone, in.Message); err != nil {
		h.serverError(w, "contact notification", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"sent": true})
}
