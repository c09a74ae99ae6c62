package api

import (
	"net/http"

	"github.com/montazhpro/smeta/internal/domain/materials"
	"github.com/montazhpro/smeta/internal/domain/persons"
	"github.com/montazhpro/smeta/internal/domain/projects"
	"github.com/montazhpro/smeta/internal/domain/units"
	"github.com/montazhpro/smeta/internal/domain/works"
)

/* Units */

func (h *Handler) listUnits(w http.ResponseWriter, r *http.Request) {
	list, err := h.units.List(r.Context())
	if err != nil {
		h.serverError(w, "list units", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createUnit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code     string     `json:"code"`
		Name     string     `json:"name"`
		FullName string     `json:"fullName"`
		Kind     units.Kind `json:"type"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	u, err := h.units.Create(r.Context(), units.Input{
		Code: in.Code, Name: in.Name, FullName: in.FullName, Kind: in.Kind,
	})
	if err != nil {
		h.serverError(w, "create unit", err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) getUnit(w http.ResponseWriter, r *http.Request) {
	u, err := h.units.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "get unit", err)
		return
	}
	if u == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) updateUnit(w http.ResponseWriter, r *http.Request) {
	fr, err := newFieldReader(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	p := units.Patch{
		Code:     fr.str("code"),
		Name:     fr.str("name"),
		FullName: fr.str("fullName"),
	}
	if k := fr.str("type"); k != nil {
		kind := units.Kind(*k)
		p.Kind = &kind
	}
	if fr.err != nil {
		badRequest(w, fr.err.Error())
		return
	}
	ok, err := h.units.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		h.serverError(w, "update unit", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) deleteUnit(w http.ResponseWriter, r *http.Request) {
	ok, err := h.units.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "delete unit", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

/* Materials */

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	if t := r.URL.Query().Get("type"); t != "" {
		list, err := h.materials.ListByType(r.Context(), materials.Type(t))
		if err != nil {
			h.serverError(w, "list materials", err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}
	list, err := h.materials.List(r.Context())
	if err != nil {
		h.serverError(w, "list materials", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createMaterial(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Type          materials.Type `json:"type"`
		Code          string         `json:"code"`
		ArticleNumber string         `json:"articleNumber"`
		Name          string         `json:"name"`
		Description   string         `json:"description"`
		UnitID        *string        `json:"unitId"`
		Price         *float64       `json:"price"`
		Manufacturer  string         `json:"manufacturer"`
		Notes         string         `json:"notes"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	if in.Type == "" {
		in.Type = materials.TypeMaterial
	}
	m, err := h.materials.Create(r.Context(), materials.Input{
		Type: in.Type, Code: in.Code, ArticleNumber: in.ArticleNumber,
		Name: in.Name, Description: in.Description, UnitID: in.UnitID,
		Price: in.Price, Manufacturer: in.Manufacturer, Notes: in.Notes,
	})
	if err != nil {
		h.serverError(w, "create material", err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) getMaterial(w http.ResponseWriter, r *http.Request) {
	m, err := h.materials.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "get material", err)
		return
	}
	if m == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) updateMaterial(w http.ResponseWriter, r *http.Request) {
	fr, err := newFieldReader(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	p := materials.Patch{
		Code:          fr.str("code"),
		ArticleNumber: fr.str("articleNumber"),
		Name:          fr.str("name"),
		Description:   fr.str("description"),
		UnitID:        fr.nstr("unitId"),
		Price:         fr.nfloat("price"),
		Manufacturer:  fr.str("manufacturer"),
		Notes:         fr.str("notes"),
	}
	if t := fr.str("type"); t != nil {
		mt := materials.Type(*t)
		p.Type = &mt
	}
	if fr.err != nil {
		badRequest(w, fr.err.Error())
		return
	}
	ok, err := h.materials.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		h.serverError(w, "update material", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	ok, err := h.materials.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "delete material", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

/* Works */

func (h *Handler) listWorks(w http.ResponseWriter, r *http.Request) {
	list, err := h.works.List(r.Context())
	if err != nil {
		h.serverError(w, "list works", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createWork(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code         string   `json:"code"`
		Name         string   `json:"name"`
		UnitID       *string  `json:"unitId"`
		PricePerUnit *float64 `json:"pricePerUnit"`
		Description  string   `json:"description"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	wk, err := h.works.Create(r.Context(), works.Input{
		Code: in.Code, Name: in.Name, UnitID: in.UnitID,
		PricePerUnit: in.PricePerUnit, Description: in.Description,
	})
	if err != nil {
		h.serverError(w, "create work", err)
		return
	}
	writeJSON(w, http.StatusCreated, wk)
}

func (h *Handler) getWork(w http.ResponseWriter, r *http.Request) {
	wk, err := h.works.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "get work", err)
		return
	}
	if wk == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (h *Handler) updateWork(w http.ResponseWriter, r *http.Request) {
	fr, err := newFieldReader(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	p := works.Patch{
		Code:         fr.str("code"),
		Name:         fr.str("name"),
		UnitID:       fr.nstr("unitId"),
		PricePerUnit: fr.nfloat("pricePerUnit"),
		Description:  fr.str("description"),
	}
	if fr.err != nil {
		badRequest(w, fr.err.Error())
		return
	}
	ok, err := h.works.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		h.serverError(w, "update work", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) deleteWork(w http.ResponseWriter, r *http.Request) {
	ok, err := h.works.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "delete work", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

/* Persons */

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	list, err := h.persons.List(r.Context())
	if err != nil {
		h.serverError(w, "list persons", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		MiddleName string `json:"middleName"`
		Position   string `json:"position"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		Notes      string `json:"notes"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	pr, err := h.persons.Create(r.Context(), persons.Input{
		FirstName: in.FirstName, LastName: in.LastName, MiddleName: in.MiddleName,
		Position: in.Position, Phone: in.Phone, Email: in.Email, Notes: in.Notes,
	})
	if err != nil {
		h.serverError(w, "create person", err)
		return
	}
	writeJSON(w, http.StatusCreated, pr)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	pr, err := h.persons.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "get person", err)
		return
	}
	if pr == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, pr)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	fr, err := newFieldReader(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	p := persons.Patch{
		FirstName:  fr.str("firstName"),
		LastName:   fr.str("lastName"),
		MiddleName: fr.str("middleName"),
		Position:   fr.str("position"),
		Phone:      fr.str("phone"),
		Email:      fr.str("email"),
		Notes:      fr.str("notes"),
	}
	if fr.err != nil {
		badRequest(w, fr.err.Error())
		return
	}
	ok, err := h.persons.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		h.serverError(w, "update person", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	ok, err := h.persons.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "delete person", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

/* Projects */

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.List(r.Context())
	if err != nil {
		h.serverError(w, "list projects", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title         string          `json:"title"`
		Description   string          `json:"description"`
		Status        projects.Status `json:"status"`
		StartDate     *string         `json:"startDate"`
		EndDate       *string         `json:"endDate"`
		Budget        *float64        `json:"budget"`
		LegalEntityID *string         `json:"legalEntityId"`
	}
	if err := readJSON(r, &in); err != nil {
		badRequest(w, err.Error())
		return
	}
	if in.Status == "" {
		in.Status = projects.StatusActive
	}
	pr, err := h.projects.Create(r.Context(), projects.Input{
		Title: in.Title, Description: in.Description, Status: in.Status,
		StartDate: in.StartDate, EndDate: in.EndDate,
		Budget: in.Budget, LegalEntityID: in.LegalEntityID,
	})
	if err != nil {
		h.serverError(w, "create project", err)
		return
	}
	writeJSON(w, http.StatusCreated, pr)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	pr, err := h.projects.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "get project", err)
		return
	}
	if pr == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, pr)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	fr, err := newFieldReader(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	p := projects.Patch{
		Title:         fr.str("title"),
		Description:   fr.str("description"),
		StartDate:     fr.nstr("startDate"),
		EndDate:       fr.nstr("endDate"),
		Budget:        fr.nfloat("budget"),
		LegalEntityID: fr.nstr("legalEntityId"),
	}
	if s := fr.str("status"); s != nil {
		st := projects.Status(*s)
		p.Status = &st
	}
	if fr.err != nil {
		badRequest(w, fr.err.Error())
		return
	}
	ok, err := h.projects.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		h.serverError(w, "update project", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ok, err := h.projects.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serverError(w, "delete project", err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
