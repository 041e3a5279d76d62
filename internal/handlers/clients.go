package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zenith-academy/intake/internal/form"
	svc "github.com/zenith-academy/intake/internal/services"
)

// clientsEnvelope is the request body for create/update:
// {"clientsData": {...}}.
type clientsEnvelope struct {
	ClientsData form.Draft `json:"clientsData"`
}

// POST /CreateClients
func CreateClients(w http.ResponseWriter, r *http.Request) {
	var in clientsEnvelope
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	// Server-side re-check; the form layer already validated, but the
	// endpoint must not trust its callers.
	if errs := form.ValidateDraft(&in.ClientsData); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Por favor corrige los errores en el formulario",
			"errors":  errs,
		})
		return
	}

	record, err := svc.CreateClient(&in.ClientsData)
	switch {
	case errors.Is(err, svc.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "email duplicado")
		return
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "error al guardar el cliente")
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// GET /GetClients?page=&size=&sortBy=&sortOrder=&search=&classLevel=&state=&active=
func GetClients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	lq := svc.ListQuery{
		Page:       page,
		Size:       size,
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
		Search:     q.Get("search"),
		ClassLevel: q.Get("classLevel"),
		State:      q.Get("state"),
	}
	if raw := q.Get("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			lq.Active = &active
		}
	}

	data, total, err := svc.ListClients(lq)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error al cargar los clientes")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  data,
		"total": total,
	})
}

// GET /GetClientsById/{id}
func GetClientsByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "id inválido")
		return
	}

	record, err := svc.GetClientByID(uint(id))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "cliente no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// PUT /UpdateClients/{id}
func UpdateClients(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "id inválido")
		return
	}

	var in clientsEnvelope
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	if errs := form.ValidateDraft(&in.ClientsData); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Por favor corrige los errores en el formulario",
			"errors":  errs,
		})
		return
	}

	record, err := svc.UpdateClient(uint(id), &in.ClientsData)
	switch {
	case errors.Is(err, svc.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "cliente no encontrado")
		return
	case errors.Is(err, svc.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "email duplicado")
		return
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "error al actualizar el cliente")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// DELETE /DeleteClients/{id}
func DeleteClients(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "id inválido")
		return
	}

	switch err := svc.DeleteClient(uint(id)); {
	case errors.Is(err, svc.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "cliente no encontrado")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "error al eliminar el cliente")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
