package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-admin-panel/internal/service"
)

type SettingsHandler struct {
	service *service.SettingsService
}

func NewSettingsHandler(service *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.State(), nil)
}

func (h *SettingsHandler) Section(w http.ResponseWriter, r *http.Request) {
	section, err := h.service.Section(chi.URLParam(r, "section"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, section, nil)
}

// Patch merges a partial JSON object into one section.
func (h *SettingsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	state, err := h.service.Patch(chi.URLParam(r, "section"), raw)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, state, nil)
}

// Save blocks for the simulated write delay; a dropped request leaves the
// form dirty.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Save(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, state, nil)
}

func (h *SettingsHandler) Reset(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Reset(), nil)
}

func (h *SettingsHandler) Export(w http.ResponseWriter, r *http.Request) {
	body, filename, contentType, err := h.service.Export(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeAttachment(w, filename, contentType, body)
}
