package handler

import (
	"net/http"

	"go-admin-panel/internal/model"
	"go-admin-panel/internal/service"
)

type FileHandler struct {
	service *service.FileService
}

func NewFileHandler(service *service.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := pagination(r)

	items, meta := h.service.List(model.FileQuery{
		Search: query.Get("search"),
		Type:   query.Get("type"),
		Page:   page.page,
		Limit:  page.limit,
	})
	writeSuccess(w, http.StatusOK, items, &meta)
}

func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateFileRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Create(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, item, nil)
}

func (h *FileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateFileRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Update(id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true, "id": id}, nil)
}

func (h *FileHandler) Browser(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.State(), nil)
}

func (h *FileHandler) Open(w http.ResponseWriter, r *http.Request) {
	var payload model.SelectRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	state, err := h.service.Open(payload.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, state, nil)
}

func (h *FileHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	state, err := h.service.Select(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, state, nil)
}

func (h *FileHandler) Home(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Home(), nil)
}
