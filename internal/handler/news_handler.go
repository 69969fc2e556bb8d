package handler

import (
	"net/http"

	"go-admin-panel/internal/model"
	"go-admin-panel/internal/service"
)

type NewsHandler struct {
	service *service.NewsService
}

func NewNewsHandler(service *service.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := pagination(r)

	items, meta := h.service.List(model.NewsQuery{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Page:     page.page,
		Limit:    page.limit,
	})
	writeSuccess(w, http.StatusOK, items, &meta)
}

func (h *NewsHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Stats(), nil)
}

func (h *NewsHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Categories(), nil)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	article, err := h.service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, article, nil)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateArticleRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	article, err := h.service.Create(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, article, nil)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateArticleRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	article, err := h.service.Update(id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, article, nil)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *NewsHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	article, err := h.service.Select(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, article, nil)
}

func (h *NewsHandler) Selected(w http.ResponseWriter, _ *http.Request) {
	article, ok := h.service.Selected()
	if !ok {
		writeSuccess(w, http.StatusOK, nil, nil)
		return
	}
	writeSuccess(w, http.StatusOK, article, nil)
}

func (h *NewsHandler) Render(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rendered, err := h.service.Render(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rendered, nil)
}

func (h *NewsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var payload model.PreviewRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, h.service.Preview(payload.Markdown), nil)
}
