package handler

import (
	"net/http"

	"go-admin-panel/internal/model"
	"go-admin-panel/internal/service"
)

type LogHandler struct {
	service *service.LogService
}

func NewLogHandler(service *service.LogService) *LogHandler {
	return &LogHandler{service: service}
}

type logList struct {
	Entries []model.LogEntry `json:"entries"`
	Stats   model.LogStats   `json:"stats"`
}

type autoRefreshRequest struct {
	Enabled bool `json:"enabled"`
}

func logQuery(r *http.Request) model.LogQuery {
	query := r.URL.Query()
	page := pagination(r)
	return model.LogQuery{
		Search:   query.Get("search"),
		Level:    query.Get("level"),
		Category: query.Get("category"),
		Page:     page.page,
		Limit:    page.limit,
	}
}

func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, meta, stats := h.service.List(logQuery(r))
	writeSuccess(w, http.StatusOK, logList{Entries: entries, Stats: stats}, &meta)
}

func (h *LogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Stats(logQuery(r)), nil)
}

func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entry, nil)
}

func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateLogRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Push(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, entry, nil)
}

func (h *LogHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Select(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entry, nil)
}

func (h *LogHandler) Export(w http.ResponseWriter, r *http.Request) {
	body, filename, err := h.service.Export(logQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeAttachment(w, filename, "application/json", body)
}

func (h *LogHandler) AutoRefresh(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.AutoRefresh(), nil)
}

func (h *LogHandler) SetAutoRefresh(w http.ResponseWriter, r *http.Request) {
	var payload autoRefreshRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, h.service.SetAutoRefresh(payload.Enabled), nil)
}
