package handler

import (
	"net/http"

	"go-admin-panel/internal/model"
	"go-admin-panel/internal/service"
)

type TerminalHandler struct {
	service *service.TerminalService
}

func NewTerminalHandler(service *service.TerminalService) *TerminalHandler {
	return &TerminalHandler{service: service}
}

func (h *TerminalHandler) Commands(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Commands(), nil)
}

func (h *TerminalHandler) ListSessions(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.List(), nil)
}

func (h *TerminalHandler) CreateSession(w http.ResponseWriter, _ *http.Request) {
	info, err := h.service.Create()
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, info, nil)
}

func (h *TerminalHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.service.Session(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, session.Info(), nil)
}

func (h *TerminalHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
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

func (h *TerminalHandler) Lines(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.service.Session(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, session.Lines(), nil)
}

// Exec accepts a command and returns immediately; the output line arrives
// later over the websocket or the next Lines poll.
func (h *TerminalHandler) Exec(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.ExecRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.Exec(id, payload.Command)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusAccepted, resp, nil)
}

func (h *TerminalHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Clear(id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.ExecResponse{Accepted: true, Cleared: true}, nil)
}

func (h *TerminalHandler) History(w http.ResponseWriter, r *http.Request) {
	h.history(w, r, nil)
}

func (h *TerminalHandler) HistoryUp(w http.ResponseWriter, r *http.Request) {
	h.history(w, r, func(s sessionHistory) model.HistoryState { return s.HistoryUp() })
}

func (h *TerminalHandler) HistoryDown(w http.ResponseWriter, r *http.Request) {
	h.history(w, r, func(s sessionHistory) model.HistoryState { return s.HistoryDown() })
}

type sessionHistory interface {
	History() model.HistoryState
	HistoryUp() model.HistoryState
	HistoryDown() model.HistoryState
}

func (h *TerminalHandler) history(w http.ResponseWriter, r *http.Request, move func(sessionHistory) model.HistoryState) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.service.Session(id)
	if err != nil {
		writeError(w, err)
		return
	}

	if move == nil {
		writeSuccess(w, http.StatusOK, session.History(), nil)
		return
	}
	writeSuccess(w, http.StatusOK, move(session), nil)
}
