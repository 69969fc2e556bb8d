package handler

import (
	"net/http"
	"time"

	"go-admin-panel/internal/model"
	"go-admin-panel/internal/service"
)

const (
	tabCookie   = "tab"
	themeCookie = "theme"
	themeMaxAge = 365 * 24 * time.Hour
)

type ShellHandler struct {
	service *service.ShellService
}

func NewShellHandler(service *service.ShellService) *ShellHandler {
	return &ShellHandler{service: service}
}

func (h *ShellHandler) State(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.State(cookieValue(r, tabCookie), cookieValue(r, themeCookie)), nil)
}

func (h *ShellHandler) Nav(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Nav(), nil)
}

// SelectTab keeps the tab in a session cookie; it resets on a new browser
// session.
func (h *ShellHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var payload model.SelectTabRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	tab, err := h.service.SelectTab(payload.Tab)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tabCookie,
		Value:    tab,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeSuccess(w, http.StatusOK, h.service.State(tab, cookieValue(r, themeCookie)), nil)
}

// SetTheme persists the theme for a year.
func (h *ShellHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var payload model.ThemeRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	theme, err := h.service.SetTheme(payload.Theme)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    theme,
		Path:     "/",
		MaxAge:   int(themeMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	writeSuccess(w, http.StatusOK, h.service.State(cookieValue(r, tabCookie), theme), nil)
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
