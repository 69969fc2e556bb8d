package service

import (
	"strings"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/pkg/apierror"
)

const (
	DefaultTab   = "dashboard"
	DefaultTheme = model.ThemeLight
	topicShell   = "shell"
)

// ShellService validates navigation and theme choices. The chosen values
// travel with the client (cookies), so the service keeps no per-user state.
type ShellService struct {
	nav []model.NavItem
	bus event.Bus
}

func NewShellService(nav []model.NavItem, bus event.Bus) *ShellService {
	return &ShellService{nav: append([]model.NavItem(nil), nav...), bus: bus}
}

func (s *ShellService) Nav() []model.NavItem {
	return append([]model.NavItem(nil), s.nav...)
}

// State resolves the stored tab and theme, falling back to the defaults
// when either is missing or no longer valid.
func (s *ShellService) State(tab string, theme string) model.ShellState {
	state := model.ShellState{ActiveTab: DefaultTab, Theme: DefaultTheme, Nav: s.Nav()}
	if resolved, err := s.SelectTab(tab); err == nil {
		state.ActiveTab = resolved
	}
	if resolved, ok := normalizeTheme(theme); ok {
		state.Theme = resolved
	}
	return state
}

func (s *ShellService) SelectTab(tab string) (string, error) {
	tab = strings.TrimSpace(tab)
	for _, item := range s.nav {
		if item.ID == tab {
			return tab, nil
		}
	}
	return "", apierror.BadRequest("unknown tab", "tab")
}

func (s *ShellService) SetTheme(theme string) (string, error) {
	resolved, ok := normalizeTheme(theme)
	if !ok {
		return "", apierror.BadRequest("theme must be one of: light|dark", "theme")
	}

	publish(s.bus, event.TypeThemeChanged, topicShell, model.ThemeRequest{Theme: resolved})
	return resolved, nil
}

func normalizeTheme(theme string) (string, bool) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme == model.ThemeLight || theme == model.ThemeDark {
		return theme, true
	}
	return "", false
}
