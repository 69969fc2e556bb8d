package model

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type NavItem struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type ShellState struct {
	ActiveTab string    `json:"activeTab"`
	Theme     string    `json:"theme"`
	Nav       []NavItem `json:"nav"`
}

type SelectTabRequest struct {
	Tab string `json:"tab"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type SelectRequest struct {
	ID string `json:"id"`
}
