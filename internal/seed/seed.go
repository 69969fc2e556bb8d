package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-admin-panel/internal/model"
)

//go:embed default.yaml
var defaultData []byte

type Command struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
}

type Terminal struct {
	Welcome  []string  `yaml:"welcome"`
	Commands []Command `yaml:"commands"`
}

type News struct {
	Categories []string            `yaml:"categories"`
	Articles   []model.NewsArticle `yaml:"articles"`
}

// Data is every mock dictionary and array the panels start from.
type Data struct {
	Nav       []model.NavItem     `yaml:"nav"`
	Dashboard model.DashboardData `yaml:"dashboard"`
	Terminal  Terminal            `yaml:"terminal"`
	Files     []model.FileItem    `yaml:"files"`
	News      News                `yaml:"news"`
	Users     []model.UserData    `yaml:"users"`
	Logs      []model.LogEntry    `yaml:"logs"`
	Settings  model.ServerConfig  `yaml:"settings"`
}

// Default returns the embedded seed set.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Load reads a seed file; an empty path falls back to the embedded set.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	return data, nil
}

func Parse(raw []byte) (*Data, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var data Data
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	if err := data.validate(); err != nil {
		return nil, err
	}

	if data.Settings.Security.AllowedIPs == nil {
		data.Settings.Security.AllowedIPs = []string{}
	}

	return &data, nil
}

func (d *Data) validate() error {
	if len(d.Nav) == 0 {
		return fmt.Errorf("seed: nav cannot be empty")
	}

	if err := uniqueIDs("files", d.Files, func(f model.FileItem) string { return f.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("news", d.News.Articles, func(a model.NewsArticle) string { return a.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("users", d.Users, func(u model.UserData) string { return u.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("logs", d.Logs, func(l model.LogEntry) string { return l.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("nav", d.Nav, func(n model.NavItem) string { return n.ID }); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(d.Terminal.Commands))
	for _, cmd := range d.Terminal.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("seed: terminal command with empty name")
		}
		if _, dup := seen[cmd.Name]; dup {
			return fmt.Errorf("seed: duplicate terminal command %q", cmd.Name)
		}
		seen[cmd.Name] = struct{}{}
	}

	return nil
}

func uniqueIDs[T any](collection string, items []T, idOf func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := idOf(item)
		if id == "" {
			return fmt.Errorf("seed: %s record with empty id", collection)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("seed: duplicate %s id %q", collection, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
