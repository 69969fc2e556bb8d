package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/pkg/apierror"
)

const topicSettings = "settings"

const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// sectionFields maps a section name to the struct a patch decodes into.
var sectionFields = map[string]func(*model.ServerConfig) any{
	model.SectionGeneral:       func(c *model.ServerConfig) any { return &c.General },
	model.SectionConnection:    func(c *model.ServerConfig) any { return &c.Connection },
	model.SectionDatabase:      func(c *model.ServerConfig) any { return &c.Database },
	model.SectionSecurity:      func(c *model.ServerConfig) any { return &c.Security },
	model.SectionPerformance:   func(c *model.ServerConfig) any { return &c.Performance },
	model.SectionNotifications: func(c *model.ServerConfig) any { return &c.Notifications },
	model.SectionAPI:           func(c *model.ServerConfig) any { return &c.API },
}

// SettingsService holds the server configuration form. Saving only simulates
// a write: nothing leaves memory.
type SettingsService struct {
	mu        sync.RWMutex
	defaults  model.ServerConfig
	config    model.ServerConfig
	dirty     bool
	saving    bool
	revision  uint64
	saveDelay time.Duration
	validate  *validator.Validate
	bus       event.Bus
}

func NewSettingsService(defaults model.ServerConfig, saveDelay time.Duration, bus event.Bus) (*SettingsService, error) {
	v := newConfigValidator()
	if err := v.Struct(defaults); err != nil {
		return nil, fmt.Errorf("default settings are invalid: %w", err)
	}

	return &SettingsService{
		defaults:  defaults.Clone(),
		config:    defaults.Clone(),
		saveDelay: saveDelay,
		validate:  v,
		bus:       bus,
	}, nil
}

func (s *SettingsService) State() model.SettingsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *SettingsService) Section(name string) (any, error) {
	field, ok := sectionFields[name]
	if !ok {
		return nil, unknownSection(name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.config.Clone()
	return field(&cfg), nil
}

// Patch merges a partial JSON object into one section. The merged config is
// validated as a whole; on failure nothing changes.
func (s *SettingsService) Patch(section string, raw []byte) (model.SettingsState, error) {
	field, ok := sectionFields[section]
	if !ok {
		return model.SettingsState{}, unknownSection(section)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return model.SettingsState{}, apierror.BadRequest("invalid settings patch", "body must be a JSON object")
	}

	next := s.config.Clone()
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(field(&next)); err != nil {
		return model.SettingsState{}, apierror.BadRequest("invalid settings patch", err.Error())
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return model.SettingsState{}, apierror.BadRequest("invalid settings patch", "unexpected data after JSON object")
	}
	if next.Security.AllowedIPs == nil {
		next.Security.AllowedIPs = []string{}
	}

	if err := s.validate.Struct(next); err != nil {
		return model.SettingsState{}, validationError(err)
	}

	s.config = next
	s.dirty = true
	s.revision++
	publish(s.bus, event.TypeSettingsChanged, topicSettings, map[string]any{"section": section})

	return s.stateLocked(), nil
}

// Save simulates an asynchronous write of the config as it was when the save
// started. saving stays true for the configured delay; cancellation leaves the
// form dirty, and so does any patch or reset that lands during the delay.
func (s *SettingsService) Save(ctx context.Context) (model.SettingsState, error) {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return model.SettingsState{}, apierror.Conflict("settings save already in progress", "")
	}
	s.saving = true
	startRevision := s.revision
	saved := s.config.Clone()
	s.mu.Unlock()

	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
		return model.SettingsState{}, ctx.Err()
	}

	s.mu.Lock()
	s.saving = false
	if s.revision == startRevision {
		s.dirty = false
	}
	state := s.stateLocked()
	s.mu.Unlock()

	publish(s.bus, event.TypeSettingsSaved, topicSettings, saved)
	return state, nil
}

func (s *SettingsService) Reset() model.SettingsState {
	s.mu.Lock()
	s.config = s.defaults.Clone()
	s.dirty = false
	s.revision++
	state := s.stateLocked()
	s.mu.Unlock()

	publish(s.bus, event.TypeSettingsReset, topicSettings, state.Config)
	return state
}

// Export serializes the in-memory config. It returns the body, a download
// filename and the content type.
func (s *SettingsService) Export(format string) ([]byte, string, string, error) {
	cfg := s.State().Config

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ExportJSON:
		body, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, "", "", fmt.Errorf("encode settings: %w", err)
		}
		return body, "server-config.json", "application/json", nil
	case ExportYAML, "yml":
		body, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, "", "", fmt.Errorf("encode settings: %w", err)
		}
		return body, "server-config.yaml", "application/yaml", nil
	default:
		return nil, "", "", apierror.BadRequest("format must be one of: json|yaml", "format")
	}
}

func (s *SettingsService) stateLocked() model.SettingsState {
	return model.SettingsState{Config: s.config.Clone(), Dirty: s.dirty, Saving: s.saving}
}

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apierror.Validation("settings validation failed", err.Error())
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		// Namespace starts with the root type name; drop it.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details = append(details, fmt.Sprintf("%s: %s", path, rule))
	}
	return apierror.Validation("settings validation failed", strings.Join(details, "; "))
}

func unknownSection(name string) error {
	return fmt.Errorf("%w: %s", model.ErrUnknownSection, name)
}
