package service

import (
	"errors"
	"strings"
	"time"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/pkg/apierror"
)

const (
	filterAll = "all"
	justNow   = "just now"
	dateOnly  = "2006-01-02"
)

type RecordPayload struct {
	ID     string `json:"id"`
	Record any    `json:"record,omitempty"`
}

// matchesOption treats "" and "all" as no filter. Comparison ignores case.
func matchesOption(filter string, value string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(filter, filterAll) || strings.EqualFold(filter, value)
}

// normalizeOption is applied to enum values (role, status, level) on every write.
func normalizeOption(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func publish(bus event.Bus, t event.Type, topic string, payload any) {
	if bus == nil {
		return
	}
	bus.Publish(event.New(t, topic, payload))
}

func clockOrNow(clock func() time.Time) func() time.Time {
	if clock == nil {
		return time.Now
	}
	return clock
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func stringPtr(v string) *string {
	return &v
}

// notFoundOr turns the collection's ErrNotFound into an API error and passes
// anything else through.
func notFoundOr(err error, message string, id string) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NotFound(message, id)
	}
	return err
}
