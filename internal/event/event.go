package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTerminalLine    Type = "terminal.line"
	TypeTerminalCleared Type = "terminal.cleared"
	TypeRecordCreated   Type = "record.created"
	TypeRecordUpdated   Type = "record.updated"
	TypeRecordDeleted   Type = "record.deleted"
	TypeLogAppended     Type = "log.appended"
	TypeSettingsChanged Type = "settings.changed"
	TypeSettingsSaved   Type = "settings.saved"
	TypeSettingsReset   Type = "settings.reset"
	TypeThemeChanged    Type = "shell.theme"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Topic     string `json:"topic,omitempty"` // Panel or session the event belongs to
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func()) // Returns channel and unsubscribe function
}

func New(t Type, topic string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Nop discards every event. Services fall back to it when built without a bus.
type Nop struct{}

func (Nop) Publish(Event) {}

func (Nop) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event)
	return ch, func() {}
}
