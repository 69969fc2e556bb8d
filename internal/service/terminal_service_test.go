package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/terminal"
	"go-admin-panel/pkg/apierror"
)

func newTerminalService(t *testing.T, bus event.Bus) *TerminalService {
	data := seedData(t)
	entries := make([]terminal.Entry, 0, len(data.Terminal.Commands))
	for _, cmd := range data.Terminal.Commands {
		entries = append(entries, terminal.Entry{Name: cmd.Name, Output: cmd.Output})
	}

	svc := NewTerminalService(
		terminal.NewDefaultDictionary(entries, nil),
		terminal.Options{Delay: func() time.Duration { return 0 }, Welcome: data.Terminal.Welcome},
		0,
		bus,
	)
	t.Cleanup(svc.Close)
	return svc
}

func drainSession(t *testing.T, svc *TerminalService, id string) *terminal.Session {
	t.Helper()
	session, err := svc.Session(id)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, session.Drain(ctx))
	return session
}

func apiCode(t *testing.T, err error) string {
	t.Helper()
	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr.Code
}

func TestTerminalService_DefaultSession(t *testing.T) {
	svc := newTerminalService(t, newQuietBus())

	session, err := svc.Session(DefaultSessionID)
	require.NoError(t, err)
	lines := session.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Welcome to the control panel terminal v2.1.0", lines[0].Content)

	assert.Equal(t, "BAD_REQUEST", apiCode(t, svc.Delete(DefaultSessionID)))
}

func TestTerminalService_ExecPublishesLines(t *testing.T) {
	bus := event.NewBus()
	events, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	svc := newTerminalService(t, bus)

	_, err := svc.Exec(DefaultSessionID, "whoami")
	require.NoError(t, err)
	drainSession(t, svc, DefaultSessionID)

	first := <-events
	second := <-events
	assert.Equal(t, event.TypeTerminalLine, first.Type)
	assert.Equal(t, DefaultSessionID, first.Topic)
	assert.Equal(t, "$ whoami", first.Payload.(model.TerminalLine).Content)
	assert.Equal(t, "admin", second.Payload.(model.TerminalLine).Content)

	require.NoError(t, svc.Clear(DefaultSessionID))
	cleared := <-events
	assert.Equal(t, event.TypeTerminalCleared, cleared.Type)
}

func TestTerminalService_ExecErrors(t *testing.T) {
	svc := newTerminalService(t, newQuietBus())

	_, err := svc.Exec(DefaultSessionID, "  ")
	assert.Equal(t, "BAD_REQUEST", apiCode(t, err))

	_, err = svc.Exec("missing", "ls")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestTerminalService_SessionsAreIndependent(t *testing.T) {
	svc := newTerminalService(t, newQuietBus())

	var counts []int
	var mu sync.Mutex
	svc.OnSessionCount(func(open int) {
		mu.Lock()
		defer mu.Unlock()
		counts = append(counts, open)
	})

	info, err := svc.Create()
	require.NoError(t, err)
	assert.Equal(t, 2, info.Lines)

	_, err = svc.Exec(info.ID, "pwd")
	require.NoError(t, err)
	other := drainSession(t, svc, info.ID)
	assert.Len(t, other.Lines(), 4)

	def := drainSession(t, svc, DefaultSessionID)
	assert.Len(t, def.Lines(), 2)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, DefaultSessionID, list[0].ID)

	require.NoError(t, svc.Delete(info.ID))
	assert.ErrorIs(t, svc.Delete(info.ID), model.ErrSessionNotFound)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 1}, counts)
}

func TestTerminalService_SessionLimit(t *testing.T) {
	data := seedData(t)
	svc := NewTerminalService(
		terminal.NewDefaultDictionary(nil, nil),
		terminal.Options{Delay: func() time.Duration { return 0 }, Welcome: data.Terminal.Welcome},
		2,
		newQuietBus(),
	)
	t.Cleanup(svc.Close)

	info, err := svc.Create()
	require.NoError(t, err)

	_, err = svc.Create()
	assert.Equal(t, "CONFLICT", apiCode(t, err))
	assert.Len(t, svc.List(), 2)

	require.NoError(t, svc.Delete(info.ID))
	_, err = svc.Create()
	assert.NoError(t, err)
}

func TestTerminalService_Commands(t *testing.T) {
	svc := newTerminalService(t, newQuietBus())
	names := svc.Commands()

	for _, want := range []string{"clear", "date", "df -h", "help", "ls", "netstat", "top"} {
		assert.Contains(t, names, want)
	}
}

func TestTerminalService_CloseRejectsNewSessions(t *testing.T) {
	svc := newTerminalService(t, newQuietBus())
	svc.Close()

	_, err := svc.Create()
	assert.Equal(t, "CONFLICT", apiCode(t, err))

	_, err = svc.Exec(DefaultSessionID, "ls")
	assert.Equal(t, "CONFLICT", apiCode(t, err))
}
