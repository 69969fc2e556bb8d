package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/terminal"
	"go-admin-panel/pkg/apierror"
)

const DefaultSessionID = "default"

// TerminalService owns the simulated terminal sessions. The default session
// exists for the lifetime of the service and cannot be deleted.
type TerminalService struct {
	dict        *terminal.Dictionary
	opts        terminal.Options
	maxSessions int
	bus         event.Bus
	onOpen      func(open int)

	mu       sync.RWMutex
	sessions map[string]*terminal.Session
	closed   bool
}

// NewTerminalService uses opts as the template for every session. The
// OnLine/OnClear hooks in opts run in addition to event publishing.
// maxSessions counts the default session; zero means no limit.
func NewTerminalService(dict *terminal.Dictionary, opts terminal.Options, maxSessions int, bus event.Bus) *TerminalService {
	s := &TerminalService{
		dict:        dict,
		opts:        opts,
		maxSessions: maxSessions,
		bus:         bus,
		sessions:    map[string]*terminal.Session{},
	}
	s.sessions[DefaultSessionID] = s.newSession(DefaultSessionID)
	return s
}

// OnSessionCount registers a callback fed with the open session count.
func (s *TerminalService) OnSessionCount(fn func(open int)) {
	s.mu.Lock()
	s.onOpen = fn
	open := len(s.sessions)
	s.mu.Unlock()

	if fn != nil {
		fn(open)
	}
}

func (s *TerminalService) newSession(id string) *terminal.Session {
	opts := s.opts
	opts.OnLine = func(sessionID string, line model.TerminalLine) {
		publish(s.bus, event.TypeTerminalLine, sessionID, line)
		if s.opts.OnLine != nil {
			s.opts.OnLine(sessionID, line)
		}
	}
	opts.OnClear = func(sessionID string) {
		publish(s.bus, event.TypeTerminalCleared, sessionID, nil)
		if s.opts.OnClear != nil {
			s.opts.OnClear(sessionID)
		}
	}
	return terminal.NewSession(id, s.dict, opts)
}

func (s *TerminalService) Create() (model.TerminalSessionInfo, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.TerminalSessionInfo{}, apierror.Conflict("terminal service is shutting down", "")
	}
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		return model.TerminalSessionInfo{}, apierror.Conflict("terminal session limit reached", fmt.Sprintf("max=%d", s.maxSessions))
	}
	session := s.newSession(uuid.NewString())
	s.sessions[session.ID()] = session
	open, notify := len(s.sessions), s.onOpen
	s.mu.Unlock()

	if notify != nil {
		notify(open)
	}
	return session.Info(), nil
}

func (s *TerminalService) Session(id string) (*terminal.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	return session, nil
}

func (s *TerminalService) List() []model.TerminalSessionInfo {
	s.mu.RLock()
	out := make([]model.TerminalSessionInfo, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.Info())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ID == DefaultSessionID || out[j].ID == DefaultSessionID {
			return out[i].ID == DefaultSessionID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *TerminalService) Exec(id string, command string) (model.ExecResponse, error) {
	session, err := s.Session(id)
	if err != nil {
		return model.ExecResponse{}, err
	}

	resp, err := session.Submit(command)
	switch {
	case errors.Is(err, model.ErrEmptyCommand):
		return model.ExecResponse{}, apierror.BadRequest("command cannot be empty", "command")
	case errors.Is(err, model.ErrSessionClosed):
		return model.ExecResponse{}, apierror.Conflict("terminal session closed", id)
	case err != nil:
		return model.ExecResponse{}, err
	}
	return resp, nil
}

func (s *TerminalService) Clear(id string) error {
	session, err := s.Session(id)
	if err != nil {
		return err
	}
	if err := session.Clear(); err != nil {
		return apierror.Conflict("terminal session closed", id)
	}
	return nil
}

func (s *TerminalService) Delete(id string) error {
	if id == DefaultSessionID {
		return apierror.BadRequest("the default session cannot be deleted", "id")
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	open, notify := len(s.sessions), s.onOpen
	s.mu.Unlock()

	session.Close()
	if notify != nil {
		notify(open)
	}
	return nil
}

func (s *TerminalService) Commands() []string {
	return s.dict.Names()
}

// Close stops every session worker.
func (s *TerminalService) Close() {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*terminal.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}
