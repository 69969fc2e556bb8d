package terminal

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-admin-panel/internal/model"
)

const CommandClear = "clear"

type Options struct {
	DelayMin time.Duration
	DelayMax time.Duration
	// Delay overrides the randomized [DelayMin, DelayMax] wait when set.
	Delay   func() time.Duration
	Welcome []string
	// MaxLines caps the scrollback; the oldest lines go first. Zero means no cap.
	MaxLines int
	Clock    func() time.Time
	OnLine  func(sessionID string, line model.TerminalLine)
	OnClear func(sessionID string)
}

type resolution struct {
	command    string
	generation uint64
}

// Session is one simulated terminal. Commands resolve one at a time in
// submission order on a single worker goroutine.
type Session struct {
	id        string
	createdAt time.Time
	dict      *Dictionary
	opts      Options

	mu         sync.Mutex
	lines      []model.TerminalLine
	history    *History
	input      string
	generation uint64
	pending    []resolution
	inflight   bool
	busy       bool
	idle       chan struct{}
	closed     bool

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSession(id string, dict *Dictionary, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Delay == nil {
		opts.Delay = randomDelay(opts.DelayMin, opts.DelayMax)
	}

	ctx, cancel := context.WithCancel(context.Background())
	idle := make(chan struct{})
	close(idle)

	s := &Session{
		id:        id,
		createdAt: opts.Clock(),
		dict:      dict,
		opts:      opts,
		history:   NewHistory(),
		idle:      idle,
		wake:      make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	for _, text := range opts.Welcome {
		s.appendLocked(s.newLine(model.LineOutput, text))
	}

	go s.workerLoop()
	return s
}

func (s *Session) ID() string { return s.id }

// Submit handles one line of input. Empty input is rejected and leaves the
// session untouched.
func (s *Session) Submit(raw string) (model.ExecResponse, error) {
	command := strings.TrimSpace(raw)
	if command == "" {
		return model.ExecResponse{}, model.ErrEmptyCommand
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.ExecResponse{}, model.ErrSessionClosed
	}

	s.history.Push(command)
	s.input = ""

	if command == CommandClear {
		s.clearLocked()
		s.mu.Unlock()

		if s.opts.OnClear != nil {
			s.opts.OnClear(s.id)
		}
		return model.ExecResponse{Accepted: true, Cleared: true}, nil
	}

	line := s.newLine(model.LineCommand, "$ "+command)
	s.appendLocked(line)
	s.pending = append(s.pending, resolution{command: command, generation: s.generation})
	if !s.busy {
		s.busy = true
		s.idle = make(chan struct{})
	}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	if s.opts.OnLine != nil {
		s.opts.OnLine(s.id, line)
	}

	return model.ExecResponse{Accepted: true, Line: &line}, nil
}

func (s *Session) workerLoop() {
	defer close(s.done)

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.settleLocked()
			s.mu.Unlock()

			select {
			case <-s.wake:
				continue
			case <-s.ctx.Done():
				return
			}
		}

		next := s.pending[0]
		s.pending = s.pending[1:]
		s.inflight = true
		s.mu.Unlock()

		if !s.wait(s.opts.Delay()) {
			return
		}

		s.resolve(next)
	}
}

func (s *Session) wait(d time.Duration) bool {
	if d <= 0 {
		return s.ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-s.ctx.Done():
		return false
	}
}

func (s *Session) resolve(next resolution) {
	defer func() {
		s.mu.Lock()
		s.inflight = false
		s.settleLocked()
		s.mu.Unlock()
	}()

	s.mu.Lock()
	// A clear issued after this command was queued discards its output.
	if next.generation != s.generation || s.closed {
		s.mu.Unlock()
		return
	}

	var line model.TerminalLine
	if out, ok := s.dict.Lookup(next.command); ok {
		line = s.newLine(model.LineOutput, out)
	} else {
		line = s.newLine(model.LineError, fmt.Sprintf("Command not found: %s", next.command))
	}
	s.appendLocked(line)
	s.mu.Unlock()

	if s.opts.OnLine != nil {
		s.opts.OnLine(s.id, line)
	}
}

func (s *Session) settleLocked() {
	if s.busy && len(s.pending) == 0 && !s.inflight {
		s.busy = false
		close(s.idle)
	}
}

// Drain blocks until every accepted command has resolved or ctx ends.
func (s *Session) Drain(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Clear empties the scrollback without touching history.
func (s *Session) Clear() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.ErrSessionClosed
	}
	s.clearLocked()
	s.mu.Unlock()

	if s.opts.OnClear != nil {
		s.opts.OnClear(s.id)
	}
	return nil
}

func (s *Session) appendLocked(line model.TerminalLine) {
	s.lines = append(s.lines, line)
	if max := s.opts.MaxLines; max > 0 && len(s.lines) > max {
		s.lines = append(s.lines[:0:0], s.lines[len(s.lines)-max:]...)
	}
}

func (s *Session) clearLocked() {
	s.lines = nil
	s.generation++
	s.pending = nil
	s.settleLocked()
}

func (s *Session) Lines() []model.TerminalLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TerminalLine{}, s.lines...)
}

func (s *Session) HistoryUp() model.HistoryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd, ok := s.history.Up(); ok {
		s.input = cmd
	}
	return s.historyStateLocked()
}

func (s *Session) HistoryDown() model.HistoryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd, ok := s.history.Down(); ok {
		s.input = cmd
	}
	return s.historyStateLocked()
}

func (s *Session) History() model.HistoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyStateLocked()
}

func (s *Session) historyStateLocked() model.HistoryState {
	return model.HistoryState{
		Input:   s.input,
		Index:   s.history.Index(),
		Entries: s.history.Entries(),
	}
}

func (s *Session) Info() model.TerminalSessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := len(s.pending)
	if s.inflight {
		pending++
	}

	return model.TerminalSessionInfo{
		ID:        s.id,
		Lines:     len(s.lines),
		History:   s.history.Len(),
		Pending:   pending,
		CreatedAt: s.createdAt,
	}
}

// Close stops the worker and discards unresolved commands.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.pending = nil
	s.mu.Unlock()

	s.cancel()
	<-s.done

	s.mu.Lock()
	s.inflight = false
	s.settleLocked()
	s.mu.Unlock()
}

func (s *Session) newLine(kind string, content string) model.TerminalLine {
	return model.TerminalLine{
		ID:        uuid.NewString(),
		Type:      kind,
		Content:   content,
		Timestamp: s.opts.Clock(),
	}
}

func randomDelay(min time.Duration, max time.Duration) func() time.Duration {
	return func() time.Duration {
		if max <= min {
			return min
		}
		return min + time.Duration(rand.Int63n(int64(max-min)+1))
	}
}
