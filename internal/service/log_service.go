package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/repository"
	"go-admin-panel/internal/util"
	"go-admin-panel/pkg/apierror"
)

const (
	topicLogs          = "logs"
	logTimestampLayout = "2006-01-02 15:04:05"
	generatedSource    = "log-generator"
)

type LogServiceOptions struct {
	MaxEntries      int
	RefreshInterval time.Duration
	Clock           func() time.Time
	// Pick chooses an index in [0, n); defaults to math/rand.
	Pick func(n int) int
}

// LogService is the newest-first log viewer with an optional generator that
// prepends synthetic entries on a ticker.
type LogService struct {
	logs *repository.Collection[model.LogEntry]
	bus  event.Bus
	opts LogServiceOptions

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLogService(seed []model.LogEntry, bus event.Bus, opts LogServiceOptions) *LogService {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 1000
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 5 * time.Second
	}
	opts.Clock = clockOrNow(opts.Clock)
	if opts.Pick == nil {
		opts.Pick = rand.Intn
	}

	s := &LogService{
		logs: repository.NewCollection(func(l model.LogEntry) string { return l.ID }, cloneLog, seed),
		bus:  bus,
		opts: opts,
	}
	s.logs.Truncate(opts.MaxEntries)
	return s
}

func (s *LogService) List(query model.LogQuery) ([]model.LogEntry, model.Meta, model.LogStats) {
	items := s.filtered(query)
	page, meta := model.Paginate(items, query.Page, query.Limit)
	return page, meta, statsOf(items)
}

// Stats is computed over the filtered view.
func (s *LogService) Stats(query model.LogQuery) model.LogStats {
	return statsOf(s.filtered(query))
}

func (s *LogService) Get(id string) (model.LogEntry, error) {
	entry, err := s.logs.Get(id)
	if err != nil {
		return model.LogEntry{}, apierror.NotFound("log entry not found", id)
	}
	return entry, nil
}

func (s *LogService) Push(request model.CreateLogRequest) (model.LogEntry, error) {
	level := normalizeOption(request.Level)
	if !oneOf(level, model.LogLevels...) {
		return model.LogEntry{}, apierror.BadRequest("level must be one of: "+strings.Join(model.LogLevels, "|"), "level")
	}
	category := normalizeOption(request.Category)
	if !oneOf(category, model.LogCategories...) {
		return model.LogEntry{}, apierror.BadRequest("category must be one of: "+strings.Join(model.LogCategories, "|"), "category")
	}
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return model.LogEntry{}, apierror.BadRequest("message is required", "message")
	}
	source := strings.TrimSpace(request.Source)
	if source == "" {
		source = "api"
	}

	entry := model.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: s.opts.Clock().Format(logTimestampLayout),
		Level:     level,
		Category:  category,
		Message:   message,
		Details:   cloneStringPtr(request.Details),
		IP:        cloneStringPtr(request.IP),
		User:      cloneStringPtr(request.User),
		Source:    source,
	}

	if err := s.append(entry); err != nil {
		return model.LogEntry{}, err
	}
	return entry, nil
}

// Generate prepends one synthetic entry with a random level and category.
func (s *LogService) Generate() model.LogEntry {
	entry := model.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: s.opts.Clock().Format(logTimestampLayout),
		Level:     model.LogLevels[s.opts.Pick(len(model.LogLevels))],
		Category:  model.LogCategories[s.opts.Pick(len(model.LogCategories))],
		Message:   "Auto-generated event",
		Details:   stringPtr("Details of the auto-generated event"),
		Source:    generatedSource,
	}

	// uuid ids never collide, so append cannot fail here.
	_ = s.append(entry)
	return entry
}

func (s *LogService) append(entry model.LogEntry) error {
	if err := s.logs.Prepend(entry); err != nil {
		return err
	}
	if dropped := s.logs.Truncate(s.opts.MaxEntries); dropped > 0 {
		slog.Debug("log viewer capped", "dropped", dropped, "max", s.opts.MaxEntries)
	}

	publish(s.bus, event.TypeLogAppended, topicLogs, entry)
	return nil
}

func (s *LogService) Select(id string) (model.LogEntry, error) {
	if err := s.logs.Select(id); err != nil {
		return model.LogEntry{}, notFoundOr(err, "log entry not found", id)
	}
	return s.Get(id)
}

func (s *LogService) Selected() (model.LogEntry, bool) {
	return s.logs.Selected()
}

// Export renders the filtered view as an indented JSON attachment.
func (s *LogService) Export(query model.LogQuery) ([]byte, string, error) {
	items := s.filtered(query)
	body, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encode logs: %w", err)
	}

	filename := fmt.Sprintf("logs-%s.json", s.opts.Clock().Format(dateOnly))
	return body, filename, nil
}

// SetAutoRefresh starts or stops the generator. Calling it with the current
// state is a no-op.
func (s *LogService) SetAutoRefresh(enabled bool) model.AutoRefreshState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case enabled && s.cancel == nil:
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.done = make(chan struct{})
		go s.refreshLoop(ctx, s.done)
		slog.Info("log auto-refresh started", "interval", s.opts.RefreshInterval)
	case !enabled && s.cancel != nil:
		s.stopLocked()
		slog.Info("log auto-refresh stopped")
	}

	return s.autoRefreshLocked()
}

func (s *LogService) AutoRefresh() model.AutoRefreshState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoRefreshLocked()
}

func (s *LogService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.stopLocked()
	}
}

func (s *LogService) Len() int {
	return s.logs.Len()
}

func (s *LogService) refreshLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.opts.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Generate()
		}
	}
}

func (s *LogService) stopLocked() {
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

func (s *LogService) autoRefreshLocked() model.AutoRefreshState {
	return model.AutoRefreshState{Enabled: s.cancel != nil, Interval: s.opts.RefreshInterval.String()}
}

func (s *LogService) filtered(query model.LogQuery) []model.LogEntry {
	search := strings.TrimSpace(query.Search)
	return s.logs.Filter(func(l model.LogEntry) bool {
		if !matchesOption(query.Level, l.Level) || !matchesOption(query.Category, l.Category) {
			return false
		}
		if search == "" {
			return true
		}
		return util.ContainsFold(l.Message, search) ||
			(l.Details != nil && util.ContainsFold(*l.Details, search)) ||
			util.ContainsFold(l.Source, search)
	})
}

func statsOf(items []model.LogEntry) model.LogStats {
	stats := model.LogStats{Total: len(items)}
	for _, l := range items {
		switch l.Level {
		case model.LevelError:
			stats.Errors++
		case model.LevelWarning:
			stats.Warnings++
		case model.LevelInfo:
			stats.Info++
		}
	}
	return stats
}

func cloneLog(l model.LogEntry) model.LogEntry {
	l.Details = cloneStringPtr(l.Details)
	l.IP = cloneStringPtr(l.IP)
	l.User = cloneStringPtr(l.User)
	return l
}
