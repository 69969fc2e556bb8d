package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"go-admin-panel/internal/model"
)

const (
	SourceMock = "mock"
	SourceHost = "host"
)

// StatsSource produces the gauge block of the dashboard.
type StatsSource interface {
	Name() string
	Sample(ctx context.Context) (model.ServerStats, error)
}

type MockStats struct {
	stats model.ServerStats
}

func NewMockStats(stats model.ServerStats) *MockStats {
	return &MockStats{stats: stats}
}

func (m *MockStats) Name() string { return SourceMock }

func (m *MockStats) Sample(context.Context) (model.ServerStats, error) {
	return m.stats, nil
}

// HostStats reads cpu, memory, root disk usage and uptime from the machine.
// Fields the host cannot answer (network, users, requests, errors) come from
// the base block.
type HostStats struct {
	base     model.ServerStats
	diskPath string
}

func NewHostStats(base model.ServerStats) *HostStats {
	return &HostStats{base: base, diskPath: "/"}
}

func (h *HostStats) Name() string { return SourceHost }

func (h *HostStats) Sample(ctx context.Context) (model.ServerStats, error) {
	stats := h.base

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return stats, fmt.Errorf("sample cpu: %w", err)
	}
	if len(percents) > 0 {
		stats.CPU = round1(percents[0])
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return stats, fmt.Errorf("sample memory: %w", err)
	}
	stats.Memory = round1(vm.UsedPercent)

	usage, err := disk.UsageWithContext(ctx, h.diskPath)
	if err != nil {
		return stats, fmt.Errorf("sample disk: %w", err)
	}
	stats.Disk = round1(usage.UsedPercent)

	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return stats, fmt.Errorf("sample uptime: %w", err)
	}
	stats.Uptime = FormatUptime(time.Duration(uptime) * time.Second)

	return stats, nil
}

type DashboardService struct {
	source  StatsSource
	weekly  []model.ChartPoint
	traffic []model.TrafficSlice
	base    model.ServerStats
}

func NewDashboardService(data model.DashboardData, source StatsSource) *DashboardService {
	if source == nil {
		source = NewMockStats(data.Stats)
	}

	return &DashboardService{
		source:  source,
		weekly:  append([]model.ChartPoint(nil), data.Weekly...),
		traffic: append([]model.TrafficSlice(nil), data.Traffic...),
		base:    data.Stats,
	}
}

// Snapshot never fails: a broken host sample degrades to the seed gauges.
func (s *DashboardService) Snapshot(ctx context.Context) model.DashboardData {
	stats, err := s.source.Sample(ctx)
	source := s.source.Name()
	if err != nil {
		slog.Warn("dashboard sample failed, serving seed stats", "source", source, "error", err)
		stats = s.base
		source = SourceMock
	}

	return model.DashboardData{
		Source:  source,
		Stats:   stats,
		Weekly:  append([]model.ChartPoint{}, s.weekly...),
		Traffic: append([]model.TrafficSlice{}, s.traffic...),
	}
}

// FormatUptime renders "15d 4h 32m"; the day part is omitted under a day.
func FormatUptime(d time.Duration) string {
	minutes := int(d / time.Minute)
	days := minutes / (24 * 60)
	hours := (minutes / 60) % 24
	mins := minutes % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
