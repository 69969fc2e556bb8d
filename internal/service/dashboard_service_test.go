package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-admin-panel/internal/model"
)

type failingStats struct{}

func (failingStats) Name() string { return SourceHost }

func (failingStats) Sample(context.Context) (model.ServerStats, error) {
	return model.ServerStats{}, errors.New("no /proc")
}

func TestDashboardService_Mock(t *testing.T) {
	data := seedData(t).Dashboard
	svc := NewDashboardService(data, nil)

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, SourceMock, snap.Source)
	assert.Equal(t, 65.0, snap.Stats.CPU)
	assert.Equal(t, 78.0, snap.Stats.Memory)
	assert.Equal(t, 1247, snap.Stats.ActiveUsers)
	assert.Equal(t, 89432, snap.Stats.Requests)
	assert.Len(t, snap.Weekly, 7)
	assert.Equal(t, "Mon", snap.Weekly[0].Name)
	assert.Equal(t, 1600, snap.Weekly[4].Requests)
	assert.Equal(t, []int{45, 35, 20}, []int{snap.Traffic[0].Value, snap.Traffic[1].Value, snap.Traffic[2].Value})
}

func TestDashboardService_FallsBackToSeed(t *testing.T) {
	data := seedData(t).Dashboard
	svc := NewDashboardService(data, failingStats{})

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, SourceMock, snap.Source)
	assert.Equal(t, data.Stats, snap.Stats)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "15d 4h 32m", FormatUptime(15*24*time.Hour+4*time.Hour+32*time.Minute+10*time.Second))
	assert.Equal(t, "0h 5m", FormatUptime(5*time.Minute))
}

func TestHostStatsKeepsSyntheticFields(t *testing.T) {
	base := seedData(t).Dashboard.Stats
	stats, err := NewHostStats(base).Sample(context.Background())
	if err != nil {
		t.Skipf("host metrics unavailable: %v", err)
	}

	assert.Equal(t, base.ActiveUsers, stats.ActiveUsers)
	assert.Equal(t, base.Network, stats.Network)
	assert.GreaterOrEqual(t, stats.Memory, 0.0)
	assert.LessOrEqual(t, stats.Disk, 100.0)
	assert.NotEmpty(t, stats.Uptime)
}
