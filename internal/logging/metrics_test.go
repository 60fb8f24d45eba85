package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshotAndReset(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	metrics := NewMetrics(start)
	metrics.PetsHatched.Inc()
	metrics.PetsHatched.Inc()
	metrics.MissionsJoined.Add(3)
	metrics.RequestsFailed.Inc()

	snapshot := metrics.Snapshot()
	assert.Equal(t, int64(2), snapshot.PetsHatched)
	assert.Equal(t, int64(3), snapshot.MissionsJoined)
	assert.Equal(t, int64(1), snapshot.RequestsFailed)
	assert.Equal(t, start, snapshot.StartedAt)

	later := start.Add(time.Hour)
	metrics.Reset(later)
	assert.Equal(t, MetricsSnapshot{StartedAt: later}, metrics.Snapshot())
}

func TestMetricsRenderTable(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	metrics := NewMetrics(start)
	metrics.PetsMerged.Add(4)

	buf := &bytes.Buffer{}
	metrics.Snapshot().Render(buf, start.Add(90*time.Minute+5*time.Second))

	out := buf.String()
	assert.Contains(t, out, "pets merged")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "01:30:05")
}

func TestLogMetricsLine(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(LevelInfo)
	snapshot := MetricsSnapshot{PetsHatched: 5, StartedAt: fixedNow.Add(-time.Minute)}
	logger.LogMetrics(snapshot, fixedNow)

	assert.Contains(t, buf.String(), "metrics | passes=0 pets_hatched=5")
	assert.Contains(t, buf.String(), "uptime=00:01:00")
}
