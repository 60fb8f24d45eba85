package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/atomic"
)

// Metrics counts bot activity for the lifetime of the process.
type Metrics struct {
	PetsHatched         atomic.Int64
	PetsMerged          atomic.Int64
	MissionsJoined      atomic.Int64
	MissionsClaimed     atomic.Int64
	AchievementsClaimed atomic.Int64
	RewardsClaimed      atomic.Int64
	RequestsFailed      atomic.Int64
	Passes              atomic.Int64

	startedAt atomic.Time
}

type MetricsSnapshot struct {
	PetsHatched         int64
	PetsMerged          int64
	MissionsJoined      int64
	MissionsClaimed     int64
	AchievementsClaimed int64
	RewardsClaimed      int64
	RequestsFailed      int64
	Passes              int64
	StartedAt           time.Time
}

func NewMetrics(now time.Time) *Metrics {
	m := &Metrics{}
	m.startedAt.Store(now)
	return m
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		PetsHatched:         m.PetsHatched.Load(),
		PetsMerged:          m.PetsMerged.Load(),
		MissionsJoined:      m.MissionsJoined.Load(),
		MissionsClaimed:     m.MissionsClaimed.Load(),
		AchievementsClaimed: m.AchievementsClaimed.Load(),
		RewardsClaimed:      m.RewardsClaimed.Load(),
		RequestsFailed:      m.RequestsFailed.Load(),
		Passes:              m.Passes.Load(),
		StartedAt:           m.startedAt.Load(),
	}
}

func (m *Metrics) Reset(now time.Time) {
	for _, counter := range []*atomic.Int64{
		&m.PetsHatched,
		&m.PetsMerged,
		&m.MissionsJoined,
		&m.MissionsClaimed,
		&m.AchievementsClaimed,
		&m.RewardsClaimed,
		&m.RequestsFailed,
		&m.Passes,
	} {
		counter.Store(0)
	}
	m.startedAt.Store(now)
}

func (s MetricsSnapshot) rows() []table.Row {
	return []table.Row{
		{"passes", s.Passes},
		{"pets hatched", s.PetsHatched},
		{"pets merged", s.PetsMerged},
		{"missions joined", s.MissionsJoined},
		{"missions claimed", s.MissionsClaimed},
		{"achievements claimed", s.AchievementsClaimed},
		{"rewards claimed", s.RewardsClaimed},
		{"requests failed", s.RequestsFailed},
	}
}

// Render writes the snapshot as a table, with uptime relative to now.
func (s MetricsSnapshot) Render(w io.Writer, now time.Time) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Metrics")
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows(s.rows())
	tw.AppendFooter(table.Row{"uptime", formatUptime(now.Sub(s.StartedAt))})
	tw.Render()
}

// LogMetrics writes the snapshot as one info line.
func (l *Logger) LogMetrics(s MetricsSnapshot, now time.Time) {
	l.Info("metrics",
		"passes", s.Passes,
		"pets_hatched", s.PetsHatched,
		"pets_merged", s.PetsMerged,
		"missions_joined", s.MissionsJoined,
		"missions_claimed", s.MissionsClaimed,
		"achievements_claimed", s.AchievementsClaimed,
		"rewards_claimed", s.RewardsClaimed,
		"requests_failed", s.RequestsFailed,
		"uptime", formatUptime(now.Sub(s.StartedAt)),
	)
}

func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
