package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewLogger("bot", level).AddOutput(buf, false).SetClock(func() time.Time { return fixedNow })
	return logger, buf
}

func TestLoggerFormatsLine(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(LevelDebug)
	logger.Info("joined mission", "mission_id", 12, "pets", 3)

	assert.Equal(t, "[2026-03-01 09:30:00] INFO [bot] joined mission | mission_id=12 pets=3\n", buf.String())
}

func TestLoggerIncludesErrorAndBadKey(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(LevelDebug)
	logger.Error("claim failed", errors.New("status 500"), "orphan")

	assert.Equal(t, "[2026-03-01 09:30:00] ERROR [bot] claim failed | error=status 500 !BADKEY=orphan\n", buf.String())
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(LevelWarn)
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.Equal(t, "[2026-03-01 09:30:00] WARN [bot] shown\n", buf.String())
	assert.False(t, logger.Enabled(LevelInfo))
	assert.True(t, logger.Enabled(LevelFatal))
}

func TestLoggerWithSharesOutputs(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(LevelInfo)
	logger.With("client").Warn("retrying")

	assert.Contains(t, buf.String(), "WARN [client] retrying")
}

func TestLoggerColoredOutputOnlyTagsLevel(t *testing.T) {
	t.Parallel()

	plain := &bytes.Buffer{}
	colored := &bytes.Buffer{}
	logger := NewLogger("bot", LevelInfo).AddOutput(plain, false).AddOutput(colored, true)
	logger.Warn("careful")

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "[bot] careful")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{raw: "debug", want: LevelDebug},
		{raw: "", want: LevelInfo},
		{raw: " WARN ", want: LevelWarn},
		{raw: "warning", want: LevelWarn},
		{raw: "error", want: LevelError},
		{raw: "critical", want: LevelFatal},
		{raw: "loud", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLevel(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "animix.log")
	for i := 0; i < 2; i++ {
		file, err := OpenFile(path)
		require.NoError(t, err)
		NewLogger("bot", LevelInfo).AddOutput(file, false).Info("line")
		require.NoError(t, file.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte("[bot] line")))
}

func TestDiscardWritesNothing(t *testing.T) {
	t.Parallel()

	logger := Discard()
	logger.Fatal("ignored", errors.New("boom"))
	assert.False(t, logger.Enabled(LevelFatal))
}
