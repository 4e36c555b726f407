package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		minLevel   slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelInfo, slog.LevelWarn, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelError, slog.LevelWarn, true},
		{"debug with debug threshold", slog.LevelDebug, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(NewSourceHandler(base, tt.minLevel))

			l.Log(context.Background(), tt.level, "ticket assigned")

			assert.Equal(t, tt.wantSource, strings.Contains(buf.String(), "source="), buf.String())
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewSourceHandler(base, slog.LevelError)).With("ticket_id", 7).WithGroup("req")

	l.Info("status changed", "to", "IN_PROGRESS")

	out := buf.String()
	assert.Contains(t, out, "ticket_id=7")
	assert.Contains(t, out, "req.to=IN_PROGRESS")
	assert.NotContains(t, out, "source=")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestInit_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proptech.log")

	err := Init(&config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, "release")
	require.NoError(t, err)

	NewLogger().Infow("notification persisted", "recipient_id", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"notification persisted"`)
	assert.Contains(t, string(data), `"recipient_id":3`)
}
