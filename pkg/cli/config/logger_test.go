package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestLoggerConfigure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "case insensitive", level: "DEBUG"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "ERROR"},
		{name: "unknown level", level: "verbose", wantErr: true},
		{name: "empty", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Logger{Level: tt.level}
			logger, err := cfg.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.NotNil(t, logger)
		})
	}
}

func TestLoggerConfigure_JSON(t *testing.T) {
	for _, json := range []bool{true, false} {
		cfg := &Logger{Level: "info", JSON: json}
		logger := gt.R1(cfg.Configure()).NoError(t)
		logger.Info("format check", "json", json)
	}
}

func TestLogRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: logRedactor(),
	}))

	logger.Info("configured integrations",
		"github", GitHub{Token: "ghp_supersecret", WallsOwner: "contri-buzz"},
		"smtp", SMTP{Host: "smtp.example.com", Pass: "hunter2"},
	)

	out := buf.String()

	// non-secret fields pass through untouched
	gt.True(t, strings.Contains(out, "contri-buzz"))
	gt.True(t, strings.Contains(out, "smtp.example.com"))

	// token and password fields are masked before the handler sees them
	gt.False(t, strings.Contains(out, "ghp_supersecret"))
	gt.False(t, strings.Contains(out, "hunter2"))
	gt.True(t, strings.Contains(out, "[REDACTED]"))
}

func TestLoggerFlags(t *testing.T) {
	cfg := &Logger{}
	flags := cfg.Flags()
	gt.Number(t, len(flags)).Equal(2)

	names := map[string]bool{}
	for _, flag := range flags {
		for _, n := range flag.Names() {
			names[n] = true
		}
	}
	gt.True(t, names["log-level"])
	gt.True(t, names["log-json"])
}
