package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", false)

	log.Debug().Msg("hidden")
	log.Info().Str("step", "mood").Msg("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev["service"] != "bhava" || ev["step"] != "mood" || ev["message"] != "visible" {
		t.Errorf("unexpected event: %v", ev)
	}
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", true)
	l.Debug().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") || strings.HasPrefix(out, "{") {
		t.Errorf("expected console output, got %q", out)
	}
}
