package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"err", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q)=%v want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitAndL(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	if L() == nil {
		t.Fatalf("expected logger")
	}
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}
}

func TestL_NeverNil(t *testing.T) {
	base = zerolog.Logger{}
	t.Setenv("LOG_LEVEL", "info")
	if L() == nil {
		t.Fatalf("expected a usable logger")
	}
	// Logging through an uninitialized logger must not panic.
	L().Info().Msg("probe")
}

func TestInitPretty(t *testing.T) {
	t.Setenv("LOG_PRETTY", "true")
	Init()
	if L() == nil {
		t.Fatalf("expected logger with pretty writer")
	}
}
