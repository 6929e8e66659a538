package loghive

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"DEBUG", LevelDebug},
		{"INFO", LevelInfo},
		{"WARNING", LevelWarn},
		{"ERROR", LevelError},
		{"CRITICAL", LevelCritical},
		{"debug", LevelDebug},
		{"Info", LevelInfo},
		{"critical", LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("ParseLevel(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, input := range []string{"", "BOGUS", "WARN", "TRACE", "INFO "} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLevel(input)
			if err == nil {
				t.Fatalf("ParseLevel(%q) succeeded, want error", input)
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel match", input, err)
			}
			if !strings.Contains(err.Error(), "invalid log level") {
				t.Errorf("error %q does not name the failure", err)
			}
		})
	}
}

func TestParseLevelErrorNamesValue(t *testing.T) {
	_, err := ParseLevel("BOGUS")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "BOGUS") {
		t.Errorf("error %q does not contain the offending value", err)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{Level(42), "LOG"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}
