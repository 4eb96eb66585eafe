package debug

import (
	"context"
	"log/slog"
	"testing"
)

func TestEnabled_TruthyValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"banana", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv(EnvVar, tt.value)
			if got := Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v with %s=%q", got, EnvVar, tt.value)
			}
		})
	}
}

func TestNewLogger_VerboseEnablesDebugLevel(t *testing.T) {
	t.Setenv(EnvVar, "")

	quiet := NewLogger(false)
	if quiet.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("non-verbose logger accepts debug records")
	}

	verbose := NewLogger(true)
	if !verbose.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger rejects debug records")
	}
}

func TestNewLogger_EnvSwitchEnablesDebugLevel(t *testing.T) {
	t.Setenv(EnvVar, "1")
	logger := NewLogger(false)
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("env switch did not enable debug level")
	}
}
