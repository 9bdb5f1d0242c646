package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     zapcore.Level
		wantDebug bool
	}{
		{"info hides debug", zapcore.InfoLevel, false},
		{"debug shows debug", zapcore.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(tt.level, zapcore.AddSync(&buf))

			logger.Debugw("debug message", "key", "value")
			logger.Infow("info message", "rows", 3)
			logger.Sync()

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v; output %q", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "info message") {
				t.Errorf("info message missing from %q", out)
			}
			if !strings.Contains(out, `"rows": 3`) {
				t.Errorf("structured field missing from %q", out)
			}
		})
	}
}

func TestNewLoggerWithLevel(t *testing.T) {
	if NewLoggerWithLevel("warn").Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("warn logger should not enable info")
	}
	if !NewLoggerWithLevel("bogus").Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("unknown level should fall back to info")
	}
}
