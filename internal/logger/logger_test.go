package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/daniilgb/budgetwise/internal/logger"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info().Str("component", "savings").Msg("daily sweep done")

	out := buf.String()
	if !strings.Contains(out, `"message":"daily sweep done"`) {
		t.Errorf("log output missing message: %s", out)
	}
	if !strings.Contains(out, `"component":"savings"`) {
		t.Errorf("log output missing field: %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("log output missing level: %s", out)
	}
}
