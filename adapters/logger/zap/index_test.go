package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "error", want: LevelError},
		{level: "warn", want: LevelWarn},
		{level: "info", want: LevelInfo},
		{level: "debug", want: LevelDebug},
		{level: "", want: LevelWarn},
		{level: "verbose", want: LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level).Level())
		})
	}
}

func TestSt_Errorw(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	lg := Wrap(zap.New(core))

	lg.Errorw("Fail to send http-request", errors.New("boom"), "uri", "http://example.com")
	lg.Debugw("Request failed", "status_code", 503)

	require.Equal(t, 2, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, LevelError, entry.Level)
	assert.Equal(t, "boom", entry.ContextMap()["error"])
	assert.Equal(t, "http://example.com", entry.ContextMap()["uri"])

	assert.Equal(t, int64(503), logs.All()[1].ContextMap()["status_code"])
}
