package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantLevel zapcore.Level
		debugOff  bool
	}{
		{
			name:      "development debug",
			config:    Config{Level: "debug", Environment: "development", ServiceName: "gamehub"},
			wantLevel: zapcore.DebugLevel,
		},
		{
			name:      "production info",
			config:    Config{Level: "info", Environment: "production", ServiceName: "gamehub"},
			wantLevel: zapcore.InfoLevel,
			debugOff:  true,
		},
		{
			name:      "invalid level defaults to info",
			config:    Config{Level: "loud", Environment: "development", ServiceName: "gamehub"},
			wantLevel: zapcore.InfoLevel,
			debugOff:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			require.NoError(t, err)
			assert.True(t, l.zap.Core().Enabled(tt.wantLevel))
			assert.Equal(t, !tt.debugOff, l.zap.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core))

	l.Info("rating stored", zap.Uint("game_id", 3))
	require.Equal(t, 1, observed.Len())
	entry := observed.TakeAll()[0]
	assert.Equal(t, "rating stored", entry.Message)
	assert.Equal(t, uint64(3), entry.ContextMap()["game_id"])

	l.Error("query failed", errors.New("boom"))
	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "boom", observed.TakeAll()[0].ContextMap()["error"])

	l.Debug("hidden")
	assert.Equal(t, 0, observed.Len())
}

func TestWith(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core)).With(zap.String("component", "catalog"))

	l.Warn("slow query")

	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "catalog", observed.All()[0].ContextMap()["component"])
}

func TestStd(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core))

	l.Std().Printf("slow sql %d ms", 250)

	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "slow sql 250 ms", observed.All()[0].Message)
}
