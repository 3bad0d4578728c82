package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetDebug(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(false)
	assert.False(t, IsEnabled(), "debug should be disabled initially")

	SetDebug(true)
	assert.True(t, IsEnabled(), "debug should be enabled")

	SetDebug(false)
	assert.False(t, IsEnabled(), "debug should be disabled again")
}

func TestDisabledLoggerIsNop(t *testing.T) {
	SetDebug(false)
	assert.Nil(t, L().Check(zapcore.DebugLevel, "x"))
}

func TestDebugOutput(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetDebug(false) })

	Debug("test message %s", "arg")
	DebugSection("scan")
	DebugValue("root", "/tmp/x")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "test message arg", entries[0].Message)
	assert.Equal(t, "=== scan ===", entries[1].Message)
	assert.Equal(t, "root", entries[2].Message)
	assert.Equal(t, "/tmp/x", entries[2].ContextMap()["value"])
}
