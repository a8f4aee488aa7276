package logger

import (
	"bytes"
	"sync"
	"testing"

	"github.com/mellis0303/hhconfig/pkg/common/iface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	_ iface.Logger = (*NoopLogger)(nil)
	_ iface.Logger = (*BasicLogger)(nil)
	_ iface.Logger = (*ZapLogger)(nil)
)

func TestNoopLogger_Buffers(t *testing.T) {
	l := NewNoopLogger()

	l.Title("Networks %s", "loaded")
	l.Info("network %s", "arb")
	l.Warn("missing %s", "PRIVATE2")
	l.Error("bad %d", 1)
	l.Debug("raw %v", true)
	l.Info("\n")

	entries := l.GetEntries()
	require.Len(t, entries, 5)
	assert.Equal(t, "TITLE", entries[0].Level)
	assert.Contains(t, entries[0].Message, "Networks loaded")
	assert.Equal(t, LogEntry{Level: "INFO", Message: "network arb"}, entries[1])
	assert.Equal(t, []string{"missing PRIVATE2"}, l.GetMessagesByLevel("WARN"))

	assert.True(t, l.Contains("bad 1"))
	assert.True(t, l.ContainsLevel("DEBUG", "raw true"))
	assert.False(t, l.ContainsLevel("INFO", "raw true"))

	l.Clear()
	assert.Zero(t, l.Len())
}

func TestNoopLogger_Concurrent(t *testing.T) {
	l := NewNoopLogger()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Info("entry %d", i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, l.Len())
}

func TestBasicLogger_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, false)

	l.Info("one\ntwo")
	l.Warn("careful")
	l.Error("broken")
	l.Debug("hidden")

	assert.Equal(t, "one\ntwo\nWarning: careful\nError: broken\n", buf.String())

	buf.Reset()
	NewLoggerTo(&buf, true).Debug("shown %d", 2)
	assert.Equal(t, "Debug: shown 2\n", buf.String())
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapLoggerFrom(zap.New(core))

	l.Info("network %s", "base")
	l.Warn("")
	l.Error("failed: %v", "timeout")
	l.Debug("detail")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "network base", entries[0].Message)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "detail", entries[2].Message)
}
