package extend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopLoggerDiscardsWarnings(t *testing.T) {
	assert.NotPanics(t, func() {
		NopLogger{}.Warn("ignored", zap.String("k", "v"))
	})
}

func TestNewZapLoggerNilFallsBackToNop(t *testing.T) {
	l := NewZapLogger(nil)
	_, ok := l.(NopLogger)
	assert.True(t, ok)
}

func TestNewZapLoggerForwardsToUnderlyingLogger(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	l := NewZapLogger(zap.New(core))

	l.Warn("unmatched extension", zap.String("target", ".a"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "unmatched extension", entries[0].Message)
}
