package extend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, defaultTrimLimit, cfg.TrimLimit)
	assert.Equal(t, NopLogger{}, cfg.Logger)
}

func TestWithTrimLimitOverridesDefault(t *testing.T) {
	cfg := applyOptions([]Option{WithTrimLimit(5)})
	assert.Equal(t, 5, cfg.TrimLimit)
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	cfg := applyOptions([]Option{WithLogger(nil)})
	assert.Equal(t, NopLogger{}, cfg.Logger)
}

func TestWithLoggerOverridesDefault(t *testing.T) {
	custom := NopLogger{}
	cfg := applyOptions([]Option{WithLogger(custom)})
	assert.Equal(t, custom, cfg.Logger)
}
