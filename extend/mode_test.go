package extend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeIncludesSelf(t *testing.T) {
	assert.True(t, ModeNormal.includesSelf())
	assert.True(t, ModeAllTargets.includesSelf())
	assert.False(t, ModeReplace.includesSelf())
}

func TestModeRequiresAllTargets(t *testing.T) {
	assert.False(t, ModeNormal.requiresAllTargets())
	assert.True(t, ModeAllTargets.requiresAllTargets())
	assert.True(t, ModeReplace.requiresAllTargets())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "all-targets", ModeAllTargets.String())
	assert.Equal(t, "replace", ModeReplace.String())
}
