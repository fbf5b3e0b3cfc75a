package extend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toakleaf/cssextend/selector"
)

func TestNewErrorUnwrapsToSentinel(t *testing.T) {
	err := newError(KindInvalidTarget, span(), "bad target %q", ".a")
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Contains(t, err.Error(), "bad target \".a\"")
}

func TestWrapAtPreservesInnerKind(t *testing.T) {
	inner := newError(KindMediaContextMismatch, selector.Span{File: "a.css", Start: 1, End: 2}, "mismatch")
	outer := wrapAt(selector.Span{File: "b.css", Start: 3, End: 4}, inner)

	assert.Equal(t, KindMediaContextMismatch, outer.Kind)
	assert.ErrorIs(t, outer, ErrMediaContextMismatch)
	assert.Same(t, inner, outer.Inner)
	assert.Contains(t, outer.Error(), "mismatch")
}

func TestWrapAtDefaultsToExtensionFailureForPlainError(t *testing.T) {
	outer := wrapAt(span(), errors.New("boom"))
	assert.Equal(t, KindExtensionFailure, outer.Kind)
	assert.ErrorIs(t, outer, ErrExtensionFailure)
}

func TestWrapAtNilReturnsNil(t *testing.T) {
	assert.Nil(t, wrapAt(span(), nil))
}

func TestProgrammerErrorPanics(t *testing.T) {
	assert.PanicsWithValue(t, "extend: programmer error: bad state: 3", func() {
		programmerError("bad state: %d", 3)
	})
}
