package extend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/cssextend/selector"
)

// not(.a) extended by ".b" against target ".a" must produce two separate
// ":not()" alternatives, ":not(.a)" and ":not(.b)", never a single
// ":not(.a):not(.b)" compound: each rewritten variant resolves the same
// pseudo slot, so they're OR'd alternatives, not ANDed compound positions.
func TestNotPseudoExtensionProducesSeparateAlternatives(t *testing.T) {
	notA := selector.NewPseudoSelector("not", true, "", listOf(complexOf(cls("a"))))
	sel := listOf(complexOf(notA))
	source := listOf(complexOf(cls("b")))
	target := listOf(complexOf(cls("a")))

	result, err := Extend(sel, source, target, span())
	require.NoError(t, err)

	got := keys(result)
	assert.Contains(t, got, ":not(.a)")
	assert.Contains(t, got, ":not(.b)")
	for _, k := range got {
		assert.NotEqual(t, ":not(.a):not(.b)", k)
		assert.NotEqual(t, ":not(.a, .b)", k)
	}
}

// :is(.a) extended by ".b" inlines into a single ":is(.a, .b)" pseudo since
// :is() accepts a selector list natively, unlike :not() with one argument.
func TestIsPseudoExtensionKeepsSingleSelectorList(t *testing.T) {
	isA := selector.NewPseudoSelector("is", true, "", listOf(complexOf(cls("a"))))
	sel := listOf(complexOf(isA))
	source := listOf(complexOf(cls("b")))
	target := listOf(complexOf(cls("a")))

	result, err := Extend(sel, source, target, span())
	require.NoError(t, err)

	got := keys(result)
	assert.Contains(t, got, ":is(.a, .b)")
}
