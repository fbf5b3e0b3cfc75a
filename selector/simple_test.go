package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleSelectorKeys(t *testing.T) {
	cases := []struct {
		name string
		s    SimpleSelector
		want string
	}{
		{"type", NewTypeSelector("", "div"), "div"},
		{"namespaced type", NewTypeSelector("svg", "a"), "svg|a"},
		{"universal", NewTypeSelector("", "*"), "*"},
		{"class", NewClassSelector("btn"), ".btn"},
		{"id", NewIDSelector("main"), "#main"},
		{"placeholder", NewPlaceholderSelector("base"), "%base"},
		{"attribute presence", NewAttributeSelector("", "disabled", "", "", ""), "[disabled]"},
		{"attribute match", NewAttributeSelector("", "data-x", "=", "y", "i"), `[data-x="y" i]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Key())
		})
	}
}

func TestTypeSelectorIsUniversal(t *testing.T) {
	assert.True(t, NewTypeSelector("", "*").IsUniversal())
	assert.False(t, NewTypeSelector("", "div").IsUniversal())
}

func TestPlaceholderPrivacy(t *testing.T) {
	assert.True(t, NewPlaceholderSelector("-secret").Private)
	assert.True(t, NewPlaceholderSelector("_secret").Private)
	assert.False(t, NewPlaceholderSelector("public").Private)
}

func TestSimpleSelectorIDsAreDistinctPerConstruction(t *testing.T) {
	a := NewClassSelector("x")
	b := NewClassSelector("x")
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestPseudoSelectorKeyWithArgument(t *testing.T) {
	p := NewPseudoSelector("nth-child", true, "2n+1", nil)
	assert.Equal(t, ":nth-child(2n+1)", p.Key())
	assert.False(t, p.HasSelector())
}

func TestPseudoSelectorKeyWithInnerSelector(t *testing.T) {
	inner := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{CompoundComponent(NewCompoundSelector([]SimpleSelector{NewClassSelector("a")}))}, false),
	})
	p := NewPseudoSelector("not", true, "", inner)
	require.True(t, p.HasSelector())
	assert.Equal(t, ":not(.a)", p.Key())
}

func TestPseudoSelectorElementMarker(t *testing.T) {
	p := NewPseudoSelector("before", false, "", nil)
	assert.Equal(t, "::before", p.Key())
}

func TestPseudoSelectorNormalizedName(t *testing.T) {
	p := NewPseudoSelector("NOT", true, "", nil)
	assert.Equal(t, "not", p.NormalizedName())
}

func TestPseudoSelectorWithSelectorPreservesFields(t *testing.T) {
	p := NewPseudoSelector("is", true, "", nil)
	inner := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{CompoundComponent(NewCompoundSelector([]SimpleSelector{NewClassSelector("b")}))}, false),
	})
	rewritten := p.WithSelector(inner)
	assert.Equal(t, p.Name, rewritten.Name)
	assert.Equal(t, p.IsClass, rewritten.IsClass)
	assert.Same(t, inner, rewritten.Selector)
	assert.NotEqual(t, p.ID(), rewritten.ID())
}
