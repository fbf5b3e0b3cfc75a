package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuperselectorSameCompound(t *testing.T) {
	a := NewComplexSelector([]Component{compound(NewClassSelector("a"))}, false)
	b := NewComplexSelector([]Component{compound(NewClassSelector("a"), NewClassSelector("b"))}, false)
	assert.True(t, a.IsSuperselector(b), ".a should be a superselector of .a.b")
	assert.False(t, b.IsSuperselector(a), ".a.b should not be a superselector of .a")
}

func TestIsSuperselectorDescendantSkipsGap(t *testing.T) {
	// ".a .c" is a superselector of ".a .b .c" — the descendant combinator
	// may match across any number of intervening ancestors.
	a := NewComplexSelector([]Component{
		compound(NewClassSelector("a")), descendant(), compound(NewClassSelector("c")),
	}, false)
	b := NewComplexSelector([]Component{
		compound(NewClassSelector("a")), descendant(), compound(NewClassSelector("b")), descendant(), compound(NewClassSelector("c")),
	}, false)
	assert.True(t, a.IsSuperselector(b))
}

func TestIsSuperselectorChildRequiresExactAdjacency(t *testing.T) {
	a := NewComplexSelector([]Component{
		compound(NewClassSelector("a")), child(), compound(NewClassSelector("c")),
	}, false)
	b := NewComplexSelector([]Component{
		compound(NewClassSelector("a")), descendant(), compound(NewClassSelector("b")), child(), compound(NewClassSelector("c")),
	}, false)
	assert.False(t, a.IsSuperselector(b))
}

func TestIsSuperselectorIdentical(t *testing.T) {
	a := NewComplexSelector([]Component{compound(NewClassSelector("a"))}, false)
	assert.True(t, a.IsSuperselector(a))
}

func TestIsSuperselectorUnrelated(t *testing.T) {
	a := NewComplexSelector([]Component{compound(NewClassSelector("a"))}, false)
	b := NewComplexSelector([]Component{compound(NewClassSelector("z"))}, false)
	assert.False(t, a.IsSuperselector(b))
}
