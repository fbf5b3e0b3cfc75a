package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func compound(simples ...SimpleSelector) Component {
	return CompoundComponent(NewCompoundSelector(simples))
}

func descendant() Component {
	return CombinatorComponent(NewCombinator(Descendant))
}

func child() Component {
	return CombinatorComponent(NewCombinator(Child))
}

func TestComplexSelectorKey(t *testing.T) {
	c := NewComplexSelector([]Component{
		compound(NewClassSelector("a")),
		child(),
		compound(NewClassSelector("b")),
	}, false)
	assert.Equal(t, ".a > .b", c.Key())
}

func TestComplexSelectorCompoundsSkipsCombinators(t *testing.T) {
	c := NewComplexSelector([]Component{
		compound(NewClassSelector("a")),
		descendant(),
		compound(NewClassSelector("b")),
	}, false)
	assert.Len(t, c.Compounds(), 2)
}

func TestComplexSelectorEachSimpleRecursesIntoPseudo(t *testing.T) {
	inner := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{compound(NewClassSelector("inner"))}, false),
	})
	pseudo := NewPseudoSelector("not", true, "", inner)
	c := NewComplexSelector([]Component{compound(NewClassSelector("outer"), pseudo)}, false)

	var seen []string
	c.EachSimple(func(s SimpleSelector) { seen = append(seen, s.Key()) })
	assert.ElementsMatch(t, []string{".outer", ":not(.inner)", ".inner"}, seen)
}

func TestComplexSelectorContains(t *testing.T) {
	c := NewComplexSelector([]Component{compound(NewClassSelector("a"), NewIDSelector("x"))}, false)
	assert.True(t, c.Contains(NewIDSelector("x")))
	assert.False(t, c.Contains(NewIDSelector("y")))
}

func TestSpecificityOrdering(t *testing.T) {
	idSel := NewComplexSelector([]Component{compound(NewIDSelector("x"))}, false)
	classSel := NewComplexSelector([]Component{compound(NewClassSelector("x"))}, false)
	typeSel := NewComplexSelector([]Component{compound(NewTypeSelector("", "div"))}, false)
	universalSel := NewComplexSelector([]Component{compound(NewTypeSelector("", "*"))}, false)

	assert.Greater(t, idSel.MinSpecificity(), classSel.MinSpecificity())
	assert.Greater(t, classSel.MinSpecificity(), typeSel.MinSpecificity())
	assert.Equal(t, 0, universalSel.MinSpecificity())
}

func TestPseudoSpecificityFollowsInnerSelector(t *testing.T) {
	loSpec := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{compound(NewTypeSelector("", "div"))}, false),
	})
	hiSpec := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{compound(NewIDSelector("x"))}, false),
	})

	lo := NewPseudoSelector("is", true, "", loSpec)
	hi := NewPseudoSelector("is", true, "", hiSpec)

	loComplex := NewComplexSelector([]Component{compound(lo)}, false)
	hiComplex := NewComplexSelector([]Component{compound(hi)}, false)

	assert.Greater(t, hiComplex.MaxSpecificity(), loComplex.MaxSpecificity())
}

func TestWithLineBreakAvoidsAllocationWhenUnchanged(t *testing.T) {
	c := NewComplexSelector([]Component{compound(NewClassSelector("a"))}, true)
	assert.Same(t, c, c.WithLineBreak(true))
	assert.Same(t, c, c.WithLineBreak(false))

	c2 := NewComplexSelector([]Component{compound(NewClassSelector("a"))}, false)
	assert.NotSame(t, c2, c2.WithLineBreak(true))
}
