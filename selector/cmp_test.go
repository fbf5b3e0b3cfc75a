package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// selectorDiffOpts compares selector trees structurally by Key(), ignoring
// the per-construction identity tokens that make two independently-built
// selectors with identical text otherwise incomparable by go-cmp's default
// (unexported-field-panicking) behavior.
var selectorDiffOpts = cmp.Options{
	cmp.Comparer(func(a, b SimpleSelector) bool { return a.Key() == b.Key() }),
	cmp.Comparer(func(a, b *ComplexSelector) bool { return a.Key() == b.Key() }),
}

func TestSelectorListStructuralEquivalenceViaCmp(t *testing.T) {
	a := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{compound(NewClassSelector("a"), NewClassSelector("b"))}, false),
	})
	b := NewSelectorList([]*ComplexSelector{
		NewComplexSelector([]Component{compound(NewClassSelector("a"), NewClassSelector("b"))}, false),
	})

	if diff := cmp.Diff(a, b, selectorDiffOpts); diff != "" {
		t.Errorf("structurally equivalent lists differ (-a +b):\n%s", diff)
	}
}

func TestSelectorListStructuralDifferenceViaCmp(t *testing.T) {
	a := NewSelectorList([]*ComplexSelector{complexOf("a")})
	b := NewSelectorList([]*ComplexSelector{complexOf("b")})

	if diff := cmp.Diff(a, b, selectorDiffOpts); diff == "" {
		t.Error("expected a diff between .a and .b selector lists, got none")
	}
}
