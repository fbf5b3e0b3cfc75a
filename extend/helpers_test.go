package extend

import "github.com/toakleaf/cssextend/selector"

// Shared test builders for the extend package's test files.

func cpd(simples ...selector.SimpleSelector) selector.Component {
	return selector.CompoundComponent(selector.NewCompoundSelector(simples))
}

func descendantComp() selector.Component {
	return selector.CombinatorComponent(selector.NewCombinator(selector.Descendant))
}

func complexOf(simples ...selector.SimpleSelector) *selector.ComplexSelector {
	return selector.NewComplexSelector([]selector.Component{cpd(simples...)}, false)
}

func listOf(complexes ...*selector.ComplexSelector) *selector.SelectorList {
	return selector.NewSelectorList(complexes)
}

func cls(name string) *selector.ClassSelector { return selector.NewClassSelector(name) }

func span() selector.Span { return selector.Span{File: "test.css", Start: 0, End: 1} }

// keys returns the Key() of every complex selector in list, for order-
// insensitive assertions against expected output.
func keys(list *selector.SelectorList) []string {
	out := make([]string, len(list.Complexes))
	for i, c := range list.Complexes {
		out[i] = c.Key()
	}
	return out
}
