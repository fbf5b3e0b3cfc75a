package selector

import "strings"

// SelectorList is an ordered, comma-separated sequence of complex selectors,
// e.g. "a.b, c.d" or the argument of a selector-taking pseudo like :is().
type SelectorList struct {
	Complexes []*ComplexSelector
}

func NewSelectorList(complexes []*ComplexSelector) *SelectorList {
	return &SelectorList{Complexes: complexes}
}

func (l *SelectorList) Key() string {
	parts := make([]string, len(l.Complexes))
	for i, c := range l.Complexes {
		parts[i] = c.Key()
	}
	return strings.Join(parts, ", ")
}

// IsInvisible reports whether every complex in the list renders nothing:
// each is either empty or mentions a placeholder selector (%foo) that was
// never matched by an @extend, per ComplexSelector.IsInvisible. An empty
// list itself is also invisible.
func (l *SelectorList) IsInvisible() bool {
	for _, c := range l.Complexes {
		if !c.IsInvisible() {
			return false
		}
	}
	return true
}

func (l *SelectorList) EachSimple(fn func(SimpleSelector)) {
	for _, c := range l.Complexes {
		c.EachSimple(fn)
	}
}

func (l *SelectorList) MinSpecificity() int {
	if len(l.Complexes) == 0 {
		return 0
	}
	min := l.Complexes[0].MinSpecificity()
	for _, c := range l.Complexes[1:] {
		if s := c.MinSpecificity(); s < min {
			min = s
		}
	}
	return min
}

func (l *SelectorList) MaxSpecificity() int {
	max := 0
	for _, c := range l.Complexes {
		if s := c.MaxSpecificity(); s > max {
			max = s
		}
	}
	return max
}

// Equal reports structural equality (same complexes, in order, by Key()).
func (l *SelectorList) Equal(other *SelectorList) bool {
	if other == nil {
		return false
	}
	if len(l.Complexes) != len(other.Complexes) {
		return false
	}
	for i, c := range l.Complexes {
		if c.Key() != other.Complexes[i].Key() {
			return false
		}
	}
	return true
}
