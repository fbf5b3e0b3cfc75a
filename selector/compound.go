package selector

import "strings"

// CompoundSelector is an ordered, non-empty sequence of simple selectors
// that together describe requirements on a single element (e.g. "a.b#c").
type CompoundSelector struct {
	Components []SimpleSelector
}

func NewCompoundSelector(components []SimpleSelector) *CompoundSelector {
	return &CompoundSelector{Components: components}
}

func (c *CompoundSelector) Key() string {
	var b strings.Builder
	for _, s := range c.Components {
		b.WriteString(s.Key())
	}
	return b.String()
}

// Contains reports whether s appears (by Key) among c's components.
func (c *CompoundSelector) Contains(s SimpleSelector) bool {
	key := s.Key()
	for _, existing := range c.Components {
		if existing.Key() == key {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy of c with a fresh backing slice; the
// component SimpleSelector values themselves are immutable and shared.
func (c *CompoundSelector) Clone() *CompoundSelector {
	cp := make([]SimpleSelector, len(c.Components))
	copy(cp, c.Components)
	return &CompoundSelector{Components: cp}
}
