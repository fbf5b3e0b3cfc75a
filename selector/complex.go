package selector

import "strings"

// Specificity weights. Real CSS specificity is an (id, class, type) triple;
// this engine collapses it to a single comparable int, the same
// simplification the distilled spec's min/max specificity contract assumes.
const (
	specID    = 1_000_000
	specClass = 1_000
	specType  = 1
)

// simpleSpecificity covers every simple selector kind except PseudoSelector,
// whose specificity varies with its (possibly absent) inner selector list
// and so is handled separately by pseudoMinSpecificity/pseudoMaxSpecificity.
func simpleSpecificity(s SimpleSelector) int {
	switch v := s.(type) {
	case *IDSelector:
		return specID
	case *ClassSelector, *AttributeSelector, *PlaceholderSelector:
		return specClass
	case *TypeSelector:
		if v.IsUniversal() {
			return 0
		}
		return specType
	default:
		return 0
	}
}

func pseudoMinSpecificity(s *PseudoSelector) int {
	if s.Selector == nil {
		return specClass
	}
	return specClass + s.Selector.MinSpecificity()
}

func pseudoMaxSpecificity(s *PseudoSelector) int {
	if s.Selector == nil {
		return specClass
	}
	return specClass + s.Selector.MaxSpecificity()
}

func simpleMinSpecificity(s SimpleSelector) int {
	if p, ok := s.(*PseudoSelector); ok {
		return pseudoMinSpecificity(p)
	}
	return simpleSpecificity(s)
}

func simpleMaxSpecificity(s SimpleSelector) int {
	if p, ok := s.(*PseudoSelector); ok {
		return pseudoMaxSpecificity(p)
	}
	return simpleSpecificity(s)
}

func compoundMinSpecificity(c *CompoundSelector) int {
	total := 0
	for _, s := range c.Components {
		total += simpleMinSpecificity(s)
	}
	return total
}

func compoundMaxSpecificity(c *CompoundSelector) int {
	total := 0
	for _, s := range c.Components {
		total += simpleMaxSpecificity(s)
	}
	return total
}

// Component is either a CompoundSelector or a Combinator, never both. This
// realizes ComplexSelectorComponent as a tagged struct rather than an
// interface, since the extend/weave/unify algorithms need to branch on which
// case holds far more often than they need polymorphic dispatch.
type Component struct {
	Compound   *CompoundSelector
	Combinator *Combinator
}

func CompoundComponent(c *CompoundSelector) Component { return Component{Compound: c} }
func CombinatorComponent(c Combinator) Component       { return Component{Combinator: &c} }

func (c Component) IsCombinator() bool { return c.Combinator != nil }

func (c Component) Key() string {
	if c.Combinator != nil {
		return c.Combinator.String()
	}
	return c.Compound.Key()
}

// ComplexSelector is an ordered sequence of components (compounds separated
// by combinators) plus a line-break hint carried through from the source
// formatting.
type ComplexSelector struct {
	id         ID
	Components []Component
	LineBreak  bool
}

func NewComplexSelector(components []Component, lineBreak bool) *ComplexSelector {
	return &ComplexSelector{id: newID(), Components: components, LineBreak: lineBreak}
}

func (c *ComplexSelector) ID() ID { return c.id }

func (c *ComplexSelector) Key() string {
	var b strings.Builder
	for i, comp := range c.Components {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(comp.Key())
	}
	return b.String()
}

// Compounds returns just the compound components, in order, skipping
// combinators. Used by the extend store to register every simple selector a
// complex selector mentions, and by trim's source-specificity lookup.
func (c *ComplexSelector) Compounds() []*CompoundSelector {
	out := make([]*CompoundSelector, 0, len(c.Components))
	for _, comp := range c.Components {
		if comp.Compound != nil {
			out = append(out, comp.Compound)
		}
	}
	return out
}

// EachSimple calls fn for every simple selector contained in c, recursing
// into pseudo-selector inner selector lists.
func (c *ComplexSelector) EachSimple(fn func(SimpleSelector)) {
	for _, compound := range c.Compounds() {
		for _, s := range compound.Components {
			fn(s)
			if p, ok := s.(*PseudoSelector); ok && p.Selector != nil {
				p.Selector.EachSimple(fn)
			}
		}
	}
}

// IsInvisible reports whether c can never render anything: either it has no
// components at all, or a placeholder selector (%foo) appears anywhere in
// it, including nested inside a pseudo-selector argument. A placeholder
// that was never matched by an @extend renders nothing, and neither does
// any compound it's part of.
func (c *ComplexSelector) IsInvisible() bool {
	if len(c.Components) == 0 {
		return true
	}
	invisible := false
	c.EachSimple(func(s SimpleSelector) {
		if _, ok := s.(*PlaceholderSelector); ok {
			invisible = true
		}
	})
	return invisible
}

// Contains reports whether s (by Key) appears anywhere in c, including
// nested inside pseudo-selector arguments.
func (c *ComplexSelector) Contains(s SimpleSelector) bool {
	key := s.Key()
	found := false
	c.EachSimple(func(candidate SimpleSelector) {
		if candidate.Key() == key {
			found = true
		}
	})
	return found
}

func (c *ComplexSelector) MinSpecificity() int {
	total := 0
	for _, compound := range c.Compounds() {
		total += compoundMinSpecificity(compound)
	}
	return total
}

func (c *ComplexSelector) MaxSpecificity() int {
	total := 0
	for _, compound := range c.Compounds() {
		total += compoundMaxSpecificity(compound)
	}
	return total
}

// WithLineBreak returns a copy of c with LineBreak forced to true when set,
// otherwise c itself (avoids an allocation in the common unchanged case).
func (c *ComplexSelector) WithLineBreak(lineBreak bool) *ComplexSelector {
	if !lineBreak || c.LineBreak {
		return c
	}
	return NewComplexSelector(c.Components, true)
}
