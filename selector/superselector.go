package selector

// IsSuperselector reports whether a matches every element b matches (and
// possibly more): a's requirements are a structural subset of b's at every
// aligned compound, with combinator compatibility preserved. A descendant
// combinator in a matches across any gap in b; child/sibling combinators
// require an exact adjacent match. a's last compound must line up with b's
// last component.
//
// This is the same kind of documented simplification as Weave/UnifyComplex:
// compounds are matched greedily left to right, so some true relations
// where b repeats a compound are reported as false, and real CSS
// superselector checking additionally reasons about pseudo-class argument
// subsumption and several other edge cases this package does not attempt.
func (c *ComplexSelector) IsSuperselector(other *ComplexSelector) bool {
	return complexIsSuperselector(c.Components, other.Components)
}

func complexIsSuperselector(a, b []Component) bool {
	ai, bi := 0, 0
	// canSkip tracks whether the next compound comparison may advance bi
	// without consuming ai (true while searching for a descendant match;
	// also true before the very first compound, since nothing constrains
	// how many ancestors precede the first requirement).
	canSkip := true

	for ai < len(a) {
		if bi >= len(b) {
			return false
		}
		ca := a[ai]

		if ca.IsCombinator() {
			cb := b[bi]
			if !cb.IsCombinator() {
				return false
			}
			if ca.Combinator.Kind != Descendant && ca.Combinator.Kind != cb.Combinator.Kind {
				return false
			}
			canSkip = ca.Combinator.Kind == Descendant
			ai++
			bi++
			continue
		}

		cb := b[bi]
		if cb.IsCombinator() {
			bi++
			continue
		}

		if compoundSubset(ca.Compound, cb.Compound) {
			ai++
			bi++
			continue
		}

		if canSkip {
			bi++
			continue
		}
		return false
	}
	return bi == len(b)
}

// compoundSubset reports whether every simple selector in a also appears in
// b (by Key): a's requirements are implied by b's, so a matches a superset
// of what b matches.
func compoundSubset(a, b *CompoundSelector) bool {
	for _, s := range a.Components {
		if !b.Contains(s) {
			return false
		}
	}
	return true
}
