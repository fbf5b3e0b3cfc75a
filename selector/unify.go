package selector

// unifyCompound merges the simple-selector requirements of two compounds
// into one, failing when they carry incompatible id or type requirements
// (a compound cannot require two different ids, or two different
// non-universal type names, at once).
func unifyCompound(a, b []SimpleSelector) ([]SimpleSelector, bool) {
	result := append([]SimpleSelector{}, a...)
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s.Key()] = true
	}

	for _, s := range b {
		if seen[s.Key()] {
			continue
		}
		if ts, ok := s.(*TypeSelector); ok && !ts.IsUniversal() {
			if conflictsOnType(result, ts) {
				return nil, false
			}
		}
		if ids, ok := s.(*IDSelector); ok {
			if conflictsOnID(result, ids) {
				return nil, false
			}
		}
		result = append(result, s)
		seen[s.Key()] = true
	}
	return result, true
}

func conflictsOnType(existing []SimpleSelector, candidate *TypeSelector) bool {
	for _, s := range existing {
		if ts, ok := s.(*TypeSelector); ok && !ts.IsUniversal() && ts.Key() != candidate.Key() {
			return true
		}
	}
	return false
}

func conflictsOnID(existing []SimpleSelector, candidate *IDSelector) bool {
	for _, s := range existing {
		if ids, ok := s.(*IDSelector); ok && ids.Key() != candidate.Key() {
			return true
		}
	}
	return false
}

// UnifyComplex merges N component sequences that must all match the same
// target element into a single combined sequence. The rightmost (key)
// compound of every sequence is unified via unifyCompound; the remaining
// ancestor components of each sequence are combined with Weave. Returns
// ok=false when any step is incompatible (e.g. conflicting ids/types at the
// key compound, or Weave finding no valid interleaving).
//
// This mirrors the shape of the reference algorithm (unify the key
// selectors, weave the ancestor chains) but, like Weave, does not perform
// the full CSS combinator-adjacency validation a production implementation
// would.
func UnifyComplex(sequences [][]Component) ([]Component, bool) {
	if len(sequences) == 0 {
		return nil, false
	}
	if len(sequences) == 1 {
		return sequences[0], true
	}

	ancestors := make([][]Component, len(sequences))
	var unifiedBase []SimpleSelector
	for i, seq := range sequences {
		if len(seq) == 0 {
			return nil, false
		}
		last := seq[len(seq)-1]
		if last.Compound == nil {
			return nil, false
		}
		if unifiedBase == nil {
			unifiedBase = last.Compound.Components
		} else {
			merged, ok := unifyCompound(unifiedBase, last.Compound.Components)
			if !ok {
				return nil, false
			}
			unifiedBase = merged
		}
		ancestors[i] = seq[:len(seq)-1]
	}

	woven := ancestors[0]
	for _, anc := range ancestors[1:] {
		options := Weave(woven, anc)
		if len(options) == 0 {
			return nil, false
		}
		woven = options[0]
	}

	result := make([]Component, 0, len(woven)+1)
	result = append(result, woven...)
	result = append(result, CompoundComponent(NewCompoundSelector(unifiedBase)))
	return result, true
}
