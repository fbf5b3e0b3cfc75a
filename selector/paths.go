package selector

// Paths computes the Cartesian product of choices: one representative
// picked from each inner slice, for every combination. Used by extendComplex
// to enumerate every combination of per-position extension alternatives
// (extendCompound has its own Extender-based equivalent).
func Paths(choices [][]*ComplexSelector) [][]*ComplexSelector {
	if len(choices) == 0 {
		return nil
	}
	result := [][]*ComplexSelector{{}}
	for _, options := range choices {
		if len(options) == 0 {
			return nil
		}
		next := make([][]*ComplexSelector, 0, len(result)*len(options))
		for _, prefix := range result {
			for _, opt := range options {
				combo := make([]*ComplexSelector, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = opt
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
