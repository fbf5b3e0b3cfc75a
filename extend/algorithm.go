package extend

import "github.com/toakleaf/cssextend/selector"

// extendList is the list-level entry point of the extension algorithm
// (ExtendList in the design notes): extend every complex selector in list
// independently, then trim the combined result. Complexes that extendComplex
// reports as unchanged are passed through untouched (and are not subject to
// trim's dedup/dominance pruning against each other beyond what trim already
// does for the whole output).
func (s *ExtensionStore) extendList(list *selector.SelectorList, span selector.Span, extensions *orderedMap[*orderedMap[Extension]], media selector.MediaContext) (*selector.SelectorList, error) {
	var result []*selector.ComplexSelector
	anyChanged := false

	for _, complex := range list.Complexes {
		extended, changed, err := s.extendComplex(complex, span, extensions, media)
		if err != nil {
			return nil, err
		}
		if !changed {
			result = append(result, complex)
			continue
		}
		anyChanged = true
		result = append(result, extended...)
	}

	if !anyChanged {
		return list, nil
	}

	trimmed := s.trim(result, func(c *selector.ComplexSelector) bool { return s.originals[c.ID()] })
	return selector.NewSelectorList(trimmed), nil
}

// extendComplex extends one complex selector. Each compound component is
// extended independently; combinators pass through as single-alternative
// positions. The Cartesian product of per-position alternatives is then
// woven back together, component sequence by component sequence, into the
// final set of complex selectors.
func (s *ExtensionStore) extendComplex(complex *selector.ComplexSelector, span selector.Span, extensions *orderedMap[*orderedMap[Extension]], media selector.MediaContext) ([]*selector.ComplexSelector, bool, error) {
	inOriginal := s.originals[complex.ID()]
	perPosition := make([][]*selector.ComplexSelector, len(complex.Components))
	anyChanged := false

	for i, comp := range complex.Components {
		if comp.Compound == nil {
			perPosition[i] = []*selector.ComplexSelector{selector.NewComplexSelector([]selector.Component{comp}, false)}
			continue
		}

		extended, changed, err := s.extendCompound(comp.Compound, span, extensions, media, inOriginal)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			perPosition[i] = []*selector.ComplexSelector{selector.NewComplexSelector([]selector.Component{comp}, false)}
			continue
		}
		anyChanged = true
		perPosition[i] = extended
	}

	if !anyChanged {
		return nil, false, nil
	}

	var out []*selector.ComplexSelector
	for _, combo := range selector.Paths(perPosition) {
		seqs := make([][]selector.Component, len(combo))
		lineBreak := complex.LineBreak
		for i, alt := range combo {
			seqs[i] = alt.Components
			if alt.LineBreak {
				lineBreak = true
			}
		}
		for _, woven := range weaveSequence(seqs) {
			out = append(out, selector.NewComplexSelector(woven, lineBreak))
		}
	}

	// First law of extend: a complex selector produced from an original
	// always matches what the original matched, which the store enforces by
	// treating it as original too (propagated to only the first of the
	// produced alternatives, mirroring the self-extender always occupying
	// position zero in extendCompound's output).
	if len(out) > 0 && inOriginal {
		s.originals[out[0].ID()] = true
	}

	return out, true, nil
}

// weaveSequence combines N component sequences in order: for each sequence
// after the first, its ancestor components are woven into every prefix built
// so far (Weave), and its last component is then appended to each result.
func weaveSequence(seqs [][]selector.Component) [][]selector.Component {
	if len(seqs) == 0 {
		return nil
	}
	results := [][]selector.Component{seqs[0]}
	for _, next := range seqs[1:] {
		if len(next) == 0 {
			continue
		}
		last := next[len(next)-1]
		var merged [][]selector.Component
		for _, prefix := range results {
			for _, woven := range selector.Weave(prefix, next[:len(next)-1]) {
				merged = append(merged, append(woven, last))
			}
		}
		results = merged
	}
	return results
}

// extendCompound extends a single compound selector. Each of its simple
// selectors independently contributes a set of Extender alternatives
// (extendSimple); the Cartesian product of those alternatives is then
// unified back into compounds. inOriginal gates whether the first
// alternative (the all-self-extenders path) is marked original for trim's
// first-law exemption.
func (s *ExtensionStore) extendCompound(compound *selector.CompoundSelector, span selector.Span, extensions *orderedMap[*orderedMap[Extension]], media selector.MediaContext, inOriginal bool) ([]*selector.ComplexSelector, bool, error) {
	multiTarget := s.mode.requiresAllTargets() && extensions.Len() > 1
	var targetsUsed map[string]bool
	if multiTarget {
		targetsUsed = map[string]bool{}
	}

	options := make([][]Extender, 0, len(compound.Components))
	anyMatched := false

	for _, simple := range compound.Components {
		alts, changed, err := s.extendSimple(simple, span, extensions, targetsUsed)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			options = append(options, []Extender{selfExtender(simple, span)})
			continue
		}
		anyMatched = true
		options = append(options, alts...)
	}

	if !anyMatched {
		return nil, false, nil
	}

	if multiTarget {
		allUsed := true
		for _, key := range extensions.keys {
			if !targetsUsed[key] {
				allUsed = false
				break
			}
		}
		if !allUsed {
			return nil, false, nil
		}
	}

	var out []*selector.ComplexSelector
	combos := cartesianExtenders(options)
	for pi, combo := range combos {
		for _, ext := range combo {
			if err := ext.AssertCompatibleMediaContext(media); err != nil {
				return nil, false, err
			}
		}

		if pi == 0 && s.mode.includesSelf() {
			simples := make([]selector.SimpleSelector, 0, len(combo))
			lineBreak := false
			for _, ext := range combo {
				if last := lastCompound(ext.Selector); last != nil {
					simples = append(simples, last.Components...)
				}
				if ext.Selector.LineBreak {
					lineBreak = true
				}
			}
			out = append(out, selector.NewComplexSelector([]selector.Component{
				selector.CompoundComponent(selector.NewCompoundSelector(simples)),
			}, lineBreak))
			putExtenderSlice(combo)
			continue
		}

		var originalSimples []selector.SimpleSelector
		var queue [][]selector.Component
		lineBreak := false
		for _, ext := range combo {
			if ext.Selector.LineBreak {
				lineBreak = true
			}
			if ext.Original {
				if last := lastCompound(ext.Selector); last != nil {
					originalSimples = append(originalSimples, last.Components...)
				}
				continue
			}
			queue = append(queue, ext.Selector.Components)
		}
		if len(originalSimples) > 0 {
			head := []selector.Component{selector.CompoundComponent(selector.NewCompoundSelector(originalSimples))}
			queue = append([][]selector.Component{head}, queue...)
		}

		unified, ok := selector.UnifyComplex(queue)
		if ok {
			out = append(out, selector.NewComplexSelector(unified, lineBreak))
		}
		putExtenderSlice(combo)
	}

	if len(out) == 0 {
		return nil, false, nil
	}

	first := firstAlternativePredicate(out, inOriginal && s.mode != ModeReplace)
	trimmed := s.trim(out, first)
	return trimmed, true, nil
}

func firstAlternativePredicate(out []*selector.ComplexSelector, cond bool) func(*selector.ComplexSelector) bool {
	if !cond || len(out) == 0 {
		return func(*selector.ComplexSelector) bool { return false }
	}
	first := out[0]
	return func(c *selector.ComplexSelector) bool { return c == first }
}

func lastCompound(c *selector.ComplexSelector) *selector.CompoundSelector {
	for i := len(c.Components) - 1; i >= 0; i-- {
		if c.Components[i].Compound != nil {
			return c.Components[i].Compound
		}
	}
	return nil
}

func cartesianExtenders(options [][]Extender) [][]Extender {
	result := [][]Extender{{}}
	for _, opts := range options {
		next := make([][]Extender, 0, len(result)*len(opts))
		for _, prefix := range result {
			for _, o := range opts {
				combo := getExtenderSlice()
				combo = append(combo, prefix...)
				combo = append(combo, o)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

func selfExtender(simple selector.SimpleSelector, span selector.Span) Extender {
	compound := selector.NewCompoundSelector([]selector.SimpleSelector{simple})
	complex := selector.NewComplexSelector([]selector.Component{selector.CompoundComponent(compound)}, false)
	return NewExtender(complex, span, true)
}

// extendSimple returns, for one simple selector, the set of Extender
// alternatives it contributes: a self-extender (unless the mode suppresses
// it) plus one alternative per registered extension targeting it. A
// selector-bearing pseudo (":not(...)" etc.) is first rewritten by
// extendPseudo, whose results are then re-run through the same
// target-lookup (withoutPseudo) as any other simple selector.
func (s *ExtensionStore) extendSimple(simple selector.SimpleSelector, span selector.Span, extensions *orderedMap[*orderedMap[Extension]], targetsUsed map[string]bool) ([][]Extender, bool, error) {
	if pseudo, ok := simple.(*selector.PseudoSelector); ok && pseudo.HasSelector() {
		rewritten, changed, err := s.extendPseudo(pseudo, span, extensions)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return nil, false, nil
		}
		// Each rewritten pseudo variant is an alternative resolution of this
		// one simple-selector slot, not an independent compound position, so
		// they're flattened into a single group for the Cartesian product.
		var flat []Extender
		for _, np := range rewritten {
			alts, altChanged := s.withoutPseudo(np, span, extensions, targetsUsed)
			if !altChanged {
				alts = []Extender{selfExtender(np, span)}
			}
			flat = append(flat, alts...)
		}
		return [][]Extender{flat}, true, nil
	}

	alts, changed := s.withoutPseudo(simple, span, extensions, targetsUsed)
	if !changed {
		return nil, false, nil
	}
	return [][]Extender{alts}, true, nil
}

func (s *ExtensionStore) withoutPseudo(simple selector.SimpleSelector, span selector.Span, extensions *orderedMap[*orderedMap[Extension]], targetsUsed map[string]bool) ([]Extender, bool) {
	key := simple.Key()
	targetExtensions, ok := extensions.Get(key)
	if !ok || targetExtensions.Len() == 0 {
		return nil, false
	}
	if targetsUsed != nil {
		targetsUsed[key] = true
	}

	var alts []Extender
	if s.mode.includesSelf() {
		alts = append(alts, selfExtender(simple, span))
	}
	for _, ext := range targetExtensions.Values() {
		alts = append(alts, ext.Extender)
	}
	return alts, true
}

// rewriteKind classifies how extendPseudo handles an extended pseudo whose
// sole complex selector collapses to a single inner selector-bearing pseudo
// (e.g. ":not(.a)" extended to ":not(:is(.b))").
type rewriteKind int

const (
	rewriteKeep rewriteKind = iota
	rewriteInline
	rewriteDrop
)

func pseudoRewriteAction(outer, inner *selector.PseudoSelector) rewriteKind {
	switch outer.NormalizedName() {
	case "not":
		if n := inner.NormalizedName(); n == "is" || n == "matches" {
			return rewriteInline
		}
		return rewriteDrop
	case "is", "matches", "any", "current", "nth-child", "nth-last-child":
		if inner.NormalizedName() == outer.NormalizedName() && inner.Argument == outer.Argument {
			return rewriteInline
		}
		return rewriteDrop
	case "has", "host", "host-context", "slotted":
		return rewriteKeep
	default:
		return rewriteDrop
	}
}

// extendPseudo extends the inner selector list of a selector-bearing pseudo
// (":not(...)", ":is(...)" etc.), then applies the handful of "laws of
// extend" rewrite rules for how a nested pseudo inside the result folds back
// into the outer one.
func (s *ExtensionStore) extendPseudo(pseudo *selector.PseudoSelector, span selector.Span, extensions *orderedMap[*orderedMap[Extension]]) ([]*selector.PseudoSelector, bool, error) {
	if pseudo.Selector == nil {
		programmerError("extendPseudo called on %q without an inner selector", pseudo.Name)
	}

	extended, err := s.extendList(pseudo.Selector, span, extensions, selector.TopLevel)
	if err != nil {
		return nil, false, err
	}
	if extended == pseudo.Selector {
		return nil, false, nil
	}

	name := pseudo.NormalizedName()
	complexes := extended.Complexes

	if name == "not" {
		originalHasMulti := false
		for _, c := range pseudo.Selector.Complexes {
			if len(c.Compounds()) > 1 {
				originalHasMulti = true
				break
			}
		}
		hasSingle := false
		for _, c := range complexes {
			if len(c.Compounds()) == 1 {
				hasSingle = true
				break
			}
		}
		if !originalHasMulti && hasSingle {
			filtered := complexes[:0:0]
			for _, c := range complexes {
				if len(c.Compounds()) == 1 {
					filtered = append(filtered, c)
				}
			}
			complexes = filtered
		}
	}

	var rewritten []*selector.ComplexSelector
	for _, c := range complexes {
		compounds := c.Compounds()
		if len(compounds) == 1 && len(compounds[0].Components) == 1 {
			if inner, ok := compounds[0].Components[0].(*selector.PseudoSelector); ok && inner.HasSelector() {
				switch pseudoRewriteAction(pseudo, inner) {
				case rewriteInline:
					rewritten = append(rewritten, inner.Selector.Complexes...)
					continue
				case rewriteDrop:
					continue
				case rewriteKeep:
					// fall through and keep c as-is
				}
			}
		}
		rewritten = append(rewritten, c)
	}

	if len(rewritten) == 0 {
		return nil, false, nil
	}

	if name == "not" && len(pseudo.Selector.Complexes) == 1 {
		out := make([]*selector.PseudoSelector, len(rewritten))
		for i, c := range rewritten {
			out[i] = pseudo.WithSelector(selector.NewSelectorList([]*selector.ComplexSelector{c}))
		}
		return out, true, nil
	}

	return []*selector.PseudoSelector{pseudo.WithSelector(selector.NewSelectorList(rewritten))}, true, nil
}

// trim implements the second law of extend: drop any produced, non-original
// complex selector c when another selector already in (or yet to enter) the
// kept set is a superselector of c and has a minimum specificity at least
// c's source specificity, since c can never match anything that selector
// doesn't also match. Originals
// are exempt and always kept, deduplicated by moving to the front on
// repeat. Scans last to first, as the design notes describe, so that later
// (alphabetically/positionally) duplicates of an original correctly yield
// to the earliest occurrence.
func (s *ExtensionStore) trim(selectors []*selector.ComplexSelector, isOriginal func(*selector.ComplexSelector) bool) []*selector.ComplexSelector {
	limit := s.cfg.TrimLimit
	if limit > 0 && len(selectors) > limit {
		return selectors
	}

	kept := make([]*selector.ComplexSelector, 0, len(selectors))

	for i := len(selectors) - 1; i >= 0; i-- {
		c := selectors[i]

		if isOriginal(c) {
			for j, k := range kept {
				if k.Key() == c.Key() {
					kept = append(kept[:j], kept[j+1:]...)
					break
				}
			}
			kept = append([]*selector.ComplexSelector{c}, kept...)
			continue
		}

		maxSpec := s.sourceSpecificityFor(c)
		dominated := false
		for _, c2 := range kept {
			if c2 != c && c2.MinSpecificity() >= maxSpec && c2.IsSuperselector(c) {
				dominated = true
				break
			}
		}
		if !dominated {
			for j := 0; j < i; j++ {
				c2 := selectors[j]
				if c2 != c && c2.MinSpecificity() >= maxSpec && c2.IsSuperselector(c) {
					dominated = true
					break
				}
			}
		}
		if dominated {
			continue
		}

		kept = append([]*selector.ComplexSelector{c}, kept...)
	}

	return kept
}

// sourceSpecificityFor looks up the recorded specificity of whichever
// registered extender introduced c's most specific simple selector,
// defaulting to 0 for simple selectors that were never an extender (plain
// written selectors carry no recorded source specificity and so impose no
// extra trim guard beyond their own).
func (s *ExtensionStore) sourceSpecificityFor(c *selector.ComplexSelector) int {
	max := 0
	for _, compound := range c.Compounds() {
		for _, simple := range compound.Components {
			if v, ok := s.sourceSpecificity[simple.ID()]; ok && v > max {
				max = v
			}
		}
	}
	return max
}
