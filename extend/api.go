package extend

import "github.com/toakleaf/cssextend/selector"

// Extend rewrites sel so that source is injected wherever a target compound
// matches, without touching any persistent store. Each target compound is
// applied in turn to the result of the previous one, and within one compound
// every simple selector must match the same compound of sel
// (ModeAllTargets). Used for one-off selector rewrites outside a full
// stylesheet compilation (e.g. a build-time codemod).
func Extend(sel, source, targets *selector.SelectorList, span selector.Span) (*selector.SelectorList, error) {
	return extendOneShot(sel, source, targets, span, ModeAllTargets)
}

// Replace is like Extend but omits the self-extender (ModeReplace): the
// original compound is replaced outright rather than augmented alongside it.
func Replace(sel, source, targets *selector.SelectorList, span selector.Span) (*selector.SelectorList, error) {
	return extendOneShot(sel, source, targets, span, ModeReplace)
}

func extendOneShot(sel, source, targets *selector.SelectorList, span selector.Span, mode Mode) (*selector.SelectorList, error) {
	store := NewStoreWithMode(mode)
	for _, c := range sel.Complexes {
		store.originals[c.ID()] = true
	}

	result := sel
	for _, target := range targets.Complexes {
		compounds := target.Compounds()
		if len(target.Components) != 1 || len(compounds) != 1 {
			return nil, newError(KindInvalidTarget, span,
				"%q may not be used as a selector to extend: can't extend a compound selector sequence longer than one compound", target.Key())
		}

		extensions := newOrderedMap[*orderedMap[Extension]]()
		for _, simple := range compounds[0].Components {
			inner := newOrderedMap[Extension]()
			for _, srcComplex := range source.Complexes {
				extender := NewExtender(srcComplex, span, false)
				ext := NewExtension(extender, simple, span, selector.TopLevel, true)
				inner.Set(srcComplex.Key(), ext)
			}
			mergeTargetExtensions(extensions, simple.Key(), inner)
		}

		var err error
		result, err = store.extendList(result, span, extensions, selector.TopLevel)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func mergeTargetExtensions(m *orderedMap[*orderedMap[Extension]], targetKey string, inner *orderedMap[Extension]) {
	if existing, ok := m.Get(targetKey); ok {
		for _, k := range inner.keys {
			v, _ := inner.Get(k)
			existing.Set(k, v)
		}
		return
	}
	m.Set(targetKey, inner)
}
