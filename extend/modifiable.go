package extend

import "github.com/toakleaf/cssextend/selector"

// ModifiableSelector is a mutable cell holding a selector list and its
// origin span. Its identity, not its value, is what the store and its
// caller (the emitter) share: two cells with equal Value are still distinct
// rows in selectors/mediaContexts. A *ModifiableSelector is used directly as
// a Go map key for this reason — pointer identity already is the reference
// equality the distilled spec calls for.
type ModifiableSelector struct {
	Value *selector.SelectorList
	Span  selector.Span
}

func newModifiableSelector(value *selector.SelectorList, span selector.Span) *ModifiableSelector {
	return &ModifiableSelector{Value: value, Span: span}
}
