package extend

import "github.com/toakleaf/cssextend/selector"

// Extender is the selector that should be injected wherever its paired
// Extension's target matches. Extenders are value types: equality is
// structural, over the contained complex selector's Key().
type Extender struct {
	Selector   *selector.ComplexSelector
	Span       selector.Span
	Specificity int
	// Original marks an extender that came directly from a written
	// selector, as opposed to one synthesised during extension (e.g. the
	// self-extender extendSimple adds, or a path produced by unification).
	Original bool
	Media    selector.MediaContext
}

func NewExtender(sel *selector.ComplexSelector, span selector.Span, original bool) Extender {
	return Extender{Selector: sel, Span: span, Specificity: sel.MaxSpecificity(), Original: original}
}

func (e Extender) Key() string { return e.Selector.Key() }

// WithMedia returns a copy of e carrying the given media context.
func (e Extender) WithMedia(ctx selector.MediaContext) Extender {
	e.Media = ctx
	return e
}

// AssertCompatibleMediaContext fails when e carries a media context that
// differs from ctx (e.g. an extender defined inside "@media screen" being
// asked to apply inside "@media print", or at top level).
func (e Extender) AssertCompatibleMediaContext(ctx selector.MediaContext) error {
	if !e.Media.Present || (ctx.Present && e.Media.Compatible(ctx)) {
		return nil
	}
	return newError(KindMediaContextMismatch, e.Span,
		"extender %q is only valid in its original media context", e.Selector.Key())
}

// Extension records that Extender.Selector should be injected wherever
// Target matches, optionally scoped to a media context and optionally
// "optional" (meaning it is not an error for it to match nothing).
type Extension struct {
	Extender   Extender
	Target     selector.SimpleSelector
	TargetSpan selector.Span
	Media      selector.MediaContext
	Optional   bool

	// mergedFrom holds the two Extensions a MergedExtension was formed
	// from, realizing MergedExtension as a tagged variant of Extension
	// (SPEC_FULL.md §9) since Go has no sum types. nil for a base
	// Extension.
	mergedFrom *[2]Extension
}

// NewExtension builds a base (non-merged) Extension.
func NewExtension(extender Extender, target selector.SimpleSelector, targetSpan selector.Span, media selector.MediaContext, optional bool) Extension {
	return Extension{Extender: extender, Target: target, TargetSpan: targetSpan, Media: media, Optional: optional}
}

// IsMerged reports whether this Extension was formed by merging two others.
func (e Extension) IsMerged() bool { return e.mergedFrom != nil }

// WithExtender returns a copy of e whose extender's selector has been
// replaced, preserving every other field. Used when a path's output
// selector differs from the extender that produced it (e.g. after
// unification).
func (e Extension) WithExtender(sel *selector.ComplexSelector) Extension {
	next := e
	next.Extender = NewExtender(sel, e.Extender.Span, e.Extender.Original).WithMedia(e.Extender.Media)
	return next
}

// Merge combines two Extensions that target the same (target, extender
// complex) pair. The result is non-optional when either input is
// non-optional and their media contexts are compatible, per §4.1's
// merge rule.
func Merge(a, b Extension) Extension {
	optional := a.Optional && b.Optional
	if !a.Media.Compatible(b.Media) {
		optional = true
	}
	merged := a
	merged.Optional = optional
	pair := [2]Extension{a, b}
	merged.mergedFrom = &pair
	return merged
}

// Unmerge returns the set of base (non-merged) Extensions that were combined
// to form e, via a post-order flatten of its merge tree. A base Extension
// unmerges to itself.
func (e Extension) Unmerge() []Extension {
	if e.mergedFrom == nil {
		return []Extension{e}
	}
	var out []Extension
	out = append(out, e.mergedFrom[0].Unmerge()...)
	out = append(out, e.mergedFrom[1].Unmerge()...)
	return out
}
