package extend

import (
	"iter"

	"go.uber.org/zap"

	"github.com/toakleaf/cssextend/selector"
)

// selectorIndexEntry is one row of the store's selectors index: a simple
// selector (kept so SimpleSelectors can return it) and the set of cells it
// currently appears in, in first-registration order.
type selectorIndexEntry struct {
	Simple  selector.SimpleSelector
	cells   []*ModifiableSelector
	cellSet map[*ModifiableSelector]bool
}

func (e *selectorIndexEntry) add(cell *ModifiableSelector) {
	if e.cellSet == nil {
		e.cellSet = make(map[*ModifiableSelector]bool)
	}
	if e.cellSet[cell] {
		return
	}
	e.cellSet[cell] = true
	e.cells = append(e.cells, cell)
}

// ExtensionStore is the mutable graph of registered selectors and @extend
// relationships a stylesheet compilation accumulates into, and the engine
// that rewrites selectors as extensions arrive.
type ExtensionStore struct {
	cfg  Config
	mode Mode

	// selectors maps a simple selector's Key() to the set of
	// ModifiableSelector cells currently containing it (invariant I1).
	selectors *orderedMap[*selectorIndexEntry]

	// extensions maps a target's Key() to its extender map (extender
	// Key() -> Extension), merging extensions that share both a target and
	// an extender complex (invariant I2).
	extensions *orderedMap[*orderedMap[Extension]]

	// extensionsByExtender maps a simple selector's Key() to every
	// Extension whose extender selector mentions it anywhere, including
	// inside selector-bearing pseudos (invariant I3). Used to find which
	// existing extensions must be re-extended when a new extension makes
	// one of their extender's simple selectors itself extensible.
	extensionsByExtender *orderedMap[[]Extension]

	mediaContexts     map[*ModifiableSelector]selector.MediaContext
	sourceSpecificity map[selector.ID]int
	originals         map[selector.ID]bool
}

// NewStore builds an empty store in ModeNormal, the mode AddSelector and
// AddExtension use while a stylesheet compiles incrementally.
func NewStore(opts ...Option) *ExtensionStore {
	return NewStoreWithMode(ModeNormal, opts...)
}

// NewStoreWithMode builds an empty store in the given mode. ModeAllTargets
// and ModeReplace back the stateless Extend/Replace entry points; direct
// callers normally want NewStore.
func NewStoreWithMode(mode Mode, opts ...Option) *ExtensionStore {
	return &ExtensionStore{
		cfg:                  applyOptions(opts),
		mode:                 mode,
		selectors:            newOrderedMap[*selectorIndexEntry](),
		extensions:           newOrderedMap[*orderedMap[Extension]](),
		extensionsByExtender: newOrderedMap[[]Extension](),
		mediaContexts:        make(map[*ModifiableSelector]selector.MediaContext),
		sourceSpecificity:    make(map[selector.ID]int),
		originals:            make(map[selector.ID]bool),
	}
}

// IsEmpty reports whether the store has no registered selectors and no
// registered extensions.
func (s *ExtensionStore) IsEmpty() bool {
	return s.selectors.Len() == 0 && s.extensions.Len() == 0
}

// SimpleSelectors returns every distinct simple selector currently
// registered in the store's selectors index, in first-registration order.
func (s *ExtensionStore) SimpleSelectors() []selector.SimpleSelector {
	out := make([]selector.SimpleSelector, 0, s.selectors.Len())
	for _, key := range s.selectors.keys {
		entry, _ := s.selectors.Get(key)
		out = append(out, entry.Simple)
	}
	return out
}

// AddSelector registers list as a stylesheet rule's selector, pre-extending
// it against every extension already known to the store (skipped entirely
// when none are registered, since extendList would be a costly no-op). The
// returned cell is the handle later AddExtension calls mutate in place as
// new, matching extensions arrive.
func (s *ExtensionStore) AddSelector(list *selector.SelectorList, span selector.Span, media selector.MediaContext) (*ModifiableSelector, error) {
	original := list
	extended := list

	if s.extensions.Len() > 0 {
		var err error
		extended, err = s.extendList(list, span, s.extensions, media)
		if err != nil {
			return nil, wrapAt(span, err)
		}
	}

	cell := newModifiableSelector(extended, span)
	s.registerCell(cell)
	if media.Present {
		s.mediaContexts[cell] = media
	}

	if !original.IsInvisible() {
		for _, c := range original.Complexes {
			s.originals[c.ID()] = true
		}
	}

	return cell, nil
}

// AddExtension registers an "extenderList { @extend target }" relationship:
// every complex selector of extenderList becomes (or merges into) an
// Extension targeting target. Already-registered selectors and extensions
// reachable from target are re-extended in place.
func (s *ExtensionStore) AddExtension(extenderList *selector.SelectorList, span selector.Span, target selector.SimpleSelector, media selector.MediaContext, optional bool) error {
	targetKey := target.Key()
	_, hadSelectors := s.selectors.Get(targetKey)
	_, hadExtenderTargets := s.extensionsByExtender.Get(targetKey)

	newExtensions := newOrderedMap[*orderedMap[Extension]]()

	for _, c := range extenderList.Complexes {
		extender := NewExtender(c, span, false).WithMedia(media)
		ext := NewExtension(extender, target, span, media, optional)
		isNew := s.mergeExtension(targetKey, ext)
		if isNew && (hadSelectors || hadExtenderTargets) {
			addToExtensionMap(newExtensions, targetKey, ext.Extender.Key(), ext)
		}
	}

	if newExtensions.Len() == 0 {
		return nil
	}

	return s.propagateNewExtensions(newExtensions, media)
}

// propagateNewExtensions re-extends every existing extension and selector
// reachable from newExtensions' targets, cascading through any further
// extensions that chain discovers along the way. A rekeyed extension's
// target can itself turn out to be mentioned inside some other already-
// registered extension's extender, so extendExistingExtensions is re-run
// against each newly discovered batch of targets (rather than just once)
// until a pass finds nothing further to rekey.
func (s *ExtensionStore) propagateNewExtensions(newExtensions *orderedMap[*orderedMap[Extension]], media selector.MediaContext) error {
	accumulated := newOrderedMap[*orderedMap[Extension]]()
	mergeExtensionMaps(accumulated, newExtensions)

	pending := newExtensions
	for pending.Len() > 0 {
		additional, err := s.extendExistingExtensions(pending, media)
		if err != nil {
			return err
		}
		fresh := newOrderedMap[*orderedMap[Extension]]()
		for _, targetKey := range additional.keys {
			inner, _ := additional.Get(targetKey)
			for _, extenderKey := range inner.keys {
				ext, _ := inner.Get(extenderKey)
				if existing, ok := accumulated.Get(targetKey); ok {
					if _, already := existing.Get(extenderKey); already {
						continue
					}
				}
				addToExtensionMap(fresh, targetKey, extenderKey, ext)
			}
		}
		mergeExtensionMaps(accumulated, fresh)
		pending = fresh
	}

	cells := s.cellsForExtensions(accumulated)
	if len(cells) == 0 {
		return nil
	}
	return s.extendExistingSelectors(cells, accumulated, media)
}

// AddExtensions merges every non-private extension from each of others into
// s (used when composing multiple modules' stores together), re-extending
// anything in s that the merge makes newly reachable. Private placeholder
// targets (law I5) never cross this boundary.
func (s *ExtensionStore) AddExtensions(others []*ExtensionStore) error {
	newExtensions := newOrderedMap[*orderedMap[Extension]]()

	for _, other := range others {
		for id, v := range other.sourceSpecificity {
			if _, ok := s.sourceSpecificity[id]; !ok {
				s.sourceSpecificity[id] = v
			}
		}

		for _, targetKey := range other.extensions.keys {
			inner, _ := other.extensions.Get(targetKey)
			if target, ok := firstExtensionTarget(inner); ok && isPrivatePlaceholder(target) {
				continue
			}

			_, hadSelectors := s.selectors.Get(targetKey)
			_, hadExtenderTargets := s.extensionsByExtender.Get(targetKey)

			for _, extenderKey := range inner.keys {
				ext, _ := inner.Get(extenderKey)
				isNew := s.mergeExtension(targetKey, ext)
				if isNew && (hadSelectors || hadExtenderTargets) {
					addToExtensionMap(newExtensions, targetKey, extenderKey, ext)
				}
			}
		}
	}

	if newExtensions.Len() == 0 {
		return nil
	}
	return s.propagateNewExtensions(newExtensions, selector.TopLevel)
}

// ExtensionsWhereTarget yields every mandatory (non-optional) Extension
// whose target satisfies predicate, expanding any merged extension via
// Unmerge so only base Extensions are produced. Used by
// checkExtendsForNonMatched-style diagnostics to find @extends that never
// matched anything.
func (s *ExtensionStore) ExtensionsWhereTarget(predicate func(selector.SimpleSelector) bool) iter.Seq[Extension] {
	return func(yield func(Extension) bool) {
		for _, targetKey := range s.extensions.keys {
			inner, _ := s.extensions.Get(targetKey)
			for _, ext := range inner.Values() {
				if !predicate(ext.Target) {
					continue
				}
				for _, base := range ext.Unmerge() {
					if base.Optional {
						continue
					}
					if !yield(base) {
						return
					}
				}
			}
		}
	}
}

// WarnUnmatchedExtensions logs a warning through the store's configured
// Logger for every mandatory extension whose target isDefined reports as
// absent from the compiled stylesheet, mirroring the reference compiler's
// checkExtendsForNonMatched diagnostic (extend_visitor.go). This package has
// no notion of "every selector the stylesheet defines" itself (that's the
// caller's AST to walk), so isDefined is supplied by the caller.
func (s *ExtensionStore) WarnUnmatchedExtensions(isDefined func(selector.SimpleSelector) bool) {
	for ext := range s.ExtensionsWhereTarget(func(t selector.SimpleSelector) bool { return !isDefined(t) }) {
		s.cfg.Logger.Warn("extend matched no selectors",
			zap.String("target", ext.Target.Key()),
			zap.String("extender", ext.Extender.Key()),
		)
	}
}

// Clone returns a deep copy of the store: its own selectors index
// (rebuilt around fresh ModifiableSelector cells, since cell identity is
// per-store) plus a copy of every other index. The returned map lets a
// caller translate cells it already holds from the original store into the
// clone's equivalents. The clone's mode is always reset to ModeNormal,
// regardless of the source store's mode.
func (s *ExtensionStore) Clone() (*ExtensionStore, map[*ModifiableSelector]*ModifiableSelector) {
	clone := NewStoreWithMode(ModeNormal, func(c *Config) { *c = s.cfg })

	oldToNew := make(map[*ModifiableSelector]*ModifiableSelector)

	for _, key := range s.selectors.keys {
		entry, _ := s.selectors.Get(key)
		newEntry := &selectorIndexEntry{Simple: entry.Simple}
		for _, cell := range entry.cells {
			newCell, ok := oldToNew[cell]
			if !ok {
				newCell = newModifiableSelector(cell.Value, cell.Span)
				oldToNew[cell] = newCell
				if media, ok := s.mediaContexts[cell]; ok {
					clone.mediaContexts[newCell] = media
				}
			}
			newEntry.add(newCell)
		}
		clone.selectors.Set(key, newEntry)
	}

	for _, targetKey := range s.extensions.keys {
		inner, _ := s.extensions.Get(targetKey)
		clone.extensions.Set(targetKey, inner.Clone())
	}

	for _, key := range s.extensionsByExtender.keys {
		list, _ := s.extensionsByExtender.Get(key)
		clone.extensionsByExtender.Set(key, append([]Extension{}, list...))
	}

	for id, v := range s.sourceSpecificity {
		clone.sourceSpecificity[id] = v
	}
	for id := range s.originals {
		clone.originals[id] = true
	}

	return clone, oldToNew
}

// registerCell records that cell's current value contains every simple
// selector it mentions, recursively through pseudo arguments. Safe to call
// repeatedly as a cell's value changes: already-registered (key, cell)
// pairs are no-ops.
func (s *ExtensionStore) registerCell(cell *ModifiableSelector) {
	cell.Value.EachSimple(func(simple selector.SimpleSelector) {
		key := simple.Key()
		entry, ok := s.selectors.Get(key)
		if !ok {
			entry = &selectorIndexEntry{Simple: simple}
			s.selectors.Set(key, entry)
		}
		entry.add(cell)
	})
}

// mergeExtension inserts ext under (targetKey, ext.Extender.Key()),
// merging with whatever Extension is already there if the pair collides,
// and keeping extensionsByExtender in step. Reports whether this was a
// brand new (target, extender) pair.
func (s *ExtensionStore) mergeExtension(targetKey string, ext Extension) bool {
	inner, ok := s.extensions.Get(targetKey)
	if !ok {
		inner = newOrderedMap[Extension]()
		s.extensions.Set(targetKey, inner)
	}

	extenderKey := ext.Extender.Key()
	if existing, ok := inner.Get(extenderKey); ok {
		inner.Set(extenderKey, Merge(existing, ext))
		return false
	}

	inner.Set(extenderKey, ext)
	s.registerExtenderIndex(ext)
	return true
}

// registerExtenderIndex adds ext to extensionsByExtender under every simple
// selector its extender mentions, and records that simple's source
// specificity the first time it's seen (trim's second-law guard keys off
// the identity of the simple selector object, not its structural value —
// see DESIGN.md).
func (s *ExtensionStore) registerExtenderIndex(ext Extension) {
	ext.Extender.Selector.EachSimple(func(simple selector.SimpleSelector) {
		key := simple.Key()
		list, _ := s.extensionsByExtender.Get(key)
		s.extensionsByExtender.Set(key, append(list, ext))
		if _, ok := s.sourceSpecificity[simple.ID()]; !ok {
			s.sourceSpecificity[simple.ID()] = ext.Extender.Selector.MaxSpecificity()
		}
	})
}

// unregisterExtenderIndex removes every extensionsByExtender entry
// referencing ext's (target, extender) pair, once that Extension has been
// rekeyed to extender selectors that no longer include its old one.
func (s *ExtensionStore) unregisterExtenderIndex(ext Extension) {
	targetKey := ext.Target.Key()
	extenderKey := ext.Extender.Key()
	ext.Extender.Selector.EachSimple(func(simple selector.SimpleSelector) {
		key := simple.Key()
		list, ok := s.extensionsByExtender.Get(key)
		if !ok {
			return
		}
		filtered := list[:0:0]
		for _, e := range list {
			if e.Target.Key() == targetKey && e.Extender.Key() == extenderKey {
				continue
			}
			filtered = append(filtered, e)
		}
		s.extensionsByExtender.Set(key, filtered)
	})
}

// cellsForExtensions returns, in first-registration order and without
// duplicates, every cell currently registered under any of newExtensions'
// target keys.
func (s *ExtensionStore) cellsForExtensions(newExtensions *orderedMap[*orderedMap[Extension]]) []*ModifiableSelector {
	seen := make(map[*ModifiableSelector]bool)
	var out []*ModifiableSelector
	for _, targetKey := range newExtensions.keys {
		entry, ok := s.selectors.Get(targetKey)
		if !ok {
			continue
		}
		for _, cell := range entry.cells {
			if seen[cell] {
				continue
			}
			seen[cell] = true
			out = append(out, cell)
		}
	}
	return out
}

// extendExistingExtensions re-extends every already-registered extension
// whose extender selector mentions one of newExtensions' targets, against
// only newExtensions (not the whole store) so each existing extension is
// reconsidered exactly once per newly-registered extension rather than
// against everything the store has ever seen. Returns whatever further new
// (target, extender) pairs this discovers, for the caller to fold back in
// and, if non-empty, re-run.
func (s *ExtensionStore) extendExistingExtensions(newExtensions *orderedMap[*orderedMap[Extension]], media selector.MediaContext) (*orderedMap[*orderedMap[Extension]], error) {
	additional := newOrderedMap[*orderedMap[Extension]]()

	for _, targetKey := range newExtensions.keys {
		extsToExtend, ok := s.extensionsByExtender.Get(targetKey)
		if !ok {
			continue
		}
		snapshot := append([]Extension{}, extsToExtend...)

		for _, oldExt := range snapshot {
			oldSelector := oldExt.Extender.Selector
			result, changed, err := s.extendComplex(oldSelector, oldExt.Extender.Span, newExtensions, media)
			if err != nil {
				return nil, wrapAt(oldExt.Extender.Span, err)
			}
			if !changed {
				continue
			}

			oldTargetKey := oldExt.Target.Key()
			containsOld := false

			for _, newComplex := range result {
				newExt := oldExt.WithExtender(newComplex)
				containsOld = containsOld || newComplex.Key() == oldExt.Extender.Key()
				if s.mergeExtension(oldTargetKey, newExt) {
					addToExtensionMap(additional, oldTargetKey, newExt.Extender.Key(), newExt)
				}
			}

			// When the old extender no longer appears among its own
			// re-extensions (e.g. an ":is()" argument grew), its entry is
			// dropped from both extensions and extensionsByExtender.
			if !containsOld {
				s.unregisterExtenderIndex(oldExt)
				inner, _ := s.extensions.Get(oldTargetKey)
				kept := newOrderedMap[Extension]()
				for i, k := range inner.keys {
					if k != oldExt.Extender.Key() {
						kept.Set(k, inner.vals[i])
					}
				}
				s.extensions.Set(oldTargetKey, kept)
			}
		}
	}

	return additional, nil
}

// extendExistingSelectors re-extends every cell's current value against
// extensions, replacing the cell's value and re-registering it when the
// result differs.
func (s *ExtensionStore) extendExistingSelectors(cells []*ModifiableSelector, extensions *orderedMap[*orderedMap[Extension]], fallbackMedia selector.MediaContext) error {
	for _, cell := range cells {
		media := fallbackMedia
		if m, ok := s.mediaContexts[cell]; ok {
			media = m
		}
		extended, err := s.extendList(cell.Value, cell.Span, extensions, media)
		if err != nil {
			return wrapAt(cell.Span, err)
		}
		if extended == cell.Value {
			continue
		}
		cell.Value = extended
		s.registerCell(cell)
	}
	return nil
}

func addToExtensionMap(m *orderedMap[*orderedMap[Extension]], targetKey, extenderKey string, ext Extension) {
	inner, ok := m.Get(targetKey)
	if !ok {
		inner = newOrderedMap[Extension]()
		m.Set(targetKey, inner)
	}
	inner.Set(extenderKey, ext)
}

func mergeExtensionMaps(dst, src *orderedMap[*orderedMap[Extension]]) {
	for _, targetKey := range src.keys {
		srcInner, _ := src.Get(targetKey)
		for _, extenderKey := range srcInner.keys {
			ext, _ := srcInner.Get(extenderKey)
			addToExtensionMap(dst, targetKey, extenderKey, ext)
		}
	}
}

func firstExtensionTarget(inner *orderedMap[Extension]) (selector.SimpleSelector, bool) {
	if inner.Len() == 0 {
		return nil, false
	}
	return inner.vals[0].Target, true
}

func isPrivatePlaceholder(s selector.SimpleSelector) bool {
	ph, ok := s.(*selector.PlaceholderSelector)
	return ok && ph.Private
}
