package selector

import "github.com/google/uuid"

// ID is a stable identity token minted once when a ComplexSelector or
// SimpleSelector is constructed. The extend store keys its identity-based
// maps (originals, source specificity) on ID rather than on structural
// equality, per the "reference identity for cells and the source-specificity
// map" design note: two structurally equal selectors built at different
// times are still distinct objects with distinct IDs unless one was literally
// reused (e.g. shared through an Extender).
type ID = uuid.UUID

func newID() ID {
	return uuid.New()
}
