package extend

import "sync"

// Extender-slice pooling, grounded on the reference compiler's node_pools.go
// / visitor_pools.go (sync.Pool-backed reuse of hot, short-lived AST node
// allocations). extendCompound's path expansion builds and discards many
// small []Extender slices — one per Cartesian combination of the simple
// selectors' alternatives — so the same blow-up the reference pools guard against
// shows up here for selector lists with many simultaneously-extended simples.
var extenderSlicePool = sync.Pool{
	New: func() any {
		s := make([]Extender, 0, 4)
		return &s
	},
}

// getExtenderSlice returns a zero-length, pool-backed []Extender.
func getExtenderSlice() []Extender {
	s := extenderSlicePool.Get().(*[]Extender)
	return (*s)[:0]
}

// putExtenderSlice returns s to the pool. Callers must not use s afterward.
func putExtenderSlice(s []Extender) {
	if cap(s) == 0 {
		return
	}
	s = s[:0]
	extenderSlicePool.Put(&s)
}
