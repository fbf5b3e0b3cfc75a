package selector

// weaveFanoutLimit bounds the combinatorial interleaving Weave performs, the
// same kind of pragmatic guardrail as trim's quadratic cutoff: above this
// combined length, Weave falls back to straightforward concatenation rather
// than enumerating every order-preserving interleaving.
const weaveFanoutLimit = 10

// Weave produces every way of combining two ancestor-component sequences
// that must both apply along the same path to a shared target element. Each
// sequence keeps its own internal order (a compound always stays attached to
// the combinators that follow it); the two sequences are riffled together.
//
// This is a simplified stand-in for the reference algorithm's combinator-
// adjacency-aware weave: it guarantees a structurally valid, order-preserving
// merge of both ancestor chains, but unlike a full CSS implementation it does
// not re-validate that a ">"/"+"/"~" combinator's adjacency requirement
// still holds once compounds from the other chain are interleaved next to it.
func Weave(a, b []Component) [][]Component {
	if len(a) == 0 {
		return [][]Component{cloneComponents(b)}
	}
	if len(b) == 0 {
		return [][]Component{cloneComponents(a)}
	}
	if len(a)+len(b) > weaveFanoutLimit {
		combined := make([]Component, 0, len(a)+len(b))
		combined = append(combined, a...)
		combined = append(combined, b...)
		return [][]Component{combined}
	}
	return riffle(a, b)
}

func riffle(a, b []Component) [][]Component {
	if len(a) == 0 {
		return [][]Component{cloneComponents(b)}
	}
	if len(b) == 0 {
		return [][]Component{cloneComponents(a)}
	}

	// A unit is one component plus any combinators directly after it.
	na, nb := 1, 1
	for na < len(a) && a[na].IsCombinator() {
		na++
	}
	for nb < len(b) && b[nb].IsCombinator() {
		nb++
	}

	var results [][]Component
	for _, rest := range riffle(a[na:], b) {
		results = append(results, prepend(a[:na], rest))
	}
	for _, rest := range riffle(a, b[nb:]) {
		results = append(results, prepend(b[:nb], rest))
	}
	return results
}

func prepend(head, tail []Component) []Component {
	out := make([]Component, 0, len(head)+len(tail))
	out = append(out, head...)
	out = append(out, tail...)
	return out
}

func cloneComponents(c []Component) []Component {
	out := make([]Component, len(c))
	copy(out, c)
	return out
}
