package selector

import "fmt"

// Span is a diagnostic source location. The real compiler's parser produces
// these with full file/line/column tracking; this package models just
// enough of it (a file name plus a byte offset range) for error messages and
// the span-prepending behavior the extend store's error wrapping depends on.
type Span struct {
	File  string
	Start int
	End   int
	Text  string
}

func (s Span) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Start, s.End)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Start, s.End)
}

// MediaQuery is a single opaque media-query value (e.g. "screen" or
// "(min-width: 768px)"), compared by its canonical text.
type MediaQuery struct {
	Text string
}

// MediaContext is the ordered sequence of media queries an extension or
// selector was defined under, or the absent context for top-level rules.
type MediaContext struct {
	Queries []MediaQuery
	Present bool
}

// TopLevel is the absent media context (a selector or extension defined
// outside any @media rule).
var TopLevel = MediaContext{}

// Compatible reports whether two contexts may be combined: true when either
// is absent (top-level) or when both name the same queries. Extender's
// AssertCompatibleMediaContext is stricter: an extender that carries a
// context only applies where the call site names the same queries.
func (ctx MediaContext) Compatible(other MediaContext) bool {
	if !ctx.Present || !other.Present {
		return true
	}
	if len(ctx.Queries) != len(other.Queries) {
		return false
	}
	for i, q := range ctx.Queries {
		if q.Text != other.Queries[i].Text {
			return false
		}
	}
	return true
}
