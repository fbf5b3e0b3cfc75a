package extend

import (
	"errors"
	"fmt"

	"github.com/toakleaf/cssextend/selector"
)

// Kind distinguishes the handful of ways the extend engine can fail, mirrored
// from the reference compiler's single LessError struct generalized into a
// closed taxonomy (see DESIGN.md).
type Kind int

const (
	KindInvalidTarget Kind = iota
	KindMediaContextMismatch
	KindExtensionFailure
)

// Sentinel errors for errors.Is comparisons against ExtendError.Kind.
var (
	ErrInvalidTarget        = errors.New("extend: invalid target")
	ErrMediaContextMismatch = errors.New("extend: incompatible media context")
	ErrExtensionFailure     = errors.New("extend: extension failure")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidTarget:
		return ErrInvalidTarget
	case KindMediaContextMismatch:
		return ErrMediaContextMismatch
	default:
		return ErrExtensionFailure
	}
}

// ExtendError is the structured error type every fallible operation in this
// package returns. It carries the primary span and, once a re-extension has
// wrapped it, the outer context that was being processed when the inner
// error surfaced.
type ExtendError struct {
	Kind    Kind
	Span    selector.Span
	Message string
	Inner   error
}

func newError(kind Kind, span selector.Span, format string, args ...any) *ExtendError {
	return &ExtendError{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}

func (e *ExtendError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("from %s: %s", e.Span, e.Inner.Error())
	}
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

func (e *ExtendError) Unwrap() error {
	if e.Inner != nil {
		return e.Inner
	}
	return sentinelFor(e.Kind)
}

// wrapAt re-raises err with span prepended to the message, per §7's
// ExtensionFailure rewrap rule ("From <span>: <inner message>"). If err is
// already an *ExtendError, its Kind is preserved.
func wrapAt(span selector.Span, err error) *ExtendError {
	if err == nil {
		return nil
	}
	kind := KindExtensionFailure
	var inner *ExtendError
	if errors.As(err, &inner) {
		kind = inner.Kind
	}
	return &ExtendError{Kind: kind, Span: span, Inner: err}
}

// programmerError panics with a message identifying a contract violation in
// this package, mirroring the reference compiler's
// panic(&LessError{...})-for-internal-invariant-violations convention
// (less/variable.go). These represent bugs in this package, not bad input,
// so they are not returned as errors.
func programmerError(format string, args ...any) {
	panic(fmt.Sprintf("extend: programmer error: %s", fmt.Sprintf(format, args...)))
}
