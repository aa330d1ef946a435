// Package simplify implements the fixpoint algebraic simplifier:
// constant folding, identity elimination, like-term folding, commutative
// reordering, and numeric function evaluation.
package simplify

// Options configures a Simplify call. FloatAllowed controls whether a
// rewrite may keep a non-integer arithmetic result; it is threaded
// explicitly rather than hidden in mutable package state.
type Options struct {
	FloatAllowed bool
}

var defaultFloatAllowed = false

// WithFloatAllowed scopes a process-wide default for callers that would
// rather not thread Options explicitly through every call. The returned
// restore function must be deferred immediately by the caller.
func WithFloatAllowed(enabled bool) func() {
	prev := defaultFloatAllowed
	defaultFloatAllowed = enabled
	return func() { defaultFloatAllowed = prev }
}

// DefaultOptions reflects whatever WithFloatAllowed last scoped, or the
// all-false zero value if nothing has.
func DefaultOptions() Options {
	return Options{FloatAllowed: defaultFloatAllowed}
}
