// Package errs provides the structured error taxonomy shared across the
// sync pipeline. Every failure the orchestrator can surface belongs to
// exactly one Kind, so the top-level handler and tests can classify
// errors without string matching.
package errs

import (
	"errors"
	"strings"
)

// Kind identifies the failure category of a pipeline error.
type Kind string

const (
	// KindConfiguration indicates missing or invalid configuration,
	// detected before any pipeline runs.
	KindConfiguration Kind = "configuration"
	// KindConnection indicates the target store was unreachable.
	KindConnection Kind = "connection"
	// KindFetch indicates a feed client failure.
	KindFetch Kind = "fetch"
	// KindStorageWrite indicates the store rejected a staging write.
	KindStorageWrite Kind = "storage_write"
	// KindSyncProcedure indicates a server-side merge procedure failed.
	KindSyncProcedure Kind = "sync_procedure"
)

// E captures a categorized pipeline error together with the operation
// that produced it. None of these are retried; they travel up the call
// chain unchanged until the root command sets the exit status.
type E struct {
	// Kind is the failure category.
	Kind Kind

	// Op names the failing operation, e.g. a staging slot or procedure.
	Op string

	cause error
}

// New constructs a categorized error wrapping cause. Op may be empty
// when the kind alone is descriptive enough.
func New(kind Kind, op string, cause error) *E {
	return &E{Kind: kind, Op: strings.TrimSpace(op), cause: cause}
}

// Error renders "<kind>: <op>: <cause>" omitting empty segments.
func (e *E) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *E) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// IsKind reports whether err (or anything it wraps) carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *E
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
