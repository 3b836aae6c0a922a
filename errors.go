package subjunctive

import (
	"errors"
	"fmt"
)

// FailureKind classifies which operation-level failure produced an
// Error. It is distinct from ErrorKind: ErrorKind classifies a wrong
// answer Validate graded, never an error; FailureKind classifies why an
// operation itself could not complete at all.
type FailureKind int

const (
	// FailureUnspecified is the zero value; Error never carries it.
	FailureUnspecified FailureKind = iota
	FailureUnknownVerb
	FailureUnknownCard
	FailureInvalidQuality
	FailureNoCandidate
	FailureCorruptSnapshot
)

func (k FailureKind) String() string {
	switch k {
	case FailureUnknownVerb:
		return "UNKNOWN_VERB"
	case FailureUnknownCard:
		return "UNKNOWN_CARD"
	case FailureInvalidQuality:
		return "INVALID_QUALITY"
	case FailureNoCandidate:
		return "NO_CANDIDATE"
	case FailureCorruptSnapshot:
		return "CORRUPT_SNAPSHOT"
	default:
		return "UNSPECIFIED"
	}
}

// Error wraps an internal package's typed error with a FailureKind and
// the operation that produced it, so callers can classify a failure
// (errors.Is against the sentinels below) or drill into the underlying
// typed error (errors.As, via Unwrap) without importing internal/*.
type Error struct {
	Kind FailureKind
	Op   string
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

// Unwrap exposes the wrapped error for errors.As and errors.Is chains.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is the sentinel for e.Kind, so
// errors.Is(err, subjunctive.ErrUnknownVerb) works without needing the
// caller to know about *Error or *conjugate.UnknownVerbError at all.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnknownVerb:
		return e.Kind == FailureUnknownVerb
	case ErrUnknownCard:
		return e.Kind == FailureUnknownCard
	case ErrInvalidQuality:
		return e.Kind == FailureInvalidQuality
	case ErrNoCandidate:
		return e.Kind == FailureNoCandidate
	case ErrCorruptSnapshot:
		return e.Kind == FailureCorruptSnapshot
	default:
		return false
	}
}

// Sentinel targets for errors.Is, one per FailureKind. These carry no
// information themselves; match against them to classify an error
// without a type switch over every internal error type.
var (
	ErrUnknownVerb     = errors.New("unknown verb")
	ErrUnknownCard     = errors.New("unknown card")
	ErrInvalidQuality  = errors.New("invalid quality")
	ErrNoCandidate     = errors.New("no candidate verb")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// wrapErr classifies err (if non-nil) by its concrete type and wraps it
// in an *Error carrying op and the matching FailureKind, using %w so the
// original typed error survives the Unwrap chain. Returns nil for a nil
// err, so call sites can wrap unconditionally:
//
//	c, err := e.scheduler.EnsureCard(...)
//	return c, wrapErr("EnsureCard", err)
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: classifyFailure(err), Op: op, err: fmt.Errorf("%s: %w", op, err)}
}

func classifyFailure(err error) FailureKind {
	switch {
	case errors.As(err, new(*UnknownVerbError)):
		return FailureUnknownVerb
	case errors.As(err, new(*UnknownCardError)):
		return FailureUnknownCard
	case errors.As(err, new(*InvalidQualityError)):
		return FailureInvalidQuality
	case errors.As(err, new(*NoCandidateError)):
		return FailureNoCandidate
	case errors.As(err, new(*CorruptSnapshotError)):
		return FailureCorruptSnapshot
	default:
		return FailureUnspecified
	}
}
