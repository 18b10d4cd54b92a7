package cprintf

import (
	"fmt"

	"github.com/pkg/errors"
)

// DiagnosticKind classifies a fatal template error (spec.md §3
// FormatDiagnostic, error half).
type DiagnosticKind int

const (
	// ErrMissingPositionalWidth: a '*' width in positional mode was not
	// followed by "digits$".
	ErrMissingPositionalWidth DiagnosticKind = iota + 1
	// ErrMissingPositionalPrecision: same, for '.*'.
	ErrMissingPositionalPrecision
	// ErrUnknownType: the type letter did not match any recognised verb.
	ErrUnknownType
	// ErrIncompatibleLengthType: the (length, type) pair is not in the
	// legality table of spec.md §4.3 Pass A.
	ErrIncompatibleLengthType
	// ErrPositionalModeMismatch: some directives in the call carry a
	// position and others do not.
	ErrPositionalModeMismatch
	// ErrPositionalSlotConflict: a position was referenced twice with
	// incompatible (type, length).
	ErrPositionalSlotConflict
	// ErrPositionalSlotUnassigned: an intermediate slot below the
	// highest referenced position was never assigned.
	ErrPositionalSlotUnassigned
	// ErrNullTemplate: the format template or a required out-parameter
	// was nil.
	ErrNullTemplate
	// ErrAllocation: the slot array or allocated buffer could not be
	// grown.
	ErrAllocation
	// ErrSink: the output sink's emit failed.
	ErrSink
	// ErrUnimplementedVerb: the verb parsed correctly but names an
	// unimplemented conversion (the floating-point family).
	ErrUnimplementedVerb
	// ErrNullWritebackTarget: %n's pointee argument was nil.
	ErrNullWritebackTarget
)

func (k DiagnosticKind) String() string {
	switch k {
	case ErrMissingPositionalWidth:
		return "missing positional width"
	case ErrMissingPositionalPrecision:
		return "missing positional precision"
	case ErrUnknownType:
		return "unknown type letter"
	case ErrIncompatibleLengthType:
		return "incompatible length/type pair"
	case ErrPositionalModeMismatch:
		return "positional mode mismatch"
	case ErrPositionalSlotConflict:
		return "conflicting positional slot"
	case ErrPositionalSlotUnassigned:
		return "unassigned positional slot"
	case ErrNullTemplate:
		return "null template or out-parameter"
	case ErrAllocation:
		return "allocation failure"
	case ErrSink:
		return "sink write failure"
	case ErrUnimplementedVerb:
		return "unimplemented conversion"
	case ErrNullWritebackTarget:
		return "null %n target"
	default:
		return "unknown diagnostic"
	}
}

// Diagnostic is a fatal template, resource, or sink error. It aborts the
// whole call; spec.md §7 classifies these into three families, all of
// which surface here.
type Diagnostic struct {
	Kind     DiagnosticKind
	Position int // byte offset of the offending directive in the template, -1 if not applicable
	cause    error
}

func (d *Diagnostic) Error() string {
	if d.Position >= 0 {
		return fmt.Sprintf("cprintf: %s at offset %d", d.Kind, d.Position)
	}
	return fmt.Sprintf("cprintf: %s", d.Kind)
}

func (d *Diagnostic) Unwrap() error { return d.cause }

// Is lets errors.Is(err, Sentinel(ErrUnknownType)) work against the
// exported kind constants by comparing Kind, not identity.
func (d *Diagnostic) Is(target error) bool {
	if dk, ok := target.(*Diagnostic); ok {
		return dk.Kind == d.Kind
	}
	return false
}

func newDiag(kind DiagnosticKind, pos int) *Diagnostic {
	return &Diagnostic{Kind: kind, Position: pos}
}

func wrapDiag(kind DiagnosticKind, pos int, cause error) *Diagnostic {
	return &Diagnostic{Kind: kind, Position: pos, cause: errors.Wrap(cause, kind.String())}
}

// Sentinel returns a comparable zero-value Diagnostic for use with
// errors.Is, e.g. errors.Is(err, cprintf.Sentinel(cprintf.ErrUnknownType)).
func Sentinel(kind DiagnosticKind) error {
	return &Diagnostic{Kind: kind, Position: -1}
}
