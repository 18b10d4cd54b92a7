// Package cprintf implements the C99/POSIX printf family of formatted
// output routines: a format-specifier parser, a positional argument
// retrieval engine, and a numeric/string rendering pipeline, over four
// kinds of output sink (byte stream, file descriptor, caller buffer,
// allocated buffer).
package cprintf

// LengthMod is the `h|hh|l|ll|j|z|t|L` length modifier of a directive.
type LengthMod int

const (
	LenNone LengthMod = iota
	LenHH
	LenH
	LenL
	LenLL
	LenJ
	LenZ
	LenT
	LenBigL
)

func (l LengthMod) String() string {
	switch l {
	case LenNone:
		return ""
	case LenHH:
		return "hh"
	case LenH:
		return "h"
	case LenL:
		return "l"
	case LenLL:
		return "ll"
	case LenJ:
		return "j"
	case LenZ:
		return "z"
	case LenT:
		return "t"
	case LenBigL:
		return "L"
	default:
		return "?"
	}
}

// verbError marks a Specifier whose type letter could not be parsed.
const verbError byte = 0

// Specifier is the parsed description of a single '%...' directive.
//
// PrecedingWidth and PrecedingPrecision share one encoding: 0 means the
// field is absent; a positive value means either "take the next
// sequential int argument" (sequential mode, where the value is always
// exactly 1 and is a sentinel, not a count) or a 1-based positional
// index (positional mode).
type Specifier struct {
	Length             int
	LeftJustify        bool
	AlwaysSign         bool
	EmptySign          bool
	AlternateForm      bool
	ZeroPadded         bool
	PrecedingWidth     int
	Width              uint
	PrecedingPrecision int
	Precision          int
	LengthMod          LengthMod
	Verb               byte
	Position           int
}

// poisoned reports whether the type letter failed to parse.
func (s *Specifier) poisoned() bool { return s.Verb == verbError }

// normalization records which Pass-B warning category, if any, was the
// last one applied while normalising this specifier. Exposed for tests
// and diagnostic helpers only (spec.md §7), never through the public
// entry points.
type normalization int

const (
	normNone normalization = iota
	normFlagNoEffect
	normRepeatedFlag
	normWidthNoEffect
	normPrecisionNoEffect
	normNoOutput
)

func (n normalization) String() string {
	switch n {
	case normNone:
		return "none"
	case normFlagNoEffect:
		return "flag has no effect"
	case normRepeatedFlag:
		return "repeated flag"
	case normWidthNoEffect:
		return "width does nothing"
	case normPrecisionNoEffect:
		return "precision does nothing"
	case normNoOutput:
		return "directive produces no output"
	default:
		return "unknown"
	}
}

// Args is a pre-captured handle over a call's variadic argument
// sequence, letting a caller build the argument list once (e.g. from a
// va_list-like source) and reuse it across several of the fifteen
// public entries.
type Args struct {
	values []interface{}
}

// CaptureArgs builds a pre-captured argument handle.
func CaptureArgs(values ...interface{}) Args {
	return Args{values: append([]interface{}(nil), values...)}
}
