package cprintf

import (
	"io"
	"os"
)

// Fprintf formats according to a template and writes to w. Returns the
// count that would have been produced on success, or -1 with the
// Diagnostic on failure.
func Fprintf(w io.Writer, format string, args ...interface{}) (int, error) {
	return runToSink(newStreamSink(w), format, args)
}

// FprintfArgs is Fprintf over a pre-captured argument handle.
func FprintfArgs(w io.Writer, format string, args Args) (int, error) {
	return runToSink(newStreamSink(w), format, args.values)
}

// Printf formats according to a template and writes to the process's
// default output stream (os.Stdout). The core driver does not own
// os.Stdout; this entry and PrintfArgs are the only places that
// reference it (spec.md §9's "global default output stream" note).
func Printf(format string, args ...interface{}) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}

// PrintfArgs is Printf over a pre-captured argument handle.
func PrintfArgs(format string, args Args) (int, error) {
	return FprintfArgs(os.Stdout, format, args)
}

// Sprintf formats according to a template and returns the result.
func Sprintf(format string, args ...interface{}) (string, error) {
	s := newAllocSink()
	n, diag := runDriverChecked(s, format, args)
	if diag != nil {
		return "", diag
	}
	out := s.finish()
	_ = n
	return out, nil
}

// SprintfArgs is Sprintf over a pre-captured argument handle.
func SprintfArgs(format string, args Args) (string, error) {
	return Sprintf(format, args.values...)
}

// Snprintf formats into a caller-supplied, length-bounded buffer. The
// returned count is the number of bytes that would have been produced,
// not necessarily the count actually stored when len(buf) truncates
// (spec.md §6).
func Snprintf(buf []byte, format string, args ...interface{}) (int, error) {
	s := newBufferSinkCapped(buf, len(buf))
	n, diag := runDriverChecked(s, format, args)
	if diag != nil {
		return -1, diag
	}
	s.finish()
	return n, nil
}

// SnprintfArgs is Snprintf over a pre-captured argument handle.
func SnprintfArgs(buf []byte, format string, args Args) (int, error) {
	return Snprintf(buf, format, args.values...)
}

// SprintfBuf formats into a caller-supplied buffer with no cap at all,
// the "to caller buffer, unbounded" entry of spec.md §6 (mirroring
// plain C sprintf()). It is the caller's responsibility to ensure buf
// is large enough; writing past its end is reported as an error rather
// than corrupting memory.
func SprintfBuf(buf []byte, format string, args ...interface{}) (int, error) {
	s := newBufferSinkUnbounded(buf)
	n, diag := runDriverChecked(s, format, args)
	if diag != nil {
		return -1, diag
	}
	s.finish()
	return n, nil
}

// SprintfBufArgs is SprintfBuf over a pre-captured argument handle.
func SprintfBufArgs(buf []byte, format string, args Args) (int, error) {
	return SprintfBuf(buf, format, args.values...)
}

// Asprintf formats into a freshly allocated buffer whose ownership
// transfers to the caller (as a Go string, the natural
// ownership-transfer shape in a garbage-collected language) and returns
// both the string and the produced length.
func Asprintf(format string, args ...interface{}) (string, int, error) {
	s := newAllocSink()
	n, diag := runDriverChecked(s, format, args)
	if diag != nil {
		return "", -1, diag
	}
	out := s.finish()
	return out, n, nil
}

// AsprintfArgs is Asprintf over a pre-captured argument handle.
func AsprintfArgs(format string, args Args) (string, int, error) {
	return Asprintf(format, args.values...)
}

// Fdprintf formats and writes directly to a raw file descriptor, one
// byte per emit call (spec.md §4.1's fd sink variant).
func Fdprintf(fd int, format string, args ...interface{}) (int, error) {
	return runToSink(newFDSink(fd), format, args)
}

// FdprintfArgs is Fdprintf over a pre-captured argument handle.
func FdprintfArgs(fd int, format string, args Args) (int, error) {
	return runToSink(newFDSink(fd), format, args.values)
}

// VFprintf is Fprintf taking its arguments already captured as a
// handle, named for the C va_list-taking vfprintf shape.
func VFprintf(w io.Writer, format string, args Args) (int, error) {
	return FprintfArgs(w, format, args)
}

func runToSink(s *sink, format string, args []interface{}) (int, error) {
	n, diag := runDriverChecked(s, format, args)
	if diag != nil {
		return -1, diag
	}
	return n, nil
}

// runDriverChecked guards the null-template case of spec.md §7; a
// Go string can't be a null pointer the way a C template can, so the
// one remaining null case this library surfaces is a nil sink.
func runDriverChecked(s *sink, format string, args []interface{}) (int, *Diagnostic) {
	if s == nil {
		return -1, newDiag(ErrNullTemplate, -1)
	}
	return runDriver(s, format, args)
}
