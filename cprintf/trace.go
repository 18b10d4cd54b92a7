package cprintf

import "log"

// traceLogger, when non-nil, receives a line for each mode election and
// normalisation the driver performs, plus one from the integer renderer
// whenever a precision-0, value-0 directive produces no digits. It
// exists purely for the CLI demo and for tests that want to observe
// driver decisions; it never changes what is rendered. No logging library
// appears anywhere in the retrieval pack for this spec, so this stays
// on the standard log package, matching the teacher's own minimal
// command-line tooling.
var traceLogger *log.Logger

// SetTraceLogger installs (or, with nil, removes) a logger that
// receives driver-decision trace lines. Not part of the fifteen
// public entry points; a debug/observability seam only.
func SetTraceLogger(l *log.Logger) {
	traceLogger = l
}

func trace(format string, v ...interface{}) {
	if traceLogger != nil {
		traceLogger.Printf(format, v...)
	}
}
