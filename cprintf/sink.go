package cprintf

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// sinkKind tags which of the four OutputSink variants a sink is.
type sinkKind int

const (
	sinkStream sinkKind = iota
	sinkFD
	sinkBuffer
	sinkAlloc
)

// sink is the Go encoding of spec.md §3's OutputSink: a tagged variant
// over {byte stream, file descriptor, caller buffer, allocated buffer}
// with a monotonic write counter and an optional length cap.
//
// charactersWritten counts characters that *would* have been written
// even when a cap truncates (spec.md §4.1), matching the return-value
// contract of the fifteen public entries.
type sink struct {
	kind sinkKind

	charactersWritten int
	characterLimit    int  // sinkBuffer cap; meaningless when unbounded
	unbounded         bool // sinkBuffer: no cap at all (the "to caller buffer, unbounded" entry)

	w  io.Writer // sinkStream
	fd int       // sinkFD

	buf       []byte // sinkBuffer: caller-owned backing array
	bufOffset int

	alloc []byte // sinkAlloc: grown here, transferred to the caller at completion
}

func newStreamSink(w io.Writer) *sink {
	return &sink{kind: sinkStream, w: w}
}

func newFDSink(fd int) *sink {
	return &sink{kind: sinkFD, fd: fd}
}

// newBufferSinkCapped wraps a caller-supplied buffer with an explicit
// cap, per spec.md §4.1's literal semantics: a cap of 0 suppresses
// every write (mirroring `snprintf(buf, 0, ...)`); otherwise the final
// slot is reserved for the terminator written at completion.
func newBufferSinkCapped(buf []byte, limit int) *sink {
	return &sink{kind: sinkBuffer, buf: buf, characterLimit: limit}
}

// newBufferSinkUnbounded wraps a caller-supplied buffer with no cap at
// all — the "to caller buffer, unbounded" entry of spec.md §6, modeled
// on C's uncapped sprintf(). Unlike C, writing past the end of the
// caller's buffer is reported as a sink error instead of corrupting
// memory, since Go has no equivalent undefined behavior to fall back
// on.
func newBufferSinkUnbounded(buf []byte) *sink {
	return &sink{kind: sinkBuffer, buf: buf, unbounded: true}
}

func newAllocSink() *sink {
	return &sink{kind: sinkAlloc, alloc: make([]byte, 0, 64)}
}

// emit writes one byte to the sink's destination, per the semantics of
// spec.md §4.1. It returns a non-nil error on I/O failure.
func (s *sink) emit(b byte) (err error) {
	switch s.kind {
	case sinkStream:
		if _, werr := s.w.Write([]byte{b}); werr != nil {
			return errors.Wrap(werr, "stream sink write")
		}
		s.charactersWritten++
		return nil

	case sinkFD:
		// Single-byte write per call, no EINTR retry: spec.md §4.1 and
		// §9 both call out that the source does not retry, and that
		// choice is preserved here against the raw syscall boundary.
		n, werr := unix.Write(s.fd, []byte{b})
		if werr != nil || n != 1 {
			if werr == nil {
				werr = errors.New("short write")
			}
			return errors.Wrap(werr, "fd sink write")
		}
		s.charactersWritten++
		return nil

	case sinkBuffer:
		if s.unbounded {
			if s.bufOffset >= len(s.buf) {
				return wrapDiag(ErrSink, -1, errors.New("unbounded buffer sink exhausted caller's backing array"))
			}
			s.buf[s.bufOffset] = b
			s.bufOffset++
			s.charactersWritten++
			return nil
		}
		if s.characterLimit == 0 || s.bufOffset >= s.characterLimit-1 {
			// Reserve the final slot for the terminator; suppress the
			// write but still count it.
			s.charactersWritten++
			return nil
		}
		s.buf[s.bufOffset] = b
		s.bufOffset++
		s.charactersWritten++
		return nil

	case sinkAlloc:
		if len(s.alloc) == cap(s.alloc) {
			if !s.growAlloc() {
				return wrapDiag(ErrAllocation, -1, errors.New("buffer growth overflow"))
			}
		}
		s.alloc = append(s.alloc, b)
		s.charactersWritten++
		return nil
	}
	panic("cprintf: unknown sink kind")
}

// growAlloc doubles the allocated buffer's capacity (starting at 64 from
// an empty buffer), failing rather than overflowing per spec.md §9's
// mandated strategy. Returns false if doubling would overflow int.
func (s *sink) growAlloc() bool {
	oldCap := cap(s.alloc)
	newCap := oldCap * 2
	if newCap <= oldCap { // overflow or oldCap == 0
		if oldCap == 0 {
			newCap = 64
		} else {
			return false
		}
	}
	grown := make([]byte, len(s.alloc), newCap)
	copy(grown, s.alloc)
	s.alloc = grown
	return true
}

// finish terminates the sink per spec.md §3's lifecycle: zero-terminate
// caller buffers (growing the allocated buffer with growAlloc if full first),
// and for the allocated sink, return the final owned string.
func (s *sink) finish() (allocated string) {
	switch s.kind {
	case sinkBuffer:
		if len(s.buf) > 0 {
			term := s.bufOffset
			if !s.unbounded && s.characterLimit > 0 && term > s.characterLimit-1 {
				term = s.characterLimit - 1
			}
			if term < len(s.buf) {
				s.buf[term] = 0
			}
		}
	case sinkAlloc:
		if len(s.alloc) == cap(s.alloc) {
			s.growAlloc()
		}
		s.alloc = append(s.alloc, 0)
		allocated = string(s.alloc[:len(s.alloc)-1])
	}
	return allocated
}
