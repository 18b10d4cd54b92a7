package cprintf

import (
	"reflect"

	"github.com/pkg/errors"
)

const ldigits = "0123456789abcdef"
const udigits = "0123456789ABCDEF"

// digitsOf converts magnitude into base (8, 10, or 16), per spec.md §4.4
// step 1. Digits are produced least significant first into a local
// buffer filled from its end, so the returned slice is most significant
// digit first.
func digitsOf(magnitude uint64, base uint64, alphabet string) []byte {
	if magnitude == 0 {
		return []byte{'0'}
	}
	var buf [64]byte
	i := len(buf)
	for magnitude > 0 {
		i--
		buf[i] = alphabet[magnitude%base]
		magnitude /= base
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}

// emitBytes writes every byte in b to the sink.
func emitBytes(s *sink, b []byte) *Diagnostic {
	for _, c := range b {
		if err := s.emit(c); err != nil {
			return wrapDiag(ErrSink, -1, err)
		}
	}
	return nil
}

func emitRepeat(s *sink, c byte, n int) *Diagnostic {
	for i := 0; i < n; i++ {
		if err := s.emit(c); err != nil {
			return wrapDiag(ErrSink, -1, err)
		}
	}
	return nil
}

// renderInteger implements the shared integer-rendering pipeline of
// spec.md §4.4 for d, i, u, o, x, X. natural holds the MSB-first digits
// of magnitude's base-b representation (precision-unpadded).
func renderInteger(s *sink, spec *Specifier, magnitude uint64, negative bool, base uint64, uppercase bool) *Diagnostic {
	alphabet := ldigits
	if uppercase {
		alphabet = udigits
	}

	// The zero-value-with-precision-0 case emits no digits at all.
	var natural []byte
	if spec.Precision == 0 && magnitude == 0 {
		natural = nil
		trace("cprintf: %c directive produces no output (precision 0, value 0)", spec.Verb)
	} else {
		natural = digitsOf(magnitude, base, alphabet)
	}
	digitCount := len(natural)

	precisionLength := digitCount
	precisionPadding := 0
	if spec.Precision >= 0 {
		if spec.Precision > digitCount {
			precisionPadding = spec.Precision - digitCount
		}
		precisionLength = digitCount + precisionPadding
	}

	var prefix []byte
	if spec.Verb == 'd' || spec.Verb == 'i' {
		switch {
		case negative:
			prefix = append(prefix, '-')
		case spec.AlwaysSign:
			prefix = append(prefix, '+')
		case spec.EmptySign:
			prefix = append(prefix, ' ')
		}
	}
	if spec.Verb == 'o' && spec.AlternateForm && precisionPadding == 0 && magnitude != 0 {
		prefix = append(prefix, '0')
	}
	if (spec.Verb == 'x' || spec.Verb == 'X') && spec.AlternateForm {
		if spec.Verb == 'x' {
			prefix = append(prefix, '0', 'x')
		} else {
			prefix = append(prefix, '0', 'X')
		}
	}

	widthPadding := 0
	if int(spec.Width) > precisionLength+len(prefix) {
		widthPadding = int(spec.Width) - precisionLength - len(prefix)
	}

	switch {
	case spec.ZeroPadded && !spec.LeftJustify && spec.Precision == -1:
		if d := emitBytes(s, prefix); d != nil {
			return d
		}
		if d := emitRepeat(s, '0', widthPadding); d != nil {
			return d
		}
		if d := emitRepeat(s, '0', precisionPadding); d != nil {
			return d
		}
		return emitBytes(s, natural)

	case spec.LeftJustify:
		if d := emitBytes(s, prefix); d != nil {
			return d
		}
		if d := emitRepeat(s, '0', precisionPadding); d != nil {
			return d
		}
		if d := emitBytes(s, natural); d != nil {
			return d
		}
		return emitRepeat(s, ' ', widthPadding)

	default:
		if d := emitRepeat(s, ' ', widthPadding); d != nil {
			return d
		}
		if d := emitBytes(s, prefix); d != nil {
			return d
		}
		if d := emitRepeat(s, '0', precisionPadding); d != nil {
			return d
		}
		return emitBytes(s, natural)
	}
}

// renderString implements %s (spec.md §4.4): a nil pointer with a
// non-zero (or unspecified) precision substitutes "(null)"; otherwise
// the string is bounded to precision bytes (full length if
// unspecified) and padded with spaces.
func renderString(s *sink, spec *Specifier, str string, isNil bool) *Diagnostic {
	if isNil {
		if spec.Precision != 0 {
			str = "(null)"
		} else {
			str = ""
		}
	}

	effLen := len(str)
	if spec.Precision >= 0 && spec.Precision < effLen {
		effLen = spec.Precision
	}
	str = str[:effLen]

	widthPadding := 0
	if int(spec.Width) > effLen {
		widthPadding = int(spec.Width) - effLen
	}

	if spec.LeftJustify {
		if d := emitBytes(s, []byte(str)); d != nil {
			return d
		}
		return emitRepeat(s, ' ', widthPadding)
	}
	if d := emitRepeat(s, ' ', widthPadding); d != nil {
		return d
	}
	return emitBytes(s, []byte(str))
}

// renderChar implements %c: pad-then-emit-one-byte or
// emit-then-pad, per LeftJustify.
func renderChar(s *sink, spec *Specifier, b byte) *Diagnostic {
	widthPadding := 0
	if int(spec.Width) > 1 {
		widthPadding = int(spec.Width) - 1
	}
	if spec.LeftJustify {
		if err := s.emit(b); err != nil {
			return wrapDiag(ErrSink, -1, err)
		}
		return emitRepeat(s, ' ', widthPadding)
	}
	if d := emitRepeat(s, ' ', widthPadding); d != nil {
		return d
	}
	if err := s.emit(b); err != nil {
		return wrapDiag(ErrSink, -1, err)
	}
	return nil
}

// renderPointer implements %p: a null pointer prints "(nil)"; otherwise
// the numeric value renders as %#x with width/left-justify preserved
// and precision forced to unspecified (Pass B already does the latter).
func renderPointer(s *sink, spec *Specifier, value uint64, isNil bool) *Diagnostic {
	if isNil {
		return renderString(s, &Specifier{Width: spec.Width, LeftJustify: spec.LeftJustify, Precision: -1}, "(nil)", false)
	}
	hexSpec := &Specifier{
		Width:         spec.Width,
		LeftJustify:   spec.LeftJustify,
		AlternateForm: true,
		Verb:          'x',
		Precision:     -1,
	}
	return renderInteger(s, hexSpec, value, false, 16, false)
}

// renderWriteback implements %n: write the current charactersWritten
// count into the pointee, sized by the pointee's own Go integer type.
// The directive's length modifier is not consulted: %hhn into an *int
// writes the full int.
func renderWriteback(s *sink, value argValue) *Diagnostic {
	if !value.writeback.IsValid() || !value.writeback.CanSet() {
		return newDiag(ErrNullWritebackTarget, -1)
	}
	n := int64(s.charactersWritten)
	switch value.writeback.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value.writeback.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		value.writeback.SetUint(uint64(n))
	default:
		return wrapDiag(ErrNullWritebackTarget, -1, errors.New("unsupported %n target kind"))
	}
	return nil
}
