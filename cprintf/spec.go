package cprintf

// mode is the whole call's positional/sequential election (spec.md
// §4.5): a single call is globally one or the other, decided by
// whether its first directive carries an "n$" position.
type mode int

const (
	modeUnknown mode = iota
	modeSequential
	modePositional
)

// sentinelSeq is the value PrecedingWidth/PrecedingPrecision take in
// sequential mode: "consume one int from the sequential stream." It is
// always exactly 1, never a count.
const sentinelSeq = 1

// parseSpecifier consumes the bytes of one directive following a
// leading '%' (not included in s) and returns the parsed Specifier, the
// number of bytes consumed from s, any Pass-B-relevant warnings raised
// while scanning flags, and a fatal Diagnostic if the directive itself
// is malformed.
//
// m is the call's already-elected mode, or modeUnknown if this is the
// first directive of the call and the driver has not yet elected one;
// in that case the position-prefix stage below decides it and the
// caller (the Driver) is expected to read it back off the returned
// Specifier's Position field.
//
// Grammar pipeline, in the fixed order spec.md §4.2 mandates: position
// -> flags -> width -> precision -> length -> type, with the one
// nuance that a bare leading decimal run not followed by '$' is
// reinterpreted as width and the flags stage is skipped entirely.
func parseSpecifier(s string, m mode, pos int) (*Specifier, int, []normalization, *Diagnostic) {
	spec := &Specifier{Precision: -1}
	var warns []normalization
	i := 0
	n := len(s)

	skipFlags := false

	// --- position prefix ---
	if i < n && s[i] >= '1' && s[i] <= '9' {
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		digits := s[start:i]
		if i < n && s[i] == '$' {
			spec.Position = atoiDigits(digits)
			i++
		} else {
			// Bare leading decimal: it is the width, not a position;
			// flags are not re-entered.
			spec.Width = uint(atoiDigits(digits))
			skipFlags = true
		}
	}

	effectiveMode := m
	if effectiveMode == modeUnknown {
		if spec.Position > 0 {
			effectiveMode = modePositional
		} else {
			effectiveMode = modeSequential
		}
	}

	// --- flags ---
	if !skipFlags {
		seen := map[byte]bool{}
	flagLoop:
		for i < n {
			c := s[i]
			var already bool
			switch c {
			case '-':
				already = spec.LeftJustify
				spec.LeftJustify = true
			case '+':
				already = spec.AlwaysSign
				spec.AlwaysSign = true
			case ' ':
				already = spec.EmptySign
				spec.EmptySign = true
			case '#':
				already = spec.AlternateForm
				spec.AlternateForm = true
			case '0':
				already = spec.ZeroPadded
				spec.ZeroPadded = true
			default:
				break flagLoop
			}
			if already && seen[c] {
				warns = append(warns, normRepeatedFlag)
			}
			seen[c] = true
			i++
		}
	}

	// --- width ---
	if !skipFlags {
		if i < n && s[i] == '*' {
			i++
			idx, consumed, ok := parsePositionalStar(s[i:], effectiveMode)
			if effectiveMode == modePositional && !ok {
				return nil, 0, warns, newDiag(ErrMissingPositionalWidth, pos)
			}
			spec.PrecedingWidth = idx
			i += consumed
		} else {
			digits, consumed := scanDigits(s[i:])
			if consumed > 0 {
				spec.Width = uint(atoiDigits(digits))
			}
			i += consumed
		}
	}

	// --- precision ---
	if i < n && s[i] == '.' {
		i++
		if i < n && s[i] == '*' {
			i++
			idx, consumed, ok := parsePositionalStar(s[i:], effectiveMode)
			if effectiveMode == modePositional && !ok {
				return nil, 0, warns, newDiag(ErrMissingPositionalPrecision, pos)
			}
			spec.PrecedingPrecision = idx
			i += consumed
		} else {
			digits, consumed := scanDigits(s[i:])
			if consumed > 0 {
				spec.Precision = atoiDigits(digits)
			} else {
				spec.Precision = 0
			}
			i += consumed
		}
	}

	// --- length ---
	if i+1 < n && ((s[i] == 'h' && s[i+1] == 'h') || (s[i] == 'l' && s[i+1] == 'l')) {
		if s[i] == 'h' {
			spec.LengthMod = LenHH
		} else {
			spec.LengthMod = LenLL
		}
		i += 2
	} else if i < n {
		switch s[i] {
		case 'h':
			spec.LengthMod = LenH
			i++
		case 'l':
			spec.LengthMod = LenL
			i++
		case 'j':
			spec.LengthMod = LenJ
			i++
		case 'z':
			spec.LengthMod = LenZ
			i++
		case 't':
			spec.LengthMod = LenT
			i++
		case 'L':
			spec.LengthMod = LenBigL
			i++
		}
	}

	// --- type ---
	if i >= n {
		return nil, 0, warns, newDiag(ErrUnknownType, pos)
	}
	verb := s[i]
	if !validVerb(verb) {
		return nil, 0, warns, newDiag(ErrUnknownType, pos)
	}
	spec.Verb = verb
	i++

	spec.Length = i + 1 // +1 for the leading '%' the caller stripped off
	return spec, i, warns, nil
}

// parsePositionalStar parses the "digits$" that must follow a '*' in
// positional mode (spec.md §4.5). In sequential mode it consumes
// nothing and returns the sequential sentinel.
func parsePositionalStar(s string, m mode) (idx int, consumed int, ok bool) {
	if m == modeSequential {
		return sentinelSeq, 0, true
	}
	digits, n := scanDigits(s)
	if n == 0 || n >= len(s) || s[n] != '$' {
		return 0, 0, false
	}
	return atoiDigits(digits), n + 1, true
}

func scanDigits(s string) (digits string, consumed int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], i
}

func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		d := int(s[i] - '0')
		if n > (intMax-d)/10 { // overflow: saturate
			return intMax
		}
		n = n*10 + d
	}
	return n
}

const intMax = int(^uint(0) >> 1)

func validVerb(b byte) bool {
	switch b {
	case 'd', 'i', 'u', 'o', 'x', 'X', 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A', 'c', 's', 'p', 'n':
		return true
	}
	return false
}

// floatVerb reports whether verb names one of the unimplemented
// floating-point conversions (spec.md §1 Out of scope).
func floatVerb(b byte) bool {
	switch b {
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}
