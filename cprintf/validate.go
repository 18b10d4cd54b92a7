package cprintf

// validateLength is Pass A of spec.md §4.3: rejects illegal
// (length, type) pairs. Fatal.
func validateLength(spec *Specifier, pos int) *Diagnostic {
	switch spec.Verb {
	case 'd', 'i', 'n', 'u', 'o', 'x', 'X':
		switch spec.LengthMod {
		case LenNone, LenHH, LenH, LenL, LenLL, LenJ, LenZ, LenT:
			return nil
		default:
			return newDiag(ErrIncompatibleLengthType, pos)
		}
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		switch spec.LengthMod {
		case LenNone, LenBigL:
			return nil
		default:
			return newDiag(ErrIncompatibleLengthType, pos)
		}
	case 'c', 's':
		switch spec.LengthMod {
		case LenNone, LenL:
			return nil
		default:
			return newDiag(ErrIncompatibleLengthType, pos)
		}
	case 'p':
		if spec.LengthMod != LenNone {
			return newDiag(ErrIncompatibleLengthType, pos)
		}
		return nil
	}
	return newDiag(ErrUnknownType, pos)
}

// normalizeFlags is Pass B of spec.md §4.3: silently clears flag/field
// combinations that are either redundant or meaningless for this verb,
// run once just before dispatch to the renderer. It returns the
// category of the last normalisation applied, for diagnostic/test use
// only.
func normalizeFlags(spec *Specifier) normalization {
	last := normNone

	if spec.AlwaysSign && spec.EmptySign {
		spec.EmptySign = false
		last = normFlagNoEffect
	}

	switch spec.Verb {
	case 'd', 'i':
		if spec.AlternateForm {
			spec.AlternateForm = false
			last = normFlagNoEffect
		}
	case 'u':
		if spec.AlternateForm {
			spec.AlternateForm = false
			last = normFlagNoEffect
		}
	case 'x', 'X':
		if spec.AlwaysSign || spec.EmptySign {
			spec.AlwaysSign = false
			spec.EmptySign = false
			last = normFlagNoEffect
		}
	case 'o':
		// alternate form is meaningful for o; nothing to clear here.
	case 'c', 's', 'p':
		if spec.AlwaysSign || spec.EmptySign || spec.AlternateForm || spec.ZeroPadded {
			spec.AlwaysSign = false
			spec.EmptySign = false
			spec.AlternateForm = false
			spec.ZeroPadded = false
			last = normFlagNoEffect
		}
		if spec.Verb != 's' && spec.Precision != -1 {
			spec.Precision = -1
			last = normPrecisionNoEffect
		}
	case 'n':
		if spec.LeftJustify || spec.AlwaysSign || spec.EmptySign || spec.AlternateForm || spec.ZeroPadded {
			spec.LeftJustify = false
			spec.AlwaysSign = false
			spec.EmptySign = false
			spec.AlternateForm = false
			spec.ZeroPadded = false
			last = normFlagNoEffect
		}
		if spec.Width != 0 {
			spec.Width = 0
			last = normWidthNoEffect
		}
		if spec.Precision != -1 {
			spec.Precision = -1
			last = normPrecisionNoEffect
		}
		// PrecedingWidth / PrecedingPrecision survive so argument
		// retrieval ordering is not disturbed (spec.md §4.3).
		//
		// %n never emits a character to the sink regardless of what
		// flags/fields it carried, so it always reports as the
		// "produces no output" category, overriding whichever
		// field-specific warning fired above.
		last = normNoOutput
	}

	if spec.ZeroPadded && spec.LeftJustify {
		spec.ZeroPadded = false
		last = normFlagNoEffect
	}
	if spec.ZeroPadded && spec.Precision != -1 {
		spec.ZeroPadded = false
		last = normFlagNoEffect
	}

	return last
}
