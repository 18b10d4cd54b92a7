package cprintf

// runDriver is the single pass over the template described in spec.md
// §4.8: walk, dispatch literal bytes, parse one directive per '%',
// elect positional-vs-sequential mode on the first directive, resolve
// preceding '*' width/precision, normalise, render, advance.
func runDriver(sk *sink, template string, args []interface{}) (int, *Diagnostic) {
	n := len(template)
	i := 0
	m := modeUnknown
	var cache *positionalCache
	argNum := 0

	for i < n {
		if template[i] != '%' {
			if err := sk.emit(template[i]); err != nil {
				return -1, wrapDiag(ErrSink, i, err)
			}
			i++
			continue
		}
		i++
		if i < n && template[i] == '%' {
			if err := sk.emit('%'); err != nil {
				return -1, wrapDiag(ErrSink, i, err)
			}
			i++
			continue
		}

		spec, consumed, _, diag := parseSpecifier(template[i:], m, i)
		if diag != nil {
			return -1, diag
		}
		if diag := validateLength(spec, i); diag != nil {
			return -1, diag
		}

		if m == modeUnknown {
			if spec.Position > 0 {
				m = modePositional
				trace("cprintf: electing positional mode at offset %d", i)
				p, d := sweepTemplate(template)
				if d != nil {
					return -1, d
				}
				var d2 *Diagnostic
				cache, d2 = populatePositionalCache(args, p)
				if d2 != nil {
					return -1, d2
				}
			} else {
				m = modeSequential
				trace("cprintf: electing sequential mode at offset %d", i)
			}
		} else if (m == modePositional) != (spec.Position > 0) {
			return -1, newDiag(ErrPositionalModeMismatch, i)
		}

		if spec.PrecedingWidth > 0 {
			raw, d := resolveIntSlot(args, cache, m, spec.PrecedingWidth, &argNum)
			if d != nil {
				return -1, d
			}
			normalizePrecedingWidth(spec, raw)
		}
		if spec.PrecedingPrecision > 0 {
			raw, d := resolveIntSlot(args, cache, m, spec.PrecedingPrecision, &argNum)
			if d != nil {
				return -1, d
			}
			normalizePrecedingPrecision(spec, raw)
		}

		if n := normalizeFlags(spec); n != normNone {
			trace("cprintf: normalisation %v applied at offset %d", n, i)
		}

		if floatVerb(spec.Verb) {
			return -1, newDiag(ErrUnimplementedVerb, i)
		}

		var value argValue
		if m == modePositional {
			value = cache.values[spec.Position-1]
		} else {
			var d *Diagnostic
			value, d = retrieveValue(args, argNum, spec.Verb, spec.LengthMod)
			if d != nil {
				return -1, d
			}
			argNum++
		}

		if d := dispatchRender(sk, spec, value); d != nil {
			return -1, d
		}

		i += consumed
	}

	return sk.charactersWritten, nil
}

// resolveIntSlot fetches the int backing a preceding width/precision
// field: from the positional cache in positional mode (index is a
// 1-based slot position), or from the sequential argument stream
// otherwise (index is ignored; the sentinel is always 1).
func resolveIntSlot(args []interface{}, cache *positionalCache, m mode, slotIdxOrSentinel int, argNum *int) (int, *Diagnostic) {
	if m == modePositional {
		if slotIdxOrSentinel-1 < 0 || slotIdxOrSentinel-1 >= len(cache.values) {
			return 0, newDiag(ErrPositionalSlotUnassigned, -1)
		}
		return int(cache.values[slotIdxOrSentinel-1].i64), nil
	}
	v, d := retrieveInt(args, *argNum)
	if d != nil {
		return 0, d
	}
	*argNum++
	return v, nil
}

// dispatchRender routes to the correct renderer by verb, per spec.md
// §4.4.
func dispatchRender(sk *sink, spec *Specifier, value argValue) *Diagnostic {
	switch spec.Verb {
	case 'd', 'i':
		magnitude := uint64(value.i64)
		negative := value.i64 < 0
		if negative {
			magnitude = uint64(-(value.i64+1)) + 1
		}
		return renderInteger(sk, spec, magnitude, negative, 10, false)
	case 'u':
		return renderInteger(sk, spec, value.u64, false, 10, false)
	case 'o':
		return renderInteger(sk, spec, value.u64, false, 8, false)
	case 'x':
		return renderInteger(sk, spec, value.u64, false, 16, false)
	case 'X':
		return renderInteger(sk, spec, value.u64, false, 16, true)
	case 'c':
		return renderChar(sk, spec, byte(value.u64))
	case 's':
		return renderString(sk, spec, value.str, value.ptrNil)
	case 'p':
		return renderPointer(sk, spec, value.u64, value.ptrNil)
	case 'n':
		return renderWriteback(sk, value)
	}
	return newDiag(ErrUnknownType, -1)
}
