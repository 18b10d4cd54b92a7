package cprintf

import "reflect"

// argValue is the tagged-variant encoding of one retrieved variadic
// value (spec.md §9: "represent the positional slot value as a tagged
// variant over the retrievable types"). It plays the role of the
// spec's "opaque storage sized by the length class."
type argValue struct {
	kind argKind
	i64  int64
	u64  uint64
	str  string
	// ptrNil distinguishes a non-nil pointer (numeric value in u64)
	// from a nil one, for %p; for %s it marks a nil string argument.
	ptrNil bool
	// writeback, for %n, is the settable reflect.Value of the pointee.
	writeback reflect.Value
}

type argKind int

const (
	argInt argKind = iota
	argUint
	argString
	argPointer
	argWriteback
)

// intFromArg widens any Go integer kind to int64/uint64, mirroring the
// reflect-based dance in the teacher's intFromArg (print.go): C
// variadic calls always promote narrow integers to at least `int`
// before they reach printf, so any concrete width the caller passes is
// valid input here.
func intFromArg(v interface{}) (i64 int64, u64 uint64, signed bool, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), uint64(rv.Int()), true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), rv.Uint(), false, true
	}
	return 0, 0, false, false
}

// narrowSigned applies the hh/h/l/ll/j/z/t narrowing-by-assignment
// promotion rule of spec.md §4.7 to a retrieved signed integer.
func narrowSigned(v int64, length LengthMod) int64 {
	switch length {
	case LenHH:
		return int64(int8(v))
	case LenH:
		return int64(int16(v))
	default:
		return v
	}
}

// narrowUnsigned is narrowSigned's unsigned counterpart.
func narrowUnsigned(v uint64, length LengthMod) uint64 {
	switch length {
	case LenHH:
		return uint64(uint8(v))
	case LenH:
		return uint64(uint16(v))
	default:
		return v
	}
}

// retrieveValue pulls one value of the declared (verb, length) out of
// args[idx], applying the promotion/narrowing rules of spec.md §4.7.
func retrieveValue(args []interface{}, idx int, verb byte, length LengthMod) (argValue, *Diagnostic) {
	if idx < 0 || idx >= len(args) {
		return argValue{}, newDiag(ErrNullTemplate, -1)
	}
	v := args[idx]

	switch verb {
	case 'd', 'i':
		i64, _, _, ok := intFromArg(v)
		if !ok {
			return argValue{}, newDiag(ErrIncompatibleLengthType, -1)
		}
		return argValue{kind: argInt, i64: narrowSigned(i64, length)}, nil

	case 'u', 'o', 'x', 'X':
		_, u64, _, ok := intFromArg(v)
		if !ok {
			return argValue{}, newDiag(ErrIncompatibleLengthType, -1)
		}
		return argValue{kind: argUint, u64: narrowUnsigned(u64, length)}, nil

	case 'c':
		// %c's argument is retrieved as an int and narrowed to an
		// unsigned byte.
		i64, u64, signed, ok := intFromArg(v)
		if !ok {
			return argValue{}, newDiag(ErrIncompatibleLengthType, -1)
		}
		var b byte
		if signed {
			b = byte(i64)
		} else {
			b = byte(u64)
		}
		return argValue{kind: argUint, u64: uint64(b)}, nil

	case 's':
		if v == nil {
			return argValue{kind: argString, ptrNil: true}, nil
		}
		s, ok := v.(string)
		if !ok {
			if bs, ok2 := v.([]byte); ok2 {
				s = string(bs)
			} else {
				return argValue{}, newDiag(ErrIncompatibleLengthType, -1)
			}
		}
		return argValue{kind: argString, str: s}, nil

	case 'p':
		if v == nil {
			return argValue{kind: argPointer, ptrNil: true}, nil
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr, reflect.UnsafePointer:
			if rv.IsNil() {
				return argValue{kind: argPointer, ptrNil: true}, nil
			}
			return argValue{kind: argPointer, u64: uint64(rv.Pointer())}, nil
		case reflect.Uintptr:
			return argValue{kind: argPointer, u64: rv.Uint()}, nil
		default:
			return argValue{}, newDiag(ErrIncompatibleLengthType, -1)
		}

	case 'n':
		if v == nil {
			return argValue{}, newDiag(ErrNullWritebackTarget, -1)
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return argValue{}, newDiag(ErrNullWritebackTarget, -1)
		}
		elem := rv.Elem()
		if !elem.CanSet() {
			return argValue{}, newDiag(ErrNullWritebackTarget, -1)
		}
		return argValue{kind: argWriteback, writeback: elem}, nil

	default:
		// Floating point family: unimplemented, per spec.md §1.
		return argValue{}, newDiag(ErrUnimplementedVerb, -1)
	}
}

// retrieveInt pulls a plain int argument, for preceding width/precision
// values and positional-slot int references.
func retrieveInt(args []interface{}, idx int) (int, *Diagnostic) {
	if idx < 0 || idx >= len(args) {
		return 0, newDiag(ErrNullTemplate, -1)
	}
	i64, u64, signed, ok := intFromArg(args[idx])
	if !ok {
		return 0, newDiag(ErrIncompatibleLengthType, -1)
	}
	if signed {
		return int(i64), nil
	}
	return int(u64), nil
}

// normalizePrecedingWidth applies spec.md §4.7's negative-width
// reinterpretation: negative ⇒ set LeftJustify and use the absolute
// value, with the most-negative int saturating to the largest positive
// int.
func normalizePrecedingWidth(spec *Specifier, raw int) {
	if raw < 0 {
		spec.LeftJustify = true
		if raw == -intMax-1 {
			spec.Width = uint(intMax)
		} else {
			spec.Width = uint(-raw)
		}
		return
	}
	spec.Width = uint(raw)
}

// normalizePrecedingPrecision applies spec.md §4.7's negative-precision
// reinterpretation: negative ⇒ treat as unspecified.
func normalizePrecedingPrecision(spec *Specifier, raw int) {
	if raw < 0 {
		spec.Precision = -1
		return
	}
	spec.Precision = raw
}

// positionalCache holds the argValue popped for every slot of a
// positional call, indexed by slot (position - 1), populated before any
// rendering begins (spec.md §4.7).
type positionalCache struct {
	values []argValue
}

// populatePositionalCache pops one argument per slot, in index order (declaration
// order), matching spec.md §5's ordering requirement exactly.
func populatePositionalCache(args []interface{}, p *planner) (*positionalCache, *Diagnostic) {
	cache := &positionalCache{values: make([]argValue, len(p.slots))}
	max := p.maxPosition()
	for i := 0; i < max; i++ {
		decl := p.slots[i]
		if !decl.assigned {
			continue
		}
		v, diag := retrieveValue(args, i, decl.verb, decl.length)
		if diag != nil {
			return nil, diag
		}
		cache.values[i] = v
	}
	return cache, nil
}
