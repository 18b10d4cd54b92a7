package cprintf

import "testing"

func TestValidateLengthAcceptsIntegerFamilyModifiers(t *testing.T) {
	for _, lm := range []LengthMod{LenNone, LenHH, LenH, LenL, LenLL, LenJ, LenZ, LenT} {
		spec := &Specifier{Verb: 'd', LengthMod: lm}
		if d := validateLength(spec, 0); d != nil {
			t.Fatalf("%v: unexpected diagnostic: %v", lm, d)
		}
	}
}

func TestValidateLengthRejectsHHOnC(t *testing.T) {
	spec := &Specifier{Verb: 'c', LengthMod: LenHH}
	d := validateLength(spec, 0)
	if d == nil || d.Kind != ErrIncompatibleLengthType {
		t.Fatalf("expected ErrIncompatibleLengthType, got %v", d)
	}
}

func TestValidateLengthAcceptsLOnS(t *testing.T) {
	spec := &Specifier{Verb: 's', LengthMod: LenL}
	if d := validateLength(spec, 0); d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
}

func TestValidateLengthRejectsAnyModifierOnP(t *testing.T) {
	spec := &Specifier{Verb: 'p', LengthMod: LenL}
	d := validateLength(spec, 0)
	if d == nil || d.Kind != ErrIncompatibleLengthType {
		t.Fatalf("expected ErrIncompatibleLengthType, got %v", d)
	}
}

func TestValidateLengthRejectsUnknownVerb(t *testing.T) {
	spec := &Specifier{Verb: 'k'}
	d := validateLength(spec, 0)
	if d == nil || d.Kind != ErrUnknownType {
		t.Fatalf("expected ErrUnknownType, got %v", d)
	}
}

func TestNormalizeFlagsClearsAlternateFormOnDecimal(t *testing.T) {
	spec := &Specifier{Verb: 'd', AlternateForm: true}
	if got := normalizeFlags(spec); got != normFlagNoEffect {
		t.Fatalf("normalization = %v, want normFlagNoEffect", got)
	}
	if spec.AlternateForm {
		t.Fatalf("AlternateForm not cleared for %%d")
	}
}

func TestNormalizeFlagsClearsSignFlagsOnHex(t *testing.T) {
	spec := &Specifier{Verb: 'x', AlwaysSign: true}
	normalizeFlags(spec)
	if spec.AlwaysSign {
		t.Fatalf("AlwaysSign not cleared for %%x")
	}
}

func TestNormalizeFlagsPreservesStringPrecision(t *testing.T) {
	spec := &Specifier{Verb: 's', Precision: 3}
	normalizeFlags(spec)
	if spec.Precision != 3 {
		t.Fatalf("precision = %d, want 3 (s truncates, precision must survive)", spec.Precision)
	}
}

func TestNormalizeFlagsClearsPrecisionOnCharAndPointer(t *testing.T) {
	for _, verb := range []byte{'c', 'p'} {
		spec := &Specifier{Verb: verb, Precision: 4}
		normalizeFlags(spec)
		if spec.Precision != -1 {
			t.Fatalf("%c: precision = %d, want -1", verb, spec.Precision)
		}
	}
}

func TestNormalizeFlagsZeroPadYieldsToLeftJustify(t *testing.T) {
	spec := &Specifier{Verb: 'd', ZeroPadded: true, LeftJustify: true}
	normalizeFlags(spec)
	if spec.ZeroPadded {
		t.Fatal("ZeroPadded not cleared when LeftJustify also set")
	}
}

func TestNormalizeFlagsZeroPadYieldsToExplicitPrecision(t *testing.T) {
	spec := &Specifier{Verb: 'd', ZeroPadded: true, Precision: 2}
	normalizeFlags(spec)
	if spec.ZeroPadded {
		t.Fatal("ZeroPadded not cleared when precision is explicit")
	}
}

func TestNormalizeFlagsNPreservesPositionalSlotReferences(t *testing.T) {
	spec := &Specifier{Verb: 'n', PrecedingWidth: 3, PrecedingPrecision: 4, Width: 5}
	normalizeFlags(spec)
	if spec.PrecedingWidth != 3 || spec.PrecedingPrecision != 4 {
		t.Fatalf("spec = %+v, preceding slot references must survive", spec)
	}
	if spec.Width != 0 {
		t.Fatal("Width not cleared for %n")
	}
}

func TestNormalizeFlagsNReportsNoOutput(t *testing.T) {
	spec := &Specifier{Verb: 'n', Precision: -1}
	if got := normalizeFlags(spec); got != normNoOutput {
		t.Fatalf("normalization = %v, want normNoOutput", got)
	}

	// A %n whose width and precision are also cleared still reports
	// normNoOutput rather than the width/precision category: the
	// category describes the verb, not a side effect.
	spec = &Specifier{Verb: 'n', Width: 4, Precision: 2}
	if got := normalizeFlags(spec); got != normNoOutput {
		t.Fatalf("normalization = %v, want normNoOutput even when width/precision also cleared", got)
	}
}
