package cprintf

import "testing"

func TestDiagnosticsReportsNormalizationCategories(t *testing.T) {
	out, err := Diagnostics("%-05d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected at least one normalisation category for %%-05d")
	}
}

func TestDiagnosticsRejectsIncompatibleLengthType(t *testing.T) {
	_, err := Diagnostics("%hhs")
	if err == nil {
		t.Fatal("expected Diagnostics to reject %hhs (hh illegal for s) the same way Sprintf does")
	}
	d, ok := err.(*Diagnostic)
	if !ok || d.Kind != ErrIncompatibleLengthType {
		t.Fatalf("expected ErrIncompatibleLengthType, got %v", err)
	}
}

func TestDiagnosticsAgreesWithSprintfOnLengthLegality(t *testing.T) {
	cases := []string{"%hhs", "%lp", "%Ld"}
	for _, tmpl := range cases {
		_, diagErr := Diagnostics(tmpl)
		_, sprintfErr := Sprintf(tmpl, "x")
		if (diagErr == nil) != (sprintfErr == nil) {
			t.Fatalf("%s: Diagnostics err=%v, Sprintf err=%v (must agree)", tmpl, diagErr, sprintfErr)
		}
	}
}
