package cprintf

import "testing"

func TestPlannerDeclareAndGrow(t *testing.T) {
	p := newPlanner()
	if d := p.declare(20, 'd', LenNone); d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if len(p.slots) < 20 {
		t.Fatalf("slots did not grow: len=%d", len(p.slots))
	}
	if p.maxPosition() != 20 {
		t.Fatalf("maxPosition = %d, want 20", p.maxPosition())
	}
}

func TestPlannerConflictingRedeclarationFails(t *testing.T) {
	p := newPlanner()
	if d := p.declare(1, 'd', LenNone); d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	d := p.declare(1, 's', LenNone)
	if d == nil || d.Kind != ErrPositionalSlotConflict {
		t.Fatalf("expected ErrPositionalSlotConflict, got %v", d)
	}
}

func TestPlannerSameDeclarationTwiceIsFine(t *testing.T) {
	p := newPlanner()
	if d := p.declare(3, 'x', LenLL); d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if d := p.declare(3, 'x', LenLL); d != nil {
		t.Fatalf("unexpected diagnostic on matching redeclare: %v", d)
	}
}

func TestPlannerVerifyCompleteCatchesGap(t *testing.T) {
	p := newPlanner()
	p.declare(1, 'd', LenNone)
	p.declare(3, 'd', LenNone)
	d := p.verifyComplete()
	if d == nil || d.Kind != ErrPositionalSlotUnassigned {
		t.Fatalf("expected ErrPositionalSlotUnassigned, got %v", d)
	}
}

func TestSweepTemplateDeclaresWidthAndPrecisionSlots(t *testing.T) {
	p, diag := sweepTemplate("%1$*2$.*3$d")
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	if p.maxPosition() != 3 {
		t.Fatalf("maxPosition = %d, want 3", p.maxPosition())
	}
	if p.slots[1].verb != 'i' || p.slots[2].verb != 'i' {
		t.Fatalf("width/precision slots not declared as plain ints: %+v", p.slots[:3])
	}
}

func TestSweepTemplateMissingPositionIsFatal(t *testing.T) {
	_, diag := sweepTemplate("%1$d %d")
	if diag == nil {
		t.Fatal("expected diagnostic for a directive missing its position in positional mode")
	}
}

func TestSweepTemplateUnassignedGapIsFatal(t *testing.T) {
	_, diag := sweepTemplate("%1$d %3$d")
	if diag == nil || diag.Kind != ErrPositionalSlotUnassigned {
		t.Fatalf("expected ErrPositionalSlotUnassigned, got %v", diag)
	}
}
