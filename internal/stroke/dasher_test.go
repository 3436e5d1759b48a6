package stroke

import "testing"

func TestPatternActive(t *testing.T) {
	cases := []struct {
		dashes []float64
		want   bool
	}{
		{nil, false},
		{[]float64{}, false},
		{[]float64{0, 0}, false},
		{[]float64{5, 3}, true},
		{[]float64{0, 5}, true},
	}
	for _, c := range cases {
		if got := PatternActive(c.dashes); got != c.want {
			t.Errorf("PatternActive(%v) = %v, want %v", c.dashes, got, c.want)
		}
	}
}

func TestNewDasherInactivePatternReturnsNil(t *testing.T) {
	if d := NewDasher([]float64{0, 0}, 0); d != nil {
		t.Error("NewDasher with an all-zero pattern should return nil")
	}
	if d := NewDasher(nil, 0); d != nil {
		t.Error("NewDasher with no pattern should return nil")
	}
}

func TestNewDasherStartsOn(t *testing.T) {
	d := NewDasher([]float64{5, 3}, 0)
	if d == nil {
		t.Fatal("expected non-nil dasher")
	}
	if !d.On() {
		t.Error("dasher with zero offset should start in the on phase")
	}
	if d.Remain() != 5 {
		t.Errorf("Remain() = %v, want 5", d.Remain())
	}
}

func TestDasherStepTogglesPhase(t *testing.T) {
	d := NewDasher([]float64{5, 3}, 0)
	if transitioned := d.Step(5); !transitioned {
		t.Error("stepping exactly past a dash entry should transition")
	}
	if d.On() {
		t.Error("dasher should be off after consuming the first on-entry")
	}
	if !approxEqual(d.Remain(), 3, 1e-9) {
		t.Errorf("Remain() after transition = %v, want 3", d.Remain())
	}
}

func TestDasherStepPartialNoTransition(t *testing.T) {
	d := NewDasher([]float64{5, 3}, 0)
	if transitioned := d.Step(2); transitioned {
		t.Error("stepping within an entry should not transition")
	}
	if !d.On() {
		t.Error("dasher should still be on")
	}
	if !approxEqual(d.Remain(), 3, 1e-9) {
		t.Errorf("Remain() = %v, want 3", d.Remain())
	}
}

func TestDasherOffsetAdvancesPhase(t *testing.T) {
	// An offset of 6 (past the 5-unit on-entry, 1 unit into the off-entry)
	// should start the dasher in the off phase.
	d := NewDasher([]float64{5, 3}, 6)
	if d.On() {
		t.Error("offset past the on entry should start the dasher off")
	}
	if !approxEqual(d.Remain(), 2, 1e-9) {
		t.Errorf("Remain() = %v, want 2", d.Remain())
	}
}

func TestDasherNegativeOffsetWraps(t *testing.T) {
	// An offset of -2 lands 2 units before the pattern start, inside the
	// off-entry (length 3) that precedes it.
	d := NewDasher([]float64{5, 3}, -2)
	if d.On() {
		t.Error("dasher should be off: offset -2 lands inside the preceding off-entry")
	}
	if !approxEqual(d.Remain(), 2, 1e-9) {
		t.Errorf("Remain() = %v, want 2", d.Remain())
	}
}

func TestDasherResetRestoresInitialState(t *testing.T) {
	d := NewDasher([]float64{5, 3}, 0)
	d.Step(5)
	d.Step(1)
	d.Reset()
	if !d.On() {
		t.Error("Reset should restore the initial on phase")
	}
	if d.Remain() != 5 {
		t.Errorf("Remain() after Reset = %v, want 5", d.Remain())
	}
}

func TestDasherMultiEntryPattern(t *testing.T) {
	d := NewDasher([]float64{2, 1, 3, 1}, 0)
	// Consume entries one at a time and check the on/off sequence.
	wantOn := []bool{true, false, true, false}
	for i, want := range wantOn {
		if d.On() != want {
			t.Errorf("entry %d: On() = %v, want %v", i, d.On(), want)
		}
		d.Step(d.Remain())
	}
}
