package acoustic

import "testing"

func TestNewTimeInterval(t *testing.T) {
	iv, err := NewTimeInterval(10, 25)
	if err != nil {
		t.Fatalf("NewTimeInterval error: %v", err)
	}
	if iv.Begin() != 10 || iv.End() != 25 {
		t.Errorf("interval = [%g, %g), want [10, 25)", iv.Begin(), iv.End())
	}
	if iv.Duration() != 15 {
		t.Errorf("Duration = %g, want 15", iv.Duration())
	}
	if !iv.Valid() {
		t.Error("Valid = false, want true")
	}
}

func TestNewTimeIntervalRejects(t *testing.T) {
	cases := []struct {
		name       string
		begin, end float64
	}{
		{"negative begin", -1, 10},
		{"end equals begin", 5, 5},
		{"end before begin", 10, 5},
		{"zero span", 0, 0},
	}
	for _, c := range cases {
		if _, err := NewTimeInterval(c.begin, c.end); err == nil {
			t.Errorf("%s: NewTimeInterval(%g, %g) succeeded, want error", c.name, c.begin, c.end)
		}
	}
}

func TestZeroIntervalInvalid(t *testing.T) {
	var iv TimeInterval
	if iv.Valid() {
		t.Error("zero interval reported valid")
	}
}

func TestShift(t *testing.T) {
	iv, _ := NewTimeInterval(10, 25)
	moved, err := iv.Shift(5)
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if moved.Begin() != 15 || moved.End() != 30 {
		t.Errorf("shifted = [%g, %g), want [15, 30)", moved.Begin(), moved.End())
	}
	if _, err := iv.Shift(-11); err == nil {
		t.Error("Shift below zero succeeded, want error")
	}
}
