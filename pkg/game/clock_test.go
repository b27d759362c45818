package game

import (
	"testing"
	"time"
)

func TestSystemClock_FirstCallIsZero(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	c := &SystemClock{now: func() time.Time { return current }}

	if dt := c.Elapsed(); dt != 0 {
		t.Errorf("expected first Elapsed() = 0, got %v", dt)
	}

	current = base.Add(50 * time.Millisecond)
	if dt := c.Elapsed(); dt != 0.05 {
		t.Errorf("expected 0.05, got %v", dt)
	}

	current = current.Add(20 * time.Millisecond)
	if dt := c.Elapsed(); dt != 0.02 {
		t.Errorf("expected 0.02, got %v", dt)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(0.5)
	if c.Elapsed() != 0.5 || c.Elapsed() != 0.5 {
		t.Error("manual clock should return the fixed step")
	}
	c.Set(0.1)
	if c.Elapsed() != 0.1 {
		t.Error("Set should change the step")
	}
}
