package clock

import (
	"testing"
	"time"
)

func TestMockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	if got := m.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}

	m.Advance(500 * time.Millisecond)
	m.Advance(200 * time.Millisecond)
	want := start.Add(700 * time.Millisecond)
	if got := m.Now(); !got.Equal(want) {
		t.Fatalf("Now() after advances = %v, want %v", got, want)
	}

	later := start.Add(time.Hour)
	m.Set(later)
	if got := m.Now(); !got.Equal(later) {
		t.Fatalf("Now() after Set = %v, want %v", got, later)
	}
}

func TestRealIsMonotonic(t *testing.T) {
	var c Clock = Real{}
	t1 := c.Now()
	t2 := c.Now()
	if t2.Before(t1) {
		t.Fatalf("real clock went backwards: %v then %v", t1, t2)
	}
}
