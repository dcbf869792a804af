package draw

import (
	"testing"

	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/render"
)

func TestSurfacePlacesText(t *testing.T) {
	s := NewSurface(NewScaledCanvas(100, 50, 500, 500))
	s.Clear(game.ColorBackground)
	s.Text(10, 25, "Score: 3", render.SizeHUD, render.AlignLeft)
	s.Text(490, 25, "Mode: Hard", render.SizeHUD, render.AlignRight)
	s.Text(250, 250, "Game Over", render.SizeTitle, render.AlignCenter)

	got := s.Placed()
	want := []PlacedText{
		{Col: 3, Row: 2, Text: "Score: 3"},
		{Col: 90, Row: 2, Text: "Mode: Hard"},
		{Col: 47, Row: 24, Text: "Game Over"},
	}
	if len(got) != len(want) {
		t.Fatalf("Placed() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Placed()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSurfaceClipsText(t *testing.T) {
	s := NewSurface(NewScaledCanvas(10, 5, 500, 500))
	s.Text(0, 25, "abcdefghijklmnop", render.SizeHUD, render.AlignLeft)
	s.Text(0, 25, "xyz", render.SizeHUD, render.AlignRight)
	s.Text(0, 900, "gone", render.SizeHUD, render.AlignLeft)

	got := s.Placed()
	if len(got) != 2 {
		t.Fatalf("Placed() = %+v, want 2 entries", got)
	}
	if got[0].Text != "abcdefghij" || got[0].Col != 1 {
		t.Fatalf("long text = %+v, want clipped to 10 columns", got[0])
	}
	if got[1].Text != "z" || got[1].Col != 1 {
		t.Fatalf("left overflow = %+v, want %q at column 1", got[1], "z")
	}
}

func TestSurfaceClearDropsText(t *testing.T) {
	s := NewSurface(NewScaledCanvas(10, 5, 500, 500))
	s.Text(10, 25, "x", render.SizeHUD, render.AlignLeft)
	s.Clear(game.ColorBackground)
	if got := s.Placed(); len(got) != 0 {
		t.Fatalf("Placed() after Clear = %+v", got)
	}
}
