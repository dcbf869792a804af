package draw

import (
	"math"
	"unicode/utf8"

	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/render"
)

// GamePalette maps game colours to xterm-256 colours.
func GamePalette() Palette {
	p := DefaultPalette()
	p[game.ColorPlayer] = 33
	p[game.ColorPlayerJumping] = 117
	p[game.ColorCoin] = 220
	p[game.ColorLaser] = 196
	return p
}

// PlacedText is an overlay string at a 1-based canvas cell, already
// clipped to the canvas.
type PlacedText struct {
	Col, Row int
	Text     string
}

type textItem struct {
	x, y  float64
	s     string
	size  float64
	align render.Align
}

// Surface draws shapes onto a Canvas and queues text. Text cannot be
// rasterised into half-blocks, so callers write Placed over the canvas
// after rendering it.
type Surface struct {
	canvas *Canvas
	texts  []textItem
	placed []PlacedText
}

// NewSurface wraps c.
func NewSurface(c *Canvas) *Surface {
	return &Surface{canvas: c}
}

// Canvas returns the wrapped canvas.
func (s *Surface) Canvas() *Canvas {
	return s.canvas
}

// Clear fills the canvas and drops queued text.
func (s *Surface) Clear(c game.Color) {
	s.canvas.Clear(Color(c))
	s.texts = s.texts[:0]
}

func (s *Surface) FillRect(x, y, w, h float64, c game.Color) {
	s.canvas.FillRect(x, y, w, h, Color(c))
}

func (s *Surface) FillCircle(x, y, r float64, c game.Color) {
	s.canvas.FillCircle(x, y, r, Color(c))
}

// Text queues s. Terminal text has a single size; size only shifts the row
// so that large text is centred on the same spot as on a pixel surface.
func (s *Surface) Text(x, y float64, str string, size float64, align render.Align) {
	s.texts = append(s.texts, textItem{x: x, y: y, s: str, size: size, align: align})
}

var _ render.Surface = (*Surface)(nil)

// Placed returns the queued text mapped to canvas cells. Strings are
// clipped at the canvas edges; rows outside the canvas are dropped.
// The returned slice is reused by the next call.
func (s *Surface) Placed() []PlacedText {
	s.placed = s.placed[:0]
	width, height := s.canvas.TerminalWidth(), s.canvas.TerminalHeight()
	for _, item := range s.texts {
		col, row := s.position(item)
		if row < 1 || row > height {
			continue
		}
		str := item.s
		if col < 1 {
			str = dropRunes(str, 1-col)
			col = 1
		}
		n := width - col + 1
		if n <= 0 {
			continue
		}
		if utf8.RuneCountInString(str) > n {
			str = keepRunes(str, n)
		}
		if str == "" {
			continue
		}
		s.placed = append(s.placed, PlacedText{Col: col, Row: row, Text: str})
	}
	return s.placed
}

// position maps a baseline-anchored string to its 1-based cell.
func (s *Surface) position(item textItem) (col, row int) {
	// Put the row through the middle of the glyphs rather than the baseline.
	col, row = s.canvas.LogicalToTerminal(item.x, math.Max(item.y-item.size*0.35, 0))
	n := utf8.RuneCountInString(item.s)
	switch item.align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n - 1
	}
	return col, row
}

func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

func keepRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
