package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/render"
)

// Debug font glyph size in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// maxLabels bounds the label cache; score strings change every coin.
const maxLabels = 64

var colors = map[game.Color]color.RGBA{
	game.ColorBackground:    {0xff, 0xff, 0xff, 0xff}, // white
	game.ColorPlayer:        {0x00, 0x00, 0xff, 0xff}, // blue
	game.ColorPlayerJumping: {0xad, 0xd8, 0xe6, 0xff}, // lightblue
	game.ColorCoin:          {0xff, 0xd7, 0x00, 0xff}, // gold
	game.ColorLaser:         {0xff, 0x00, 0x00, 0xff}, // red
	game.ColorText:          {0x00, 0x00, 0x00, 0xff},
}

// RGBA returns the screen colour of a game colour.
func RGBA(c game.Color) color.RGBA {
	return colors[c]
}

// Surface draws onto an ebiten image with vector shapes. Text uses the
// debug font, rendered once per string and scaled to the requested size.
type Surface struct {
	dst    *ebiten.Image
	labels map[string]*ebiten.Image
}

// NewSurface returns a surface with no target.
func NewSurface() *Surface {
	return &Surface{labels: make(map[string]*ebiten.Image)}
}

// SetTarget sets the image drawn to.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Clear(c game.Color) {
	s.dst.Fill(RGBA(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c game.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), RGBA(c), false)
}

func (s *Surface) FillCircle(x, y, r float64, c game.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), RGBA(c), true)
}

func (s *Surface) Text(x, y float64, str string, size float64, align render.Align) {
	if str == "" {
		return
	}
	img := s.label(str)
	scale := size / glyphHeight
	left := TextLeft(x, float64(len(str)*glyphWidth)*scale, align)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(left, y-size*0.8)
	text := RGBA(game.ColorText)
	op.ColorScale.ScaleWithColor(text)
	s.dst.DrawImage(img, op)
}

// label returns the cached white-on-transparent image of str.
func (s *Surface) label(str string) *ebiten.Image {
	if img, ok := s.labels[str]; ok {
		return img
	}
	if len(s.labels) >= maxLabels {
		for k, img := range s.labels {
			img.Deallocate()
			delete(s.labels, k)
		}
	}
	img := ebiten.NewImage(len(str)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrint(img, str)
	s.labels[str] = img
	return img
}

// TextLeft returns the left edge of text of width w anchored at x.
func TextLeft(x, w float64, align render.Align) float64 {
	switch align {
	case render.AlignCenter:
		return x - w/2
	case render.AlignRight:
		return x - w
	}
	return x
}
