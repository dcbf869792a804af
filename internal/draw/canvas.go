// Package draw renders a logical pixel board to a terminal using half-block
// characters, two sub-pixels per cell.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette index. 0 is the terminal's default background.
type Color uint8

// Palette maps a Color to an xterm-256 colour number. -1 means the terminal
// default.
type Palette [256]int

// DefaultPalette returns a palette where every index is the terminal default.
func DefaultPalette() Palette {
	var p Palette
	for i := range p {
		p[i] = -1
	}
	return p
}

// cellUnknown marks a cell whose on-screen content is not known, so the
// next Render repaints it.
const cellUnknown = 0xffff

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Drawing uses logical coordinates scaled to terminal sub-pixels.
// Render only emits cells that changed since the previous Render.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	shown          []uint16
	palette        Palette

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		palette:       DefaultPalette(),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.shown = make([]uint16, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetPalette replaces the colour table.
func (c *Canvas) SetPalette(p Palette) {
	c.palette = p
	c.ForceRedraw()
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = cellUnknown
	}
}

// MarkTextDirty makes the next Render repaint n cells starting at the 1-based
// canvas position (col, row). Call it for text written over the canvas.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	col--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col, 0); x < col+n && x < c.termWidth; x++ {
		c.shown[row*c.termWidth+x] = cellUnknown
	}
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the colour at sub-pixel (x, y).
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return 0
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a logical rectangle. Every sub-pixel whose centre lies
// inside is set; a rectangle thinner than a sub-pixel still covers one.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0, x1 := pixelSpan(x*c.scaleX, (x+w)*c.scaleX)
	y0, y1 := pixelSpan(y*c.scaleY, (y+h)*c.scaleY)
	x0, x1 = max(x0, 0), min(x1, c.termWidth-1)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight-1)
	for py := y0; py <= y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px <= x1; px++ {
			row[px] = col
		}
	}
}

// pixelSpan returns the inclusive pixel range covering [a, b).
func pixelSpan(a, b float64) (int, int) {
	lo := int(math.Round(a))
	hi := int(math.Round(b)) - 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// FillCircle fills a logical circle. The radius is scaled per axis, so the
// circle stays round when the board is square on screen.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}
	// Always cover at least the centre pixel.
	c.setPixel(int(math.Floor(pcx)), int(math.Floor(pcy)), col)

	y0 := int(math.Floor(pcy - ry))
	y1 := int(math.Ceil(pcy + ry))
	x0 := int(math.Floor(pcx - rx))
	x1 := int(math.Ceil(pcx + rx))
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - pcy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py, col)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs changed cells to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	lastFg, lastBg := -2, -2
	cursorCol, cursorRow := -1, -1
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			key := uint16(top)<<8 | uint16(bottom)
			idx := row*c.termWidth + col
			if c.shown[idx] == key {
				continue
			}
			c.shown[idx] = key

			if row != cursorRow || col != cursorCol {
				c.moveCursor(col+1, row+1)
			}

			fg, bg := c.palette[top], c.palette[bottom]
			var ch rune
			switch {
			case fg == bg && fg < 0:
				ch = ' '
			case fg == bg:
				ch = BlockFull
				bg = lastBg
			case fg < 0:
				ch = BlockLowerHalf
				fg, bg = bg, -1
			default:
				ch = BlockUpperHalf
			}
			if fg != lastFg && ch != ' ' {
				c.writeColor(fg, false)
				lastFg = fg
			}
			if bg != lastBg {
				c.writeColor(bg, true)
				lastBg = bg
			}
			c.renderBuf.WriteRune(ch)
			cursorCol, cursorRow = col+1, row
		}
	}
	if c.renderBuf.Len() > 0 {
		c.renderBuf.WriteString(ColorReset)
	}

	_ = writeChunks(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+c.offsetRow), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+c.offsetCol), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeColor(code int, background bool) {
	switch {
	case code < 0 && background:
		c.renderBuf.WriteString("\033[49m")
	case code < 0:
		c.renderBuf.WriteString("\033[39m")
	case background:
		c.renderBuf.WriteString("\033[48;5;")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(code), 10))
		c.renderBuf.WriteByte('m')
	default:
		c.renderBuf.WriteString("\033[38;5;")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(code), 10))
		c.renderBuf.WriteByte('m')
	}
}

// writeChunks writes data in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + line)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// Cell returns the top and bottom sub-pixel colours of the 0-based cell.
func (c *Canvas) Cell(col, row int) (top, bottom Color) {
	return c.Pixel(col, row*2), c.Pixel(col, row*2+1)
}

// Palette returns the colour table.
func (c *Canvas) Palette() Palette {
	return c.palette
}
