package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ColorReset restores default terminal colours and attributes.
const ColorReset = "\033[0m"

// ChunkWriter buffers one frame of terminal output and sends it in
// MTU-sized pieces on Flush, which keeps SSH sessions smooth. Positions are
// 1-based canvas cells; the board offset is added when the cursor moves.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	digits [20]byte
	offCol int
	offRow int
}

// NewChunkWriter returns a writer to w for a board at the given offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the board, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// MoveCursor queues a cursor move to canvas cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.frame.WriteString("\033[")
	cw.frame.Write(strconv.AppendInt(cw.digits[:0], int64(cw.offRow+row), 10))
	cw.frame.WriteByte(';')
	cw.frame.Write(strconv.AppendInt(cw.digits[:0], int64(cw.offCol+col), 10))
	cw.frame.WriteByte('H')
}

// Write queues p. Canvas.Render writes through it.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// WriteString queues s as is.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame.WriteString(s)
}

// WriteAt queues s at canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.frame.WriteString(s)
}

// WriteText queues placed text wrapped in style and a reset. It returns
// the number of cells the text covers.
func (cw *ChunkWriter) WriteText(t PlacedText, style string) int {
	cw.MoveCursor(t.Col, t.Row)
	cw.frame.WriteString(style)
	cw.frame.WriteString(t.Text)
	cw.frame.WriteString(ColorReset)
	return utf8.RuneCountInString(t.Text)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.out, cw.frame.String())
	cw.frame.Reset()
	if err != nil {
		return err
	}
	return cw.out.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// cursorTo returns the ANSI sequence moving to the 1-based (col, row).
func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ClampTermSize fits a square board into the terminal, limited to
// maxWidth columns, and computes the centering offset. Each row holds two
// sub-pixels, so a square board is twice as wide in columns as it is tall
// in rows.
func ClampTermSize(termWidth, termHeight, maxWidth int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	side := min(termWidth, termHeight*2, maxWidth)
	side -= side % 2
	side = max(side, 0)
	renderWidth = side
	renderHeight = side / 2
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
