package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name               string
		w, h, max          int
		rw, rh, offC, offR int
	}{
		{"wide terminal", 200, 60, 100, 100, 50, 50, 5},
		{"tall terminal", 80, 60, 100, 80, 40, 0, 10},
		{"short terminal", 120, 30, 100, 60, 30, 30, 0},
		{"odd width", 81, 60, 100, 80, 40, 0, 10},
		{"empty", 0, 0, 100, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := ClampTermSize(tt.w, tt.h, tt.max)
			if rw != tt.rw || rh != tt.rh || oc != tt.offC || or != tt.offR {
				t.Fatalf("ClampTermSize(%d, %d) = %d, %d, %d, %d, want %d, %d, %d, %d",
					tt.w, tt.h, rw, rh, oc, or, tt.rw, tt.rh, tt.offC, tt.offR)
			}
		})
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 10, 2)
	cw.WriteAt(1, 1, "hi")
	if out.Len() != 0 {
		t.Fatalf("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "\033[3;11Hhi"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	out.Reset()
	if err := cw.Flush(); err != nil || out.Len() != 0 {
		t.Fatalf("second Flush wrote %q, %v; want nothing", out.String(), err)
	}
}

func TestChunkWriterWriteText(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	n := cw.WriteText(PlacedText{Col: 4, Row: 2, Text: "Best: 7"}, "\033[1m")
	if n != 7 {
		t.Fatalf("WriteText covered %d cells, want 7", n)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "\033[2;4H\033[1mBest: 7\033[0m"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	payload := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != payload {
		t.Fatalf("payload corrupted: got %d bytes, want %d", out.Len(), len(payload))
	}
}
