package game

import "github.com/tomz197/laserdodge/internal/physics"

// LaserKind tags a laser as a horizontal or vertical band.
type LaserKind int

const (
	// Horizontal spans the full width; Offset is its top edge (y).
	Horizontal LaserKind = iota
	// Vertical spans the full height; Offset is its left edge (x).
	Vertical
)

func (k LaserKind) String() string {
	if k == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Laser is a moving full-width or full-height band.
type Laser struct {
	Kind      LaserKind
	Offset    float64 // Position along the laser's axis of motion
	Velocity  float64 // Offset change per tick
	Thickness float64
}

// Advance moves the laser one tick and reflects it off the surface edges.
// The velocity flips once the band leaves [0, extent]; the overshoot is kept.
func (l *Laser) Advance(extent float64) {
	l.Offset += l.Velocity
	if l.Offset+l.Thickness > extent || l.Offset < 0 {
		l.Velocity = -l.Velocity
	}
}

// Hits reports whether a circle's bounding box at (x, y) overlaps the band.
func (l Laser) Hits(x, y, radius float64) bool {
	switch l.Kind {
	case Horizontal:
		return physics.SpanOverlap(y, radius, l.Offset, l.Thickness)
	case Vertical:
		return physics.SpanOverlap(x, radius, l.Offset, l.Thickness)
	}
	return false
}

// Bounds returns the band's rectangle on an extent×extent surface.
func (l Laser) Bounds(extent float64) (x, y, w, h float64) {
	if l.Kind == Vertical {
		return l.Offset, 0, l.Thickness, extent
	}
	return 0, l.Offset, extent, l.Thickness
}

// initialLasers returns the two lasers every run starts with.
func initialLasers(s Settings) []Laser {
	return []Laser{
		{Kind: Horizontal, Offset: s.InitialLaserOffset, Velocity: s.LaserSpeed, Thickness: s.LaserThickness},
		{Kind: Vertical, Offset: s.InitialLaserOffset, Velocity: s.LaserSpeed, Thickness: s.LaserThickness},
	}
}
