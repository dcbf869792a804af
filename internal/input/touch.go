package input

import "math"

// GestureScheme selects how a drag vector becomes directional flags.
type GestureScheme int

const (
	// GestureAngle maps the drag angle to the nearest cardinal flags using
	// ±0.5 cosine/sine thresholds, so diagonals set two flags.
	GestureAngle GestureScheme = iota
	// GestureDominantAxis picks the axis with the larger movement and clears
	// the flags of the other axis.
	GestureDominantAxis
)

// Point is a position on the game surface.
type Point struct {
	X, Y float64
}

// Rect is an on-screen rectangle in display coordinates.
type Rect struct {
	X, Y, W, H float64
}

// ScalePoint converts a display-space point inside display to surface space,
// where the surface is surfaceW×surfaceH logical units.
func ScalePoint(p Point, display Rect, surfaceW, surfaceH float64) Point {
	if display.W <= 0 || display.H <= 0 {
		return Point{}
	}
	return Point{
		X: (p.X - display.X) * surfaceW / display.W,
		Y: (p.Y - display.Y) * surfaceH / display.H,
	}
}

// touchState tracks the drag in progress.
type touchState struct {
	start  Point
	moving bool
}

// Dragging reports whether a drag gesture is in progress.
func (a *Adapter) Dragging() bool {
	return a.touch.moving
}

// TouchStart handles new touches. touches holds every active touch point in
// surface coordinates.
func (a *Adapter) TouchStart(touches []Point) {
	if a.target.Over() || a.target.Paused() {
		return
	}

	// A second finger jumps.
	if len(touches) > 1 {
		a.requestJump()
		a.touch.moving = false
		return
	}
	if len(touches) != 1 {
		return
	}

	// A tap while dragging also jumps.
	if a.touch.moving {
		a.requestJump()
		return
	}
	a.touch.start = touches[0]
	a.touch.moving = true
}

// TouchMove updates the directional flags from the drag vector.
func (a *Adapter) TouchMove(touches []Point) {
	if a.target.Over() || a.target.Paused() || !a.touch.moving || len(touches) != 1 {
		return
	}

	dx := touches[0].X - a.touch.start.X
	dy := touches[0].Y - a.touch.start.Y
	in := a.target.Intents()

	switch a.target.Scheme() {
	case GestureDominantAxis:
		if math.Abs(dx) > math.Abs(dy) {
			in.Right = dx > 0
			in.Left = dx < 0
			in.Up = false
			in.Down = false
		} else {
			in.Down = dy > 0
			in.Up = dy < 0
			in.Left = false
			in.Right = false
		}
	default:
		angle := math.Atan2(dy, dx)
		in.Right = math.Cos(angle) > 0.5
		in.Left = math.Cos(angle) < -0.5
		in.Down = math.Sin(angle) > 0.5
		in.Up = math.Sin(angle) < -0.5
	}
}

// TouchEnd handles lifted touches. remaining is the number of touches still
// on the surface.
func (a *Adapter) TouchEnd(remaining int) {
	if a.touch.moving && remaining == 0 {
		a.touch.moving = false
		a.target.Intents().ClearDirections()
	}
}

func (a *Adapter) requestJump() {
	if !a.target.Jumping() {
		a.target.Intents().JumpRequested = true
	}
}
