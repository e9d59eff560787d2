package gamemath

import "math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Side names the face of a static box a moving box is pushed out through.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// Penetration holds the four overlap depths of mover against a static box.
// Left is how far mover's right edge is past the box's left edge, and so on.
type Penetration struct {
	Left, Right, Top, Bottom float64
}

// Penetrate computes the overlap depths of mover into static.
func Penetrate(mover, static Rect) Penetration {
	return Penetration{
		Left:   (mover.X + mover.W) - static.X,
		Right:  (static.X + static.W) - mover.X,
		Top:    (mover.Y + mover.H) - static.Y,
		Bottom: (static.Y + static.H) - mover.Y,
	}
}

// Min returns the smallest of the four depths.
func (p Penetration) Min() float64 {
	return math.Min(math.Min(p.Left, p.Right), math.Min(p.Top, p.Bottom))
}

// Resolve picks the single side to resolve on: the side of minimum
// penetration, but only when the mover's velocity points into that side.
// Ties are checked in the order top, bottom, left, right and a side whose
// velocity gate fails falls through to the next one with the same depth.
func (p Penetration) Resolve(vx, vy float64) Side {
	m := p.Min()
	switch {
	case m == p.Top && vy > 0:
		return SideTop
	case m == p.Bottom && vy < 0:
		return SideBottom
	case m == p.Left && vx > 0:
		return SideLeft
	case m == p.Right && vx < 0:
		return SideRight
	}
	return SideNone
}
