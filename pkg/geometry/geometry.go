// Package geometry computes viewport-aware positions for floating elements
// such as tooltips, context menus and submenus.
package geometry

import "math"

// Point is a position in viewport (client) coordinates.
type Point struct {
	X float64
	Y float64
}

// Size is the width and height of an element or of the viewport.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect returns a rectangle with the given origin and size.
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// PlaceRelativeToPointer returns the top-left position for an element of the
// given size shown next to the pointer. The element goes below and to the
// right of the pointer, shifted by offset, unless it would overflow the
// viewport on that axis; in that case it flips to the other side of the
// pointer.
func PlaceRelativeToPointer(pointer Point, size Size, viewport Size, offset Point) Point {
	return Point{
		X: pointerAxis(pointer.X, size.Width, viewport.Width, offset.X),
		Y: pointerAxis(pointer.Y, size.Height, viewport.Height, offset.Y),
	}
}

func pointerAxis(pos, length, limit, offset float64) float64 {
	var v float64
	if length+offset > limit-pos {
		v = math.Max(0, pos-length-2*offset)
	} else {
		v = pos + offset
	}
	return Clamp(v, 0, limit-length)
}

// PlaceRelativeToAnchor returns the top-left position of a submenu of the given
// size opened from anchor.
//
// Horizontally the submenu starts at the anchor's right edge when it fits,
// otherwise it ends at the anchor's left edge when it fits, otherwise it is
// pinned to the left edge of the viewport. Vertically it aligns with the
// anchor's top, then with the anchor's bottom, then pins to the bottom of the
// viewport. Each level only looks at its own anchor and the viewport.
func PlaceRelativeToAnchor(size Size, anchor Rect, viewport Size) Point {
	var p Point

	switch {
	case size.Width <= viewport.Width-anchor.Right():
		p.X = anchor.Right()
	case size.Width <= anchor.Left():
		p.X = anchor.Left() - size.Width
	default:
		p.X = 0
	}

	switch {
	case size.Height <= viewport.Height-anchor.Top():
		p.Y = anchor.Top()
	case size.Height <= anchor.Bottom():
		p.Y = anchor.Bottom() - size.Height
	default:
		p.Y = viewport.Height - size.Height
	}

	return Point{
		X: Clamp(p.X, 0, viewport.Width-size.Width),
		Y: Clamp(p.Y, 0, viewport.Height-size.Height),
	}
}

// PinToViewport is the fallback position used when the anchor of a submenu
// cannot be measured: left edge, bottom aligned with the viewport.
func PinToViewport(size Size, viewport Size) Point {
	return Point{X: 0, Y: math.Max(0, viewport.Height-size.Height)}
}
