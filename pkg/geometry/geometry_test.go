package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}

	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(Point{X: 30, Y: 20}))
	assert.True(t, r.Contains(Point{X: 15, Y: 15}))
	assert.False(t, r.Contains(Point{X: 31, Y: 15}))
	assert.False(t, r.Contains(Point{X: 15, Y: 9}))
}

func TestPlaceRelativeToPointer(t *testing.T) {
	viewport := Size{Width: 800, Height: 600}
	size := Size{Width: 100, Height: 50}
	offset := Point{X: 5, Y: 5}

	tests := []struct {
		name    string
		pointer Point
		want    Point
	}{
		{name: "fits below right", pointer: Point{X: 100, Y: 100}, want: Point{X: 105, Y: 105}},
		{name: "flips left", pointer: Point{X: 750, Y: 100}, want: Point{X: 640, Y: 105}},
		{name: "flips up", pointer: Point{X: 100, Y: 580}, want: Point{X: 105, Y: 520}},
		{name: "flips both", pointer: Point{X: 790, Y: 590}, want: Point{X: 680, Y: 530}},
		{name: "offset pushes over the edge", pointer: Point{X: 697, Y: 0}, want: Point{X: 587, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceRelativeToPointer(tt.pointer, size, viewport, offset))
		})
	}
}

func TestPlaceRelativeToPointerNarrowViewport(t *testing.T) {
	got := PlaceRelativeToPointer(Point{X: 60, Y: 10}, Size{Width: 100, Height: 10}, Size{Width: 120, Height: 100}, Point{})
	assert.Equal(t, 0.0, got.X)
}

func TestPlaceRelativeToAnchor(t *testing.T) {
	viewport := Size{Width: 800, Height: 600}
	size := Size{Width: 200, Height: 100}

	tests := []struct {
		name   string
		anchor Rect
		want   Point
	}{
		{
			name:   "right of anchor, aligned with top",
			anchor: Rect{X: 100, Y: 100, Width: 150, Height: 24},
			want:   Point{X: 250, Y: 100},
		},
		{
			name:   "left of anchor when no room on the right",
			anchor: Rect{X: 500, Y: 100, Width: 150, Height: 24},
			want:   Point{X: 300, Y: 100},
		},
		{
			name:   "pinned left when neither side fits",
			anchor: Rect{X: 150, Y: 100, Width: 500, Height: 24},
			want:   Point{X: 0, Y: 100},
		},
		{
			name:   "bottom aligned when no room below",
			anchor: Rect{X: 100, Y: 550, Width: 150, Height: 24},
			want:   Point{X: 250, Y: 474},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceRelativeToAnchor(size, tt.anchor, viewport))
		})
	}
}

func TestPlaceRelativeToAnchorPinsToViewportBottom(t *testing.T) {
	viewport := Size{Width: 800, Height: 300}
	got := PlaceRelativeToAnchor(Size{Width: 100, Height: 280}, Rect{X: 0, Y: 100, Width: 50, Height: 20}, viewport)

	assert.Equal(t, Point{X: 50, Y: 20}, got)
}

func TestPlacementStaysInsideViewport(t *testing.T) {
	viewport := Size{Width: 640, Height: 480}
	sizes := []Size{{Width: 1, Height: 1}, {Width: 120, Height: 90}, {Width: 640, Height: 480}, {Width: 300, Height: 479}}

	for _, size := range sizes {
		for x := 0.0; x <= viewport.Width; x += 37 {
			for y := 0.0; y <= viewport.Height; y += 29 {
				p := PlaceRelativeToPointer(Point{X: x, Y: y}, size, viewport, Point{X: 5, Y: 5})
				assertInside(t, p, size, viewport)

				anchor := Rect{X: x, Y: y, Width: 40, Height: 20}
				p = PlaceRelativeToAnchor(size, anchor, viewport)
				assertInside(t, p, size, viewport)
			}
		}
	}
}

func TestPinToViewport(t *testing.T) {
	assert.Equal(t, Point{X: 0, Y: 500}, PinToViewport(Size{Width: 10, Height: 100}, Size{Width: 800, Height: 600}))
	assert.Equal(t, Point{X: 0, Y: 0}, PinToViewport(Size{Width: 10, Height: 900}, Size{Width: 800, Height: 600}))
}

func assertInside(t *testing.T, p Point, size, viewport Size) {
	t.Helper()
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.GreaterOrEqual(t, p.Y, 0.0)
	assert.LessOrEqual(t, p.X+size.Width, viewport.Width)
	assert.LessOrEqual(t, p.Y+size.Height, viewport.Height)
}
