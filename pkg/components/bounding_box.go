package components

// boxInsetDivisor splits an entity's sprite rectangle into fifths; the
// collision box drops one fifth on each side.
const boxInsetDivisor = 5

// BoundingBox is an axis-aligned screen-space rectangle used for collision
// checks. It has no lifecycle of its own and is recomputed whenever its owner
// moves.
type BoundingBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Bounds is the size of the playfield in pixels.
type Bounds struct {
	Width  int
	Height int
}

// InsetBox derives the collision box of an entity drawn at (x, y) with the
// given sprite size: inset by width/5 and height/5 on each side, spanning
// 3/5 of each dimension.
func InsetBox(x, y, width, height int) BoundingBox {
	insetX := width / boxInsetDivisor
	insetY := height / boxInsetDivisor
	return BoundingBox{
		X:      x + insetX,
		Y:      y + insetY,
		Width:  width * 3 / boxInsetDivisor,
		Height: height * 3 / boxInsetDivisor,
	}
}

// Overlaps reports whether the reference corner (X, Y) of a lies strictly
// inside b.
//
// This is deliberately not a rectangle intersection: a's width and height
// are ignored, and a corner sitting exactly on one of b's edges does not
// count. Bullets are always passed as a.
func Overlaps(a, b BoundingBox) bool {
	return a.X > b.X && a.X < b.X+b.Width &&
		a.Y > b.Y && a.Y < b.Y+b.Height
}
