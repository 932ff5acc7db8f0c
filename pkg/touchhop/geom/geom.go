// Package geom provides the point and rectangle types used for hit testing
// and coordinate conversion.
package geom

import "fmt"

// Point is a location in either screen or view-local space.
// Which space is always documented by the API that produces it.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle described by its top-left corner and size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies within r. The test is inclusive on the
// min edges and exclusive on the max edges, so adjacent rectangles never
// both contain a point on their shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.X, r.Y, r.Width, r.Height)
}

// ToLocal converts a screen point into the space of a view whose screen
// origin is origin.
func ToLocal(p, origin Point) Point {
	return p.Sub(origin)
}

// Scaler converts a length in device pixels to logical units.
type Scaler func(float64) float64

// Identity is the Scaler for platforms without device-pixel scaling.
func Identity(v float64) float64 {
	return v
}

// DensityScaler returns a Scaler dividing by the display density, the way
// Android's FromPixels does. A non-positive density yields Identity.
func DensityScaler(density float64) Scaler {
	if density <= 0 {
		return Identity
	}
	return func(v float64) float64 {
		return v / density
	}
}

// Scale applies s to both coordinates of p.
func (s Scaler) Scale(p Point) Point {
	if s == nil {
		return p
	}
	return Point{X: s(p.X), Y: s(p.Y)}
}
