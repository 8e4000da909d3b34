package model

// Point is a pixel coordinate with sub-pixel precision.
type Point struct {
	X float64
	Y float64
}

// Element is a single drawable vector primitive. The order of elements in a
// scene is the z-order: later elements draw on top of earlier ones.
type Element interface {
	element()
}

// Polyline is an open multi-segment line through Points.
type Polyline struct {
	Points []Point
	Color  string
	Width  float64
	Dash   string // empty for a solid line
}

// Line is a single straight segment.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  string
	Width  float64
	Dash   string
}

// Text is an anchored text label.
type Text struct {
	X, Y    float64
	Content string
	Anchor  string // "start", "middle" or "end"
	Size    int
}

// Rect is a filled rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Fill          string
}

func (Polyline) element() {}
func (Line) element()     {}
func (Text) element()     {}
func (Rect) element()     {}
