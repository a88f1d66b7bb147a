package termcard

import "golang.org/x/image/math/fixed"

// Pen is the drawing position threaded through the compositor.
// X is in 26.6 fixed point so measured advances accumulate without rounding;
// Y is the top of the current text line in pixels.
type Pen struct {
	X fixed.Int26_6
	Y int
}

// NewPen creates a pen at pixel (x, y).
func NewPen(x, y int) Pen {
	return Pen{X: fixed.I(x), Y: y}
}

// Right moves the pen dx to the right.
func (p Pen) Right(dx fixed.Int26_6) Pen {
	p.X += dx
	return p
}

// Down moves the pen dy pixels down.
func (p Pen) Down(dy int) Pen {
	p.Y += dy
	return p
}

// Column returns the pen moved back to pixel column x on the same line.
func (p Pen) Column(x int) Pen {
	p.X = fixed.I(x)
	return p
}
