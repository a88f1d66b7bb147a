package termcard

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// OpKind distinguishes draw operations.
type OpKind int

const (
	// OpText draws Text with its line top at At.
	OpText OpKind = iota
	// OpRect fills Rect.
	OpRect
)

// DrawOp is a single paint instruction.
type DrawOp struct {
	Kind  OpKind
	At    Pen
	Text  string
	Rect  image.Rectangle
	Color color.RGBA
}

// composer accumulates draw operations while walking the card top to bottom.
type composer struct {
	theme  Theme
	layout Layout
	m      Measurer
	ops    []DrawOp
}

func (c *composer) text(at Pen, s string, col color.RGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpText, At: at, Text: s, Color: col})
}

func (c *composer) rect(r image.Rectangle, col color.RGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpRect, Rect: r, Color: col})
}

// Plan lays out a scene and returns the draw operations in paint order.
func Plan(theme Theme, l Layout, s Scene, g Geometry, includeCursor bool, m Measurer) []DrawOp {
	c := &composer{theme: theme, layout: l, m: m}
	step := l.Step()

	pen := c.history(NewPen(l.Padding, l.Padding), s.History)
	pen = pen.Down(2 * l.LineSpacing)

	artTop := pen.Y
	artEnd := c.art(pen, s.Art)

	panel := c.panel(NewPen(g.PanelX(l), artTop), s, g)
	swatchEnd := c.swatches(panel.Down(l.GlyphHeight + 2*l.LineSpacing))

	prompt := NewPen(l.Padding, max(artEnd.Y, swatchEnd.Y)+step)
	c.prompt(prompt, s.Prompt, g.PromptWidth, includeCursor)

	return c.ops
}

func (c *composer) history(pen Pen, lines []Line) Pen {
	left := pen.X.Floor()
	for _, line := range lines {
		at := pen
		for _, seg := range line {
			c.text(at, seg.Text, seg.Color)
			at = at.Right(c.m.Advance(seg.Text))
		}
		pen = pen.Column(left).Down(c.layout.Step())
	}
	return pen
}

func (c *composer) art(pen Pen, lines []string) Pen {
	for _, line := range lines {
		c.text(pen, line, c.theme.Roles.Ascii)
		pen = pen.Down(c.layout.GlyphHeight + c.layout.ArtLineGap)
	}
	return pen
}

func (c *composer) panel(pen Pen, s Scene, g Geometry) Pen {
	roles := c.theme.Roles
	step := c.layout.Step()

	c.text(pen, s.Header, roles.InfoHeader)
	pen = pen.Down(step)
	c.text(pen, strings.Repeat("-", c.layout.UnderlineLength), roles.InfoHeader)
	pen = pen.Down(step)

	valueX := fixed.I(g.LabelWidth + c.layout.LabelGap)
	for _, item := range s.Items {
		c.text(pen, item.Label, roles.InfoLabel)
		for _, line := range item.Lines() {
			if strings.TrimSpace(line) != "" {
				c.text(pen.Right(valueX), line, roles.InfoValue)
			}
			pen = pen.Down(step)
		}
	}
	return pen
}

func (c *composer) swatches(pen Pen) Pen {
	step := c.layout.Step()
	width := c.m.Advance(swatchGlyph)
	left := pen.X.Floor()

	for i, col := range c.theme.Palette {
		x0 := pen.X.Round()
		x1 := pen.Right(width).X.Round()
		// edges are inclusive
		c.rect(image.Rect(x0, pen.Y, x1+1, pen.Y+step+1), col)
		pen = pen.Right(width)

		if (i+1)%c.layout.SwatchColumns == 0 || i == len(c.theme.Palette)-1 {
			pen = pen.Column(left).Down(step)
		}
	}
	return pen
}

func (c *composer) prompt(pen Pen, prompt string, promptWidth int, includeCursor bool) {
	c.text(pen, prompt, c.theme.Roles.Prompt)
	if includeCursor {
		c.text(pen.Right(fixed.I(promptWidth)), cursorGlyph, c.theme.Cursor)
	}
}

// NewCanvas creates an image sized for g and filled with bg.
func NewCanvas(g Geometry, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(g.Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// Paint executes draw operations on dst. Text baselines sit one ascent below the line top.
func Paint(dst draw.Image, face font.Face, ops []DrawOp) {
	ascent := face.Metrics().Ascent.Ceil()

	for _, op := range ops {
		switch op.Kind {
		case OpText:
			d := &font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(op.Color),
				Face: face,
				Dot:  fixed.Point26_6{X: op.At.X, Y: fixed.I(op.At.Y + ascent)},
			}
			d.DrawString(op.Text)

		case OpRect:
			draw.Draw(dst, op.Rect, image.NewUniform(op.Color), image.Point{}, draw.Src)
		}
	}
}
