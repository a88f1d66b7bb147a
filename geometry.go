package termcard

import (
	"image"
	"strings"

	"golang.org/x/image/math/fixed"
)

const (
	// cursorGlyph is the solid block drawn after the trailing prompt.
	cursorGlyph = "█"
	// swatchGlyph sets the width of one palette swatch.
	swatchGlyph = "███"
)

// Geometry is the pixel layout of a card, derived from a scene and font metrics.
type Geometry struct {
	ArtWidth      int
	ArtHeight     int
	LabelWidth    int
	ContentWidth  int
	PanelWidth    int
	PanelHeight   int
	CommandHeight int
	PromptWidth   int
	Width         int
	Height        int
}

// Bounds returns the canvas rectangle.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// PanelX returns the left edge of the info panel.
func (g Geometry) PanelX(l Layout) int {
	return 2*l.Padding + g.ArtWidth
}

// swatchRows returns how many rows the palette needs.
func (l Layout) swatchRows() int {
	return (len(Palette{}) + l.SwatchColumns - 1) / l.SwatchColumns
}

// ComputeGeometry measures a scene. It is a pure function of its inputs.
func ComputeGeometry(l Layout, s Scene, m Measurer) Geometry {
	step := l.Step()

	var g Geometry
	g.ArtWidth = maxAdvance(m, s.Art).Floor()
	g.ArtHeight = len(s.Art) * (l.GlyphHeight + l.ArtLineGap)

	var label, content fixed.Int26_6
	for _, item := range s.Items {
		label = max(label, m.Advance(item.Label))
		content = max(content, maxAdvance(m, item.Lines()))
	}
	g.LabelWidth = label.Floor()
	g.ContentWidth = content.Floor()

	swatches := (m.Advance(swatchGlyph) * fixed.Int26_6(l.SwatchColumns)).Ceil() + 1
	g.PanelWidth = max(
		g.LabelWidth+g.ContentWidth+l.PanelPadding,
		m.Advance(s.Header).Ceil(),
		m.Advance(strings.Repeat("-", l.UnderlineLength)).Ceil(),
		swatches,
	)

	g.PromptWidth = m.Advance(s.Prompt).Floor()

	// three history lines plus the trailing prompt
	g.CommandHeight = 4*step + 2*l.LineSpacing
	// header, underline and spacing for the swatches
	g.PanelHeight = step * (len(s.Items) + 3)

	g.Width = max(
		3*l.Padding+g.ArtWidth+g.PanelWidth,
		2*l.Padding+g.leftColumnWidth(s, m),
	)
	g.Height = max(
		2*l.Padding+max(g.CommandHeight+g.ArtHeight, g.CommandHeight+g.PanelHeight)+l.TrailerMargin,
		g.paintedHeight(l, s),
	)

	return g
}

// paintedHeight is the canvas height needed to keep everything Plan draws,
// down to the trailing prompt line, above the bottom padding.
func (g Geometry) paintedHeight(l Layout, s Scene) int {
	step := l.Step()

	artTop := l.Padding + len(s.History)*step + 2*l.LineSpacing
	artBottom := artTop + g.ArtHeight
	swatchBottom := artTop + step*(2+s.valueLineCount()) +
		l.GlyphHeight + 2*l.LineSpacing + step*l.swatchRows()

	prompt := max(artBottom, swatchBottom) + step
	return prompt + step + l.Padding
}

// leftColumnWidth is the widest full-width line: a history line or the prompt with its cursor.
func (g Geometry) leftColumnWidth(s Scene, m Measurer) int {
	var widest fixed.Int26_6
	for _, line := range s.History {
		widest = max(widest, m.Advance(line.String()))
	}
	return max(widest.Ceil(), g.PromptWidth+m.Advance(cursorGlyph).Ceil())
}
