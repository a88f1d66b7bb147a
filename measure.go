package termcard

import (
	"github.com/unilibs/uniwidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the advance width of a string, the horizontal distance the rendered text occupies.
type Measurer interface {
	Advance(s string) fixed.Int26_6
}

// FaceMeasurer measures text with a font face.
type FaceMeasurer struct {
	Face font.Face
}

// Advance implements Measurer.
func (m FaceMeasurer) Advance(s string) fixed.Int26_6 {
	return font.MeasureString(m.Face, s)
}

// CellMeasurer measures text on a fixed cell grid: display columns times cell width.
// Wide characters (CJK, emoji) take two cells, combining marks none.
type CellMeasurer struct {
	CellWidth int
}

// NewCellMeasurer derives the cell width from the advance of 'M', like a terminal grid does.
func NewCellMeasurer(face font.Face) CellMeasurer {
	adv, _ := face.GlyphAdvance('M')
	w := adv.Ceil()
	if w == 0 {
		w = 7 // basicfont
	}
	return CellMeasurer{CellWidth: w}
}

// Advance implements Measurer.
func (m CellMeasurer) Advance(s string) fixed.Int26_6 {
	return fixed.I(StringWidth(s) * m.CellWidth)
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// maxAdvance returns the widest advance among lines.
func maxAdvance(m Measurer, lines []string) fixed.Int26_6 {
	var widest fixed.Int26_6
	for _, line := range lines {
		if w := m.Advance(line); w > widest {
			widest = w
		}
	}
	return widest
}
