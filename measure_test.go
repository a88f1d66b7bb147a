package termcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{CellWidth: 10}

	assert.Equal(t, fixed.I(50), m.Advance("Hello"))
	assert.Equal(t, fixed.I(40), m.Advance("中文"))
	assert.Equal(t, fixed.I(0), m.Advance(""))
}

func TestNewCellMeasurer(t *testing.T) {
	assert.Equal(t, 7, NewCellMeasurer(basicfont.Face7x13).CellWidth)

	face := testFace(t)
	adv, _ := face.GlyphAdvance('M')
	assert.Equal(t, adv.Ceil(), NewCellMeasurer(face).CellWidth)
}

func TestFaceMeasurer_Monospace(t *testing.T) {
	m := FaceMeasurer{Face: testFace(t)}

	one := m.Advance("a")
	assert.Greater(t, one, fixed.Int26_6(0))
	assert.Equal(t, one*3, m.Advance("abc"))
	assert.Equal(t, m.Advance("█")*3, m.Advance("███"))
}

func TestMaxAdvance(t *testing.T) {
	m := CellMeasurer{CellWidth: 1}

	assert.Equal(t, fixed.I(5), maxAdvance(m, []string{"ab", "abcde", "abc"}))
	assert.Equal(t, fixed.I(0), maxAdvance(m, nil))
}
