package termcard

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func textOps(ops []DrawOp) []DrawOp {
	var out []DrawOp
	for _, op := range ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

func findText(t *testing.T, ops []DrawOp, text string) DrawOp {
	t.Helper()
	for _, op := range ops {
		if op.Kind == OpText && op.Text == text {
			return op
		}
	}
	require.Failf(t, "text not drawn", "%q", text)
	return DrawOp{}
}

func TestPlan_Default(t *testing.T) {
	cfg := DefaultConfig()
	theme := cfg.Theme
	layout := cfg.Layout
	m := CellMeasurer{CellWidth: 10}
	scene := defaultScene(t)
	g := ComputeGeometry(layout, scene, m)

	ops := Plan(theme, layout, scene, g, false, m)
	texts := textOps(ops)

	// command history
	assert.Equal(t, DrawOp{Kind: OpText, At: NewPen(20, 20), Text: "PhantomOffKanagawa@github:~$", Color: theme.Roles.Prompt}, texts[0])
	assert.Equal(t, DrawOp{Kind: OpText, At: NewPen(300, 20), Text: " whoami", Color: theme.Roles.Command}, texts[1])
	assert.Equal(t, DrawOp{Kind: OpText, At: NewPen(20, 42), Text: "Harrison Surma", Color: theme.Roles.InfoValue}, texts[2])
	assert.Equal(t, NewPen(300, 64), texts[4].At)
	assert.Equal(t, " neofetch", texts[4].Text)

	// art starts two line spacings below the history
	artTop := 20 + 3*22 + 2*6
	art := texts[5]
	assert.Equal(t, NewPen(20, artTop), art.At)
	assert.Equal(t, scene.Art[0], art.Text)
	assert.Equal(t, theme.Roles.Ascii, art.Color)
	assert.Equal(t, NewPen(20, artTop+18), texts[6].At)

	// panel header and underline share the art's top
	header := findText(t, ops, "PhantomOffKanagawa@github")
	assert.Equal(t, NewPen(410, artTop), header.At)
	assert.Equal(t, theme.Roles.InfoHeader, header.Color)
	underline := findText(t, ops, strings.Repeat("-", 20))
	assert.Equal(t, NewPen(410, artTop+22), underline.At)

	// labels and values
	name := findText(t, ops, "Name:")
	assert.Equal(t, NewPen(410, artTop+44), name.At)
	assert.Equal(t, theme.Roles.InfoLabel, name.Color)
	assert.Contains(t, texts, DrawOp{Kind: OpText, At: NewPen(410+100+10, artTop+44), Text: "Harrison Surma", Color: theme.Roles.InfoValue})

	following := findText(t, ops, "Following:")
	assert.Equal(t, artTop+44+8*22, following.At.Y)

	// prompt below the lower of art and swatches, without a cursor
	last := texts[len(texts)-1]
	swatchBottom := artTop + 44 + 9*22 + 16 + 12 + 2*22
	assert.Equal(t, DrawOp{Kind: OpText, At: NewPen(20, max(artTop+306, swatchBottom)+22), Text: scene.Prompt, Color: theme.Roles.Prompt}, last)
	for _, op := range texts {
		assert.NotEqual(t, cursorGlyph, op.Text)
	}
}

func TestPlan_Swatches(t *testing.T) {
	cfg := DefaultConfig()
	m := CellMeasurer{CellWidth: 10}
	scene := defaultScene(t)
	g := ComputeGeometry(cfg.Layout, scene, m)

	var rects []DrawOp
	for _, op := range Plan(cfg.Theme, cfg.Layout, scene, g, false, m) {
		if op.Kind == OpRect {
			rects = append(rects, op)
		}
	}
	require.Len(t, rects, 16)

	w := m.Advance(swatchGlyph).Round()
	top := 98 + 44 + 9*22 + 16 + 12
	for i, r := range rects {
		row, col := i/8, i%8
		assert.Equal(t, cfg.Theme.Palette[i], r.Color, "swatch %d", i)
		x := 410 + col*w
		y := top + row*22
		assert.Equal(t, image.Rect(x, y, x+w+1, y+22+1), r.Rect, "swatch %d", i)
	}
}

func TestPlan_Cursor(t *testing.T) {
	cfg := DefaultConfig()
	m := CellMeasurer{CellWidth: 10}
	scene := defaultScene(t)
	g := ComputeGeometry(cfg.Layout, scene, m)

	on := Plan(cfg.Theme, cfg.Layout, scene, g, true, m)
	off := Plan(cfg.Theme, cfg.Layout, scene, g, false, m)

	require.Len(t, on, len(off)+1)
	assert.Equal(t, off, on[:len(off)])

	prompt := on[len(on)-2]
	cursor := on[len(on)-1]
	assert.Equal(t, scene.Prompt, prompt.Text)
	assert.Equal(t, cursorGlyph, cursor.Text)
	assert.Equal(t, cfg.Theme.Cursor, cursor.Color)
	assert.Equal(t, prompt.At.Right(fixed.I(g.PromptWidth)), cursor.At)
}

func TestPlan_EmbeddedLineBreak(t *testing.T) {
	cfg := DefaultConfig()
	m := CellMeasurer{CellWidth: 10}
	scene := defaultScene(t)
	scene.Items = []InfoItem{
		{"Bio:", "first line\n" + strings.Repeat("very long second line ", 20)},
		{"Repos:", "32"},
	}
	g := ComputeGeometry(cfg.Layout, scene, m)

	ops := Plan(cfg.Theme, cfg.Layout, scene, g, false, m)

	first := findText(t, ops, "first line")
	second := findText(t, ops, strings.Repeat("very long second line ", 20))
	assert.Equal(t, first.At.X, second.At.X)
	assert.Equal(t, cfg.Layout.Step(), second.At.Y-first.At.Y)

	// the next item starts below both lines
	repos := findText(t, ops, "Repos:")
	assert.Equal(t, cfg.Layout.Step(), repos.At.Y-second.At.Y)

	// nothing was split across extra lines
	var values int
	for _, op := range textOps(ops) {
		if op.At.X == first.At.X {
			values++
		}
	}
	assert.Equal(t, 3, values)
}

func TestPlan_BlankSubLineAdvances(t *testing.T) {
	cfg := DefaultConfig()
	m := CellMeasurer{CellWidth: 10}
	scene := defaultScene(t)
	scene.Items = []InfoItem{
		{"Bio:", "top\n  \nbottom"},
	}
	g := ComputeGeometry(cfg.Layout, scene, m)

	ops := Plan(cfg.Theme, cfg.Layout, scene, g, false, m)

	top := findText(t, ops, "top")
	bottom := findText(t, ops, "bottom")
	assert.Equal(t, 2*cfg.Layout.Step(), bottom.At.Y-top.At.Y)
	for _, op := range ops {
		assert.NotEqual(t, "  ", op.Text)
	}
}

func TestPlan_FitsCanvas(t *testing.T) {
	cfg := DefaultConfig()
	face := testFace(t)
	m := FaceMeasurer{Face: face}
	scene := defaultScene(t)
	g := ComputeGeometry(cfg.Layout, scene, m)

	lineHeight := face.Metrics().Height.Ceil()
	for _, op := range Plan(cfg.Theme, cfg.Layout, scene, g, true, m) {
		switch op.Kind {
		case OpText:
			right := op.At.Right(m.Advance(op.Text)).X.Ceil()
			assert.LessOrEqual(t, right, g.Width-cfg.Layout.Padding, "%q overflows", op.Text)
			assert.LessOrEqual(t, op.At.Y+lineHeight, g.Height-cfg.Layout.Padding, "%q overflows", op.Text)
		case OpRect:
			assert.True(t, op.Rect.In(g.Bounds()), "swatch %v outside canvas", op.Rect)
		}
	}
}

func TestRender_FramesDifferOnlyAtCursor(t *testing.T) {
	cfg := DefaultConfig()
	face := testFace(t)
	r := NewRenderer(cfg, face)
	scene := defaultScene(t)
	g := r.Geometry(scene)

	on := r.Render(scene, g, true)
	off := r.Render(scene, g, false)
	require.Equal(t, g.Bounds(), on.Bounds())
	require.Equal(t, g.Bounds(), off.Bounds())

	region := cursorRegion(t, cfg, face, scene, g)

	var differing int
	b := on.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if on.RGBAAt(x, y) == off.RGBAAt(x, y) {
				continue
			}
			differing++
			assert.True(t, image.Pt(x, y).In(region), "pixel (%d,%d) differs outside the cursor", x, y)
		}
	}
	assert.Greater(t, differing, 0, "cursor frame should differ")

	// the cursor cell is mostly solid cursor color
	center := image.Pt((region.Min.X+region.Max.X)/2, (region.Min.Y+region.Max.Y)/2)
	assert.Equal(t, cfg.Theme.Cursor, on.RGBAAt(center.X, center.Y))
	assert.Equal(t, cfg.Theme.Background, off.RGBAAt(center.X, center.Y))
}

// cursorRegion is the pixel box the cursor glyph can touch.
func cursorRegion(t *testing.T, cfg Config, face font.Face, scene Scene, g Geometry) image.Rectangle {
	t.Helper()

	ops := Plan(cfg.Theme, cfg.Layout, scene, g, true, FaceMeasurer{Face: face})
	cursor := ops[len(ops)-1]
	require.Equal(t, cursorGlyph, cursor.Text)

	bounds, _ := font.BoundString(face, cursorGlyph)
	baseline := fixed.I(cursor.At.Y + face.Metrics().Ascent.Ceil())
	return image.Rect(
		(cursor.At.X+bounds.Min.X).Floor()-1,
		(baseline+bounds.Min.Y).Floor()-1,
		(cursor.At.X+bounds.Max.X).Ceil()+1,
		(baseline+bounds.Max.Y).Ceil()+1,
	)
}

func TestNewCanvas(t *testing.T) {
	bg := DarkPlus().Background
	img := NewCanvas(Geometry{Width: 4, Height: 3}, bg)

	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, bg, img.RGBAAt(x, y))
		}
	}
}

func TestPaint_Rect(t *testing.T) {
	theme := DarkPlus()
	img := NewCanvas(Geometry{Width: 10, Height: 10}, theme.Background)

	Paint(img, testFace(t), []DrawOp{{Kind: OpRect, Rect: image.Rect(2, 2, 5, 5), Color: theme.Palette[Red]}})

	assert.Equal(t, theme.Palette[Red], img.RGBAAt(2, 2))
	assert.Equal(t, theme.Palette[Red], img.RGBAAt(4, 4))
	assert.Equal(t, theme.Background, img.RGBAAt(5, 5))
	assert.Equal(t, theme.Background, img.RGBAAt(1, 1))
}
