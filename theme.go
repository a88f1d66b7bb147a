package termcard

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the 16 ANSI colors in definition order: 8 standard colors (0-7) then their bright variants (8-15).
type Palette [16]color.RGBA

// Palette slot indices.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightPurple
	BrightCyan
	BrightWhite
)

// Roles maps UI elements to the colors they are drawn with.
type Roles struct {
	Prompt     color.RGBA
	Command    color.RGBA
	Ascii      color.RGBA
	InfoLabel  color.RGBA
	InfoValue  color.RGBA
	InfoHeader color.RGBA
}

// Theme is a terminal color scheme plus the UI role assignment derived from it.
type Theme struct {
	Foreground color.RGBA
	Background color.RGBA
	Cursor     color.RGBA
	Palette    Palette
	Roles      Roles
}

// darkPlus is the VS Code "Dark+" scheme, in palette order.
var darkPlus = struct {
	foreground, background, cursor string
	palette                        [16]string
}{
	foreground: "#cccccc",
	background: "#1e1e1e",
	cursor:     "#cccccc",
	palette: [16]string{
		"#000000", // Black
		"#c62f37", // Red
		"#37be78", // Green
		"#e2e822", // Yellow
		"#396ec7", // Blue
		"#b835bc", // Purple
		"#3ba7cc", // Cyan
		"#e5e5e5", // White

		"#666666", // Bright Black
		"#e94a51", // Bright Red
		"#45d38a", // Bright Green
		"#f2f84a", // Bright Yellow
		"#4e8ae9", // Bright Blue
		"#d26ad6", // Bright Purple
		"#49b7da", // Bright Cyan
		"#e5e5e5", // Bright White
	},
}

// DarkPlus returns the Dark+ theme with the default role mapping.
func DarkPlus() Theme {
	t := Theme{
		Foreground: mustHex(darkPlus.foreground),
		Background: mustHex(darkPlus.background),
		Cursor:     mustHex(darkPlus.cursor),
	}
	for i, hex := range darkPlus.palette {
		t.Palette[i] = mustHex(hex)
	}

	t.Roles = Roles{
		Prompt:     t.Palette[Green],
		Command:    t.Palette[Blue],
		Ascii:      t.Palette[BrightBlack],
		InfoLabel:  t.Palette[Cyan],
		InfoValue:  t.Palette[White],
		InfoHeader: t.Palette[Green],
	}
	return t
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// resolvePaletteColor maps an ANSI color index onto the theme. Indices outside 0-15 resolve to the foreground.
func (t *Theme) resolvePaletteColor(index int) color.RGBA {
	if index >= 0 && index < len(t.Palette) {
		return t.Palette[index]
	}
	return t.Foreground
}
