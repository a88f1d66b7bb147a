package termcard

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Segment is a run of text drawn in a single color.
type Segment struct {
	Text  string
	Color color.RGBA
}

// Line is a sequence of segments drawn left to right.
type Line []Segment

// String returns the plain text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// DecodeTranscript splits raw terminal output into colored lines.
// Only printable text, CR/LF and SGR foreground attributes are interpreted;
// palette colors resolve through the theme.
func DecodeTranscript(theme Theme, transcript string) ([]Line, error) {
	h := &transcriptHandler{theme: theme, fg: theme.Foreground}
	decoder := ansicode.NewDecoder(h)
	if _, err := decoder.Write([]byte(transcript)); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	h.flush()
	if len(h.current) > 0 {
		h.lines = append(h.lines, h.current)
	}
	return h.lines, nil
}

// transcriptHandler collects segments from the decoder. Sequences other than
// text, CR/LF and SGR fall through to noopHandler and are dropped.
type transcriptHandler struct {
	noopHandler

	theme   Theme
	fg      color.RGBA
	text    []rune
	current Line
	lines   []Line
}

func (h *transcriptHandler) Input(r rune) {
	h.text = append(h.text, r)
}

func (h *transcriptHandler) CarriageReturn() {
	h.flush()
}

func (h *transcriptHandler) LineFeed() {
	h.flush()
	h.lines = append(h.lines, h.current)
	h.current = nil
}

func (h *transcriptHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		h.setForeground(h.theme.Foreground)
	case ansicode.CharAttributeForeground:
		h.setForeground(h.resolveColor(attr))
	}
}

func (h *transcriptHandler) setForeground(c color.RGBA) {
	if c == h.fg {
		return
	}
	h.flush()
	h.fg = c
}

func (h *transcriptHandler) flush() {
	if len(h.text) == 0 {
		return
	}
	h.current = append(h.current, Segment{Text: string(h.text), Color: h.fg})
	h.text = h.text[:0]
}

func (h *transcriptHandler) resolveColor(attr ansicode.TerminalCharAttribute) color.RGBA {
	if attr.RGBColor != nil {
		return color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}
	}

	if attr.IndexedColor != nil {
		return h.theme.resolvePaletteColor(int(attr.IndexedColor.Index))
	}

	if attr.NamedColor != nil {
		return h.theme.resolvePaletteColor(int(*attr.NamedColor))
	}

	return h.theme.Foreground
}

// sgrForeground returns the SGR sequence selecting c as foreground: a named
// color when c is in the theme palette, truecolor otherwise.
func sgrForeground(theme Theme, c color.RGBA) string {
	for i, p := range theme.Palette {
		if p != c {
			continue
		}
		if i < 8 {
			return fmt.Sprintf("\x1b[%dm", 30+i)
		}
		return fmt.Sprintf("\x1b[%dm", 90+i-8)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

const sgrReset = "\x1b[0m"

// HistoryTranscript renders the canned shell session above the card:
// a whoami with its output, then the neofetch invocation that draws the card.
func HistoryTranscript(cfg Config) string {
	theme := cfg.Theme
	prompt := strings.TrimSuffix(cfg.Prompt(), " ")

	var b strings.Builder
	command := func(cmd string) {
		b.WriteString(sgrForeground(theme, theme.Roles.Prompt) + prompt)
		b.WriteString(sgrForeground(theme, theme.Roles.Command) + " " + cmd + sgrReset + "\r\n")
	}

	command("whoami")
	b.WriteString(sgrForeground(theme, theme.Roles.InfoValue) + cfg.WhoAmI + sgrReset + "\r\n")
	command("neofetch")
	return b.String()
}
