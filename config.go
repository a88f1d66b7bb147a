package termcard

import "time"

// Layout holds the pixel constants the geometry and compositor work from.
type Layout struct {
	// GlyphHeight is the nominal line height of the font (its pixel size).
	GlyphHeight int
	// LineSpacing is added between text lines.
	LineSpacing int
	// Padding is the base margin around and between regions.
	Padding int
	// ArtLineGap separates ASCII art lines (instead of LineSpacing).
	ArtLineGap int
	// LabelGap separates the label column from the value column.
	LabelGap int
	// PanelPadding widens the info panel beyond its two columns.
	PanelPadding int
	// TrailerMargin is extra space below the content.
	TrailerMargin int
	// UnderlineLength is the number of dashes under the panel header.
	UnderlineLength int
	// SwatchColumns is the number of swatches per row.
	SwatchColumns int
}

// Step returns the vertical advance of one text line.
func (l Layout) Step() int {
	return l.GlyphHeight + l.LineSpacing
}

// DefaultLayout matches a 16px font.
func DefaultLayout() Layout {
	return Layout{
		GlyphHeight:     16,
		LineSpacing:     6,
		Padding:         20,
		ArtLineGap:      2,
		LabelGap:        10,
		PanelPadding:    30,
		TrailerMargin:   40,
		UnderlineLength: 20,
		SwatchColumns:   8,
	}
}

// Config is everything a render needs besides the font and the profile.
type Config struct {
	Username string
	// WhoAmI is the canned output of the whoami command.
	WhoAmI    string
	Languages string
	Skills    string
	Art       []string

	FontPath string
	FontSize float64

	Theme  Theme
	Layout Layout

	StillPath     string
	AnimationPath string
	FrameDelay    time.Duration

	APIBaseURL   string
	FetchTimeout time.Duration
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Username:  "PhantomOffKanagawa",
		WhoAmI:    "Harrison Surma",
		Languages: "Typescript, Python, Java, C",
		Skills:    "Communication, Problem Solving, Goal Oriented",
		Art:       append([]string(nil), merlin...),

		FontPath: "./JetBrainsMonoNerdFont-Regular.ttf",
		FontSize: 16,

		Theme:  DarkPlus(),
		Layout: DefaultLayout(),

		StillPath:     "terminal.png",
		AnimationPath: "terminal.gif",
		FrameDelay:    500 * time.Millisecond,

		APIBaseURL:   DefaultAPIBaseURL,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// Prompt returns the shell prompt for the configured user, including the trailing space.
func (c Config) Prompt() string {
	return c.Username + "@github:~$ "
}

// artPlaceholder is a color marker some art sources embed; it is never drawn.
const artPlaceholder = "${c1}"

var merlin = []string{
	"            @@@%%%%%%%%%@@           ",
	"         @@@%%%%%%%%%#######%@@      ",
	"       @@@@%%%%%%%######?######%@    ",
	"      @@@@%%%%%%%#######:########%@  ",
	"    @@@@@%%%%%%#########:??#######%  ",
	"    @@@%%%%%####???###?+:??####?###@ ",
	"   @@@%%%%%%#?+???###?:+?##??###?##@ ",
	" @??%@%%%##????????++:;+?+????????#@ ",
	" #  ;?%#?+; ..::+?+ ::;++++++?+???#  ",
	" %  :?%;;;:  ....:#+ :;+++????+???@  ",
	" #;;+??+++:   ...;##: ;;;++???++?%   ",
	" %#%+::++?#+;:::;?##+ ;;;;++??++#    ",
	" %?% : :???+?++???######?+;;+??#     ",
	" @%# ; ;??;;+ ;???+;;:..::.:+?%      ",
	"  @???;;?+;;;+ ;:;;......;;;#@       ",
	"  %##?++?+++;+ ??% @%%@@@@           ",
	"  @_:?_:+_:_:#%                      ",
}
