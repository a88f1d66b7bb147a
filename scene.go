package termcard

import "strings"

// InfoItem is one label/value row of the info panel. Value may span several
// lines separated by '\n'; each is drawn as-is, nothing wraps.
type InfoItem struct {
	Label string
	Value string
}

// Lines returns the value split on line breaks.
func (i InfoItem) Lines() []string {
	return strings.Split(i.Value, "\n")
}

// InfoItems builds the panel rows from a profile.
func InfoItems(cfg Config, p Profile) []InfoItem {
	return []InfoItem{
		{"Name:", p.Name},
		{"Bio:", p.Bio},
		{"Blog: ", p.Blog},
		{"Languages:", cfg.Languages},
		{"Skills:", cfg.Skills},
		{"Repos:", p.Repos},
		{"Gists:", p.Gists},
		{"Followers:", p.Followers},
		{"Following:", p.Following},
	}
}

// Scene is the content of one card, independent of fonts and pixels.
type Scene struct {
	History []Line
	Prompt  string
	Art     []string
	Header  string
	Items   []InfoItem
}

// NewScene assembles the card content for a profile.
func NewScene(cfg Config, p Profile) (Scene, error) {
	history, err := DecodeTranscript(cfg.Theme, HistoryTranscript(cfg))
	if err != nil {
		return Scene{}, err
	}

	art := make([]string, len(cfg.Art))
	for i, line := range cfg.Art {
		art[i] = strings.ReplaceAll(line, artPlaceholder, "")
	}

	return Scene{
		History: history,
		Prompt:  cfg.Prompt(),
		Art:     art,
		Header:  p.Login + "@github",
		Items:   InfoItems(cfg, p),
	}, nil
}

// valueLineCount is the number of value lines across all items.
func (s Scene) valueLineCount() int {
	n := 0
	for _, item := range s.Items {
		n += len(item.Lines())
	}
	return n
}
