package termcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoItem_Lines(t *testing.T) {
	assert.Equal(t, []string{"one"}, InfoItem{"L:", "one"}.Lines())
	assert.Equal(t, []string{"one", "two"}, InfoItem{"L:", "one\ntwo"}.Lines())
	assert.Equal(t, []string{""}, InfoItem{"L:", ""}.Lines())
}

func TestInfoItems(t *testing.T) {
	cfg := DefaultConfig()
	items := InfoItems(cfg, FallbackProfile(cfg.Username))

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{
		"Name:", "Bio:", "Blog: ", "Languages:", "Skills:",
		"Repos:", "Gists:", "Followers:", "Following:",
	}, labels)

	assert.Equal(t, "Typescript, Python, Java, C", items[3].Value)
	assert.Equal(t, "Communication, Problem Solving, Goal Oriented", items[4].Value)
	assert.Equal(t, "32", items[5].Value)
}

func TestNewScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Art = []string{"${c1}@@ ", "  ${c1}%%"}

	scene, err := NewScene(cfg, FallbackProfile(cfg.Username))
	require.NoError(t, err)

	assert.Equal(t, "PhantomOffKanagawa@github", scene.Header)
	assert.Equal(t, "PhantomOffKanagawa@github:~$ ", scene.Prompt)
	assert.Equal(t, []string{"@@ ", "  %%"}, scene.Art)
	assert.Len(t, scene.History, 3)
	assert.Len(t, scene.Items, 9)

	for _, line := range scene.Art {
		assert.False(t, strings.Contains(line, artPlaceholder))
	}
}

func TestScene_ValueLineCount(t *testing.T) {
	s := Scene{Items: []InfoItem{{"A:", "x"}, {"B:", "y\nz"}, {"C:", ""}}}
	assert.Equal(t, 4, s.valueLineCount())
}
