package termcard

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// testFace returns Go Mono at the default 16px size.
func testFace(t *testing.T) font.Face {
	t.Helper()

	face, err := LoadFontFromBytes(gomono.TTF, 16)
	require.NoError(t, err)
	t.Cleanup(func() { face.Close() })
	return face
}

// defaultScene is the card for the fallback profile.
func defaultScene(t *testing.T) Scene {
	t.Helper()

	cfg := DefaultConfig()
	scene, err := NewScene(cfg, FallbackProfile(cfg.Username))
	require.NoError(t, err)
	return scene
}
