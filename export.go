package termcard

import (
	"bufio"
	"cmp"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/afero"
)

// maxGIFColors is the palette limit of the GIF format.
const maxGIFColors = 256

// ExportStill writes img as a PNG file.
func ExportStill(fs afero.Fs, img image.Image, path string) error {
	return writeFile(fs, path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// ExportAnimation writes a looping two-frame GIF: the cursor-on frame, then the cursor-off frame,
// each shown for delay. Both frames share one palette so they differ only where the cursor is.
func ExportAnimation(fs afero.Fs, on, off image.Image, path string, delay time.Duration) error {
	frames := []image.Image{on, off}
	palette := sharedPalette(frames...)

	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, quantize(frame, palette))
		anim.Delay = append(anim.Delay, centiseconds(delay))
	}

	return writeFile(fs, path, func(w io.Writer) error {
		return gif.EncodeAll(w, anim)
	})
}

func writeFile(fs afero.Fs, path string, encode func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// centiseconds converts a frame delay to GIF units.
func centiseconds(d time.Duration) int {
	return int(d / (10 * time.Millisecond))
}

// sharedPalette returns the colors used by the frames, most frequent first,
// capped at the GIF limit. Ties are broken by color value so the result is stable.
func sharedPalette(frames ...image.Image) color.Palette {
	counts := make(map[color.RGBA]int)
	for _, frame := range frames {
		eachPixel(frame, func(x, y int, c color.RGBA) {
			counts[c]++
		})
	}

	colors := make([]color.RGBA, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	slices.SortFunc(colors, func(a, b color.RGBA) int {
		if n := cmp.Compare(counts[b], counts[a]); n != 0 {
			return n
		}
		return cmp.Compare(packRGBA(a), packRGBA(b))
	})

	if len(colors) > maxGIFColors {
		colors = colors[:maxGIFColors]
	}

	palette := make(color.Palette, len(colors))
	for i, c := range colors {
		palette[i] = c
	}
	return palette
}

// quantize maps every pixel onto the palette, exactly where possible and to the nearest entry otherwise.
func quantize(img image.Image, palette color.Palette) *image.Paletted {
	out := image.NewPaletted(img.Bounds(), palette)

	index := make(map[color.RGBA]uint8, len(palette))
	for i, c := range palette {
		index[c.(color.RGBA)] = uint8(i)
	}

	eachPixel(img, func(x, y int, c color.RGBA) {
		i, ok := index[c]
		if !ok {
			i = uint8(palette.Index(c))
			index[c] = i
		}
		out.SetColorIndex(x, y, i)
	})
	return out
}

func eachPixel(img image.Image, fn func(x, y int, c color.RGBA)) {
	b := img.Bounds()
	rgba, isRGBA := img.(*image.RGBA)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isRGBA {
				fn(x, y, rgba.RGBAAt(x, y))
				continue
			}
			fn(x, y, color.RGBAModel.Convert(img.At(x, y)).(color.RGBA))
		}
	}
}

func packRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
