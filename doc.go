// Package termcard renders a fake terminal session as an image: a shell running
// neofetch for a GitHub user, with an ASCII-art portrait, an info panel, the
// theme's palette and a trailing prompt with a blinking block cursor.
//
// # Quick Start
//
//	cfg := termcard.DefaultConfig()
//	face, err := termcard.LoadFont(afero.NewOsFs(), cfg.FontPath, cfg.FontSize)
//	if err != nil {
//	    return err
//	}
//	defer face.Close()
//
//	r := termcard.NewRenderer(cfg, face)
//	artifacts, err := r.Generate(ctx, afero.NewOsFs(), termcard.NewClient())
//
// Generate writes a PNG still and a two-frame GIF whose frames differ only by
// the cursor.
//
// # Pipeline
//
// Rendering is a single pass through four steps:
//
//   - A [ProfileSource] supplies the [Profile]. [Client] reads the GitHub users
//     API and falls back to [FallbackProfile] on any failure; [StaticSource]
//     always returns the fallback.
//   - [NewScene] assembles the content: the command history (decoded from an
//     ANSI transcript), the art, the panel header and the [InfoItem] rows.
//   - [ComputeGeometry] measures the scene with a [Measurer] and sizes the canvas.
//   - [Plan] walks the scene top to bottom with a [Pen] and emits [DrawOp]
//     values; [Paint] executes them on a canvas from [NewCanvas].
//
// [ExportStill] and [ExportAnimation] encode the results.
//
// # Measurement
//
// [FaceMeasurer] measures with the font face used for drawing. [CellMeasurer]
// measures on a fixed grid, which makes layouts independent of the font:
//
//	m := termcard.CellMeasurer{CellWidth: 10}
//	g := termcard.ComputeGeometry(termcard.DefaultLayout(), scene, m)
//
// Values are never wrapped. A value containing line breaks is drawn as one row
// per line, all aligned on the value column.
package termcard
