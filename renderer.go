package termcard

import (
	"context"
	"fmt"
	"image"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// Renderer draws cards for a configuration and font.
type Renderer struct {
	cfg      Config
	face     font.Face
	measurer Measurer
	logger   *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMeasurer overrides text measurement. Defaults to measuring with the face.
func WithMeasurer(m Measurer) Option {
	return func(r *Renderer) {
		r.measurer = m
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a renderer drawing text with face.
func NewRenderer(cfg Config, face font.Face, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:    cfg,
		face:   face,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.measurer == nil {
		r.measurer = FaceMeasurer{Face: face}
	}

	return r
}

// Scene assembles the card content for p.
func (r *Renderer) Scene(p Profile) (Scene, error) {
	return NewScene(r.cfg, p)
}

// Geometry measures s.
func (r *Renderer) Geometry(s Scene) Geometry {
	return ComputeGeometry(r.cfg.Layout, s, r.measurer)
}

// Render paints s onto a new canvas sized by g.
func (r *Renderer) Render(s Scene, g Geometry, includeCursor bool) *image.RGBA {
	canvas := NewCanvas(g, r.cfg.Theme.Background)
	Paint(canvas, r.face, Plan(r.cfg.Theme, r.cfg.Layout, s, g, includeCursor, r.measurer))
	return canvas
}

// Artifacts describes the files written by Generate.
type Artifacts struct {
	Still     string
	Animation string
	Fetch     FetchResult
	Geometry  Geometry
}

// Generate fetches the profile once, then writes the still image and the blinking-cursor animation to fs.
func (r *Renderer) Generate(ctx context.Context, fs afero.Fs, source ProfileSource) (Artifacts, error) {
	res := source.FetchProfile(ctx, r.cfg.Username)
	if res.Fallback {
		r.logger.Debug("rendering fallback profile", zap.String("username", r.cfg.Username))
	}

	scene, err := r.Scene(res.Profile)
	if err != nil {
		return Artifacts{}, err
	}

	g := r.Geometry(scene)
	r.logger.Debug("computed geometry",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("art_width", g.ArtWidth),
		zap.Int("panel_width", g.PanelWidth),
	)

	if err := ExportStill(fs, r.Render(scene, g, false), r.cfg.StillPath); err != nil {
		return Artifacts{}, fmt.Errorf("export still: %w", err)
	}

	on := r.Render(scene, g, true)
	off := r.Render(scene, g, false)
	if err := ExportAnimation(fs, on, off, r.cfg.AnimationPath, r.cfg.FrameDelay); err != nil {
		return Artifacts{}, fmt.Errorf("export animation: %w", err)
	}

	return Artifacts{
		Still:     r.cfg.StillPath,
		Animation: r.cfg.AnimationPath,
		Fetch:     res,
		Geometry:  g,
	}, nil
}
