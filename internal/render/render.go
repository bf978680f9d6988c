// Package render rasterizes the diagrams to PNG.
package render

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/routes"
)

// Renderer draws diagrams onto fixed-size images.
type Renderer struct {
	palette    Palette
	thresholds pointset.Thresholds
	face       font.Face
	bold       font.Face
	small      font.Face
	width      int
	height     int
	seed       uint32
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette overrides the colours.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithSeed fixes the random point sets.
func WithSeed(seed uint32) Option {
	return func(r *Renderer) {
		r.seed = seed
	}
}

// WithThresholds sets the point-set thresholds for a reference-sized
// surface; they are scaled to the image.
func WithThresholds(th pointset.Thresholds) Option {
	return func(r *Renderer) {
		r.thresholds = th
	}
}

// ReferenceSize is the surface edge the display-unit constants assume.
const ReferenceSize = 420.0

// New returns a renderer for width×height images.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width < 200 || height < 150 {
		return nil, fmt.Errorf("%w: image size %dx%d is below 200x150", common.ErrInvalidParameter, width, height)
	}
	r := &Renderer{
		width:      width,
		height:     height,
		palette:    DefaultPalette,
		thresholds: pointset.DefaultThresholds(),
		seed:       1,
	}
	for _, opt := range opts {
		opt(r)
	}

	size := 14 * float64(height) / 630
	r.face = newFace(mono, size)
	r.bold = newFace(monobold, size*1.3)
	r.small = newFace(mono, size*0.85)
	return r, nil
}

// scale converts display units to pixels.
func (r *Renderer) scale() float64 {
	return float64(min(r.width, r.height)) / ReferenceSize
}

type drawFunc func(r *Renderer, dc *gg.Context)

var drawers = map[string]drawFunc{
	routes.HeineBorel:                  (*Renderer).drawHeineBorel,
	routes.OpenClosedSets:              (*Renderer).drawOpenClosed,
	routes.OpenCovering:                (*Renderer).drawOpenCovering,
	routes.OrderViz:                    (*Renderer).drawOrder,
	routes.SeqLimits:                   (*Renderer).drawSeqLimits,
	routes.SeqFromBelow:                (*Renderer).drawSeqFromBelow,
	routes.Root2:                       (*Renderer).drawRoot2,
	routes.ClosedAccumulationPoints:    (*Renderer).drawClosedAccumulation,
	routes.ClosedAccumulationPointsRev: (*Renderer).drawClosedAccumulationRev,
	routes.CompactSet:                  (*Renderer).drawCompactSet,
	routes.IntExtBoundary:              (*Renderer).drawRegion,
	routes.AdherentAccumulation:        (*Renderer).drawPointSet,
	routes.ConvFunctionToPoint:         (*Renderer).drawEpsDelta,
	routes.PointwiseUniformConv:        (*Renderer).drawPowerConv,
}

// Draw renders the diagram of a route.
func (r *Renderer) Draw(id string) (image.Image, error) {
	route, err := routes.Lookup(id)
	if err != nil {
		return nil, err
	}
	draw, ok := drawers[id]
	if !ok {
		return nil, fmt.Errorf("%w: no drawing for %q", common.ErrUnknownRoute, id)
	}

	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(r.palette.Background)
	dc.Clear()
	r.header(dc, route)
	draw(r, dc)
	return dc.Image(), nil
}

// Export writes <dir>/<id>.png and returns its path.
func (r *Renderer) Export(ctx context.Context, id, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	img, err := r.Draw(id)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", common.ErrExportFailed, dir, err)
	}

	path := filepath.Join(dir, id+".png")
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", common.ErrExportFailed, path, err)
	}
	common.Logger(ctx).Info("exported diagram", slog.String("route", id), slog.String("path", path))
	return path, nil
}

func (r *Renderer) header(dc *gg.Context, route routes.Route) {
	dc.SetFontFace(r.bold)
	dc.SetColor(r.palette.Text)
	dc.DrawStringAnchored(route.Title, float64(r.width)/2, r.headerHeight()*0.4, 0.5, 0.5)
	dc.SetFontFace(r.small)
	dc.SetColor(r.palette.TextDim)
	dc.DrawStringAnchored(route.Description, float64(r.width)/2, r.headerHeight()*0.75, 0.5, 0.5)
}

func (r *Renderer) headerHeight() float64 {
	return float64(r.height) * 0.12
}

// body is the drawing area below the header.
func (r *Renderer) body() (x, y, w, h float64) {
	top := r.headerHeight()
	return 0, top, float64(r.width), float64(r.height) - top
}
