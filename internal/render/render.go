package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/rook-computer/appicon/internal/fonts"
)

// FontResolver turns a font name into a face, substituting a default when
// the name cannot be loaded.
type FontResolver interface {
	Resolve(name string, size float64) (fonts.Resolved, error)
}

// Renderer draws the placeholder app icon: a background square, a white
// rounded card with a header band, and one letter cut out of the card.
type Renderer struct {
	Geometry Geometry
	Letter   string
	FontName string
	Fonts    FontResolver
	Logger   interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewRenderer(resolver FontResolver) *Renderer {
	return &Renderer{
		Geometry: DefaultGeometry(),
		Letter:   DefaultLetter,
		FontName: fonts.DefaultName,
		Fonts:    resolver,
	}
}

// Render draws the icon into a new canvas.
func (r *Renderer) Render() (*image.RGBA, GlyphLayout, error) {
	g := r.Geometry
	if err := g.Validate(); err != nil {
		return nil, GlyphLayout{}, err
	}
	if err := ValidateLetter(r.Letter); err != nil {
		return nil, GlyphLayout{}, err
	}

	canvas := image.NewRGBA(g.Bounds())
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	// The header is drawn after the card and covers its top band.
	FillRoundedRect(canvas, g.CardRect(), float64(g.Radius), CornersAll, Card)
	FillRoundedRect(canvas, g.HeaderRect(), float64(g.Radius), CornersTop, Header)

	resolved, err := r.resolveFont()
	if err != nil {
		return nil, GlyphLayout{}, err
	}
	defer resolved.Face.Close()

	glyph := LayoutGlyph(resolved.Face, r.Letter, g)
	DrawGlyph(canvas, resolved.Face, glyph, Glyph)
	if r.Logger != nil {
		r.Logger.Infof("render", "drew %q at (%.1f, %.1f), ink %.1fx%.1f, %s font", glyph.Letter, glyph.X, glyph.Y, glyph.Width, glyph.Height, resolved.Source)
	}
	return canvas, glyph, nil
}

// RenderAndSave renders the icon and writes it to path, overwriting any
// existing file. The format follows the path's extension.
func (r *Renderer) RenderAndSave(path string) error {
	// Fast-fail on the extension before drawing; WriteImage checks it again
	// for callers that encode their own canvas.
	if _, err := FormatFromPath(path); err != nil {
		return err
	}
	canvas, _, err := r.Render()
	if err != nil {
		return err
	}
	if err := WriteImage(path, canvas); err != nil {
		return err
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "wrote %dx%d icon to %s", canvas.Bounds().Dx(), canvas.Bounds().Dy(), path)
	}
	return nil
}

func (r *Renderer) resolveFont() (fonts.Resolved, error) {
	resolver := r.Fonts
	if resolver == nil {
		resolver = fonts.NewResolver(fonts.EngineOpenType, nil)
	}
	resolved, err := resolver.Resolve(r.FontName, r.Geometry.FontSize)
	if err != nil {
		return fonts.Resolved{}, fmt.Errorf("resolve font %q: %w", r.FontName, err)
	}
	if resolved.Source == fonts.SourceDefault && r.Logger != nil {
		r.Logger.Infof("render", "font %q unavailable, using default: %v", r.FontName, resolved.Reason)
	}
	return resolved, nil
}
