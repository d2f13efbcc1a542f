package pdf

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/tributebook/tributebook/internal/layout"
	"github.com/tributebook/tributebook/internal/res"
)

// Renderer converts laid-out page surfaces into a single PDF document.
type Renderer struct {
	// FontDir is the directory searched for font definition files.
	// fpdf keeps a single font location, so there is exactly one.
	FontDir string
	// Debug enables verbose logging
	Debug bool
	// Logger receives per-page render events
	Logger zerolog.Logger

	loader *res.Loader
}

// RenderOptions contains document metadata for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// NewRenderer creates a new PDF renderer
func NewRenderer(loader *res.Loader) *Renderer {
	if loader == nil {
		loader = res.NewLoader("")
	}
	return &Renderer{
		Logger: zerolog.Nop(),
		loader: loader,
	}
}

// SetFontDirectory sets the directory to search for fonts
func (r *Renderer) SetFontDirectory(dir string) {
	r.FontDir = dir
}

// Render renders surfaces to a PDF file
func (r *Renderer) Render(surfaces []*layout.Surface, outputPath string, options RenderOptions) error {
	doc, err := r.build(surfaces, options)
	if err != nil {
		return err
	}
	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// RenderTo renders surfaces as a PDF to the given writer
func (r *Renderer) RenderTo(surfaces []*layout.Surface, w io.Writer, options RenderOptions) error {
	doc, err := r.build(surfaces, options)
	if err != nil {
		return err
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (r *Renderer) build(surfaces []*layout.Surface, options RenderOptions) (*fpdf.Fpdf, error) {
	doc := fpdf.New("P", "pt", "", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)
	doc.SetProducer(options.Producer, true)
	r.registerFonts(doc)

	// The core fonts are cp1252-encoded; UTF-8 text like en dashes
	// and accented names must be translated before doc.Text.
	translate := doc.UnicodeTranslatorFromDescriptor("")

	if r.Debug {
		// Uncompressed page streams are readable in a text editor.
		doc.SetCompression(false)
		r.Logger.Debug().Int("pages", len(surfaces)).Msg("rendering document")
	}

	for i, surface := range surfaces {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: surface.Width, Ht: surface.Height})

		if surface.Background != nil {
			if err := r.drawBackground(doc, surface); err != nil {
				// A missing background should not abort the whole
				// document; the page is still readable without it.
				// fpdf's error state is sticky, so clear it before
				// drawing anything else.
				r.Logger.Warn().Err(err).Int("page", i+1).Msg("skipping background")
				doc.ClearError()
			}
		}

		for _, el := range surface.Elements {
			switch el := el.(type) {
			case *layout.TextElement:
				r.drawText(doc, translate, el)
			case *layout.ImageElement:
				if err := r.drawImage(doc, el); err != nil {
					r.Logger.Warn().Err(err).Int("page", i+1).Str("source", el.Source).Msg("skipping image")
					doc.ClearError()
				}
			}
		}

		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}
	}

	return doc, nil
}

func (r *Renderer) registerFonts(doc *fpdf.Fpdf) {
	if r.FontDir != "" {
		doc.SetFontLocation(r.FontDir)
	}
}

func (r *Renderer) drawText(doc *fpdf.Fpdf, translate func(string) string, el *layout.TextElement) {
	family := el.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	doc.SetFont(family, el.FontStyle, el.FontSize)
	doc.SetTextColor(el.Color[0], el.Color[1], el.Color[2])

	// Text positions at the baseline; offset by the font size so the
	// element's Y is its top edge like every other element.
	y := el.Y + el.FontSize
	for _, line := range strings.Split(el.Text, "\n") {
		doc.Text(el.X, y, translate(line))
		y += el.LineHeight
	}
}

func (r *Renderer) drawImage(doc *fpdf.Fpdf, el *layout.ImageElement) error {
	resource, err := r.loader.LoadImage(el.Source)
	if err != nil {
		return err
	}
	imageType := resource.ImageType()
	if imageType == "" {
		return fmt.Errorf("unsupported image format %q: %s", resource.MimeType, el.Source)
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader(resource.URL, opts, resource.GetReader())
	if err := doc.Error(); err != nil {
		return err
	}

	if el.Rounded {
		radius := el.Width / 2
		doc.ClipCircle(el.X+radius, el.Y+radius, radius, false)
		doc.ImageOptions(resource.URL, el.X, el.Y, el.Width, el.Height, false, opts, 0, "")
		doc.ClipEnd()
		return doc.Error()
	}

	doc.ImageOptions(resource.URL, el.X, el.Y, el.Width, el.Height, false, opts, 0, "")
	return doc.Error()
}

// drawBackground paints the surface background image according to its
// CSS-style size and position settings.
func (r *Renderer) drawBackground(doc *fpdf.Fpdf, surface *layout.Surface) error {
	bg := surface.Background
	if bg.Image == "" {
		return nil
	}

	resource, err := r.loader.LoadImage(bg.Image)
	if err != nil {
		return err
	}
	imageType := resource.ImageType()
	if imageType == "" {
		return fmt.Errorf("unsupported background format %q: %s", resource.MimeType, bg.Image)
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	info := doc.RegisterImageOptionsReader(resource.URL, opts, resource.GetReader())
	if err := doc.Error(); err != nil {
		return err
	}

	w, h := backgroundExtent(bg.Size, surface.Width, surface.Height, info.Width(), info.Height())
	x, y := backgroundOrigin(bg.Position, surface.Width, surface.Height, w, h)

	doc.ClipRect(0, 0, surface.Width, surface.Height, false)
	doc.ImageOptions(resource.URL, x, y, w, h, false, opts, 0, "")
	doc.ClipEnd()
	return doc.Error()
}

// backgroundExtent computes the drawn size of a background image for a
// CSS background-size value: cover, contain, auto or "NN% NN%".
func backgroundExtent(size string, pageW, pageH, imgW, imgH float64) (float64, float64) {
	if imgW <= 0 || imgH <= 0 {
		return pageW, pageH
	}

	switch size {
	case "contain":
		scale := pageW / imgW
		if pageH/imgH < scale {
			scale = pageH / imgH
		}
		return imgW * scale, imgH * scale
	case "auto":
		return imgW, imgH
	case "cover", "":
		// fall through to cover below
	default:
		var wPct, hPct float64
		if n, err := fmt.Sscanf(size, "%f%% %f%%", &wPct, &hPct); err == nil && n == 2 {
			return pageW * wPct / 100, pageH * hPct / 100
		}
	}

	scale := pageW / imgW
	if pageH/imgH > scale {
		scale = pageH / imgH
	}
	return imgW * scale, imgH * scale
}

// backgroundOrigin computes the top-left corner for a CSS
// background-position value. Unrecognized keywords center the image.
func backgroundOrigin(position string, pageW, pageH, w, h float64) (float64, float64) {
	alignX, alignY := 0.5, 0.5
	for _, token := range strings.Fields(strings.ToLower(position)) {
		switch token {
		case "left":
			alignX = 0
		case "right":
			alignX = 1
		case "top":
			alignY = 0
		case "bottom":
			alignY = 1
		case "center":
		}
	}
	return (pageW - w) * alignX, (pageH - h) * alignY
}
