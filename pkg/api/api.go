package api

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tributebook/tributebook/internal/book"
	"github.com/tributebook/tributebook/internal/layout"
	"github.com/tributebook/tributebook/internal/pagination"
	htmlrender "github.com/tributebook/tributebook/internal/render/html"
	"github.com/tributebook/tributebook/internal/render/pdf"
	"github.com/tributebook/tributebook/internal/res"
)

// Generator is the main API for turning a tribute book data file into
// a paginated PDF
type Generator struct {
	options Options
	loader  *res.Loader
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options) *Generator {
	return &Generator{
		options: options,
		loader:  res.NewLoader(""),
	}
}

// NewWithOpts creates a new generator from functional options applied
// over the defaults
func NewWithOpts(opts ...Option) *Generator {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// GenerateFile reads a book data file and writes the rendered PDF to
// the specified path
func (g *Generator) GenerateFile(dataPath, outputPath string) error {
	b, err := book.Load(dataPath)
	if err != nil {
		return err
	}

	// Relative image paths in the data file resolve against its
	// directory.
	g.loader = res.NewLoader(dataPath)
	return g.generate(b, outputPath, nil)
}

// Generate renders an in-memory book as a PDF to the given writer
func (g *Generator) Generate(b *Book, output io.Writer) error {
	if g.loader == nil {
		g.loader = res.NewLoader("")
	}
	return g.generate(b, "", output)
}

// Paginate groups the book's comments into pages using the generator's
// limits, without rendering anything
func (g *Generator) Paginate(b *Book) ([]*Page, error) {
	return pagination.Paginate(commentRefs(b), pagination.Limits{
		MaxChars:              g.options.MaxChars,
		MaxPerPage:            g.options.MaxPerPage,
		ShortMessageThreshold: g.options.ShortMessageThreshold,
	})
}

// generate runs the full pipeline: validate, paginate, lay out and
// render. Exactly one of outputPath and output is used.
func (g *Generator) generate(b *book.Book, outputPath string, output io.Writer) error {
	logger := g.options.Logger

	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid book data: %w", err)
	}
	if dups := b.DuplicateAuthors(); len(dups) > 0 {
		logger.Warn().Strs("authors", dups).Msg("duplicate authors in comments")
	}

	pages, err := g.Paginate(b)
	if err != nil {
		return fmt.Errorf("failed to paginate comments: %w", err)
	}

	logger.Info().Int("pages", len(pages)).Msg("paginated comments")
	for i, page := range pages {
		logger.Info().
			Int("page", i+1).
			Int("comments", len(page.Comments)).
			Str("authors", strings.Join(page.Authors(), ", ")).
			Msg("page composed")
	}

	pageRenderer := g.options.pageRenderer
	if pageRenderer == nil {
		layoutEngine := layout.NewEngine()
		layoutEngine.SetOptions(layout.Options{
			PageWidth:  g.options.PageWidth,
			PageHeight: g.options.PageHeight,
			Margins: layout.Margins{
				Top:    g.options.MarginTop,
				Right:  g.options.MarginRight,
				Bottom: g.options.MarginBottom,
				Left:   g.options.MarginLeft,
			},
			DPI: g.options.DPI,
		})
		pageRenderer = layoutEngine
	}
	surfaces := pageRenderer.BuildBook(b, pages)

	if g.options.DebugHTMLPath != "" {
		if err := g.exportDebugHTML(b, pages); err != nil {
			return err
		}
		logger.Info().Str("path", g.options.DebugHTMLPath).Msg("wrote debug HTML")
	}

	for _, path := range g.options.ResourcePaths {
		g.loader.AddSearchPath(path)
	}

	writer := g.options.documentWriter
	if writer == nil {
		renderer := pdf.NewRenderer(g.loader)
		renderer.Debug = g.options.Debug
		renderer.Logger = logger
		if g.options.FontDirectory != "" {
			renderer.SetFontDirectory(g.options.FontDirectory)
		}
		writer = renderer
	}

	title := g.options.Title
	if title == "" {
		title = b.Person.Name
	}
	renderOptions := pdf.RenderOptions{
		Title:    title,
		Author:   g.options.Author,
		Subject:  g.options.Subject,
		Keywords: g.options.Keywords,
		Creator:  "TributeBook",
		Producer: "TributeBook",
	}

	if output != nil {
		err = writer.RenderTo(surfaces, output, renderOptions)
	} else {
		err = writer.Render(surfaces, outputPath, renderOptions)
	}
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

func (g *Generator) exportDebugHTML(b *book.Book, pages []*pagination.Page) error {
	f, err := os.Create(g.options.DebugHTMLPath)
	if err != nil {
		return fmt.Errorf("failed to create debug HTML file: %w", err)
	}
	if err := htmlrender.NewExporter().Export(b, pages, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// commentRefs returns pointers to the book's comments so pages share
// the original records instead of copies.
func commentRefs(b *book.Book) []*book.Comment {
	refs := make([]*book.Comment, len(b.Comments))
	for i := range b.Comments {
		refs[i] = &b.Comments[i]
	}
	return refs
}

// WithOptions returns a new generator with the specified options
func (g *Generator) WithOptions(options Options) *Generator {
	return NewWithOptions(options)
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// AddResourcePath adds a path to search for images
func (g *Generator) AddResourcePath(path string) *Generator {
	newOptions := g.options
	newOptions.ResourcePaths = append(newOptions.ResourcePaths, path)
	return NewWithOptions(newOptions)
}

// SetDebug sets the debug mode
func (g *Generator) SetDebug(debug bool) *Generator {
	newOptions := g.options
	newOptions.Debug = debug
	return NewWithOptions(newOptions)
}
