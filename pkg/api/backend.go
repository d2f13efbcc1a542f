package api

import (
	"io"

	"github.com/tributebook/tributebook/internal/book"
	"github.com/tributebook/tributebook/internal/layout"
	"github.com/tributebook/tributebook/internal/pagination"
	"github.com/tributebook/tributebook/internal/render/pdf"
)

// The pipeline types, re-exported so callers outside the module can
// build books in memory and implement the backend interfaces.
type (
	Book        = book.Book
	Person      = book.Person
	Comment     = book.Comment
	Background  = book.Background
	Backgrounds = book.Backgrounds

	Page = pagination.Page

	Element      = layout.Element
	TextElement  = layout.TextElement
	ImageElement = layout.ImageElement
	Surface      = layout.Surface

	RenderOptions = pdf.RenderOptions
)

// PageRenderer turns the book and its paginated comments into styled
// page surfaces. The default is the built-in layout engine.
type PageRenderer interface {
	BuildBook(b *Book, pages []*Page) []*Surface
}

// DocumentWriter converts an ordered sequence of page surfaces into a
// single paginated document. The default writes a PDF via fpdf.
type DocumentWriter interface {
	Render(surfaces []*Surface, outputPath string, options RenderOptions) error
	RenderTo(surfaces []*Surface, w io.Writer, options RenderOptions) error
}

// WithPageRenderer swaps the page renderer, letting callers lay out
// pages differently without touching pagination.
func WithPageRenderer(r PageRenderer) Option {
	return func(o *Options) {
		o.pageRenderer = r
	}
}

// WithDocumentWriter swaps the document backend.
func WithDocumentWriter(w DocumentWriter) Option {
	return func(o *Options) {
		o.documentWriter = w
	}
}
