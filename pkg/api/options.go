package api

import (
	"github.com/rs/zerolog"

	"github.com/tributebook/tributebook/internal/config"
)

// Options represents configuration options for the tribute book generator
type Options struct {
	// Pagination limits
	MaxChars   int
	MaxPerPage int
	// ShortMessageThreshold makes messages at or below this many
	// characters count at half weight toward MaxChars. Zero disables
	// the discount.
	ShortMessageThreshold int

	// Page dimensions in points
	PageWidth  float64
	PageHeight float64

	// Page margins in points
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// DPI used to convert comment height hints from pixels
	DPI float64

	// Debug enables verbose logging
	Debug bool

	// Logger receives progress and debug events
	Logger zerolog.Logger

	// Resource paths
	ResourcePaths []string

	// FontDirectory is where the PDF backend looks for font
	// definition files. fpdf keeps a single font location.
	FontDirectory string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string

	// DebugHTMLPath, when set, writes the rendered book as HTML for
	// inspection alongside the PDF
	DebugHTMLPath string

	// Pluggable backends; nil selects the built-in layout engine and
	// PDF writer.
	pageRenderer   PageRenderer
	documentWriter DocumentWriter
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MaxChars:   config.DefaultMaxChars,
		MaxPerPage: config.DefaultMaxPerPage,

		// Default to A4 paper size (595.28 x 841.89 points)
		PageWidth:  595.28,
		PageHeight: 841.89,

		// Default margins (1 inch = 72 points)
		MarginTop:    72,
		MarginRight:  72,
		MarginBottom: 72,
		MarginLeft:   72,

		DPI: 96,

		Logger: zerolog.Nop(),
	}
}

// WithLimits sets the pagination limits
func WithLimits(maxChars, maxPerPage int) Option {
	return func(o *Options) {
		o.MaxChars = maxChars
		o.MaxPerPage = maxPerPage
	}
}

// WithShortMessageThreshold enables the short-message discount: messages
// at or below the threshold count at half weight toward the character
// budget
func WithShortMessageThreshold(threshold int) Option {
	return func(o *Options) {
		o.ShortMessageThreshold = threshold
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithDPI sets the DPI used for height hints
func WithDPI(dpi float64) Option {
	return func(o *Options) {
		o.DPI = dpi
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithResourcePath adds a path to search for images
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithFontDirectory sets the directory to search for fonts
func WithFontDirectory(dir string) Option {
	return func(o *Options) {
		o.FontDirectory = dir
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithDebugHTML writes the rendered book as HTML to the given path
func WithDebugHTML(path string) Option {
	return func(o *Options) {
		o.DebugHTMLPath = path
	}
}

// Standard page sizes in points (1/72 inch). Typed so they compare
// directly against the float64 fields in Options.
const (
	PageSizeA3Width  float64 = 841.89
	PageSizeA3Height float64 = 1190.55
	PageSizeA4Width  float64 = 595.28
	PageSizeA4Height float64 = 841.89
	PageSizeA5Width  float64 = 419.53
	PageSizeA5Height float64 = 595.28

	PageSizeLetterWidth  float64 = 612
	PageSizeLetterHeight float64 = 792
	PageSizeLegalWidth   float64 = 612
	PageSizeLegalHeight  float64 = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// WithConfig applies a loaded configuration file to the options
func WithConfig(cfg *config.Config) Option {
	return func(o *Options) {
		o.MaxChars = cfg.Limits.MaxChars
		o.MaxPerPage = cfg.Limits.MaxPerPage
		o.ShortMessageThreshold = cfg.Limits.ShortMessageThreshold

		switch cfg.Page.Size {
		case "A3":
			o.PageWidth, o.PageHeight = PageSizeA3Width, PageSizeA3Height
		case "A5":
			o.PageWidth, o.PageHeight = PageSizeA5Width, PageSizeA5Height
		case "Letter":
			o.PageWidth, o.PageHeight = PageSizeLetterWidth, PageSizeLetterHeight
		case "Legal":
			o.PageWidth, o.PageHeight = PageSizeLegalWidth, PageSizeLegalHeight
		default:
			o.PageWidth, o.PageHeight = PageSizeA4Width, PageSizeA4Height
		}

		o.MarginTop = cfg.Page.Margin
		o.MarginRight = cfg.Page.Margin
		o.MarginBottom = cfg.Page.Margin
		o.MarginLeft = cfg.Page.Margin

		if cfg.Output.DebugHTML != "" {
			o.DebugHTMLPath = cfg.Output.DebugHTML
		}
	}
}
