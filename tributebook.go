package tributebook

import (
	"github.com/tributebook/tributebook/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type PageRenderer = api.PageRenderer
type DocumentWriter = api.DocumentWriter

type Book = api.Book
type Person = api.Person
type Comment = api.Comment
type Background = api.Background
type Backgrounds = api.Backgrounds
type Page = api.Page
type Element = api.Element
type TextElement = api.TextElement
type ImageElement = api.ImageElement
type Surface = api.Surface
type RenderOptions = api.RenderOptions

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func NewWithOpts(opts ...Option) *Generator     { return api.NewWithOpts(opts...) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithLimits                = api.WithLimits
	WithShortMessageThreshold = api.WithShortMessageThreshold
	WithPageSize              = api.WithPageSize
	WithMargins               = api.WithMargins
	WithDPI                   = api.WithDPI
	WithDebug                 = api.WithDebug
	WithLogger                = api.WithLogger
	WithResourcePath          = api.WithResourcePath
	WithFontDirectory         = api.WithFontDirectory
	WithTitle                 = api.WithTitle
	WithAuthor                = api.WithAuthor
	WithSubject               = api.WithSubject
	WithKeywords              = api.WithKeywords
	WithDebugHTML             = api.WithDebugHTML
	WithConfig                = api.WithConfig
	WithPageRenderer          = api.WithPageRenderer
	WithDocumentWriter        = api.WithDocumentWriter
	WithPageSizeA4            = api.WithPageSizeA4
	WithPageSizeLetter        = api.WithPageSizeLetter
	WithPageSizeLegal         = api.WithPageSizeLegal
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)
