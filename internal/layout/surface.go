package layout

import (
	"github.com/tributebook/tributebook/internal/book"
)

// Element is a positioned item on a rendered page surface.
type Element interface {
	GetX() float64
	GetY() float64
	GetWidth() float64
	GetHeight() float64
	SetPosition(x, y float64)
}

// TextElement is a block of text placed on a surface. Text may contain
// newlines; the renderer draws one line per LineHeight.
type TextElement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	Text       string
	FontFamily string
	// FontStyle uses fpdf conventions: "" regular, "B" bold, "I" italic.
	FontStyle  string
	FontSize   float64
	LineHeight float64
	// Color is the text color as RGB components in 0-255.
	Color [3]int
}

// ImageElement is an image placed on a surface. Source is a path, URL
// or data URL resolved by the renderer's resource loader.
type ImageElement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	Source string
	// Rounded requests a circular crop, used for profile pictures.
	Rounded bool
}

// Surface is one fully laid out page: its dimensions, optional
// background and the ordered elements to draw on it.
type Surface struct {
	Width      float64
	Height     float64
	Background *book.Background
	Elements   []Element
}

func (t *TextElement) GetX() float64      { return t.X }
func (t *TextElement) GetY() float64      { return t.Y }
func (t *TextElement) GetWidth() float64  { return t.Width }
func (t *TextElement) GetHeight() float64 { return t.Height }
func (t *TextElement) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

func (i *ImageElement) GetX() float64      { return i.X }
func (i *ImageElement) GetY() float64      { return i.Y }
func (i *ImageElement) GetWidth() float64  { return i.Width }
func (i *ImageElement) GetHeight() float64 { return i.Height }
func (i *ImageElement) SetPosition(x, y float64) {
	i.X = x
	i.Y = y
}

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
)

// Margins represents page margins
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}
