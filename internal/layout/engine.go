package layout

import (
	"strings"

	"github.com/tributebook/tributebook/internal/book"
	"github.com/tributebook/tributebook/internal/pagination"
	"github.com/tributebook/tributebook/internal/text"
)

// Options represents options for the layout engine
type Options struct {
	PageWidth  float64
	PageHeight float64
	Margins    Margins
	DPI        float64

	FontFamily     string
	NameFontSize   float64
	AuthorFontSize float64
	BodyFontSize   float64
	// LineSpacing is the line height as a multiple of the font size.
	LineSpacing float64
}

// Engine turns paginated comments into page surfaces
type Engine struct {
	options Options
}

// NewEngine creates a new layout engine with A4 defaults
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			PageWidth:  PageSizeA4.Width,
			PageHeight: PageSizeA4.Height,
			Margins:    Margins{Top: 72, Right: 72, Bottom: 72, Left: 72},
			DPI:        96,

			FontFamily:     "Helvetica",
			NameFontSize:   28,
			AuthorFontSize: 13,
			BodyFontSize:   11,
			LineSpacing:    1.5,
		},
	}
}

// SetOptions sets the options for the layout engine
func (e *Engine) SetOptions(options Options) {
	if options.FontFamily == "" {
		options.FontFamily = "Helvetica"
	}
	if options.NameFontSize == 0 {
		options.NameFontSize = 28
	}
	if options.AuthorFontSize == 0 {
		options.AuthorFontSize = 13
	}
	if options.BodyFontSize == 0 {
		options.BodyFontSize = 11
	}
	if options.LineSpacing == 0 {
		options.LineSpacing = 1.5
	}
	e.options = options
}

const (
	coverPhotoSize   = 180.0
	profilePhotoSize = 42.0
	commentGap       = 24.0
	authorBodyGap    = 6.0
)

// BuildBook lays out the whole document: one cover surface followed by
// one surface per comment page, each with its configured background.
func (e *Engine) BuildBook(b *book.Book, pages []*pagination.Page) []*Surface {
	surfaces := make([]*Surface, 0, len(pages)+1)
	surfaces = append(surfaces, e.BuildCover(&b.Person, b.CoverBackground()))
	for i, page := range pages {
		surfaces = append(surfaces, e.BuildCommentPage(page, b.PageBackground(i)))
	}
	return surfaces
}

// BuildCover lays out the cover page: the person's photo, name,
// subtitle and date range centered, with the header note at the bottom.
func (e *Engine) BuildCover(person *book.Person, bg *book.Background) *Surface {
	s := &Surface{
		Width:      e.options.PageWidth,
		Height:     e.options.PageHeight,
		Background: bg,
	}

	centerX := e.options.PageWidth / 2
	y := e.options.PageHeight * 0.18

	if person.ProfileImage != "" {
		s.Elements = append(s.Elements, &ImageElement{
			X:       centerX - coverPhotoSize/2,
			Y:       y,
			Width:   coverPhotoSize,
			Height:  coverPhotoSize,
			Source:  person.ProfileImage,
			Rounded: true,
		})
		y += coverPhotoSize + 36
	}

	y = e.appendCenteredText(s, person.Name, y, e.options.NameFontSize, "B")
	y = e.appendCenteredText(s, person.DateRange, y+8, e.options.AuthorFontSize, "")
	e.appendCenteredText(s, person.Subtitle, y+20, e.options.AuthorFontSize+2, "I")

	note := text.Plain(person.HeaderNote)
	noteLines := e.wrap(note, e.contentWidth(), e.options.BodyFontSize)
	noteHeight := float64(len(noteLines)) * e.lineHeight(e.options.BodyFontSize)
	s.Elements = append(s.Elements, &TextElement{
		X:          e.options.Margins.Left,
		Y:          e.options.PageHeight - e.options.Margins.Bottom - noteHeight,
		Width:      e.contentWidth(),
		Height:     noteHeight,
		Text:       strings.Join(noteLines, "\n"),
		FontFamily: e.options.FontFamily,
		FontStyle:  "I",
		FontSize:   e.options.BodyFontSize,
		LineHeight: e.lineHeight(e.options.BodyFontSize),
		Color:      [3]int{60, 60, 60},
	})

	return s
}

// BuildCommentPage lays out one page of comments as a vertical stack of
// blocks: optional profile picture, author line, then the wrapped
// message. A comment's height hint overrides the estimated block
// height.
func (e *Engine) BuildCommentPage(page *pagination.Page, bg *book.Background) *Surface {
	s := &Surface{
		Width:      e.options.PageWidth,
		Height:     e.options.PageHeight,
		Background: bg,
	}

	y := e.options.Margins.Top
	for _, c := range page.Comments {
		y = e.appendComment(s, c, y) + commentGap
	}
	return s
}

// appendComment lays out a single comment block starting at y and
// returns the y coordinate just below it.
func (e *Engine) appendComment(s *Surface, c *book.Comment, y float64) float64 {
	left := e.options.Margins.Left
	textLeft := left
	if c.ProfileImage != "" {
		s.Elements = append(s.Elements, &ImageElement{
			X:       left,
			Y:       y,
			Width:   profilePhotoSize,
			Height:  profilePhotoSize,
			Source:  c.ProfileImage,
			Rounded: true,
		})
		textLeft = left + profilePhotoSize + 12
	}

	authorHeight := e.lineHeight(e.options.AuthorFontSize)
	s.Elements = append(s.Elements, &TextElement{
		X:          textLeft,
		Y:          y,
		Width:      e.options.PageWidth - e.options.Margins.Right - textLeft,
		Height:     authorHeight,
		Text:       c.Author,
		FontFamily: e.options.FontFamily,
		FontStyle:  "B",
		FontSize:   e.options.AuthorFontSize,
		LineHeight: authorHeight,
		Color:      [3]int{0, 0, 0},
	})

	bodyWidth := e.contentWidth()
	bodyTop := y + authorHeight + authorBodyGap
	lines := e.wrap(text.Plain(c.Message), bodyWidth, e.options.BodyFontSize)
	bodyHeight := float64(len(lines)) * e.lineHeight(e.options.BodyFontSize)
	s.Elements = append(s.Elements, &TextElement{
		X:          left,
		Y:          bodyTop,
		Width:      bodyWidth,
		Height:     bodyHeight,
		Text:       strings.Join(lines, "\n"),
		FontFamily: e.options.FontFamily,
		FontSize:   e.options.BodyFontSize,
		LineHeight: e.lineHeight(e.options.BodyFontSize),
		Color:      [3]int{20, 20, 20},
	})

	blockHeight := bodyTop + bodyHeight - y
	if blockHeight < profilePhotoSize && c.ProfileImage != "" {
		blockHeight = profilePhotoSize
	}
	if px, ok := c.HeightPixels(); ok {
		blockHeight = e.pxToPt(px)
	}
	return y + blockHeight
}

func (e *Engine) appendCenteredText(s *Surface, line string, y, size float64, style string) float64 {
	if strings.TrimSpace(line) == "" {
		return y
	}
	width := estimateWidth(line, size)
	h := e.lineHeight(size)
	s.Elements = append(s.Elements, &TextElement{
		X:          e.options.PageWidth/2 - width/2,
		Y:          y,
		Width:      width,
		Height:     h,
		Text:       line,
		FontFamily: e.options.FontFamily,
		FontStyle:  style,
		FontSize:   size,
		LineHeight: h,
		Color:      [3]int{0, 0, 0},
	})
	return y + h
}

func (e *Engine) contentWidth() float64 {
	return e.options.PageWidth - e.options.Margins.Left - e.options.Margins.Right
}

func (e *Engine) lineHeight(fontSize float64) float64 {
	return fontSize * e.options.LineSpacing
}

func (e *Engine) pxToPt(px float64) float64 {
	dpi := e.options.DPI
	if dpi == 0 {
		dpi = 96
	}
	return px * 72 / dpi
}

// estimateWidth approximates the rendered width of a line. Pagination
// is driven by character counts, not measured glyphs, so a mean glyph
// width of half the font size is close enough for placement.
func estimateWidth(line string, fontSize float64) float64 {
	return float64(len([]rune(line))) * fontSize * 0.5
}

// wrap breaks plain text into lines that fit the given width,
// preserving explicit newlines. Words longer than a whole line are
// emitted as-is rather than split.
func (e *Engine) wrap(s string, width, fontSize float64) []string {
	perLine := int(width / (fontSize * 0.5))
	if perLine < 1 {
		perLine = 1
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			if len([]rune(line))+1+len([]rune(word)) > perLine {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
