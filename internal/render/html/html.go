// Package html exports the paginated book as a standalone HTML
// document, used for eyeballing pagination and layout without opening
// the PDF.
package html

import (
	"fmt"
	"html/template"
	"io"

	"github.com/tributebook/tributebook/internal/book"
	"github.com/tributebook/tributebook/internal/pagination"
)

// Exporter renders a book and its pages to HTML
type Exporter struct {
	tmpl *template.Template
}

// NewExporter creates a new HTML exporter
func NewExporter() *Exporter {
	return &Exporter{
		tmpl: template.Must(template.New("book").Parse(bookTemplate)),
	}
}

type pageView struct {
	Number     int
	Background *book.Background
	Comments   []*book.Comment
}

type bookView struct {
	Person     book.Person
	Background *book.Background
	Pages      []pageView
}

// Export writes the book as a single HTML document: a cover section
// followed by one section per comment page.
func (e *Exporter) Export(b *book.Book, pages []*pagination.Page, w io.Writer) error {
	view := bookView{
		Person:     b.Person,
		Background: b.CoverBackground(),
		Pages:      make([]pageView, len(pages)),
	}
	for i, page := range pages {
		view.Pages[i] = pageView{
			Number:     i + 1,
			Background: b.PageBackground(i),
			Comments:   page.Comments,
		}
	}

	if err := e.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

const bookTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Person.Name}}</title>
<style>
  body { margin: 0; font-family: Georgia, serif; }
  .page {
    position: relative;
    width: 210mm;
    min-height: 297mm;
    padding: 25mm;
    box-sizing: border-box;
    page-break-after: always;
    background-repeat: no-repeat;
  }
  .cover { text-align: center; padding-top: 60mm; }
  .cover h1 { font-size: 42px; margin: 0.3em 0; }
  .cover .dates { font-size: 18px; color: #444; }
  .cover .subtitle { font-style: italic; font-size: 20px; }
  .cover .note { position: absolute; bottom: 25mm; left: 25mm; right: 25mm; font-style: italic; color: #555; }
  .cover img { width: 180px; height: 180px; object-fit: cover; border-radius: 50%; }
  .comment { margin-bottom: 24px; }
  .comment .author { font-weight: bold; margin-bottom: 4px; }
  .comment img { width: 42px; height: 42px; object-fit: cover; border-radius: 50%; float: left; margin-right: 12px; }
  .comment .message { white-space: pre-wrap; }
</style>
</head>
<body>
<div class="page cover"{{with .Background}} style="background-image: url('{{.Image}}'); background-size: {{.Size}}; background-position: {{.Position}};"{{end}}>
  {{if .Person.ProfileImage}}<img src="{{.Person.ProfileImage}}" alt="{{.Person.Name}}">{{end}}
  <h1>{{.Person.Name}}</h1>
  <div class="dates">{{.Person.DateRange}}</div>
  <div class="subtitle">{{.Person.Subtitle}}</div>
  <div class="note">{{.Person.HeaderNote}}</div>
</div>
{{range .Pages}}
<div class="page"{{with .Background}} style="background-image: url('{{.Image}}'); background-size: {{.Size}}; background-position: {{.Position}};"{{end}}>
  {{range .Comments}}
  <div class="comment"{{if .Height}} style="height: {{.Height}}"{{end}}>
    {{if .ProfileImage}}<img src="{{.ProfileImage}}" alt="{{.Author}}">{{end}}
    <div class="author">{{.Author}}</div>
    <div class="message">{{.Message}}</div>
  </div>
  {{end}}
</div>
{{end}}
</body>
</html>
`
