package pagination

import (
	"github.com/tributebook/tributebook/internal/book"
)

// Options represents options for the pagination engine
type Options struct {
	MaxChars              int
	MaxPerPage            int
	ShortMessageThreshold int
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			MaxChars:   1100, // Default character budget per page
			MaxPerPage: 3,    // Default comment count per page
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Paginate breaks the comment list into pages
func (e *Engine) Paginate(comments []*book.Comment) ([]*Page, error) {
	return Paginate(comments, Limits{
		MaxChars:              e.options.MaxChars,
		MaxPerPage:            e.options.MaxPerPage,
		ShortMessageThreshold: e.options.ShortMessageThreshold,
	})
}

// PageCount returns the number of pages the comments paginate into.
func (e *Engine) PageCount(comments []*book.Comment) (int, error) {
	pages, err := e.Paginate(comments)
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}
