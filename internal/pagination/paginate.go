package pagination

import (
	"errors"
	"fmt"

	"github.com/tributebook/tributebook/internal/book"
	"github.com/tributebook/tributebook/internal/text"
)

// Page represents a single page in the document: an ordered group of
// comments destined for one rendered surface.
type Page struct {
	Comments []*book.Comment
}

// CharCount returns the sum of the visible message lengths on the page.
func (p *Page) CharCount() int {
	total := 0
	for _, c := range p.Comments {
		total += text.VisibleLength(c.Message)
	}
	return total
}

// Authors returns the page's author names in order.
func (p *Page) Authors() []string {
	authors := make([]string, len(p.Comments))
	for i, c := range p.Comments {
		authors[i] = c.Author
	}
	return authors
}

// Limits are the capacity ceilings for a single pagination run.
type Limits struct {
	// MaxChars is the character budget per page, measured over the
	// visible text of each message.
	MaxChars int
	// MaxPerPage is the maximum number of comments on one page.
	MaxPerPage int
	// ShortMessageThreshold, when positive, makes messages of at most
	// this many characters count at half weight toward MaxChars. Short
	// sympathy notes render small, so they crowd a page less than their
	// raw length suggests. Zero disables the discount.
	ShortMessageThreshold int
}

// Limit validation errors.
var (
	ErrInvalidMaxChars   = errors.New("max chars per page must be positive")
	ErrInvalidMaxPerPage = errors.New("max comments per page must be positive")
)

// Validate checks the limits before any pagination work.
func (l Limits) Validate() error {
	if l.MaxChars <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxChars, l.MaxChars)
	}
	if l.MaxPerPage <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxPerPage, l.MaxPerPage)
	}
	return nil
}

// weight returns how much a message of the given visible length counts
// toward the character budget.
func (l Limits) weight(length int) float64 {
	if l.ShortMessageThreshold > 0 && length <= l.ShortMessageThreshold {
		return float64(length) / 2
	}
	return float64(length)
}

// Paginate groups comments into pages with a single greedy
// left-to-right pass. A page is closed when it already holds
// MaxPerPage comments, or when it is non-empty and the next comment
// would push its character total past MaxChars. Because the character
// check only applies to a non-empty page, a single comment longer than
// MaxChars still lands on a page of its own rather than being split or
// dropped. Order is preserved, every comment lands on exactly one page,
// and an empty input yields zero pages.
func Paginate(comments []*book.Comment, limits Limits) ([]*Page, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	var pages []*Page
	current := &Page{}
	used := 0.0

	for _, c := range comments {
		w := limits.weight(text.VisibleLength(c.Message))

		if len(current.Comments) >= limits.MaxPerPage ||
			(len(current.Comments) > 0 && used+w > float64(limits.MaxChars)) {
			pages = append(pages, current)
			current = &Page{}
			used = 0
		}

		current.Comments = append(current.Comments, c)
		used += w
	}

	if len(current.Comments) > 0 {
		pages = append(pages, current)
	}
	return pages, nil
}
