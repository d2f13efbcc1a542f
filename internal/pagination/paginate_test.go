package pagination_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tributebook/tributebook/internal/book"
	"github.com/tributebook/tributebook/internal/pagination"
)

// commentsOfLength builds one comment per requested message length.
func commentsOfLength(lengths ...int) []*book.Comment {
	comments := make([]*book.Comment, len(lengths))
	for i, n := range lengths {
		comments[i] = &book.Comment{
			Author:  "Author " + strings.Repeat("x", i+1),
			Message: strings.Repeat("a", n),
		}
	}
	return comments
}

func pageLengths(pages []*pagination.Page) [][]int {
	out := make([][]int, len(pages))
	for i, p := range pages {
		for _, c := range p.Comments {
			out[i] = append(out[i], len(c.Message))
		}
	}
	return out
}

func TestPaginate_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		limits  pagination.Limits
		want    [][]int
	}{
		{
			name:    "count limit splits under char budget",
			lengths: []int{100, 100, 100},
			limits:  pagination.Limits{MaxChars: 2400, MaxPerPage: 2},
			want:    [][]int{{100, 100}, {100}},
		},
		{
			name:    "char limit splits under count budget",
			lengths: []int{150, 100},
			limits:  pagination.Limits{MaxChars: 200, MaxPerPage: 5},
			want:    [][]int{{150}, {100}},
		},
		{
			name:    "oversized comment still gets a page",
			lengths: []int{3000},
			limits:  pagination.Limits{MaxChars: 200, MaxPerPage: 5},
			want:    [][]int{{3000}},
		},
		{
			name:    "count limit drives splits",
			lengths: []int{50, 50, 50, 50},
			limits:  pagination.Limits{MaxChars: 2400, MaxPerPage: 2},
			want:    [][]int{{50, 50}, {50, 50}},
		},
		{
			name:    "exact char fit stays on one page",
			lengths: []int{100, 100},
			limits:  pagination.Limits{MaxChars: 200, MaxPerPage: 5},
			want:    [][]int{{100, 100}},
		},
		{
			name:    "one over the char budget splits",
			lengths: []int{100, 101},
			limits:  pagination.Limits{MaxChars: 200, MaxPerPage: 5},
			want:    [][]int{{100}, {101}},
		},
		{
			name:    "oversized comment closes the open page first",
			lengths: []int{50, 3000, 50},
			limits:  pagination.Limits{MaxChars: 200, MaxPerPage: 5},
			want:    [][]int{{50}, {3000}, {50}},
		},
		{
			name:    "single comment per page",
			lengths: []int{10, 10, 10},
			limits:  pagination.Limits{MaxChars: 2400, MaxPerPage: 1},
			want:    [][]int{{10}, {10}, {10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := pagination.Paginate(commentsOfLength(tt.lengths...), tt.limits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pageLengths(pages))
		})
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	pages, err := pagination.Paginate(nil, pagination.Limits{MaxChars: 200, MaxPerPage: 2})
	require.NoError(t, err)
	assert.Empty(t, pages, "empty input must produce zero pages, not one empty page")
}

func TestPaginate_InvalidLimits(t *testing.T) {
	comments := commentsOfLength(10)

	tests := []struct {
		name    string
		limits  pagination.Limits
		wantErr error
	}{
		{"zero max chars", pagination.Limits{MaxChars: 0, MaxPerPage: 2}, pagination.ErrInvalidMaxChars},
		{"negative max chars", pagination.Limits{MaxChars: -5, MaxPerPage: 2}, pagination.ErrInvalidMaxChars},
		{"zero max per page", pagination.Limits{MaxChars: 100, MaxPerPage: 0}, pagination.ErrInvalidMaxPerPage},
		{"negative max per page", pagination.Limits{MaxChars: 100, MaxPerPage: -1}, pagination.ErrInvalidMaxPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := pagination.Paginate(comments, tt.limits)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, pages)
		})
	}
}

func TestPaginate_OrderAndCompleteness(t *testing.T) {
	comments := commentsOfLength(40, 500, 12, 700, 700, 3, 90, 2500, 1, 1, 1, 350)
	limits := pagination.Limits{MaxChars: 800, MaxPerPage: 3}

	pages, err := pagination.Paginate(comments, limits)
	require.NoError(t, err)

	var flattened []*book.Comment
	for _, p := range pages {
		require.NotEmpty(t, p.Comments, "no page may be empty")
		flattened = append(flattened, p.Comments...)
	}

	require.Len(t, flattened, len(comments), "every comment must appear exactly once")
	for i, c := range flattened {
		assert.Same(t, comments[i], c, "comment %d must be the original record in input order", i)
	}
}

func TestPaginate_Bounds(t *testing.T) {
	comments := commentsOfLength(40, 500, 12, 700, 700, 3, 90, 2500, 1, 1, 1, 350)
	limits := pagination.Limits{MaxChars: 800, MaxPerPage: 3}

	pages, err := pagination.Paginate(comments, limits)
	require.NoError(t, err)

	for i, p := range pages {
		assert.LessOrEqual(t, len(p.Comments), limits.MaxPerPage, "page %d exceeds the count limit", i)
		if len(p.Comments) > 1 {
			assert.LessOrEqual(t, p.CharCount(), limits.MaxChars,
				"page %d with multiple comments exceeds the char limit", i)
		}
	}
}

func TestPaginate_OversizedSingleton(t *testing.T) {
	comments := commentsOfLength(100, 5000, 100)
	pages, err := pagination.Paginate(comments, pagination.Limits{MaxChars: 1000, MaxPerPage: 3})
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Len(t, pages[1].Comments, 1, "an oversized comment must sit alone")
	assert.Equal(t, 5000, pages[1].CharCount())
}

func TestPaginate_Deterministic(t *testing.T) {
	comments := commentsOfLength(40, 500, 12, 700, 700, 3, 90)
	limits := pagination.Limits{MaxChars: 800, MaxPerPage: 3}

	first, err := pagination.Paginate(comments, limits)
	require.NoError(t, err)
	second, err := pagination.Paginate(comments, limits)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPaginate_CountsCodePointsNotBytes(t *testing.T) {
	// Ten runes each, but far more than ten bytes.
	comments := []*book.Comment{
		{Author: "A", Message: "éééééééééé"},
		{Author: "B", Message: "éééééééééé"},
	}

	pages, err := pagination.Paginate(comments, pagination.Limits{MaxChars: 20, MaxPerPage: 5})
	require.NoError(t, err)
	assert.Len(t, pages, 1, "code-point counting should let both fit")
}

func TestPaginate_StripsMarkupBeforeCounting(t *testing.T) {
	comments := []*book.Comment{
		{Author: "A", Message: "<b>" + strings.Repeat("a", 90) + "</b>"},
		{Author: "B", Message: strings.Repeat("b", 100)},
	}

	pages, err := pagination.Paginate(comments, pagination.Limits{MaxChars: 190, MaxPerPage: 5})
	require.NoError(t, err)
	assert.Len(t, pages, 1, "tags must not count toward the budget")
}

func TestPaginate_ShortMessageDiscount(t *testing.T) {
	limits := pagination.Limits{MaxChars: 200, MaxPerPage: 5, ShortMessageThreshold: 120}

	// 150 counts in full, 100 counts as 50: exactly the budget.
	pages, err := pagination.Paginate(commentsOfLength(150, 100), limits)
	require.NoError(t, err)
	assert.Len(t, pages, 1, "the discounted pair fits one page")

	// Without the discount the same pair splits.
	pages, err = pagination.Paginate(commentsOfLength(150, 100),
		pagination.Limits{MaxChars: 200, MaxPerPage: 5})
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestEngine_Defaults(t *testing.T) {
	engine := pagination.NewEngine()

	// 400-char messages: two fit the default 1100-char budget, the
	// third would push the page to 1200.
	pages, err := engine.Paginate(commentsOfLength(400, 400, 400, 400))
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Comments, 2, "third 400-char comment would exceed 1100 chars")

	count, err := engine.PageCount(commentsOfLength(10, 10, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, count, "default count limit is 3 per page")
}

func TestPage_Authors(t *testing.T) {
	comments := []*book.Comment{
		{Author: "Sam", Message: "hello"},
		{Author: "Priya", Message: "goodbye"},
	}
	pages, err := pagination.Paginate(comments, pagination.Limits{MaxChars: 100, MaxPerPage: 5})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, []string{"Sam", "Priya"}, pages[0].Authors())
}
