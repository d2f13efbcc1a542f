package book_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tributebook/tributebook/internal/book"
)

func validBook() *book.Book {
	return &book.Book{
		Person: book.Person{
			Name:         "Alex Rivera",
			Subtitle:     "A life remembered",
			ProfileImage: "alex.jpg",
			HeaderNote:   "With love, from all of us.",
			DateRange:    "1957 – 2024",
		},
		Comments: []book.Comment{
			{Author: "Sam", Message: "We will miss you."},
			{Author: "Priya", Message: "Rest easy."},
		},
	}
}

func TestDecode_BackgroundFormats(t *testing.T) {
	data := `{
		"person": {"name": "A", "subtitle": "s", "profile_image": "p.jpg", "header_note": "n", "date_range": "d"},
		"backgrounds": {
			"cover": "cover.jpg",
			"pages": {"image": "pages.jpg", "size": "contain", "position": "top"},
			"pages_list": ["one.jpg", {"image": "two.jpg", "size": "50% 50%"}]
		},
		"comments": [{"author": "Sam", "message": "hi"}]
	}`

	b, err := book.Decode(strings.NewReader(data))
	require.NoError(t, err)

	// A bare string becomes an image with default placement.
	cover := b.CoverBackground()
	require.NotNil(t, cover)
	assert.Equal(t, "cover.jpg", cover.Image)
	assert.Equal(t, "cover", cover.Size)
	assert.Equal(t, "center", cover.Position)

	require.NotNil(t, b.Backgrounds.Pages)
	assert.Equal(t, "contain", b.Backgrounds.Pages.Size)
	assert.Equal(t, "top", b.Backgrounds.Pages.Position)

	require.Len(t, b.Backgrounds.PagesList, 2)
	assert.Equal(t, "one.jpg", b.Backgrounds.PagesList[0].Image)
	assert.Equal(t, "50% 50%", b.Backgrounds.PagesList[1].Size)
}

func TestBackgroundFallbacks(t *testing.T) {
	t.Run("legacy background_image backs the cover", func(t *testing.T) {
		b := &book.Book{BackgroundImage: "legacy.jpg"}
		cover := b.CoverBackground()
		require.NotNil(t, cover)
		assert.Equal(t, "legacy.jpg", cover.Image)
		assert.Equal(t, "cover", cover.Size)
	})

	t.Run("no background configured", func(t *testing.T) {
		b := &book.Book{}
		assert.Nil(t, b.CoverBackground())
		assert.Nil(t, b.PageBackground(0))
	})

	t.Run("pages falls back to cover", func(t *testing.T) {
		b := &book.Book{Backgrounds: book.Backgrounds{
			Cover: &book.Background{Image: "cover.jpg"},
		}}
		bg := b.PageBackground(3)
		require.NotNil(t, bg)
		assert.Equal(t, "cover.jpg", bg.Image)
	})

	t.Run("pages_list wins by index", func(t *testing.T) {
		b := &book.Book{Backgrounds: book.Backgrounds{
			Pages:     &book.Background{Image: "shared.jpg"},
			PagesList: []book.Background{{Image: "first.jpg"}},
		}}

		bg := b.PageBackground(0)
		require.NotNil(t, bg)
		assert.Equal(t, "first.jpg", bg.Image)

		// Beyond the list, the shared background applies.
		bg = b.PageBackground(1)
		require.NotNil(t, bg)
		assert.Equal(t, "shared.jpg", bg.Image)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*book.Book)
		wantErr error
	}{
		{"valid book", func(b *book.Book) {}, nil},
		{"missing person name", func(b *book.Book) { b.Person.Name = "  " }, book.ErrMissingPersonField},
		{"missing date range", func(b *book.Book) { b.Person.DateRange = "" }, book.ErrMissingPersonField},
		{"no comments", func(b *book.Book) { b.Comments = nil }, book.ErrNoComments},
		{"blank author", func(b *book.Book) { b.Comments[0].Author = " " }, book.ErrMissingAuthor},
		{"blank message", func(b *book.Book) { b.Comments[1].Message = "" }, book.ErrMissingMessage},
		{"bad height", func(b *book.Book) { b.Comments[0].Height = "12em" }, book.ErrInvalidHeight},
		{"good height", func(b *book.Book) { b.Comments[0].Height = "420px" }, nil},
		{
			"bad background size",
			func(b *book.Book) {
				b.Backgrounds.Cover = &book.Background{Image: "c.jpg", Size: "huge"}
			},
			book.ErrInvalidBackgroundSize,
		},
		{
			"percentage background size",
			func(b *book.Book) {
				b.Backgrounds.Cover = &book.Background{Image: "c.jpg", Size: "80% 80%"}
			},
			nil,
		},
		{
			"background without image",
			func(b *book.Book) { b.Backgrounds.Pages = &book.Background{Size: "cover"} },
			book.ErrMissingBackground,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)
			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDuplicateAuthors(t *testing.T) {
	b := validBook()
	assert.Empty(t, b.DuplicateAuthors())

	b.Comments = append(b.Comments,
		book.Comment{Author: "Sam", Message: "again"},
		book.Comment{Author: "Priya", Message: "again"},
	)
	assert.Equal(t, []string{"Sam", "Priya"}, b.DuplicateAuthors())
}

func TestHeightPixels(t *testing.T) {
	c := &book.Comment{Height: "420px"}
	px, ok := c.HeightPixels()
	assert.True(t, ok)
	assert.Equal(t, 420.0, px)

	c = &book.Comment{}
	_, ok = c.HeightPixels()
	assert.False(t, ok)

	c = &book.Comment{Height: "42vh"}
	_, ok = c.HeightPixels()
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := book.Load("does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open data file")
}
