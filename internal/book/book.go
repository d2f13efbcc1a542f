package book

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Comment represents a single tribute entry.
type Comment struct {
	// Author is the name of the person who left the comment.
	Author string `json:"author"`
	// Message is the comment body. It may contain simple inline markup
	// such as <br> or <b>.
	Message string `json:"message"`
	// ProfileImage is an optional path or URL to the author's picture.
	ProfileImage string `json:"profile_image,omitempty"`
	// Height is an optional rendered-height hint in the form "420px".
	Height string `json:"height,omitempty"`
}

// Person describes the subject of the tribute book, shown on the cover.
type Person struct {
	Name         string `json:"name"`
	Subtitle     string `json:"subtitle"`
	ProfileImage string `json:"profile_image"`
	HeaderNote   string `json:"header_note"`
	DateRange    string `json:"date_range"`
}

// Book is the full input document: the person, the page backgrounds and
// the ordered list of comments.
type Book struct {
	Person      Person      `json:"person"`
	Backgrounds Backgrounds `json:"backgrounds"`
	// BackgroundImage is the legacy single-background field, used as a
	// fallback when Backgrounds.Cover is absent.
	BackgroundImage string    `json:"background_image,omitempty"`
	Comments        []Comment `json:"comments"`
}

// Load reads and decodes a book data file.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return b, nil
}

// Decode decodes a book from a JSON stream.
func Decode(r io.Reader) (*Book, error) {
	var b Book
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CoverBackground returns the background for the cover page. It falls
// back to the legacy top-level background_image field when no explicit
// cover background is configured.
func (b *Book) CoverBackground() *Background {
	if b.Backgrounds.Cover != nil {
		return b.Backgrounds.Cover.withDefaults()
	}
	if b.BackgroundImage != "" {
		return (&Background{Image: b.BackgroundImage}).withDefaults()
	}
	return nil
}

// PageBackground returns the background for comment page pageIndex
// (zero-based). A per-page entry in pages_list wins over the shared
// pages background, which in turn falls back to the cover background.
func (b *Book) PageBackground(pageIndex int) *Background {
	if pageIndex >= 0 && pageIndex < len(b.Backgrounds.PagesList) {
		return b.Backgrounds.PagesList[pageIndex].withDefaults()
	}
	if b.Backgrounds.Pages != nil {
		return b.Backgrounds.Pages.withDefaults()
	}
	return b.CoverBackground()
}
