package book

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validation errors.
var (
	ErrMissingPersonField    = errors.New("missing required person field")
	ErrNoComments            = errors.New("comments list is empty")
	ErrMissingAuthor         = errors.New("comment author must be a non-empty string")
	ErrMissingMessage        = errors.New("comment message must be a non-empty string")
	ErrInvalidHeight         = errors.New("comment height must be in the form 'NNNpx'")
	ErrInvalidBackgroundSize = errors.New("background size must be 'cover', 'contain', 'auto' or 'NN% NN%'")
	ErrMissingBackground     = errors.New("background image is required")
)

var (
	heightPattern         = regexp.MustCompile(`^\d+px$`)
	percentagePairPattern = regexp.MustCompile(`^\d+%\s+\d+%$`)
)

// Validate checks the book for the structural problems the renderer
// cannot recover from: missing person fields, an empty comment list,
// comments without author or message, malformed height hints and
// malformed background sizes. Image file existence is the caller's
// concern since the book itself does not know its base directory.
func (b *Book) Validate() error {
	personFields := map[string]string{
		"name":          b.Person.Name,
		"subtitle":      b.Person.Subtitle,
		"profile_image": b.Person.ProfileImage,
		"header_note":   b.Person.HeaderNote,
		"date_range":    b.Person.DateRange,
	}
	for _, field := range []string{"name", "subtitle", "profile_image", "header_note", "date_range"} {
		if strings.TrimSpace(personFields[field]) == "" {
			return fmt.Errorf("%w: person.%s", ErrMissingPersonField, field)
		}
	}

	if err := b.validateBackgrounds(); err != nil {
		return err
	}

	if len(b.Comments) == 0 {
		return ErrNoComments
	}
	for i, c := range b.Comments {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("comments[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single comment for required fields and well-formed
// optional ones.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Author) == "" {
		return ErrMissingAuthor
	}
	if strings.TrimSpace(c.Message) == "" {
		return ErrMissingMessage
	}
	if c.Height != "" && !heightPattern.MatchString(c.Height) {
		return fmt.Errorf("%w: got %q", ErrInvalidHeight, c.Height)
	}
	return nil
}

func (b *Book) validateBackgrounds() error {
	check := func(bg *Background, path string) error {
		if bg == nil {
			return nil
		}
		bg = bg.withDefaults()
		if bg.Image == "" {
			return fmt.Errorf("%w: %s", ErrMissingBackground, path)
		}
		switch bg.Size {
		case "cover", "contain", "auto":
			return nil
		}
		if !percentagePairPattern.MatchString(bg.Size) {
			return fmt.Errorf("%w: %s got %q", ErrInvalidBackgroundSize, path, bg.Size)
		}
		return nil
	}

	if err := check(b.Backgrounds.Cover, "backgrounds.cover"); err != nil {
		return err
	}
	if err := check(b.Backgrounds.Pages, "backgrounds.pages"); err != nil {
		return err
	}
	for i := range b.Backgrounds.PagesList {
		if err := check(&b.Backgrounds.PagesList[i], fmt.Sprintf("backgrounds.pages_list[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// DuplicateAuthors returns the authors that appear on more than one
// comment, in first-appearance order. Duplicates are legal but usually
// indicate a copy-paste mistake in the data file, so callers log them
// as a warning.
func (b *Book) DuplicateAuthors() []string {
	counts := make(map[string]int, len(b.Comments))
	for _, c := range b.Comments {
		counts[c.Author]++
	}

	var dups []string
	seen := make(map[string]bool)
	for _, c := range b.Comments {
		if counts[c.Author] > 1 && !seen[c.Author] {
			seen[c.Author] = true
			dups = append(dups, c.Author)
		}
	}
	return dups
}

// HeightPixels parses the comment's optional height hint. It returns
// zero and false when no hint is set or the hint is malformed.
func (c *Comment) HeightPixels() (float64, bool) {
	if !heightPattern.MatchString(c.Height) {
		return 0, false
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(c.Height, "px"), 64)
	if err != nil {
		return 0, false
	}
	return px, true
}
