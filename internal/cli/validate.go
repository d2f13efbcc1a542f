package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tributebook/tributebook/internal/book"
)

func newValidateCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a data file without rendering it",
		Long: "Validate checks the data file's structure, required fields and " +
			"optional field formats, and verifies that every referenced image file exists.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)

			b, err := book.Load(dataFile)
			if err != nil {
				return err
			}
			if err := b.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if err := checkImageFiles(b, filepath.Dir(dataFile)); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if dups := b.DuplicateAuthors(); len(dups) > 0 {
				logger.Warn().Strs("authors", dups).Msg("duplicate authors found")
			}

			logger.Info().Int("comments", len(b.Comments)).Msg("data file is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "book data file (required)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// checkImageFiles verifies that every locally referenced image exists
// relative to the data file's directory. Remote and data URLs are
// resolved at render time and skipped here.
func checkImageFiles(b *book.Book, baseDir string) error {
	check := func(ref, what string) error {
		if ref == "" || strings.HasPrefix(ref, "http://") ||
			strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
			return nil
		}
		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, ref)
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s not found: %s", what, ref)
		}
		return nil
	}

	if err := check(b.Person.ProfileImage, "person profile image"); err != nil {
		return err
	}

	backgrounds := []*book.Background{b.CoverBackground(), b.Backgrounds.Pages}
	for i := range b.Backgrounds.PagesList {
		backgrounds = append(backgrounds, &b.Backgrounds.PagesList[i])
	}
	for _, bg := range backgrounds {
		if bg == nil {
			continue
		}
		if err := check(bg.Image, "background image"); err != nil {
			return err
		}
	}

	for i, c := range b.Comments {
		if err := check(c.ProfileImage, fmt.Sprintf("comments[%d] profile image", i)); err != nil {
			return err
		}
	}
	return nil
}
