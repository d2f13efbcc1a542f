package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tributebook/tributebook/internal/config"
	"github.com/tributebook/tributebook/pkg/api"
)

func newRenderCmd() *cobra.Command {
	var (
		dataFile       string
		outputFile     string
		configFile     string
		maxChars       int
		maxPerPage     int
		shortThreshold int
		pageSize       string
		margin         float64
		debugHTML      string
		resourcePaths  []string
		fontDir        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data file into a paginated PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)

			cfg := config.Default()
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags override config file values.
			if cmd.Flags().Changed("max-chars") {
				cfg.Limits.MaxChars = maxChars
			}
			if cmd.Flags().Changed("max-per-page") {
				cfg.Limits.MaxPerPage = maxPerPage
			}
			if cmd.Flags().Changed("short-threshold") {
				cfg.Limits.ShortMessageThreshold = shortThreshold
			}
			if cmd.Flags().Changed("page-size") {
				cfg.Page.Size = pageSize
			}
			if cmd.Flags().Changed("margin") {
				cfg.Page.Margin = margin
			}
			if cmd.Flags().Changed("debug-html") {
				cfg.Output.DebugHTML = debugHTML
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if outputFile == "" {
				ext := filepath.Ext(dataFile)
				outputFile = strings.TrimSuffix(dataFile, ext) + ".pdf"
			}

			opts := []api.Option{
				api.WithConfig(cfg),
				api.WithLogger(logger),
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				opts = append(opts, api.WithDebug(true))
			}
			for _, p := range resourcePaths {
				opts = append(opts, api.WithResourcePath(p))
			}
			if fontDir != "" {
				opts = append(opts, api.WithFontDirectory(fontDir))
			}

			generator := api.NewWithOpts(opts...)
			if err := generator.GenerateFile(dataFile, outputFile); err != nil {
				return fmt.Errorf("failed to render %s: %w", dataFile, err)
			}

			logger.Info().Str("output", outputFile).Msg("wrote PDF")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "book data file (required)")
	cmd.Flags().StringVar(&outputFile, "output", "", "output PDF path (default: data file with .pdf extension)")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML configuration file")
	cmd.Flags().IntVar(&maxChars, "max-chars", config.DefaultMaxChars, "character budget per page")
	cmd.Flags().IntVar(&maxPerPage, "max-per-page", config.DefaultMaxPerPage, "maximum comments per page")
	cmd.Flags().IntVar(&shortThreshold, "short-threshold", 0, "short-message discount threshold in characters (0 disables)")
	cmd.Flags().StringVar(&pageSize, "page-size", "A4", "page size: A3, A4, A5, Letter or Legal")
	cmd.Flags().Float64Var(&margin, "margin", 72, "uniform page margin in points")
	cmd.Flags().StringVar(&debugHTML, "debug-html", "", "also write the rendered book as HTML to this path")
	cmd.Flags().StringArrayVar(&resourcePaths, "resource-path", nil, "extra directory to search for images (repeatable)")
	cmd.Flags().StringVar(&fontDir, "font-dir", "", "directory to search for font definition files")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
