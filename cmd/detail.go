package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kimd61/manga-prototype1/detail"
)

var (
	mangaID      string
	outputFormat string
	outputPath   string
)

// detailCmd represents the detail command
var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Load a manga and print its detail page",
	Long: `Load a manga with its characters and recommendations and print either a
console summary or the HTML detail fragment.`,
	Example: `  manga-detail detail --id 2
  manga-detail detail --id 656 --format html --output vagabond.html`,
	RunE: runDetail,
}

func init() {
	detailCmd.Flags().StringVarP(&mangaID, "id", "i", "", "MyAnimeList manga id")
	detailCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format (console, html)")
	detailCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
}

func runDetail(cmd *cobra.Command, args []string) error {
	if outputFormat != "console" && outputFormat != "html" {
		return fmt.Errorf("unknown output format %q (must be 'console' or 'html')", outputFormat)
	}

	id, err := detail.ParseID(mangaID)
	if err != nil {
		return errors.New(detail.UserMessage(err))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := loader.LoadDetail(ctx, id)
	if err != nil {
		logger.Error().Err(err).Str("manga_id", id).Msg("Failed to load manga details")
		return errors.New(detail.UserMessage(err))
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if outputFormat == "html" {
		if err := htmlRenderer.Render(out, bundle); err != nil {
			return fmt.Errorf("failed to render detail page: %w", err)
		}
	} else {
		fmt.Fprint(out, consoleFormatter.FormatDetail(bundle))
	}

	if outputPath != "" {
		logger.Info().Str("path", outputPath).Str("manga_id", id).Msg("Detail page written")
	}

	return nil
}
