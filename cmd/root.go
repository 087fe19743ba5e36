package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kimd61/manga-prototype1/config"
	"github.com/kimd61/manga-prototype1/detail"
	"github.com/kimd61/manga-prototype1/filter"
	"github.com/kimd61/manga-prototype1/jikan"
	"github.com/kimd61/manga-prototype1/render"
)

var (
	cfgFile          string
	cfg              *config.Config
	logger           zerolog.Logger
	jikanClient      *jikan.Client
	loader           *detail.Loader
	htmlRenderer     *render.HTMLRenderer
	consoleFormatter *render.ConsoleFormatter

	// Command flags
	independent bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "manga-detail",
	Short: "Load and render manga detail pages from the Jikan API",
	Long: `manga-detail fetches a manga, its characters and its recommendations from
the Jikan API, tolerating failures of the secondary calls, and renders the
result as an HTML fragment or a console summary. It can also serve the
fragment over HTTP.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&independent, "independent-secondary", false, "fetch recommendations even when characters fail")

	// Add subcommands
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, client, loader and renderers
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override from command line if specified
	if cmd.Flags().Changed("independent-secondary") {
		cfg.Detail.IndependentSecondary = independent
	}

	// Create Jikan client
	jikanClient, err = jikan.NewClient(cfg.Jikan.BaseURL, logger,
		jikan.WithTimeout(cfg.Jikan.Timeout),
		jikan.WithMaxRetries(cfg.Jikan.MaxRetries),
		jikan.WithRetryDelay(cfg.Jikan.RetryDelay),
		jikan.WithUserAgent(cfg.Jikan.UserAgent),
		jikan.WithRateLimit(cfg.Jikan.RequestsPerSecond),
	)
	if err != nil {
		return fmt.Errorf("failed to create Jikan client: %w", err)
	}

	loader = detail.NewLoader(jikanClient, logger,
		detail.WithStageDelay(cfg.Detail.StageDelay),
		detail.WithIndependentSecondary(cfg.Detail.IndependentSecondary),
	)

	renderOpts, err := renderOptions(cfg.Render, filter.NewExprCompiler(filter.WithCache(16)))
	if err != nil {
		return err
	}
	htmlRenderer = render.NewHTMLRenderer(renderOpts...)
	consoleFormatter = render.NewConsoleFormatter(renderOpts...)

	logger.Debug().
		Str("base_url", jikanClient.BaseURL()).
		Int("max_retries", cfg.Jikan.MaxRetries).
		Dur("stage_delay", cfg.Detail.StageDelay).
		Bool("independent_secondary", cfg.Detail.IndependentSecondary).
		Msg("Application initialized")

	return nil
}

// renderOptions builds renderer options from config, compiling any filters
func renderOptions(rc config.RenderConfig, compiler filter.Compiler) ([]render.Option, error) {
	opts := []render.Option{
		render.WithMaxCharacters(rc.MaxCharacters),
		render.WithMaxRecommendations(rc.MaxRecommendations),
		render.WithDetailLinkBase(rc.DetailLinkBase),
	}

	if rc.RecommendationFilter != "" {
		f, err := compiler.Compile(rc.RecommendationFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid render.recommendation_filter: %w", err)
		}
		opts = append(opts, render.WithRecommendationFilter(f))
	}

	if rc.CharacterFilter != "" {
		f, err := compiler.Compile(rc.CharacterFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid render.character_filter: %w", err)
		}
		opts = append(opts, render.WithCharacterFilter(f))
	}

	return opts, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return newLogger(cfg, os.Stderr, tty)
}

func newLogger(cfg config.LoggingConfig, out io.Writer, tty bool) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
