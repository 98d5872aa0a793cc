package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/LofiStudio/internal/core"
	"github.com/Rorical/LofiStudio/internal/logger"
	"github.com/Rorical/LofiStudio/internal/metrics"
	"github.com/Rorical/LofiStudio/internal/models"
)

var (
	weatherFlag string
	moodFlag    string
	listFlag    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one prompt and print it",
	Long: `Generate a single Lo-Fi music prompt for the given weather and mood and
print it to standard output. Use --list to see the accepted values.`,
	Example: `  lofistudio generate --weather rainy --mood calm
  lofistudio generate --weather "clear night" --mood dreamy --model llama-3.1-8b-instant`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlag {
			printCatalog(cmd.OutOrStdout())
			return nil
		}

		weather, err := resolveOption("weather", weatherFlag, models.FindWeather)
		if err != nil {
			return err
		}
		mood, err := resolveOption("mood", moodFlag, models.FindMood)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err := logger.New(cfg.LogLevel, logger.Stderr)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		client := core.NewPromptClient(cfg,
			core.WithLogger(log),
			core.WithMetrics(metrics.New()),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		prompt, err := client.CreateLofiMusicPrompt(ctx, core.PromptRequest{
			Weather: weather.Value,
			Mood:    mood.Value,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	},
}

// resolveOption accepts a catalog value in any letter case.
func resolveOption(kind, value string, find func(string) (models.Option, bool)) (models.Option, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return models.Option{}, fmt.Errorf("%w: --%s is missing", core.ErrInvalidInput, kind)
	}
	opt, ok := find(value)
	if !ok {
		return models.Option{}, fmt.Errorf("unknown %s %q, run with --list to see the choices", kind, value)
	}
	return opt, nil
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Weather:")
	for _, opt := range models.WeatherOptions() {
		fmt.Fprintf(w, "  %s %-12s %s\n", opt.Icon, opt.Value, opt.Label)
	}
	fmt.Fprintln(w, "\nMood:")
	for _, opt := range models.MoodOptions() {
		fmt.Fprintf(w, "  %s %-12s %s\n", opt.Icon, opt.Value, opt.Label)
	}
}

func init() {
	generateCmd.Flags().StringVarP(&weatherFlag, "weather", "w", "", "weather condition, e.g. rainy")
	generateCmd.Flags().StringVarP(&moodFlag, "mood", "m", "", "mood, e.g. calm")
	generateCmd.Flags().BoolVar(&listFlag, "list", false, "list the accepted weather and mood values")

	rootCmd.AddCommand(generateCmd)
}
