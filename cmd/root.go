package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/LofiStudio/internal/app"
	"github.com/Rorical/LofiStudio/internal/config"
)

var (
	modelFlag   string
	profileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "lofistudio",
	Short: "Lo-Fi music prompt generator for the terminal",
	Long: `Lo-Fi Prompt Studio turns a weather condition and a mood into a
studio-ready prompt for AI music generators, using Llama 3.3 on Groq.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		runStudio(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

// loadConfig applies the persistent --profile and --model flags on top of
// the profile file and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if profileFlag != "" {
		if err := cfg.UseProfile(profileFlag); err != nil {
			return nil, err
		}
	}
	cfg.OverrideModel(modelFlag)
	return cfg, nil
}

func runStudio(cfg *config.Config) {
	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "model to use for this run, overrides the profile")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "profile to use for this run without switching to it")

	rootCmd.AddCommand(profileCmd)
}
