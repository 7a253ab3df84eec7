package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bijbelquiz-cli/internal/config"
	"bijbelquiz-cli/internal/gateway"
)

var (
	apiURL     string
	apiKey     string
	configPath string

	loadedCfg config.Config
	logger    zerolog.Logger
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envURL := os.Getenv("BIJBELQUIZ_API_URL")
	if envURL == "" {
		envURL = "http://localhost:7777/v1"
	}
	envKey := os.Getenv("BIJBELQUIZ_API_KEY")
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:          "bijbelquiz",
		Short:        "Command-line client for the BijbelQuiz API",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
			applyConfigFile(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&apiURL, "url", envURL, "API base URL")
	cmd.PersistentFlags().StringVar(&apiKey, "api-key", envKey, "API key for authentication")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")

	cmd.AddCommand(
		newHealthCmd(),
		newQuestionsCmd(),
		newProgressCmd(),
		newStatsCmd(),
		newSettingsCmd(),
		newGameCmd(),
		newStarsCmd(),
		newReportsCmd(),
	)
	return cmd
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// applyConfigFile fills in values the user did not set through flags or env.
// The config file is optional.
func applyConfigFile(cmd *cobra.Command) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return
	}
	loadedCfg = cfg

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("url") && cfg.API.URL != "" {
		apiURL = cfg.API.URL
	}
	if !flags.Changed("api-key") && apiKey == "" && cfg.API.Key != "" {
		apiKey = cfg.API.Key
	}
}

func newGatewayClient() (*gateway.Client, error) {
	if apiKey == "" {
		return nil, errors.New("an API key is required (--api-key or BIJBELQUIZ_API_KEY)")
	}
	return gateway.New(apiURL, apiKey), nil
}
