package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vivanb/uberctl/config"
	"github.com/vivanb/uberctl/uber"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	uberClient *uber.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uberctl",
	Short: "A CLI for the Uber ride data and OAuth endpoints",
	Long: `uberctl is a thin command line wrapper around the Uber v1 REST API.
It can list available products, fetch price and time estimates, look up
promotions, and drive the OAuth authorization-code flow (authorize URL,
token exchange, refresh, revocation).`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata shown by --version.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Uber client
	opts := []uber.Option{}
	if cfg.Uber.APIURL != "" {
		opts = append(opts, uber.WithAPIURL(cfg.Uber.APIURL))
	}
	if cfg.Uber.AuthURL != "" {
		opts = append(opts, uber.WithAuthURL(cfg.Uber.AuthURL))
	}

	uberClient, err = uber.NewClient(uber.Credentials{
		ClientID:     cfg.Uber.ClientID,
		ServerToken:  cfg.Uber.ServerToken,
		ClientSecret: cfg.Uber.ClientSecret,
		RedirectURI:  cfg.Uber.RedirectURI,
	}, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Uber client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
