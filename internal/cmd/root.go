// Package cmd wires up the lasso command-line interface, the first
// consumer of the gateway library.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lasso/internal/config"
	"lasso/internal/gateway"
	"lasso/internal/logging"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
	gw     *gateway.Gateway
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "lasso",
	Short: "A CLI for issuing requests against JSON APIs",
	Long: `Lasso issues GET, POST, PUT, and DELETE requests against a remote
JSON API through a shared connection pool and classifies every response
as parsed JSON, raw text, or a typed API error.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/lasso/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func initConfig() {
	configPath := cfgFile
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		var err error
		configPath, err = config.DefaultPath()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Dir(configPath))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("LASSO")
	viper.AutomaticEnv()

	// Read config file silently (ignore error if config file doesn't exist)
	_ = viper.ReadInConfig()

	var err error
	cfg, err = config.NewManager(configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.NewLogger(level)

	// All commands share the one process-wide pool.
	gw = gateway.Default(logger)
}
