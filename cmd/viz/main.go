package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/analysis-viz/internal/cli"
	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/config"
)

var (
	cfgFile    string
	version    = "dev"
	settings   = config.Defaults()
	interrupts *cli.InterruptHandler
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "viz",
		Short: "◉ Interactive real analysis diagrams in the terminal",
		Long: `viz: interactive visualizations for a first course in real analysis.

Probe interior, boundary and exterior points with an ε-ball, classify
adherent, accumulation and isolated points, step through the Heine-Borel
proof and watch pointwise convergence fail to be uniform.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/viz/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	interrupts = cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil && !(errors.Is(err, context.Canceled) && interrupts.WasInterrupted()) {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(filepath.Dir(path))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	settings = loaded

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(settings.Logging.Level)
	if err != nil {
		return err
	}
	return common.SetupLogger(level, settings.Logging.Format)
}

// noteOnInterrupt sets the line printed if the user interrupts.
func noteOnInterrupt(note string) {
	if interrupts != nil {
		interrupts.SetNote(note)
	}
}
