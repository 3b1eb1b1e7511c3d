package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/vitalvas/secretkit"
	"github.com/vitalvas/secretkit/xconfig"
	"github.com/vitalvas/secretkit/xlogger"
)

const defaultConfigFile = "secretkit.yml"

type config struct {
	Solver string    `yaml:"solver" default:"exact"`
	Verify bool      `yaml:"verify"`
	Jobs   int       `yaml:"jobs"`
	Log    logConfig `yaml:"log"`
}

type logConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"text"`
}

var (
	rootCmd = &cobra.Command{
		Use:               "secretkit",
		Short:             "Split and reconstruct integer secrets",
		Version:           secretkit.Version,
		PersistentPreRunE: setup,
	}

	cfgFile string
	cfg     config
	logger  *slog.Logger
)

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config{}

	if err := xconfig.Load(&cfg, xconfig.WithFiles(cfgFile), xconfig.WithEnv("secretkit")); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log.level") {
		cfg.Log.Level, _ = flags.GetString("log.level")
	}

	if flags.Changed("log.format") {
		cfg.Log.Format, _ = flags.GetString("log.format")
	}

	logger = xlogger.New(xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	return nil
}

func init() {
	persistentFlags := flag.NewFlagSet("", flag.ContinueOnError)
	persistentFlags.StringVar(&cfgFile, "config", defaultConfigFile, "config file")
	persistentFlags.String("log.level", "", "log level (debug, info, warn, error)")
	persistentFlags.String("log.format", "", "log format (text, json)")
	rootCmd.PersistentFlags().AddFlagSet(persistentFlags)
}
