package main

import (
	"fmt"
	"github.com/osmike/cronpick/internal/config"
	"github.com/osmike/cronpick/internal/domain"
	"github.com/osmike/cronpick/internal/formatter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries what every command needs once the configuration is loaded.
type app struct {
	// Global flags
	configPath string
	flags      config.Flags
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func newApp() *app {
	return &app{now: time.Now}
}

func newRootCmd(a *app) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:   "cronpick",
		Short: "Pick recurring schedules and turn them into cron expressions",
		Long: `cronpick converts a daily, weekly or monthly recurrence into a cron
expression and back, in the standard 5-field dialect or the 7-field Quartz
dialect. Expressions can be previewed and kept in SQLite or Redis.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.cronpick/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.flags.Dialect, "dialect", "d", "", "Cron dialect (standard, quartz)")
	rootCmd.PersistentFlags().StringVar(&a.flags.HourFormat, "hour-format", "", "Clock used for --hour (24, 12)")
	rootCmd.PersistentFlags().StringVar(&a.flags.Driver, "store", "", "Store driver (memory, sqlite, redis)")
	rootCmd.PersistentFlags().StringVar(&a.flags.DSN, "dsn", "", "Store location: SQLite file or Redis URL")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colorized output")

	rootCmd.RegisterFlagCompletionFunc("dialect", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(domain.Standard), string(domain.Quartz)}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.RegisterFlagCompletionFunc("store", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.DriverMemory, config.DriverSQLite, config.DriverRedis}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newBuildCmd(a),
		newParseCmd(a),
		newNextCmd(a),
		newSetCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// init loads the configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath, a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.noColor {
		color.NoColor = true
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) formatter() (domain.Formatter, error) {
	return formatter.New(a.cfg.Dialect)
}

// newLogger builds a development logger for console output and a production
// logger for json output.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skips loading the configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:    %s\n", Version)
			fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		},
	}
}
