package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"roster-enricher/internal/settings"
)

const (
	Version = "0.1.0"
	appName = "roster-enricher"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	verbose      bool
	settingsPath string

	// settings overrides; applied only when the flag was set.
	includeUnmatched bool
	strictSwim       bool
	rejectUnknown    bool
	warnMedical      bool
	session          int
	placeholder      string

	logger *zap.Logger
}

// rootCmd builds the command tree. A nil logger is replaced by a console
// logger in PersistentPreRunE.
func rootCmd(logger *zap.Logger) *cobra.Command {
	opts := &globalOptions{logger: logger}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Merge and enrich camp enrollment and activity exports",
		Long: `roster-enricher reads the enrollment and activity exports of a camp
registration platform, merges them by camper and runs enrichment features:

  activities   consolidate activity rows into Round 1..3 (always runs)
  program      extract the program of the current session
  preferences  score assignments against ranked preferences
  swim         flag activities above the camper's swim level
  medical      make sure medical notes are present`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}

			l, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			opts.logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	flags.StringVarP(&opts.settingsPath, "settings", "s", "", "Settings file (YAML); defaults are built in")
	flags.BoolVar(&opts.includeUnmatched, "include-unmatched", true, "Add campers for activity rows without an enrollment record")
	flags.BoolVar(&opts.strictSwim, "strict-swim", true, "Report activities without a swim requirement")
	flags.BoolVar(&opts.rejectUnknown, "reject-unknown-swim", false, "Treat activities without a swim requirement as conflicts")
	flags.BoolVar(&opts.warnMedical, "warn-missing-medical", true, "Warn about campers without medical notes")
	flags.IntVar(&opts.session, "session", 0, "Current session number; 0 infers it from enrollments")
	flags.StringVar(&opts.placeholder, "placeholder", "", "Text written for empty values")

	cmd.AddCommand(enrichCmd(opts), settingsCmd(opts), versionCmd())

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// loadSettings resolves the settings file, then applies the flags the user set.
func loadSettings(cmd *cobra.Command, opts *globalOptions) (*settings.Settings, error) {
	cfg := settings.Default()

	if opts.settingsPath != "" {
		loaded, err := settings.LoadFile(opts.settingsPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("include-unmatched") {
		cfg.IncludeUnmatchedActivities = opts.includeUnmatched
	}

	if flags.Changed("strict-swim") {
		cfg.StrictSwimDefinitions = opts.strictSwim
	}

	if flags.Changed("reject-unknown-swim") {
		cfg.RejectUnknownSwimActivities = opts.rejectUnknown
	}

	if flags.Changed("warn-missing-medical") {
		cfg.WarnMissingMedical = opts.warnMedical
	}

	if flags.Changed("session") {
		cfg.CurrentSession = opts.session
	}

	if flags.Changed("placeholder") {
		cfg.EmptyPlaceholder = opts.placeholder
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}

func settingsCmd(opts *globalOptions) *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}

			if writePath != "" {
				if err := settings.WriteFile(cfg, writePath); err != nil {
					return err
				}

				opts.logger.Info("settings written", zap.String("path", writePath))

				return nil
			}

			data, err := settings.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&writePath, "write", "w", "", "Write the settings to this file instead of printing them")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
