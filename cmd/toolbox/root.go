package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"toolbox/internal/app"
	"toolbox/internal/domain"
	"toolbox/internal/infra/config"
	"toolbox/internal/infra/telemetry"
)

type cliOptions struct {
	configPath string
	envFile    string
	dataDir    string
	logLevel   string
	logJSON    bool
	jsonOutput bool
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		configPath: config.DefaultPath(),
		logger:     zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "toolbox",
		Short:         "Searchable workspace of small utility tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applyRootFlagBindings(cmd, &opts)
			return validateRootFlags(&opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to config file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file with TOOLBOX_ overrides (default: .env next to the config file)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for the local database (overrides config)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error or off (overrides config)")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")

	root.AddCommand(
		newSearchCmd(&opts),
		newFeaturedCmd(&opts),
		newListCmd(&opts),
		newShowCmd(&opts),
		newRunCmd(&opts),
		newRecentCmd(&opts),
		newShellCmd(&opts),
		newServeCmd(&opts),
		newVersionCmd(&opts),
	)

	return root
}

func applyRootFlagBindings(cmd *cobra.Command, opts *cliOptions) {
	flags := cmd.Flags()
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "config":
			opts.configPath, _ = flags.GetString("config")
		case "env-file":
			opts.envFile, _ = flags.GetString("env-file")
		case "data-dir":
			opts.dataDir, _ = flags.GetString("data-dir")
		case "log-level":
			opts.logLevel, _ = flags.GetString("log-level")
		case "log-json":
			opts.logJSON, _ = flags.GetBool("log-json")
		case "json":
			opts.jsonOutput, _ = flags.GetBool("json")
		}
	})
}

func validateRootFlags(opts *cliOptions) error {
	level := strings.TrimSpace(opts.logLevel)
	if level == "" || level == "off" {
		return nil
	}
	if _, err := zapcore.ParseLevel(level); err != nil {
		return exitError{code: exitCodeUsage, message: "invalid --log-level " + level}
	}
	return nil
}

// loadConfig resolves the effective configuration: dotenv file, config
// file with TOOLBOX_ environment overrides, then command-line flags.
func (opts *cliOptions) loadConfig(ctx context.Context) (domain.Config, error) {
	envFile := opts.envFile
	if envFile == "" && opts.configPath != "" {
		envFile = filepath.Join(filepath.Dir(opts.configPath), ".env")
	}
	if _, err := config.LoadEnvFile(envFile); err != nil {
		return domain.Config{}, err
	}

	cfg, err := config.NewLoader(opts.logger).Load(ctx, opts.configPath)
	if err != nil {
		return domain.Config{}, err
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if cfg.DataDir == "" {
		cfg.DataDir = config.DefaultDataDir()
	}
	return cfg, nil
}

// openApplication loads configuration, builds the logger and wires the
// application for one command invocation. The caller runs the returned
// cleanup once done with the application.
func (opts *cliOptions) openApplication(cmd *cobra.Command, source string) (*app.Application, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := opts.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	level := zap.NewAtomicLevel()
	app.ApplyLogLevel(level, cfg.LogLevel)
	if cfg.LogLevel != "off" {
		opts.logger = telemetry.NewLogger(telemetry.LoggerOptions{
			Level:  level,
			Output: cmd.ErrOrStderr(),
			JSON:   opts.logJSON,
		})
	}

	return app.InitializeApplication(ctx, app.RunConfig{
		ConfigPath: opts.configPath,
		Config:     cfg,
	}, app.LoggingConfig{
		Logger: opts.logger,
		Level:  level,
		Source: source,
	})
}

// withApplication opens the application, runs fn and closes it.
func (opts *cliOptions) withApplication(cmd *cobra.Command, source string, fn func(*app.Application) error) (err error) {
	application, cleanup, err := opts.openApplication(cmd, source)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		cleanup()
	}()
	return fn(application)
}
