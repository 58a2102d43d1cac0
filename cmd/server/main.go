package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kanywst/go-hello-probe/internal/app"
	"github.com/kanywst/go-hello-probe/internal/config"
	"github.com/kanywst/go-hello-probe/internal/server"
)

type options struct {
	configPath string
	host       string
	port       int
	logLevel   string
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "server",
		Short:         "HTTP liveness/readiness probe with a greeting counter",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, os.LookupEnv)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	f.StringVar(&opts.host, "host", config.DefaultHost, "interface to bind (empty for all)")
	f.IntVarP(&opts.port, "port", "p", config.DefaultPort, "port to listen on (overrides $PORT)")
	f.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")

	return cmd
}

// resolveConfig layers file, environment and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, opts *options, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}

func run(cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	router := app.NewRouter(app.NewState(), logger)
	srv := server.New(router, logger)

	// Runs until the process is killed.
	return srv.ListenAndServe(cfg.Addr())
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
