package cmd

import (
	"os"

	"github.com/nikogura/creatoros/pkg/config"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var logger = zap.NewNop()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "creatoros",
	Short: "Tools for independent content creators",
	Long: `creatoros builds personal websites, plans content and tracks brand deals.

It renders link-in-bio pages from page description files, drafts calendars, ideas,
scripts and pitches through an AI gateway, and keeps a local scrapbook of ideas and
collaborations. 'creatoros serve' exposes all of it over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.creatoros/config.json)")
}

// setupLogger builds the process logger. Debug output is enabled with --verbose.
func setupLogger(cmd *cobra.Command, args []string) (err error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err = zapConfig.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return err
	}

	return err
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	logger.Debug("loaded config",
		zap.String("provider", cfg.Gateway.Provider),
		zap.String("model", cfg.Gateway.Model),
		zap.String("store", cfg.Store.Path),
	)
	return cfg, err
}

func openStore(cfg config.Config) (st *store.Store, err error) {
	st, err = store.Open(cfg.Store.Path)
	if err != nil {
		err = errors.Wrap(err, "failed to open store")
		return st, err
	}
	return st, err
}

// loadProfile returns the configured creator profile, or an empty one when none is configured.
func loadProfile(cfg config.Config) (p profile.Profile, err error) {
	if cfg.ProfilePath == "" {
		return p, err
	}

	p, err = profile.Load(cfg.ProfilePath)
	if err != nil {
		err = errors.Wrap(err, "failed to load profile")
		return p, err
	}
	return p, err
}

func newAssistant(cfg config.Config) (client *llm.Client, err error) {
	err = cfg.ValidateGateway()
	if err != nil {
		return client, err
	}

	var completer llm.Completer
	completer, err = llm.NewCompleter(cfg.Gateway.LLM())
	if err != nil {
		err = errors.Wrap(err, "failed to create AI gateway client")
		return client, err
	}

	client = llm.NewClient(completer, logger)
	return client, err
}
