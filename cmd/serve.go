package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikogura/creatoros/pkg/config"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/server"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file. An existing file is never overwritten.

The API key can stay out of the file: CREATOROS_GATEWAY_API_KEY, AI_GATEWAY_API_KEY
and ANTHROPIC_API_KEY are read from the environment.

Example:
  creatoros init
  creatoros init --config ./creatoros.json`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long: `Serve the CreatorOS HTTP API and published sites until interrupted.

AI routes answer 503 when no gateway API key is configured.

Example:
  creatoros serve
  creatoros serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	printDone("Config written to %s", path)
	fmt.Println("Next: set gateway.api_key (or AI_GATEWAY_API_KEY) and, optionally, profile_path.")
	return err
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	var p profile.Profile
	p, err = loadProfile(cfg)
	if err != nil {
		return err
	}

	var st *store.Store
	st, err = openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		shrinkErr := st.Shrink()
		if shrinkErr != nil {
			logger.Warn("store compaction failed", zap.Error(shrinkErr))
		}

		closeErr := st.Close()
		if closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "failed to close store")
		}
	}()

	var assistant server.Assistant
	var client *llm.Client
	client, err = newAssistant(cfg)
	if err != nil {
		logger.Warn("AI routes disabled", zap.Error(err))
		err = nil
	} else {
		assistant = client
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:          cfg.Server.Addr,
		AuthToken:     cfg.Server.AuthToken,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	}, st, assistant, p, logger)

	fmt.Printf("Serving on %s (Ctrl+C to stop)\n", heading(cfg.Server.Addr))
	err = srv.Run(ctx)
	return err
}
