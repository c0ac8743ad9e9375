package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/art-explorer/internal/collection"
	"github.com/pdiddy/art-explorer/internal/enrich"
	"github.com/pdiddy/art-explorer/internal/locale"
	"github.com/pdiddy/art-explorer/internal/server"
	"github.com/pdiddy/art-explorer/internal/translate"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the enrichment proxy and serve the front end",
	Long: `Serve listens on the configured address (default :3000) and exposes
/departments, /search and /object/{id} in front of the collection API, along
with /healthz, /metrics and the static files under the public directory.

Object records have twelve text fields translated into translate.target_lang.
With a google-translate-api-key secret the keyed translation API is used;
otherwise the keyless endpoint.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (default :3000)")
	serveCmd.Flags().String("public-dir", "", "static asset directory (default public)")
	serveCmd.Flags().String("lang", "", "translation target language (default es)")
	_ = viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	_ = viper.BindPFlag("server.public_dir", serveCmd.Flags().Lookup("public-dir"))
	_ = viper.BindPFlag("translate.target_lang", serveCmd.Flags().Lookup("lang"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log sink: %v\n", err)
		}
	}()

	client := collection.NewClient(cfg.Collection)
	backend := translate.NewBackend(cfg.Translate, logger)
	bundle := locale.For(cfg.Translate.TargetLang)
	adapter := translate.NewAdapter(backend, bundle.Unknown, logger)
	enricher := enrich.New(client, adapter, cfg.Translate.TargetLang, bundle.Sentinels(), logger)

	srv := server.NewServer(cfg.Server, server.NewHandler(client, enricher, logger), logger)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			"addr", ln.Addr().String(),
			"translation_backend", backend.Name(),
			"target_lang", cfg.Translate.TargetLang,
			"labels", bundle.Lang,
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
