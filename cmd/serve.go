package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve question generation over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer sess.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = sess.cfg.Server.Addr
		}

		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})).With("component", "serve")

		srv := api.NewServer(sess.generator, api.Options{
			Addr:           addr,
			Timeout:        sess.llmConfig.Timeout,
			AllowedOrigins: sess.cfg.Server.AllowedOrigins,
			Logger:         logger,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		logger.Info("server listening", "addr", addr, "model", sess.generator.ModelID())

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, 127.0.0.1:8088)")
}
