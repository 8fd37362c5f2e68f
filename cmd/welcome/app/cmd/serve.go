package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/welcome"
	"github.com/3-lines-studio/welcome/internal/adapters/env"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	port  string
	host  string
	dev   bool
	title string
}

func NewCmdServe(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			overrideFromFlag(cmd.Flags(), "port", &cfg.Port)
			if err := env.ValidatePort(cfg.Port); err != nil {
				return err
			}
			if cmd.Flags().Changed("dev") {
				cfg.Dev = opts.dev
			}

			app := welcome.New(
				welcome.WithLookup(cfg.Lookup),
				welcome.WithDev(cfg.Dev),
				welcome.WithTitle(opts.title),
				welcome.WithLogger(logrus.StandardLogger()),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", net.JoinHostPort(opts.host, cfg.Port))
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"addr":        ln.Addr().String(),
				"environment": cfg.Environment(),
				"dev":         cfg.Dev,
			}).Info("serving welcome page")

			return Serve(ctx, ln, app.Handler())
		},
	}

	cmd.Flags().StringVarP(&opts.port, "port", "p", env.DefaultPort, "Port to listen on (overrides $PORT)")
	cmd.Flags().StringVar(&opts.host, "host", "0.0.0.0", "Interface to bind")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "Show error details in the browser (overrides $APP_DEV)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title")

	return cmd
}

// Serve runs handler on ln until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
