package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sessilelab/dropletgen/internal/server"
)

// serveCommand creates the serve command running the HTTP front end.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front end for CSV uploads and galleries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if addr == "" {
				addr = ":8080"
			}
			return c.runServe(cmd.Context(), addr, outputDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "also write uploaded-job images to this directory")

	return cmd
}

// runServe starts the HTTP server and shuts it down when ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, outputDir string) error {
	runner, err := c.newRunner(false)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(runner, c.Logger, server.WithOutputDir(outputDir))
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
