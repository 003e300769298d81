package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/avnlabs/gsgraph/pkg/archive"
	"github.com/avnlabs/gsgraph/pkg/cache"
	"github.com/avnlabs/gsgraph/pkg/hash32"
	"github.com/avnlabs/gsgraph/pkg/httpapi"
)

// serveCommand creates the "serve" command: run the decode pipeline behind
// an HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the decode pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			hash32.Init(loadExtraDictionary(c.Config.Dictionary.Path))

			if addr == "" {
				addr = c.Config.Server.Address
			}

			var sink *archive.Sink
			if c.Config.Archive.URI != "" {
				s, err := archive.NewSink(ctx, c.Config.Archive.URI, c.Config.Archive.Database, c.Config.Archive.Collection)
				if err != nil {
					c.Logger.Warn("archive sink unavailable, continuing without it", "err", err)
				} else {
					sink = s
					defer sink.Close(ctx)
				}
			}

			srv := &httpapi.Server{
				Logger: c.Logger,
				Cache:  c.newCache(),
				Keyer:  cache.NewDefaultKeyer(),
				Sink:   sink,
				TTL:    time.Duration(c.Config.Cache.TTLSeconds) * time.Second,
			}

			c.Logger.Info("listening", "addr", addr)
			return serveHTTP(ctx, addr, srv.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config server.address)")
	return cmd
}

// serveHTTP runs http.ListenAndServe on addr and shuts the server down
// cleanly when ctx is cancelled.
func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
