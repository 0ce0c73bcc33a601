package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server exposing the table tools.  Transport and
// port come from the "server" section of the config file; the library
// defaults apply otherwise.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	var srvOpts *mcp.ServerOptions
	if cfg := svc.Config(); cfg != nil {
		srvOpts = cfg.Server
	}
	mcpServer, err := mcp.NewServer(svc.NewHandler, srvOpts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	httpSrv := mcpServer.HTTP(ctx, "")
	errs := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	log.Info().Str("addr", httpSrv.Addr).Strs("tables", svc.Tables().Tables()).Msg("trie MCP server listening")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errs:
		log.Error().Err(err).Msg("http server")
	case sig := <-sigs:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}
	if closeErr := httpSrv.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if shutdownErr := svc.Shutdown(ctx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}
