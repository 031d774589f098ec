package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/server"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

var (
	serveAddr    string
	servePath    string
	serveStorage string
	serveDataDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference recipe backend",
	Long: `Serve the recipe collection over HTTP so the client can run locally.

Routes (under --path, default /api):
  GET    /api        list recipes
  POST   /api        create a recipe
  PUT    /api/{id}   update a recipe
  DELETE /api/{id}   delete a recipe
  GET    /healthz    health check
  GET    /metrics    Prometheus metrics

Storage is in memory by default. Use --storage sqlite to keep recipes in
a SQLite database under --data-dir.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().StringVar(&servePath, "path", "", "collection path (default from server.path)")
	serveCmd.Flags().StringVar(&serveStorage, "storage", "", "storage backend: memory or sqlite")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "directory for the sqlite database")
	rootCmd.AddCommand(serveCmd)
}

// serverSettings merges command flags over stored settings.
func serverSettings() (domain.ServerSettings, error) {
	s, err := currentSettings()
	if err != nil {
		return domain.ServerSettings{}, err
	}

	srv := s.Server
	if serveAddr != "" {
		srv.Addr = serveAddr
	}
	if servePath != "" {
		srv.Path = servePath
	}
	if serveStorage != "" {
		srv.Storage = domain.StorageKind(serveStorage)
	}
	if serveDataDir != "" {
		srv.DataDir = serveDataDir
	}

	if !srv.Storage.IsValid() {
		return domain.ServerSettings{}, fmt.Errorf("unknown storage %q (want memory or sqlite)", srv.Storage)
	}
	return srv, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	if newCatalogue == nil {
		return fmt.Errorf("recipe catalogue not configured")
	}

	srv, err := serverSettings()
	if err != nil {
		return err
	}

	catalogue, closer, err := newCatalogue(srv)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("closing storage: %v", err)
		}
	}()

	cfg := server.ConfigFromSettings(srv)
	s := server.New(cfg, catalogue)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving recipes on %s%s (%s storage)\n", s.Config().Addr, s.Config().Path, srv.Storage)
	return s.Run(ctx)
}
