package cmd

import (
	"fmt"

	"github.com/abhisek/learnpy/internal/logger"
	"github.com/abhisek/learnpy/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson catalog and profile store over HTTP",
	Long: `Start a local HTTP API exposing lessons, the active profile, progress,
quiz stats, and export/import. Intended for the web front end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = svcs.cfg.HTTPPort
		}

		log := logger.New(svcs.cfg.LogLevel)
		h := &server.Handler{
			Store:   svcs.store,
			Catalog: svcs.catalog,
			Log:     log,
		}

		addr := ":" + port
		log.Info("listening", "addr", addr)
		fmt.Printf("learnpy API listening on %s\n", addr)
		return server.NewRouter(h).Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides LEARNPY_HTTP_PORT)")
}
