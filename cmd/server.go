package cmd

import (
	"net/http"
	"todoscan/api"
	"todoscan/config"
	"todoscan/logger"

	"github.com/spf13/cobra"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve stored scans over a JSON API",
	Long: `Starts an HTTP server exposing the stored scans and their findings as
JSON under /api. Useful for dashboards or editor integrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		portToUse := serverPort
		if portToUse == "" {
			portToUse = config.AppConfig.Server.Port
		}

		logger.Info("Starting API server on port %s...", portToUse)

		apiRouter := api.NewRouter()

		mainMux := http.NewServeMux()
		mainMux.Handle("/api/", http.StripPrefix("/api", apiRouter))

		if err := http.ListenAndServe(":"+portToUse, mainMux); err != nil {
			logger.Fatal("Could not start server: %v", err)
		}
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "", "port for the server to listen on (default from config)")
	rootCmd.AddCommand(serverCmd)
}
