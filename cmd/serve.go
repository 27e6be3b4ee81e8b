package main

import (
	"dynastytrades/api"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the valuation api",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := initializeDependencies()
		if err != nil {
			return err
		}

		apiHandler := api.ApiHandler{
			ValuationService: h.ValuationService,
		}

		return apiHandler.StartApi(servePort)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3009, "port to listen on")
}
