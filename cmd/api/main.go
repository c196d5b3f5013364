package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title           InHouse API
// @version         1.0
// @description     Marketplace social de aluguel de imóveis
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "inhouse-api",
		Short: "InHouse rental marketplace API",
		// Sem subcomando o binário sobe o servidor
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
