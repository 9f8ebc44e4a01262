package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/folio-cms/folio/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "foliod",
		Short: "Folio daemon",
		Long:  "Folio daemon for running the portfolio API server and seeding sample content",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
