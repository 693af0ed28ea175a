package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "biolink",
	Short: "Bio-link affiliate platform CLI",
	Long:  "Management commands for the bio-link affiliate catalog: feed imports, migrations, cron.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("biolink.GO", "", true).Print()
		fmt.Println()
	},
}

func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
