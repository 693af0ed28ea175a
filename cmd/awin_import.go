package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"biolink.GO/config"
	awinService "biolink.GO/service/awin"
)

var (
	importFile       string
	importAdvertiser string
	importCategory   string
	importLimit      int
)

var awinImportCmd = &cobra.Command{
	Use:   "awin:import",
	Short: "Import products from an Awin feed (file upload or partner API)",
	Run: func(cmd *cobra.Command, args []string) {
		if importFile == "" && importAdvertiser == "" {
			fmt.Println("Either --file or --advertiser is required")
			os.Exit(1)
		}

		var csvContent string
		if importFile != "" {
			data, err := os.ReadFile(importFile)
			if err != nil {
				fmt.Printf("Failed to read feed file: %v\n", err)
				return
			}
			csvContent = string(data)
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		cfg := config.AppConfig
		feed := awinService.NewFeedClient(cfg.AwinFeedBase, cfg.AwinPublisherID, cfg.AwinAPIToken)
		service := awinService.NewImportService(db, feed)

		limit := importLimit
		if limit <= 0 {
			limit = cfg.ImportLimit
		}

		res, err := service.Run(context.Background(), awinService.ImportOptions{
			CategoryID:   importCategory,
			AdvertiserID: importAdvertiser,
			Limit:        limit,
			CSVContent:   csvContent,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		source := importAdvertiser
		if csvContent != "" {
			source = importFile
		}
		fmt.Printf(`
=== Import Report ===
Source:    %s
Log ID:    %s
Total:     %d
Imported:  %d
Updated:   %d
Failed:    %d
=====================
`, source, res.LogID, res.Total, res.Imported, res.Updated, res.Failed)
	},
}

func init() {
	awinImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "Feed file path (upload path)")
	awinImportCmd.Flags().StringVarP(&importAdvertiser, "advertiser", "a", "", "Awin advertiser ID (API fetch path)")
	awinImportCmd.Flags().StringVar(&importCategory, "category", "", "Category filter recorded on the run log")
	awinImportCmd.Flags().IntVar(&importLimit, "limit", 0, "Max records per run (defaults to AWIN_IMPORT_LIMIT)")
	rootCmd.AddCommand(awinImportCmd)
}
