package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show population statistics",
	Long: `Display aggregate statistics about the stored customer population.

Examples:
  shopsense stats
  shopsense stats -o json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := db.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	return output.Output(outputFmt, stats)
}
