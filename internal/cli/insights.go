package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/insight"
	"github.com/priya-raman/shopsense/internal/output"
)

var insightsCmd = &cobra.Command{
	Use:   "insights <name>",
	Short: "Show a customer's profile metrics",
	Long: `Display a customer's behavioral metrics on a common 0-2 scale:
sentiment, engagement, social media activity, and churn risk.

Examples:
  shopsense insights Ali
  shopsense insights Ali -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
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

	row, err := db.GetCustomerByName(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if row == nil {
		return fmt.Errorf("customer %q not found", args[0])
	}

	rec, err := row.ToRecord()
	if err != nil {
		return err
	}

	return output.Output(outputFmt, insight.Build(rec))
}
