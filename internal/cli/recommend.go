package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/enrich"
	"github.com/priya-raman/shopsense/internal/output"
	"github.com/priya-raman/shopsense/internal/recommend"
	"github.com/priya-raman/shopsense/internal/similarity"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [name]",
	Short: "Generate product recommendations",
	Long: `Score products for a customer and explain each recommendation.

A stored customer is looked up by name. With --profile, recommendations
are generated for an inline profile instead, without touching the store.

Examples:
  shopsense recommend Ali                       # Stored customer, default strategy
  shopsense recommend Ali --strategy=contextual
  shopsense recommend --profile new.json        # Preview for a new customer
  shopsense recommend Ali -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecommend,
}

var (
	recommendStrategy string
	recommendProfile  string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendStrategy, "strategy", "", "Strategy (collaborative, contextual, hybrid)")
	recommendCmd.Flags().StringVar(&recommendProfile, "profile", "", "JSON file with a customer profile to preview")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendProfile != "" {
		return recommendForProfile(cmd)
	}
	if len(args) == 0 {
		return fmt.Errorf("customer name or --profile is required")
	}
	return recommendForStored(cmd, args[0])
}

func recommendForStored(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if recommendStrategy == "" {
		recommendStrategy = cfg.Engine.DefaultStrategy
	}
	strategy, err := recommend.ParseStrategy(recommendStrategy)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pop, err := db.LoadPopulation(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	sim := similarity.ForPopulation(pop)

	idx, err := pop.IndexOf(name)
	if err != nil {
		return err
	}
	record := pop.At(idx)

	cat, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Remote enrichment first when configured; fall back to the local
	// engine on any failure.
	if cfg.Enrich.Enabled {
		client := enrich.New(cfg.Enrich.BaseURL, cfg.EnrichAPIKey())
		if recs, err := client.Recommend(ctx, record, strategy, sim.Row(idx)); err == nil {
			return output.Output(outputFmt, recs)
		}
	}

	engine := recommend.NewEngine(cat)
	recs, err := engine.Recommend(record, pop, sim, strategy)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, recs)
}

func recommendForProfile(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(recommendProfile)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	var record customer.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := record.Validate(); err != nil {
		return err
	}

	// New customers default to contextual: there is no stored population
	// to do collaborative filtering against.
	if recommendStrategy == "" {
		recommendStrategy = string(recommend.StrategyContextual)
	}
	strategy, err := recommend.ParseStrategy(recommendStrategy)
	if err != nil {
		return err
	}

	if cfg.Enrich.Enabled {
		client := enrich.New(cfg.Enrich.BaseURL, cfg.EnrichAPIKey())
		if recs, err := client.RecommendNew(ctx, &record); err == nil {
			return output.Output(outputFmt, recs)
		}
	}

	cat, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	engine := recommend.NewEngine(cat)
	recs := engine.RecommendNew(&record, strategy)

	return output.Output(outputFmt, recs)
}
