package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored customers",
	Long: `List customers in the store with optional filters.

Examples:
  shopsense list                 # List all customers
  shopsense list --name=ali      # Filter by name substring
  shopsense list -o json         # Output as JSON`,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a customer's full profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a customer from the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var (
	listName  string
	listLimit int
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(removeCmd)

	listCmd.Flags().StringVar(&listName, "name", "", "Filter by name (case-insensitive substring)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of results")
}

func runList(cmd *cobra.Command, args []string) error {
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

	customers, err := db.ListCustomers(ctx, database.ListOptions{
		NameContains: listName,
		Limit:        listLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	return output.Output(outputFmt, customers)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	return output.Output(outputFmt, row)
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	if err := db.DeleteCustomer(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to remove customer: %w", err)
	}

	fmt.Printf("Removed %s\n", args[0])
	return nil
}
