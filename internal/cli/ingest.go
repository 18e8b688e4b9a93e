package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Load a customer dataset into the store",
	Long: `Load customer records from a JSON or XLSX file into the database.
Records are matched by name: an existing customer is updated, a new one
is inserted.

Examples:
  shopsense ingest customers.json          # Load a JSON dataset
  shopsense ingest customers.xlsx          # Load an Excel dataset
  shopsense ingest customers.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

var ingestDryRun bool

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "Validate the dataset without writing to the database")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	records, err := readDataset(path)
	if err != nil {
		return err
	}

	if ingestDryRun {
		fmt.Printf("Validated %d record(s) in %s\n", len(records), path)
		return nil
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var stored int
	for i := range records {
		row, err := database.FromRecord(&records[i])
		if err != nil {
			return fmt.Errorf("record %q: %w", records[i].Name, err)
		}
		if err := db.UpsertCustomer(ctx, row); err != nil {
			return fmt.Errorf("failed to store %q: %w", records[i].Name, err)
		}
		stored++
	}

	fmt.Printf("Ingested %d customer(s) from %s\n", stored, path)
	return nil
}

// readDataset picks the reader from the file extension
func readDataset(path string) ([]customer.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ingest.ReadJSONFile(path)
	case ".xlsx":
		return ingest.ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s (use .json or .xlsx)", filepath.Ext(path))
	}
}
