package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jamo/accountctl/internal/maintenance"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "accountctl",
	Short: "Delete disabled accounts from the local SQLite database",
	Long: `Accountctl sweeps the accounts table of a local SQLite database,
deleting every row whose enabled flag is 0 and reporting the count.
A missing database, table, or column is reported and treated as a
no-op; the process always exits 0.`,
	RunE: runSweep,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Load .env file if it exists
	godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", os.Getenv("ACCOUNTS_DB"), "Path to the SQLite database (can be set via ACCOUNTS_DB env var; defaults to data.sqlite3 one directory above the executable)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	path := dbPath
	if path == "" {
		derived, err := maintenance.DefaultDatabasePath()
		if err != nil {
			// Sweep failures are absorbed; the process still exits 0.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		path = derived
	}

	maintenance.NewSweeper().DeleteDisabledAccounts(path)
	return nil
}
