package maintenance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jamo/accountctl/internal/database"
)

const DatabaseFileName = "data.sqlite3"

// Result is the outcome of a sweep. Every run produces one; failures
// are absorbed into a zero count after being reported, so callers can
// always exit cleanly.
type Result struct {
	Deleted int
}

// Sweeper deletes disabled accounts from a SQLite database and reports
// what happened on Out (status) and Err (engine failures).
type Sweeper struct {
	Out io.Writer
	Err io.Writer
}

func NewSweeper() *Sweeper {
	return &Sweeper{Out: os.Stdout, Err: os.Stderr}
}

// DefaultDatabasePath derives the fixed database location: a file named
// data.sqlite3 one directory above the executable's own directory.
func DefaultDatabasePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	base := filepath.Dir(filepath.Dir(exe))
	return filepath.Join(base, DatabaseFileName), nil
}

// DeleteDisabledAccounts removes all rows from the accounts table where
// enabled=0. Each precondition failure (missing file, table, or column)
// short-circuits with a status line and a zero result. Engine errors
// are reported to Err and likewise yield a zero result; they never
// propagate.
func (s *Sweeper) DeleteDisabledAccounts(dbPath string) Result {
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(s.Out, "Database not found: %s\n", dbPath)
		return Result{}
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return s.fail(err)
	}
	defer db.Close()

	ok, err := db.TableExists("accounts")
	if err != nil {
		return s.fail(err)
	}
	if !ok {
		fmt.Fprintln(s.Out, "Table 'accounts' not found in database.")
		return Result{}
	}

	ok, err = db.ColumnExists("accounts", "enabled")
	if err != nil {
		return s.fail(err)
	}
	if !ok {
		fmt.Fprintln(s.Out, "Column 'enabled' not found in 'accounts' table.")
		return Result{}
	}

	count, err := db.DeleteDisabledAccounts()
	if err != nil {
		return s.fail(err)
	}

	fmt.Fprintf(s.Out, "Deleted %d disabled account(s).\n", count)
	return Result{Deleted: count}
}

func (s *Sweeper) fail(err error) Result {
	fmt.Fprintf(s.Err, "SQLite error: %v\n", err)
	return Result{}
}
