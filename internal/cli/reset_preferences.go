package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/aajkakhana/internal/db"
)

// RunResetPreferencesCommand clears the stored language and theme.
func RunResetPreferencesCommand(out io.Writer, dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer db.Close(database)

	removed, err := db.NewPreferenceRepository(database).DeleteAll()
	if err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}

	fmt.Fprintln(out, "✅ Preferences reset")
	fmt.Fprintf(out, "Removed %d stored value(s); defaults apply on next load.\n", removed)
	return nil
}
