package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
)

// writeBackup snapshots the live document to the last-known-good
// location so a future broken user config still has something to fall
// back on. A failed backup is logged by the caller but never fails
// the parse.
func writeBackup(doc *document.Document) error {
	path := backupPath()
	if path == "" {
		return errors.New("unable to resolve data directory for config backup")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}

	if err := doc.Save(path); err != nil {
		return err
	}

	log.Info("current config backed up", "path", path)
	return nil
}
