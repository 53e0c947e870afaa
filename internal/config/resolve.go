package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
)

// ErrNoConfig reports that no candidate file could be opened and
// parsed.
var ErrNoConfig = errors.New("no loadable config file found")

// systemFallbackPath is the last candidate probed.
const systemFallbackPath = "/etc/dwm/dwm.conf"

// candidate is one entry of the resolution chain.
type candidate struct {
	path   string
	source Source
}

// xdgConfigHome returns $XDG_CONFIG_HOME, falling back to
// $HOME/.config. Empty when neither variable is set; path-dependent
// candidates are then skipped.
func xdgConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	return ""
}

// xdgDataHome returns $XDG_DATA_HOME, falling back to
// $HOME/.local/share.
func xdgDataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share")
	}
	return ""
}

// backupPath returns the last-known-good backup location, or "" when
// no data directory resolves.
func backupPath() string {
	dataHome := xdgDataHome()
	if dataHome == "" {
		return ""
	}
	return filepath.Join(dataHome, "dwm", "dwm_last.conf")
}

// candidates builds the resolution chain in probe order. Candidates
// whose directory could not be resolved carry an empty path and are
// skipped by resolve.
func candidates(customPath string) []candidate {
	chain := make([]candidate, 0, 5)

	if customPath != "" {
		chain = append(chain, candidate{path: customPath, source: SourceUser})
	}

	configHome := xdgConfigHome()
	for _, rel := range []string{"dwm.conf", filepath.Join("dwm", "dwm.conf")} {
		c := candidate{source: SourceUser}
		if configHome != "" {
			c.path = filepath.Join(configHome, rel)
		}
		chain = append(chain, c)
	}

	chain = append(chain, candidate{path: backupPath(), source: SourceBackup})
	chain = append(chain, candidate{path: systemFallbackPath, source: SourceFallback})

	return chain
}

// resolve probes the candidate chain in order and returns the first
// document that both opens and parses. Unopenable candidates and
// candidates with syntax errors are logged and skipped.
func resolve(customPath string) (*document.Document, Source, string, error) {
	for _, c := range candidates(customPath) {
		if c.path == "" {
			log.Warn("skipping config candidate with unresolvable directory", "source", c.source)
			continue
		}

		log.Debug("attempting to open config file", "path", c.path)

		doc, err := document.Open(c.path)
		if err != nil {
			var synErr *document.SyntaxError
			if errors.As(err, &synErr) {
				log.Warn("problem parsing config file",
					"path", c.path, "line", synErr.Line, "column", synErr.Column, "err", synErr.Msg)
			} else {
				log.Warn("unable to open config file", "path", c.path, "err", err)
			}
			continue
		}

		return doc, c.source, c.path, nil
	}

	return nil, SourceBuiltin, "", ErrNoConfig
}
