package config

import (
	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
)

// parseThemeFields reads the seven theme fields of one themes element.
// Each field is independently fallible and replaces the built-in value
// only on success.
func parseThemeFields(sec getter, theme *Theme) int {
	fields := []struct {
		path string
		dst  *string
	}{
		{"font", &theme.Font},
		{"normal-foreground", &theme.Normal.Foreground},
		{"normal-background", &theme.Normal.Background},
		{"normal-border", &theme.Normal.Border},
		{"selected-foreground", &theme.Selected.Foreground},
		{"selected-background", &theme.Selected.Background},
		{"selected-border", &theme.Selected.Border},
	}

	failed := 0
	for _, f := range fields {
		if err := lookupString(sec, f.path, f.dst, false); err != nil {
			failed++
		}
	}
	return failed
}

// parseTheme parses the "themes" list. Only the first element is
// consulted; extra themes are ignored with a warning.
func parseTheme(doc *document.Document, cfg *Config) int {
	list, ok := doc.List("themes")
	if !ok {
		log.Error("problem reading config value \"themes\": not found")
		log.Warn("default theme will be used")
		return 1
	}

	if list.Len() == 0 {
		log.Error("problem reading config value \"themes\": no themes provided")
		log.Warn("default theme will be used")
		return 1
	}

	log.Debug("themes detected", "count", list.Len())

	if list.Len() > 1 {
		log.Warn("more than one theme detected, only the first is used", "detected", list.Len())
	}

	sec, ok := list.Table(0)
	if !ok {
		log.Error("theme element is not a table, unable to parse")
		return 1
	}

	failed := parseThemeFields(sec, &cfg.Theme)
	log.Debug("theme parsed", "failed_fields", failed)
	return failed
}
