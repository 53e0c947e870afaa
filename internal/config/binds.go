package config

import (
	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
	"github.com/godwm/godwm/internal/input/bind"
)

// parseKeyBinds parses the "keybinds" string list. Bindings that fail
// the grammar are logged, counted, and excluded; the rest of the list
// still parses. A present-but-empty list falls back to the built-in
// table and counts as one failure; a missing list keeps the built-ins
// with a nudge to fix the config.
func parseKeyBinds(doc *document.Document, cfg *Config) int {
	list, ok := doc.List("keybinds")
	if !ok {
		log.Error("problem reading config value \"keybinds\": not found")
		log.Warn("default keybinds will be used; fix the config and reload")
		return 0
	}

	if list.Len() == 0 {
		log.Warn("no keybinds listed, keeping built-in keybinds")
		cfg.KeyBindings = DefaultKeyBindings()
		return 1
	}

	log.Debug("keybinds detected", "count", list.Len())

	failed := 0
	binds := make([]bind.KeyBinding, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		line, ok := list.String(i)
		if !ok {
			log.Error("keybind element is not a string, unable to parse", "index", i+1)
			failed++
			continue
		}

		kb, err := bind.ParseKey(line, int(cfg.MaxKeys))
		if err != nil {
			log.Error("invalid keybind", "err", err)
			failed++
			continue
		}
		binds = append(binds, kb)
	}

	log.Debug("keybinds parsed", "failed", failed)
	cfg.KeyBindings = binds
	return failed
}

// parseButtonBinds parses the "buttonbinds" string list with the same
// containment policy as parseKeyBinds.
func parseButtonBinds(doc *document.Document, cfg *Config) int {
	list, ok := doc.List("buttonbinds")
	if !ok {
		log.Error("problem reading config value \"buttonbinds\": not found")
		log.Warn("default buttonbinds will be used; fix the config and reload")
		return 0
	}

	if list.Len() == 0 {
		log.Warn("no buttonbinds listed, keeping built-in buttonbinds")
		cfg.ButtonBindings = DefaultButtonBindings()
		return 1
	}

	log.Debug("buttonbinds detected", "count", list.Len())

	failed := 0
	binds := make([]bind.ButtonBinding, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		line, ok := list.String(i)
		if !ok {
			log.Error("buttonbind element is not a string, unable to parse", "index", i+1)
			failed++
			continue
		}

		bb, err := bind.ParseButton(line, int(cfg.MaxKeys))
		if err != nil {
			log.Error("invalid buttonbind", "err", err)
			failed++
			continue
		}
		binds = append(binds, bb)
	}

	log.Debug("buttonbinds parsed", "failed", failed)
	cfg.ButtonBindings = binds
	return failed
}
