package config

import "github.com/charmbracelet/log"

// settingType selects the lookup dispatch for one settings-table entry.
type settingType uint8

const (
	typeBool settingType = iota
	typeUint
	typeFloat
)

// settingEntry describes one generic scalar setting.
type settingEntry struct {
	path     string
	typ      settingType
	optional bool
	min, max float64

	boolDst  *bool
	uintDst  *uint
	floatDst *float64
}

// settingsTable builds the static settings table for one aggregate.
func settingsTable(cfg *Config) []settingEntry {
	return []settingEntry{
		// General
		{path: "showbar", typ: typeBool, optional: true, boolDst: &cfg.ShowBar},
		{path: "topbar", typ: typeBool, optional: true, boolDst: &cfg.TopBar},
		{path: "resizehints", typ: typeBool, optional: true, boolDst: &cfg.ResizeHints},
		{path: "lockfullscreen", typ: typeBool, optional: true, boolDst: &cfg.LockFullscreen},
		{path: "borderpx", typ: typeUint, optional: true, min: 0, max: 9999, uintDst: &cfg.BorderPx},
		{path: "snap", typ: typeUint, optional: true, min: 0, max: 9999, uintDst: &cfg.Snap},
		{path: "nmaster", typ: typeUint, optional: true, min: 0, max: 99, uintDst: &cfg.NMaster},
		{path: "refreshrate", typ: typeUint, optional: true, min: 0, max: 999, uintDst: &cfg.RefreshRate},
		{path: "mfact", typ: typeFloat, optional: true, min: 0.05, max: 0.95, floatDst: &cfg.MFact},

		// Advanced
		{path: "max-keys", typ: typeUint, optional: true, min: 1, max: 10, uintDst: &cfg.MaxKeys},
	}
}

// parseSettings walks the settings table, reading each entry through
// the lookup adapter. Failures are counted per entry and never stop
// the walk.
func parseSettings(doc getter, cfg *Config) int {
	table := settingsTable(cfg)
	log.Debug("parsing generic settings", "available", len(table))

	failures := 0
	for _, entry := range table {
		var err error
		switch entry.typ {
		case typeBool:
			err = lookupBool(doc, entry.path, entry.boolDst, entry.optional)
		case typeUint:
			err = lookupUint(doc, entry.path, entry.uintDst, entry.optional, uint(entry.min), uint(entry.max))
		case typeFloat:
			err = lookupFloat(doc, entry.path, entry.floatDst, entry.optional, entry.min, entry.max)
		}
		if err != nil {
			failures++
		}
	}

	log.Debug("generic settings parsed", "failed", failures)
	return failures
}
