package config

import (
	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
	"github.com/godwm/godwm/internal/input/bind"
)

// parseTags parses the "tag-names" list. Parsed names overwrite the
// first N built-in tag slots; excess names are ignored with a warning
// and a short list keeps the built-in names for the remainder.
func parseTags(doc *document.Document, cfg *Config) int {
	list, ok := doc.List("tag-names")
	if !ok {
		log.Error("problem reading config value \"tag-names\": not found")
		return 1
	}

	count := list.Len()
	if count == 0 {
		log.Warn("no tag names detected, default tag names will be used")
		return 1
	}

	log.Debug("tags detected", "count", count)

	if count > bind.TagCount {
		log.Warn("too many tag names detected, ignoring the excess",
			"detected", count, "max", bind.TagCount)
	} else if count < bind.TagCount {
		log.Warn("fewer tag names than tag slots, built-in names fill the remainder",
			"detected", count, "slots", bind.TagCount)
	}

	failed := 0
	for i := 0; i < count && i < bind.TagCount; i++ {
		name, ok := list.String(i)
		if !ok {
			log.Error("problem reading tag element: value is not a string", "index", i+1)
			failed++
			continue
		}
		cfg.Tags[i] = name
	}

	log.Debug("tags parsed", "failed", failed)
	return failed
}
