package config

import (
	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
	"github.com/godwm/godwm/internal/input/bind"
)

// Source classifies where the active configuration came from. Exactly
// one source applies to an aggregate at any time; it gates whether a
// backup write is attempted after parsing.
type Source uint8

const (
	// SourceBuiltin means no file loaded; hardcoded defaults are live.
	SourceBuiltin Source = iota
	// SourceUser means the user's own config file is live.
	SourceUser
	// SourceBackup means the last-known-good backup is live.
	SourceBackup
	// SourceFallback means the system fallback config is live.
	SourceFallback
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceUser:
		return "user"
	case SourceBackup:
		return "backup"
	case SourceFallback:
		return "system-fallback"
	default:
		return "unknown"
	}
}

// IsFallback reports whether the source is not the user's own file.
// Fallback-sourced aggregates are never written back as backups.
func (s Source) IsFallback() bool {
	return s != SourceUser
}

// MatchAny is the rule-field sentinel meaning "match any value".
const MatchAny = ""

// Rule matches windows by class, instance, and title and describes
// their placement. Empty criteria fields are the MatchAny sentinel.
type Rule struct {
	Class    string
	Instance string
	Title    string

	// Tags is the tag bitmask the window is placed on; 0 means the
	// currently viewed tag.
	Tags uint

	// Monitor is the target monitor index; -1 means any.
	Monitor int

	// IsFloating places the window outside the tiled layout.
	IsFloating bool
}

// Scheme is one color scheme: the three color roles of a bar slot or
// window border.
type Scheme struct {
	Foreground string
	Background string
	Border     string
}

// Theme is the color theme plus the bar font descriptor.
type Theme struct {
	Font     string
	Normal   Scheme
	Selected Scheme
}

// Config is the aggregate all section parsers populate. It is
// constructed with hardcoded defaults and selectively overwritten
// section by section during a parse.
type Config struct {
	// Generic settings.
	ShowBar        bool
	TopBar         bool
	ResizeHints    bool
	LockFullscreen bool
	BorderPx       uint
	Snap           uint
	NMaster        uint
	RefreshRate    uint
	MFact          float64

	// MaxKeys bounds the modifier chain length in binding lines.
	MaxKeys uint

	Tags  [bind.TagCount]string
	Theme Theme

	Rules          []Rule
	KeyBindings    []bind.KeyBinding
	ButtonBindings []bind.ButtonBinding

	// Source and Path record the provenance of the aggregate.
	Source Source
	Path   string

	doc *document.Document
}

// Document returns the parsed document backing this aggregate, or nil
// when the aggregate is entirely built-in.
func (c *Config) Document() *document.Document { return c.doc }

// Load result codes beyond plain failure counts.
const (
	// LoadedNone signals that no candidate file could be loaded and
	// the aggregate holds only built-in defaults.
	LoadedNone = -1
	// LoadedClean signals a fully successful parse of a user config.
	LoadedClean = 0
)

// Load resolves and parses the configuration. customPath, usually from
// the -c flag, is probed first when non-empty.
//
// The returned code follows the parse contract: LoadedNone when no
// candidate file opened and parsed (built-ins are live and the process
// should continue), LoadedClean on a fully successful parse of a user
// config (a backup snapshot was written), or a positive count of
// section and field failures (the aggregate holds a mix of parsed and
// default values).
func Load(customPath string) (*Config, int) {
	cfg := Defaults()

	doc, source, path, err := resolve(customPath)
	if err != nil {
		log.Error("unable to load any configs, keeping hardcoded defaults", "err", err)
		return cfg, LoadedNone
	}

	log.Info("loaded config file", "path", path, "source", source)
	cfg.doc = doc
	cfg.Source = source
	cfg.Path = path

	// Generic settings come first so max-keys applies to the binding
	// sections.
	failures := parseSettings(doc, cfg)
	failures += parseKeyBinds(doc, cfg)
	failures += parseButtonBinds(doc, cfg)
	failures += parseRules(doc, cfg)
	failures += parseTags(doc, cfg)
	failures += parseTheme(doc, cfg)

	if failures == 0 && cfg.Source == SourceUser {
		if err := writeBackup(doc); err != nil {
			log.Error("problem backing up current config", "err", err)
		}
	} else {
		if cfg.Source.IsFallback() {
			log.Warn("not saving config as backup: working config is not the user's", "source", cfg.Source)
		}
		if failures != 0 {
			log.Warn("not saving config as backup: parse finished with errors", "failures", failures)
		}
	}

	return cfg, failures
}
