package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/godwm/godwm/internal/input/bind"
)

// fullConfig exercises every section. Loading it must succeed without
// a single failure.
const fullConfig = `
showbar = false
topbar = false
resizehints = false
lockfullscreen = false
borderpx = 3
snap = 16
nmaster = 2
refreshrate = 60
mfact = 0.65
max-keys = 5

keybinds = [
  "super+shift+q, killclient",
  "super+p, spawn, dmenu_run",
  "super+1, view, 1",
]

buttonbinds = [
  "super+leftclick, window, movemouse",
  "leftclick, tag, view, 0",
]

tag-names = ["web", "code", "chat", "mail", "media", "misc", "seven", "eight", "nine"]

[[rules]]
class = "Gimp"
instance = "null"
title = "null"
tag-mask = 0
monitor = -1
floating = true

[[themes]]
font = "monospace:size=12"
normal-foreground = "#cccccc"
normal-background = "#111111"
normal-border = "#333333"
selected-foreground = "#ffffff"
selected-background = "#224488"
selected-border = "#224488"
`

// sandboxEnv points every XDG location at a fresh temp tree so tests
// never touch the real home directory.
func sandboxEnv(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	home := t.TempDir()
	configHome = filepath.Join(home, ".config")
	dataHome = filepath.Join(home, ".local", "share")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	return configHome, dataHome
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q) error: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error: %v", path, err)
	}
}

// skipIfSystemConfig skips tests whose expectations require an empty
// resolution chain when the host actually has a system fallback file.
func skipIfSystemConfig(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(systemFallbackPath); err == nil {
		t.Skipf("host has %s, skipping", systemFallbackPath)
	}
}

func TestLoadFullConfig(t *testing.T) {
	configHome, dataHome := sandboxEnv(t)
	path := filepath.Join(configHome, "dwm.conf")
	writeConfig(t, path, fullConfig)

	cfg, code := Load("")
	if code != LoadedClean {
		t.Fatalf("Load() code = %d, want LoadedClean", code)
	}
	if cfg.Source != SourceUser {
		t.Errorf("Source = %v, want SourceUser", cfg.Source)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}

	if cfg.ShowBar || cfg.TopBar || cfg.ResizeHints || cfg.LockFullscreen {
		t.Error("boolean settings not overridden from file")
	}
	if cfg.BorderPx != 3 || cfg.Snap != 16 || cfg.NMaster != 2 || cfg.RefreshRate != 60 {
		t.Errorf("numeric settings = %d/%d/%d/%d, want 3/16/2/60",
			cfg.BorderPx, cfg.Snap, cfg.NMaster, cfg.RefreshRate)
	}
	if cfg.MFact != 0.65 {
		t.Errorf("MFact = %v, want 0.65", cfg.MFact)
	}
	if cfg.MaxKeys != 5 {
		t.Errorf("MaxKeys = %d, want 5", cfg.MaxKeys)
	}

	if len(cfg.KeyBindings) != 3 {
		t.Errorf("len(KeyBindings) = %d, want 3", len(cfg.KeyBindings))
	}
	if len(cfg.ButtonBindings) != 2 {
		t.Errorf("len(ButtonBindings) = %d, want 2", len(cfg.ButtonBindings))
	}

	if len(cfg.Rules) != 1 {
		t.Fatalf("len(Rules) = %d, want 1", len(cfg.Rules))
	}
	rule := cfg.Rules[0]
	if rule.Class != "Gimp" || rule.Instance != MatchAny || rule.Title != MatchAny {
		t.Errorf("rule criteria = %q/%q/%q, want Gimp/any/any", rule.Class, rule.Instance, rule.Title)
	}
	if rule.Monitor != -1 || !rule.IsFloating || rule.Tags != 0 {
		t.Errorf("rule placement = monitor %d floating %v tags %d", rule.Monitor, rule.IsFloating, rule.Tags)
	}

	if cfg.Tags[0] != "web" || cfg.Tags[8] != "nine" {
		t.Errorf("Tags = %v, names not applied", cfg.Tags)
	}
	if cfg.Theme.Font != "monospace:size=12" || cfg.Theme.Selected.Background != "#224488" {
		t.Errorf("Theme = %+v, not applied", cfg.Theme)
	}

	// A clean parse of a user config snapshots it as last known good.
	backup := filepath.Join(dataHome, "dwm", "dwm_last.conf")
	if _, err := os.Stat(backup); err != nil {
		t.Errorf("backup not written to %q: %v", backup, err)
	}
}

func TestLoadNoCandidates(t *testing.T) {
	skipIfSystemConfig(t)
	_, dataHome := sandboxEnv(t)

	cfg, code := Load("")
	if code != LoadedNone {
		t.Fatalf("Load() code = %d, want LoadedNone", code)
	}
	if cfg.Source != SourceBuiltin || cfg.Path != "" {
		t.Errorf("provenance = %v %q, want SourceBuiltin with empty path", cfg.Source, cfg.Path)
	}

	def := Defaults()
	if cfg.ShowBar != def.ShowBar || cfg.MFact != def.MFact || cfg.Tags != def.Tags {
		t.Error("aggregate without a config file differs from built-in defaults")
	}
	if len(cfg.KeyBindings) != len(def.KeyBindings) {
		t.Errorf("len(KeyBindings) = %d, want %d built-ins", len(cfg.KeyBindings), len(def.KeyBindings))
	}

	if _, err := os.Stat(filepath.Join(dataHome, "dwm", "dwm_last.conf")); err == nil {
		t.Error("backup written with no loaded config")
	}
}

func TestLoadCustomPathWins(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), "borderpx = 1\n")

	custom := filepath.Join(t.TempDir(), "custom.conf")
	writeConfig(t, custom, fullConfig)

	cfg, _ := Load(custom)
	if cfg.Path != custom {
		t.Errorf("Path = %q, want custom path %q", cfg.Path, custom)
	}
	if cfg.BorderPx != 3 {
		t.Errorf("BorderPx = %d, custom file did not win", cfg.BorderPx)
	}
}

func TestLoadSkipsBrokenCandidates(t *testing.T) {
	configHome, _ := sandboxEnv(t)

	// First candidate is malformed TOML, second parses.
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), "borderpx = [\n")
	nested := filepath.Join(configHome, "dwm", "dwm.conf")
	writeConfig(t, nested, fullConfig)

	cfg, code := Load("")
	if code != LoadedClean {
		t.Fatalf("Load() code = %d, want LoadedClean", code)
	}
	if cfg.Path != nested {
		t.Errorf("Path = %q, want nested candidate %q", cfg.Path, nested)
	}
	if cfg.Source != SourceUser {
		t.Errorf("Source = %v, want SourceUser", cfg.Source)
	}
}

func TestLoadFallsBackToBackup(t *testing.T) {
	configHome, dataHome := sandboxEnv(t)

	writeConfig(t, filepath.Join(configHome, "dwm.conf"), "not toml [\n")
	writeConfig(t, filepath.Join(configHome, "dwm", "dwm.conf"), "also ][ not toml\n")
	backup := filepath.Join(dataHome, "dwm", "dwm_last.conf")
	writeConfig(t, backup, fullConfig)

	before, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	cfg, code := Load("")
	if code != LoadedClean {
		t.Fatalf("Load() code = %d, want LoadedClean", code)
	}
	if cfg.Source != SourceBackup {
		t.Errorf("Source = %v, want SourceBackup", cfg.Source)
	}
	if cfg.Path != backup {
		t.Errorf("Path = %q, want %q", cfg.Path, backup)
	}

	// A fallback load never rewrites the snapshot.
	after, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(before) != string(after) {
		t.Error("backup rewritten while running on the backup itself")
	}
}

func TestLoadWithFailuresSkipsBackup(t *testing.T) {
	configHome, dataHome := sandboxEnv(t)

	// Valid TOML missing the rules, tag-names, and themes sections:
	// three failures, and keybinds/buttonbinds absence costs nothing.
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), "showbar = false\n")

	cfg, code := Load("")
	if code != 3 {
		t.Errorf("Load() code = %d, want 3", code)
	}
	if cfg.ShowBar {
		t.Error("showbar override lost despite section failures elsewhere")
	}
	if len(cfg.KeyBindings) == 0 {
		t.Error("built-in keybinds dropped when keybinds list is absent")
	}

	if _, err := os.Stat(filepath.Join(dataHome, "dwm", "dwm_last.conf")); err == nil {
		t.Error("backup written for a parse with failures")
	}
}

func TestLoadEmptyBindListsFallBack(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"),
		"keybinds = []\nbuttonbinds = []\n")

	cfg, code := Load("")
	// Two empty bind lists plus three missing sections.
	if code != 5 {
		t.Errorf("Load() code = %d, want 5", code)
	}
	if len(cfg.KeyBindings) != len(DefaultKeyBindings()) {
		t.Errorf("len(KeyBindings) = %d, want built-in table", len(cfg.KeyBindings))
	}
	if len(cfg.ButtonBindings) != len(DefaultButtonBindings()) {
		t.Errorf("len(ButtonBindings) = %d, want built-in table", len(cfg.ButtonBindings))
	}
}

func TestLoadBadBindLinesAreContained(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), `
keybinds = [
  "super+shift+q, killclient",
  "hyper+q, quit",
  "super+p, spawn, dmenu_run",
]
`)

	cfg, code := Load("")
	// One bad keybind plus the three missing sections.
	if code != 4 {
		t.Errorf("Load() code = %d, want 4", code)
	}
	if len(cfg.KeyBindings) != 2 {
		t.Fatalf("len(KeyBindings) = %d, want the 2 valid lines", len(cfg.KeyBindings))
	}
	for _, kb := range cfg.KeyBindings {
		if !kb.Valid() {
			t.Errorf("invalid binding %+v kept in table", kb)
		}
	}
}

func TestLoadSettingsClamping(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), `
borderpx = 99999
mfact = 2.0
nmaster = 500
max-keys = 0
`)

	cfg, _ := Load("")
	if cfg.BorderPx != 9999 {
		t.Errorf("BorderPx = %d, want clamped 9999", cfg.BorderPx)
	}
	if cfg.MFact != 0.95 {
		t.Errorf("MFact = %v, want clamped 0.95", cfg.MFact)
	}
	if cfg.NMaster != 99 {
		t.Errorf("NMaster = %d, want clamped 99", cfg.NMaster)
	}
	if cfg.MaxKeys != 1 {
		t.Errorf("MaxKeys = %d, want clamped 1", cfg.MaxKeys)
	}
}

func TestLoadWrongTypeSettingKeepsDefault(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), `showbar = "yes"`+"\n")

	cfg, code := Load("")
	if !cfg.ShowBar {
		t.Error("ShowBar lost its default after a type mismatch")
	}
	// Optional settings skip type mismatches without counting them,
	// so only the three missing sections remain.
	if code != 3 {
		t.Errorf("Load() code = %d, want 3", code)
	}
}

func TestLoadMaxKeysAppliesToBinds(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), `
max-keys = 2
keybinds = [
  "super+shift+q, killclient",
  "super+q, quit",
]
`)

	cfg, _ := Load("")
	// Three chain tokens exceed the configured bound of two.
	if len(cfg.KeyBindings) != 1 {
		t.Fatalf("len(KeyBindings) = %d, want 1", len(cfg.KeyBindings))
	}
	if cfg.KeyBindings[0].Action != bind.ActionQuit {
		t.Errorf("surviving binding action = %v, want quit", cfg.KeyBindings[0].Action)
	}
}

func TestLoadShortTagListKeepsBuiltinsForRest(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"),
		`tag-names = ["web", "code"]`+"\n")

	cfg, _ := Load("")
	if cfg.Tags[0] != "web" || cfg.Tags[1] != "code" {
		t.Errorf("Tags[:2] = %v, names not applied", cfg.Tags[:2])
	}
	if cfg.Tags[2] != "3" || cfg.Tags[8] != "9" {
		t.Errorf("Tags[2:] = %v, built-in names not kept", cfg.Tags[2:])
	}
}

func TestLoadRuleFieldFailuresAreIndependent(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), `
[[rules]]
class = "Gimp"
instance = "null"
title = "null"
tag-mask = 0
monitor = "primary"
floating = true
`)

	cfg, _ := Load("")
	if len(cfg.Rules) != 1 {
		t.Fatalf("len(Rules) = %d, want 1", len(cfg.Rules))
	}
	rule := cfg.Rules[0]
	if rule.Class != "Gimp" || !rule.IsFloating {
		t.Errorf("rule = %+v, good fields lost to the bad monitor field", rule)
	}
	if rule.Monitor != 0 {
		t.Errorf("Monitor = %d, want zero value after field failure", rule.Monitor)
	}
}

func TestLoadThemeFirstWins(t *testing.T) {
	configHome, _ := sandboxEnv(t)
	writeConfig(t, filepath.Join(configHome, "dwm.conf"), `
[[themes]]
font = "Iosevka:size=11"
normal-foreground = "#cccccc"
normal-background = "#111111"
normal-border = "#333333"
selected-foreground = "#ffffff"
selected-background = "#224488"
selected-border = "#224488"

[[themes]]
font = "ignored"
normal-foreground = "#000000"
normal-background = "#000000"
normal-border = "#000000"
selected-foreground = "#000000"
selected-background = "#000000"
selected-border = "#000000"
`)

	cfg, _ := Load("")
	if cfg.Theme.Font != "Iosevka:size=11" {
		t.Errorf("Theme.Font = %q, second theme overrode the first", cfg.Theme.Font)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if !cfg.ShowBar || !cfg.TopBar || !cfg.ResizeHints || !cfg.LockFullscreen {
		t.Error("boolean defaults flipped")
	}
	if cfg.MFact != 0.55 || cfg.NMaster != 1 || cfg.Snap != 32 || cfg.BorderPx != 1 {
		t.Errorf("numeric defaults = mfact %v nmaster %d snap %d borderpx %d",
			cfg.MFact, cfg.NMaster, cfg.Snap, cfg.BorderPx)
	}
	if cfg.Source != SourceBuiltin {
		t.Errorf("Source = %v, want SourceBuiltin", cfg.Source)
	}
	for i, name := range cfg.Tags {
		if name == "" {
			t.Errorf("Tags[%d] is empty", i)
		}
	}
	if cfg.Theme.Normal.Foreground == "" || cfg.Theme.Selected.Background == "" {
		t.Error("theme defaults incomplete")
	}
}

func TestDefaultBindingTablesParse(t *testing.T) {
	keys := DefaultKeyBindings()
	if len(keys) != len(defaultKeyBindSpecs) {
		t.Errorf("built-in keybinds: %d of %d parsed", len(keys), len(defaultKeyBindSpecs))
	}
	for _, kb := range keys {
		if !kb.Valid() {
			t.Errorf("built-in keybind %+v invalid", kb)
		}
	}

	buttons := DefaultButtonBindings()
	if len(buttons) != len(defaultButtonBindSpecs) {
		t.Errorf("built-in buttonbinds: %d of %d parsed", len(buttons), len(defaultButtonBindSpecs))
	}
	for _, bb := range buttons {
		if !bb.Valid() {
			t.Errorf("built-in buttonbind %+v invalid", bb)
		}
	}
}
