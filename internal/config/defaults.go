package config

import (
	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/input/bind"
)

// Built-in defaults, matching dwm's stock config.def.h values.
const (
	defaultShowBar        = true
	defaultTopBar         = true
	defaultResizeHints    = true
	defaultLockFullscreen = true
	defaultBorderPx       = 1
	defaultSnap           = 32
	defaultNMaster        = 1
	defaultRefreshRate    = 120
	defaultMFact          = 0.55

	defaultFont = "monospace:size=10"
)

var defaultTags = [bind.TagCount]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

var defaultTheme = Theme{
	Font:     defaultFont,
	Normal:   Scheme{Foreground: "#bbbbbb", Background: "#222222", Border: "#444444"},
	Selected: Scheme{Foreground: "#eeeeee", Background: "#005577", Border: "#005577"},
}

// defaultKeyBindSpecs holds the built-in key bindings as grammar lines.
// They parse through the same path as user bindings, so defaults and
// parsed configs share one owned representation.
var defaultKeyBindSpecs = []string{
	"alt+p, spawn, dmenu_run",
	"alt+shift+return, spawn, st",
	"alt+b, togglebar",
	"alt+j, focusstack, 1",
	"alt+k, focusstack, -1",
	"alt+i, incnmaster, 1",
	"alt+d, incnmaster, -1",
	"alt+h, setmfact, -0.05",
	"alt+l, setmfact, 0.05",
	"alt+return, zoom",
	"alt+tab, view, 0",
	"alt+shift+c, killclient",
	"alt+t, setlayout-tiled",
	"alt+f, setlayout-floating",
	"alt+m, setlayout-monocle",
	"alt+space, setlayout-toggle",
	"alt+shift+space, togglefloating",
	"alt+0, view, -1",
	"alt+shift+0, tag, -1",
	"alt+comma, focusmon, -1",
	"alt+period, focusmon, 1",
	"alt+shift+comma, tagmon, -1",
	"alt+shift+period, tagmon, 1",
	"alt+shift+q, quit",
	"alt+1, view, 1",
	"alt+2, view, 2",
	"alt+3, view, 4",
	"alt+4, view, 8",
	"alt+5, view, 16",
	"alt+6, view, 32",
	"alt+7, view, 64",
	"alt+8, view, 128",
	"alt+9, view, 256",
	"alt+shift+1, tag, 1",
	"alt+shift+2, tag, 2",
	"alt+shift+3, tag, 4",
	"alt+shift+4, tag, 8",
	"alt+shift+5, tag, 16",
	"alt+shift+6, tag, 32",
	"alt+shift+7, tag, 64",
	"alt+shift+8, tag, 128",
	"alt+shift+9, tag, 256",
}

// defaultButtonBindSpecs holds the built-in button bindings.
var defaultButtonBindSpecs = []string{
	"leftclick, layout, setlayout-toggle",
	"rightclick, layout, setlayout-monocle",
	"middleclick, title, zoom",
	"middleclick, status, spawn, st",
	"alt+leftclick, window, movemouse",
	"alt+middleclick, window, togglefloating",
	"alt+rightclick, window, resizemouse",
	"leftclick, tag, view, 0",
	"rightclick, tag, toggleview, 0",
	"alt+leftclick, tag, tag, 0",
	"alt+rightclick, tag, toggletag, 0",
}

// Defaults constructs an aggregate populated entirely from built-in
// values, including the built-in binding tables.
func Defaults() *Config {
	cfg := &Config{
		ShowBar:        defaultShowBar,
		TopBar:         defaultTopBar,
		ResizeHints:    defaultResizeHints,
		LockFullscreen: defaultLockFullscreen,
		BorderPx:       defaultBorderPx,
		Snap:           defaultSnap,
		NMaster:        defaultNMaster,
		RefreshRate:    defaultRefreshRate,
		MFact:          defaultMFact,
		MaxKeys:        bind.DefaultMaxModifiers,
		Tags:           defaultTags,
		Theme:          defaultTheme,
		Source:         SourceBuiltin,
	}
	cfg.KeyBindings = DefaultKeyBindings()
	cfg.ButtonBindings = DefaultButtonBindings()
	return cfg
}

// DefaultKeyBindings parses the built-in key binding table.
func DefaultKeyBindings() []bind.KeyBinding {
	binds := make([]bind.KeyBinding, 0, len(defaultKeyBindSpecs))
	for _, spec := range defaultKeyBindSpecs {
		kb, err := bind.ParseKey(spec, bind.DefaultMaxModifiers)
		if err != nil {
			// Unreachable unless the table itself is broken.
			log.Error("invalid built-in keybind", "spec", spec, "err", err)
			continue
		}
		binds = append(binds, kb)
	}
	return binds
}

// DefaultButtonBindings parses the built-in button binding table.
func DefaultButtonBindings() []bind.ButtonBinding {
	binds := make([]bind.ButtonBinding, 0, len(defaultButtonBindSpecs))
	for _, spec := range defaultButtonBindSpecs {
		bb, err := bind.ParseButton(spec, bind.DefaultMaxModifiers)
		if err != nil {
			log.Error("invalid built-in buttonbind", "spec", spec, "err", err)
			continue
		}
		binds = append(binds, bb)
	}
	return binds
}
