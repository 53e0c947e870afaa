package bind

import "strings"

// Click identifies the bar or window zone a button binding applies to.
// Button actions are dispatched based on where the pointer event landed.
type Click uint8

const (
	// ClickTagBar is the tag list in the bar.
	ClickTagBar Click = iota
	// ClickLayoutSymbol is the layout indicator in the bar.
	ClickLayoutSymbol
	// ClickStatusText is the status area in the bar.
	ClickStatusText
	// ClickWinTitle is the focused window title in the bar.
	ClickWinTitle
	// ClickClientWin is a managed client window.
	ClickClientWin
	// ClickRootWin is the root (desktop) window.
	ClickRootWin

	// ClickNone marks a button binding that failed to parse.
	ClickNone Click = 0xff
)

// clickNameMap maps click-zone names (lowercase) to zone identifiers.
var clickNameMap = map[string]Click{
	"tag":     ClickTagBar,
	"layout":  ClickLayoutSymbol,
	"status":  ClickStatusText,
	"title":   ClickWinTitle,
	"client":  ClickClientWin,
	"window":  ClickClientWin,
	"desktop": ClickRootWin,
}

// clickNames holds the canonical name per zone.
var clickNames = map[Click]string{
	ClickTagBar:       "tag",
	ClickLayoutSymbol: "layout",
	ClickStatusText:   "status",
	ClickWinTitle:     "title",
	ClickClientWin:    "window",
	ClickRootWin:      "desktop",
}

// ClickFromName resolves a click-zone name (case-insensitive).
// Returns ClickNone if the name is not recognized.
func ClickFromName(name string) Click {
	if c, ok := clickNameMap[strings.ToLower(name)]; ok {
		return c
	}
	return ClickNone
}

// Name returns the canonical spelling of the zone.
func (c Click) Name() string {
	if name, ok := clickNames[c]; ok {
		return name
	}
	return ""
}
