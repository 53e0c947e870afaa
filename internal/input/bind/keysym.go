package bind

import (
	"strings"
	"unicode"
)

// Keysym is an X11 key symbol code.
type Keysym uint32

// KeysymNone is the NoSymbol sentinel. Bindings that failed to parse
// carry it so dispatch never matches them.
const KeysymNone Keysym = 0

// unicodeKeysymOffset maps codepoints above latin-1 into the X11
// unicode keysym plane.
const unicodeKeysymOffset = 0x01000000

// namedKeysyms maps key symbol names (lowercase) to their X11 codes.
// Names follow keysymdef.h; lookup through KeysymFromName is
// case-insensitive.
var namedKeysyms = map[string]Keysym{
	// Modifier keys bound as triggers in their own right. The chain
	// parser only consults this table for the final token, so these
	// never shadow the modifier-mask names.
	"super":   0xffeb,
	"alt":     0xffe9,
	"ctrl":    0xffe3,
	"control": 0xffe3,
	"shift":   0xffe1,

	"space":     0x0020,
	"return":    0xff0d,
	"tab":       0xff09,
	"escape":    0xff1b,
	"backspace": 0xff08,
	"delete":    0xffff,
	"insert":    0xff63,
	"print":     0xff61,
	"menu":      0xff67,

	"home":      0xff50,
	"left":      0xff51,
	"up":        0xff52,
	"right":     0xff53,
	"down":      0xff54,
	"prior":     0xff55,
	"page_up":   0xff55,
	"next":      0xff56,
	"page_down": 0xff56,
	"end":       0xff57,

	"f1":  0xffbe,
	"f2":  0xffbf,
	"f3":  0xffc0,
	"f4":  0xffc1,
	"f5":  0xffc2,
	"f6":  0xffc3,
	"f7":  0xffc4,
	"f8":  0xffc5,
	"f9":  0xffc6,
	"f10": 0xffc7,
	"f11": 0xffc8,
	"f12": 0xffc9,

	"comma":        0x002c,
	"period":       0x002e,
	"slash":        0x002f,
	"backslash":    0x005c,
	"semicolon":    0x003b,
	"apostrophe":   0x0027,
	"bracketleft":  0x005b,
	"bracketright": 0x005d,
	"minus":        0x002d,
	"equal":        0x003d,
	"plus":         0x002b,
	"grave":        0x0060,

	"xf86audioraisevolume":  0x1008ff13,
	"xf86audiolowervolume":  0x1008ff11,
	"xf86audiomute":         0x1008ff12,
	"xf86audioplay":         0x1008ff14,
	"xf86audioprev":         0x1008ff16,
	"xf86audionext":         0x1008ff17,
	"xf86monbrightnessup":   0x1008ff02,
	"xf86monbrightnessdown": 0x1008ff03,
}

// keysymNames is the reverse of namedKeysyms with one canonical name per
// code, for re-serializing parsed bindings.
var keysymNames = func() map[Keysym]string {
	canonical := []string{
		"super", "alt", "ctrl", "shift",
		"space", "return", "tab", "escape", "backspace", "delete",
		"insert", "print", "menu", "home", "left", "up", "right",
		"down", "page_up", "page_down", "end",
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10",
		"f11", "f12",
		"comma", "period", "slash", "backslash", "semicolon",
		"apostrophe", "bracketleft", "bracketright", "minus", "equal",
		"plus", "grave",
		"xf86audioraisevolume", "xf86audiolowervolume", "xf86audiomute",
		"xf86audioplay", "xf86audioprev", "xf86audionext",
		"xf86monbrightnessup", "xf86monbrightnessdown",
	}
	names := make(map[Keysym]string, len(canonical))
	for _, name := range canonical {
		sym := namedKeysyms[name]
		if _, ok := names[sym]; !ok {
			names[sym] = name
		}
	}
	return names
}()

// KeysymFromName resolves a key symbol name to its code. Single runes
// resolve through the latin-1/unicode keysym rules; longer tokens must
// match a named symbol. Alphabetic symbols are lowercased, matching how
// the window manager normalizes grabbed keys. Returns KeysymNone when
// the name does not resolve.
func KeysymFromName(name string) Keysym {
	if name == "" {
		return KeysymNone
	}

	if sym, ok := namedKeysyms[strings.ToLower(name)]; ok {
		return sym
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return KeysymNone
	}

	r := unicode.ToLower(runes[0])
	if r < 0x20 {
		return KeysymNone
	}
	if r <= 0xff {
		// Latin-1 keysyms equal their codepoint.
		return Keysym(r)
	}
	return Keysym(r) + unicodeKeysymOffset
}

// Name returns the canonical spelling of the key symbol, or "" for
// KeysymNone and codes with no printable form.
func (k Keysym) Name() string {
	if k == KeysymNone {
		return ""
	}
	if name, ok := keysymNames[k]; ok {
		return name
	}
	if k >= unicodeKeysymOffset {
		return string(rune(k - unicodeKeysymOffset))
	}
	if k >= 0x21 && k <= 0xff {
		return string(rune(k))
	}
	return ""
}
