package bind

import "strings"

// Modifier is an OR of X11 modifier mask bits.
type Modifier uint32

// X11 modifier masks, as defined in <X11/X.h>.
const (
	ModNone    Modifier = 0
	ModShift   Modifier = 1 << 0
	ModLock    Modifier = 1 << 1
	ModControl Modifier = 1 << 2
	ModMod1    Modifier = 1 << 3
	ModMod2    Modifier = 1 << 4
	ModMod3    Modifier = 1 << 5
	ModMod4    Modifier = 1 << 6
	ModMod5    Modifier = 1 << 7

	// ModSuper and ModAlt are the conventional bindings of the logo and
	// Alt keys on stock X keyboard maps.
	ModSuper = ModMod4
	ModAlt   = ModMod1
)

// Has returns true if m contains the specified modifier bits.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified bits added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// modifierNameMap maps modifier names (lowercase) to mask bits.
var modifierNameMap = map[string]Modifier{
	"super":    ModSuper,
	"control":  ModControl,
	"ctrl":     ModControl,
	"shift":    ModShift,
	"alt":      ModAlt,
	"caps":     ModLock,
	"capslock": ModLock,
	"mod1":     ModMod1,
	"mod2":     ModMod2,
	"mod3":     ModMod3,
	"mod4":     ModMod4,
	"mod5":     ModMod5,
}

// modifierNameOrder fixes the order names appear in String output.
var modifierNameOrder = []struct {
	name string
	mask Modifier
}{
	{"super", ModSuper},
	{"ctrl", ModControl},
	{"shift", ModShift},
	{"alt", ModAlt},
	{"caps", ModLock},
	{"mod2", ModMod2},
	{"mod3", ModMod3},
	{"mod5", ModMod5},
}

// ModifierFromName returns the mask for a modifier name
// (case-insensitive). Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}

// String renders the mask as a "+"-joined chain of canonical names.
// Mod4 renders as super and Mod1 as alt.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	for _, entry := range modifierNameOrder {
		if m.Has(entry.mask) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "+")
}
