package bind

import "strings"

// TagCount is the fixed number of workspace tags.
const TagCount = 9

// TagMask covers all valid tag bits.
const TagMask = 1<<TagCount - 1

// ActionID identifies a dispatchable window-manager behavior.
type ActionID uint8

const (
	// ActionNone marks a binding whose action failed to resolve.
	ActionNone ActionID = iota
	ActionFocusMon
	ActionFocusStack
	ActionIncNMaster
	ActionKillClient
	ActionMoveMouse
	ActionQuit
	ActionResizeMouse
	ActionSetLayoutTiled
	ActionSetLayoutFloating
	ActionSetLayoutMonocle
	ActionSetLayoutToggle
	ActionSetMFact
	ActionSpawn
	ActionTag
	ActionTagMon
	ActionToggleBar
	ActionToggleFloating
	ActionToggleTag
	ActionToggleView
	ActionView
	ActionZoom
)

// ActionSpec describes one entry of the action alias table: the name
// users write in binding lines, the argument kind the action expects,
// and the inclusive range numeric arguments are clamped into.
type ActionSpec struct {
	Name string
	ID   ActionID
	Kind ArgKind
	Min  float64
	Max  float64
}

// actionSpecs is the action alias table. Lookup is case-insensitive.
var actionSpecs = []ActionSpec{
	{Name: "focusmon", ID: ActionFocusMon, Kind: ArgInt, Min: -99, Max: 99},
	{Name: "focusstack", ID: ActionFocusStack, Kind: ArgInt, Min: -99, Max: 99},
	{Name: "incnmaster", ID: ActionIncNMaster, Kind: ArgInt, Min: -99, Max: 99},
	{Name: "killclient", ID: ActionKillClient, Kind: ArgNone},
	{Name: "movemouse", ID: ActionMoveMouse, Kind: ArgNone},
	{Name: "quit", ID: ActionQuit, Kind: ArgNone},
	{Name: "resizemouse", ID: ActionResizeMouse, Kind: ArgNone},
	{Name: "setlayout-tiled", ID: ActionSetLayoutTiled, Kind: ArgNone},
	{Name: "setlayout-floating", ID: ActionSetLayoutFloating, Kind: ArgNone},
	{Name: "setlayout-monocle", ID: ActionSetLayoutMonocle, Kind: ArgNone},
	{Name: "setlayout-toggle", ID: ActionSetLayoutToggle, Kind: ArgNone},
	{Name: "setmfact", ID: ActionSetMFact, Kind: ArgFloat, Min: -0.95, Max: 1.95},
	{Name: "spawn", ID: ActionSpawn, Kind: ArgText},
	{Name: "tag", ID: ActionTag, Kind: ArgInt, Min: -1, Max: TagMask},
	{Name: "tagmon", ID: ActionTagMon, Kind: ArgInt, Min: -99, Max: 99},
	{Name: "togglebar", ID: ActionToggleBar, Kind: ArgNone},
	{Name: "togglefloating", ID: ActionToggleFloating, Kind: ArgNone},
	{Name: "toggletag", ID: ActionToggleTag, Kind: ArgInt, Min: -1, Max: TagMask},
	{Name: "toggleview", ID: ActionToggleView, Kind: ArgInt, Min: -1, Max: TagMask},
	{Name: "view", ID: ActionView, Kind: ArgInt, Min: -1, Max: TagMask},
	{Name: "zoom", ID: ActionZoom, Kind: ArgNone},
}

// actionsByID indexes the table for re-serialization.
var actionsByID = func() map[ActionID]*ActionSpec {
	byID := make(map[ActionID]*ActionSpec, len(actionSpecs))
	for i := range actionSpecs {
		byID[actionSpecs[i].ID] = &actionSpecs[i]
	}
	return byID
}()

// ActionFromName resolves an action name (case-insensitive).
// Returns nil if no entry matches.
func ActionFromName(name string) *ActionSpec {
	for i := range actionSpecs {
		if strings.EqualFold(name, actionSpecs[i].Name) {
			return &actionSpecs[i]
		}
	}
	return nil
}

// Spec returns the table entry for an action, or nil for ActionNone and
// unknown IDs.
func (id ActionID) Spec() *ActionSpec {
	return actionsByID[id]
}

// String returns the action's table name.
func (id ActionID) String() string {
	if spec := actionsByID[id]; spec != nil {
		return spec.Name
	}
	return "none"
}

// Actions returns the full alias table, for documentation and
// completion surfaces.
func Actions() []ActionSpec {
	out := make([]ActionSpec, len(actionSpecs))
	copy(out, actionSpecs)
	return out
}
