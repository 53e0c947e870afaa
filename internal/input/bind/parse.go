package bind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Grammar errors. All of them wrap ErrGrammar so callers can classify a
// failed binding with a single errors.Is check.
var (
	ErrGrammar          = errors.New("invalid binding")
	ErrMissingField     = fmt.Errorf("%w: missing field", ErrGrammar)
	ErrEmptyField       = fmt.Errorf("%w: empty field", ErrGrammar)
	ErrTooManyModifiers = fmt.Errorf("%w: too many chained modifiers", ErrGrammar)
	ErrUnknownModifier  = fmt.Errorf("%w: unknown modifier", ErrGrammar)
	ErrUnknownKeysym    = fmt.Errorf("%w: unknown key symbol", ErrGrammar)
	ErrUnknownButton    = fmt.Errorf("%w: unknown button", ErrGrammar)
	ErrUnknownClick     = fmt.Errorf("%w: unknown click zone", ErrGrammar)
	ErrUnknownAction    = fmt.Errorf("%w: unknown action", ErrGrammar)
	ErrBadArgument      = fmt.Errorf("%w: bad argument", ErrGrammar)
)

// DefaultMaxModifiers bounds the modifier chain when no override is
// configured. User configs may raise it up to 10 via the max-keys
// setting.
const DefaultMaxModifiers = 4

// KeyBinding associates a modifier chain and key symbol with an action.
type KeyBinding struct {
	Mods   Modifier
	Key    Keysym
	Action ActionID
	Arg    Arg
}

// Valid reports whether the binding parsed successfully.
func (b KeyBinding) Valid() bool { return b.Key != KeysymNone }

// Spec re-renders the binding as a grammar line. Parsing the result
// yields an equivalent binding.
func (b KeyBinding) Spec() string {
	var sb strings.Builder
	if mods := b.Mods.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteString("+")
	}
	sb.WriteString(b.Key.Name())
	sb.WriteString(", ")
	sb.WriteString(b.Action.String())
	if b.Arg.Kind != ArgNone {
		sb.WriteString(", ")
		sb.WriteString(b.Arg.String())
	}
	return sb.String()
}

// ButtonBinding associates a modifier chain, click zone, and pointer
// button with an action.
type ButtonBinding struct {
	Mods   Modifier
	Click  Click
	Button Button
	Action ActionID
	Arg    Arg
}

// Valid reports whether the binding parsed successfully.
func (b ButtonBinding) Valid() bool { return b.Button != ButtonNone }

// Spec re-renders the binding as a grammar line.
func (b ButtonBinding) Spec() string {
	var sb strings.Builder
	if mods := b.Mods.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteString("+")
	}
	sb.WriteString(b.Button.Name())
	sb.WriteString(", ")
	sb.WriteString(b.Click.Name())
	sb.WriteString(", ")
	sb.WriteString(b.Action.String())
	if b.Arg.Kind != ArgNone {
		sb.WriteString(", ")
		sb.WriteString(b.Arg.String())
	}
	return sb.String()
}

// ParseKey parses a key binding line:
//
//	modifier_chain "," action ["," argument]
//
// maxMods bounds the "+"-joined chain (modifiers plus trigger).
// On failure the returned binding carries KeysymNone.
func ParseKey(line string, maxMods int) (KeyBinding, error) {
	var kb KeyBinding

	fields := splitFields(line, 3)
	if len(fields) < 2 {
		return kb, fmt.Errorf("%w in keybind %q (expected \"mods+key, action[, arg]\")", ErrMissingField, line)
	}
	if fields[0] == "" || fields[1] == "" {
		return kb, fmt.Errorf("%w in keybind %q", ErrEmptyField, line)
	}

	tokens, err := splitChain(fields[0], maxMods)
	if err != nil {
		return kb, fmt.Errorf("%w in keybind %q", err, line)
	}

	mods, err := resolveModifiers(tokens[:len(tokens)-1])
	if err != nil {
		return kb, fmt.Errorf("%w in keybind %q", err, line)
	}

	trigger := tokens[len(tokens)-1]
	key := KeysymFromName(trigger)
	if key == KeysymNone {
		return kb, fmt.Errorf("%w %q in keybind %q", ErrUnknownKeysym, trigger, line)
	}

	spec := ActionFromName(fields[1])
	if spec == nil {
		return kb, fmt.Errorf("%w %q in keybind %q", ErrUnknownAction, fields[1], line)
	}

	arg, err := parseArgument(fields, 2, spec)
	if err != nil {
		return kb, fmt.Errorf("%w in keybind %q", err, line)
	}

	kb.Mods = mods
	kb.Key = key
	kb.Action = spec.ID
	kb.Arg = arg
	return kb, nil
}

// ParseButton parses a button binding line:
//
//	modifier_chain "," click "," action ["," argument]
//
// On failure the returned binding carries ButtonNone.
func ParseButton(line string, maxMods int) (ButtonBinding, error) {
	var bb ButtonBinding

	fields := splitFields(line, 4)
	if len(fields) < 3 {
		return bb, fmt.Errorf("%w in buttonbind %q (expected \"mods+button, click, action[, arg]\")", ErrMissingField, line)
	}
	if fields[0] == "" || fields[1] == "" || fields[2] == "" {
		return bb, fmt.Errorf("%w in buttonbind %q", ErrEmptyField, line)
	}

	tokens, err := splitChain(fields[0], maxMods)
	if err != nil {
		return bb, fmt.Errorf("%w in buttonbind %q", err, line)
	}

	mods, err := resolveModifiers(tokens[:len(tokens)-1])
	if err != nil {
		return bb, fmt.Errorf("%w in buttonbind %q", err, line)
	}

	trigger := tokens[len(tokens)-1]
	button := ButtonFromName(trigger)
	if button == ButtonNone {
		return bb, fmt.Errorf("%w %q in buttonbind %q", ErrUnknownButton, trigger, line)
	}

	click := ClickFromName(fields[1])
	if click == ClickNone {
		return bb, fmt.Errorf("%w %q in buttonbind %q", ErrUnknownClick, fields[1], line)
	}

	spec := ActionFromName(fields[2])
	if spec == nil {
		return bb, fmt.Errorf("%w %q in buttonbind %q", ErrUnknownAction, fields[2], line)
	}

	arg, err := parseArgument(fields, 3, spec)
	if err != nil {
		return bb, fmt.Errorf("%w in buttonbind %q", err, line)
	}

	bb.Mods = mods
	bb.Click = click
	bb.Button = button
	bb.Action = spec.ID
	bb.Arg = arg
	return bb, nil
}

// splitFields splits a binding line on commas into at most max fields
// and trims each. The final field keeps any embedded commas, so spawn
// command lines survive intact.
func splitFields(line string, max int) []string {
	parts := strings.SplitN(line, ",", max)
	fields := parts[:0]
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}
	return fields
}

// splitChain splits the modifier chain field on "+" into 1..maxMods
// trimmed tokens. Empty tokens (doubled or trailing separators) are
// dropped.
func splitChain(field string, maxMods int) ([]string, error) {
	if maxMods < 1 {
		maxMods = DefaultMaxModifiers
	}

	var tokens []string
	for _, raw := range strings.Split(field, "+") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if len(tokens) == maxMods {
			return nil, fmt.Errorf("%w (max %d)", ErrTooManyModifiers, maxMods)
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		return nil, ErrEmptyField
	}
	return tokens, nil
}

// resolveModifiers ORs the mask bits of each modifier token. The first
// unresolvable token fails the whole chain.
func resolveModifiers(tokens []string) (Modifier, error) {
	var mods Modifier
	for _, token := range tokens {
		mod := ModifierFromName(token)
		if mod == ModNone {
			return ModNone, fmt.Errorf("%w %q", ErrUnknownModifier, token)
		}
		mods = mods.With(mod)
	}
	return mods, nil
}

// parseArgument lexes fields[idx] according to the action's declared
// kind, clamping numeric values into the action's range. Actions with
// kind none ignore any trailing field.
func parseArgument(fields []string, idx int, spec *ActionSpec) (Arg, error) {
	if spec.Kind == ArgNone {
		return NoArg, nil
	}

	if len(fields) <= idx || fields[idx] == "" {
		return NoArg, fmt.Errorf("%w: action %q requires a %s argument", ErrMissingField, spec.Name, spec.Kind)
	}
	text := fields[idx]

	switch spec.Kind {
	case ArgInt:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return NoArg, fmt.Errorf("%w: %q is not a valid int", ErrBadArgument, text)
		}
		return IntArg(clampRange(spec.Name, v, int64(spec.Min), int64(spec.Max))), nil

	case ArgUint:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return NoArg, fmt.Errorf("%w: %q is not a valid uint", ErrBadArgument, text)
		}
		return UintArg(clampRange(spec.Name, v, uint64(spec.Min), uint64(spec.Max))), nil

	case ArgFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return NoArg, fmt.Errorf("%w: %q is not a valid float", ErrBadArgument, text)
		}
		return FloatArg(clampRange(spec.Name, v, spec.Min, spec.Max)), nil

	case ArgText:
		return TextArg(text), nil

	default:
		return NoArg, fmt.Errorf("%w: unhandled argument kind %d", ErrBadArgument, spec.Kind)
	}
}

// clampRange constrains v into [min, max], warning only when the value
// actually changes.
func clampRange[T int64 | uint64 | float64](name string, v, min, max T) T {
	switch {
	case v < min:
		log.Warn("clamped binding argument", "action", name, "value", v, "min", min)
		return min
	case v > max:
		log.Warn("clamped binding argument", "action", name, "value", v, "max", max)
		return max
	default:
		return v
	}
}
