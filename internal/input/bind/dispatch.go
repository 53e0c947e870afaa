package bind

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Dispatch errors.
var (
	ErrNoHandler = errors.New("no handler registered for action")
)

// Layout is a window-arrangement record. The setlayout actions resolve
// to one of these by identity rather than by argument, so the window
// manager can compare pointers when toggling.
type Layout struct {
	Symbol string
	Name   string
}

// The three built-in layouts, in the window manager's layout table
// order.
var (
	LayoutTiled    = &Layout{Symbol: "[]=", Name: "tiled"}
	LayoutFloating = &Layout{Symbol: "><>", Name: "floating"}
	LayoutMonocle  = &Layout{Symbol: "[M]", Name: "monocle"}
)

// Handler executes one action. Arg carries the binding's parsed
// payload.
type Handler func(arg Arg)

// LayoutHandler executes a layout switch for a specific layout record.
// A nil layout means toggle between the two most recent layouts.
type LayoutHandler func(layout *Layout)

// SpawnHandler launches a command already reboxed into argv form.
type SpawnHandler func(argv []string)

// Dispatcher maps parsed bindings onto the window manager's action
// implementations. The window manager registers its handlers once at
// startup; Invoke is then called from the input event loop.
type Dispatcher struct {
	handlers map[ActionID]Handler
	layout   LayoutHandler
	spawn    SpawnHandler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[ActionID]Handler)}
}

// Register installs the handler for one action. The setlayout and
// spawn actions use RegisterLayout and RegisterSpawn instead.
func (d *Dispatcher) Register(id ActionID, h Handler) {
	d.handlers[id] = h
}

// RegisterLayout installs the handler shared by the four setlayout
// actions.
func (d *Dispatcher) RegisterLayout(h LayoutHandler) {
	d.layout = h
}

// RegisterSpawn installs the process-launch handler.
func (d *Dispatcher) RegisterSpawn(h SpawnHandler) {
	d.spawn = h
}

// SpawnArgv reboxes a spawn command line into the argument vector the
// launcher executes.
func SpawnArgv(command string) []string {
	return []string{"/bin/sh", "-c", command}
}

// Invoke executes the action of a parsed binding. The three concrete
// setlayout actions resolve to their layout record by identity;
// setlayout-toggle passes nil; spawn reboxes its text payload into
// argv form.
func (d *Dispatcher) Invoke(id ActionID, arg Arg) error {
	switch id {
	case ActionSetLayoutTiled:
		return d.invokeLayout(LayoutTiled)
	case ActionSetLayoutFloating:
		return d.invokeLayout(LayoutFloating)
	case ActionSetLayoutMonocle:
		return d.invokeLayout(LayoutMonocle)
	case ActionSetLayoutToggle:
		return d.invokeLayout(nil)

	case ActionSpawn:
		if d.spawn == nil {
			return fmt.Errorf("%w: %s", ErrNoHandler, id)
		}
		argv := SpawnArgv(arg.S)
		log.Debug("spawning command", "command", arg.S)
		d.spawn(argv)
		return nil

	default:
		h, ok := d.handlers[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoHandler, id)
		}
		h(arg)
		return nil
	}
}

func (d *Dispatcher) invokeLayout(layout *Layout) error {
	if d.layout == nil {
		return fmt.Errorf("%w: setlayout", ErrNoHandler)
	}
	d.layout(layout)
	return nil
}
