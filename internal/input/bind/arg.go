package bind

import (
	"fmt"
	"strconv"
)

// ArgKind identifies which payload an Arg carries.
type ArgKind uint8

const (
	// ArgNone means the action takes no argument.
	ArgNone ArgKind = iota
	// ArgInt is a signed integer argument.
	ArgInt
	// ArgUint is an unsigned integer argument.
	ArgUint
	// ArgFloat is a floating-point argument.
	ArgFloat
	// ArgText is a string argument (spawn command lines).
	ArgText
)

// String returns the kind name used in diagnostics.
func (k ArgKind) String() string {
	switch k {
	case ArgNone:
		return "none"
	case ArgInt:
		return "int"
	case ArgUint:
		return "uint"
	case ArgFloat:
		return "float"
	case ArgText:
		return "text"
	default:
		return "unknown"
	}
}

// Arg is the argument payload of a binding. It is a closed tagged union:
// exactly the field selected by Kind is meaningful.
type Arg struct {
	Kind ArgKind

	I int64
	U uint64
	F float64
	S string
}

// NoArg is the zero argument.
var NoArg = Arg{Kind: ArgNone}

// IntArg returns a signed integer argument.
func IntArg(v int64) Arg { return Arg{Kind: ArgInt, I: v} }

// UintArg returns an unsigned integer argument.
func UintArg(v uint64) Arg { return Arg{Kind: ArgUint, U: v} }

// FloatArg returns a float argument.
func FloatArg(v float64) Arg { return Arg{Kind: ArgFloat, F: v} }

// TextArg returns a string argument.
func TextArg(s string) Arg { return Arg{Kind: ArgText, S: s} }

// Equal reports whether two arguments have the same kind and payload.
func (a Arg) Equal(other Arg) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case ArgNone:
		return true
	case ArgInt:
		return a.I == other.I
	case ArgUint:
		return a.U == other.U
	case ArgFloat:
		return a.F == other.F
	case ArgText:
		return a.S == other.S
	default:
		return false
	}
}

// String renders the payload the way it appears in a binding line.
func (a Arg) String() string {
	switch a.Kind {
	case ArgNone:
		return ""
	case ArgInt:
		return strconv.FormatInt(a.I, 10)
	case ArgUint:
		return strconv.FormatUint(a.U, 10)
	case ArgFloat:
		return strconv.FormatFloat(a.F, 'g', -1, 64)
	case ArgText:
		return a.S
	default:
		return fmt.Sprintf("?%d", a.Kind)
	}
}
