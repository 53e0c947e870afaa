package config

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrRequiredMissing reports that a mandatory config value was absent
// or of the wrong type.
var ErrRequiredMissing = errors.New("required config value missing or wrong type")

// getter is the lookup surface shared by a whole document and a list
// sub-table.
type getter interface {
	Lookup(path string) (any, bool)
}

// lookupFailed implements the shared miss policy: optional values are
// skipped silently (the destination keeps its prior value), required
// values warn and produce ErrRequiredMissing.
func lookupFailed(path string, optional bool) error {
	if optional {
		log.Debug("optional config value not found, skipping", "path", path)
		return nil
	}
	log.Warn("problem reading required config value: not found or of wrong type", "path", path)
	return fmt.Errorf("%w: %s", ErrRequiredMissing, path)
}

// lookupBool reads a boolean into dst.
func lookupBool(g getter, path string, dst *bool, optional bool) error {
	val, ok := g.Lookup(path)
	if !ok {
		return lookupFailed(path, optional)
	}
	b, ok := val.(bool)
	if !ok {
		return lookupFailed(path, optional)
	}
	*dst = b
	return nil
}

// lookupInt reads a signed integer into dst, clamped to [min, max].
func lookupInt(g getter, path string, dst *int, optional bool, min, max int) error {
	val, ok := g.Lookup(path)
	if !ok {
		return lookupFailed(path, optional)
	}
	n, ok := asInt64(val)
	if !ok {
		return lookupFailed(path, optional)
	}
	*dst = int(clamp(path, n, int64(min), int64(max)))
	return nil
}

// lookupUint reads an unsigned integer into dst, clamped to [min, max].
// Negative document values clamp up to min.
func lookupUint(g getter, path string, dst *uint, optional bool, min, max uint) error {
	val, ok := g.Lookup(path)
	if !ok {
		return lookupFailed(path, optional)
	}
	n, ok := asInt64(val)
	if !ok {
		return lookupFailed(path, optional)
	}
	*dst = uint(clamp(path, n, int64(min), int64(max)))
	return nil
}

// lookupFloat reads a float into dst, clamped to [min, max].
func lookupFloat(g getter, path string, dst *float64, optional bool, min, max float64) error {
	val, ok := g.Lookup(path)
	if !ok {
		return lookupFailed(path, optional)
	}
	f, ok := asFloat64(val)
	if !ok {
		return lookupFailed(path, optional)
	}
	*dst = clamp(path, f, min, max)
	return nil
}

// lookupString reads a string into dst.
func lookupString(g getter, path string, dst *string, optional bool) error {
	val, ok := g.Lookup(path)
	if !ok {
		return lookupFailed(path, optional)
	}
	s, ok := val.(string)
	if !ok {
		return lookupFailed(path, optional)
	}
	*dst = s
	return nil
}

// clamp constrains v into [min, max], warning with the original value
// and the violated bound only when the value actually changes.
func clamp[T cmp.Ordered](path string, v, min, max T) T {
	switch {
	case v < min:
		log.Warn("clamped config value to range minimum", "path", path, "value", v, "min", min)
		return min
	case v > max:
		log.Warn("clamped config value to range maximum", "path", path, "value", v, "max", max)
		return max
	default:
		return v
	}
}

// asInt64 coerces the integer representations the TOML reader
// produces.
func asInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

// asFloat64 coerces numeric values to float64; integers auto-convert.
func asFloat64(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
