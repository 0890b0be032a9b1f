package system

import (
	"math"

	"ssys/theme"
)

// Is reports whether v holds a value.
func Is(v any) bool {
	return v != nil
}

// IsNumber reports whether v is a finite number of any Go numeric kind.
func IsNumber(v any) bool {
	_, ok := Float(v)
	return ok
}

// Float converts any Go numeric kind to float64. NaN and infinities are not
// numbers here.
func Float(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Resolve looks key up in scale. When scale is absent or does not contain
// key, fallback is returned. Resolve never fails: it is the default transform
// of every style function, so literal values (raw lengths, color codes) pass
// through it unchanged when fallback is the key itself.
func Resolve(scale, key, fallback any) any {
	if v, ok := theme.LookupKey(scale, key); ok {
		return v
	}
	return fallback
}

// resolveValue is the Transform used when a descriptor does not supply one.
func resolveValue(scale, value any) any {
	return Resolve(scale, value, value)
}
