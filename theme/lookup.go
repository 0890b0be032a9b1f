package theme

import (
	"math"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Lookup walks data along a dotted path and returns the first match. A
// numeric segment matches a sequence index as well as a mapping key spelled
// the same way, so "blue.2" reaches both {"blue": [..., ..., x]} and
// {"blue": {"2": x}}.
//
// Containers are expected in generic shape ([]any, map[string]any), see New
// and Generic.
func Lookup(data any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}
	x := jp.R()
	for seg := range strings.SplitSeq(path, ".") {
		x = appendSegment(x, seg)
	}
	return first(x, data)
}

// LookupKey resolves a single scale key: integers index sequences (or match
// numeric mapping keys), strings are dotted paths, other numbers match the
// mapping key of their shortest textual form. Anything else never matches.
func LookupKey(scale, key any) (any, bool) {
	if scale == nil {
		return nil, false
	}
	switch k := key.(type) {
	case string:
		return Lookup(scale, k)
	case float64:
		return lookupFloat(scale, k)
	case float32:
		return lookupFloat(scale, float64(k))
	}
	if n, ok := integer(key); ok {
		if n < 0 {
			return first(jp.R().C(strconv.FormatInt(n, 10)), scale)
		}
		return first(jp.R().U(n, strconv.FormatInt(n, 10)), scale)
	}
	return nil, false
}

func lookupFloat(scale any, f float64) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f >= 0 && f == math.Trunc(f) && f <= math.MaxInt32 {
		n := int64(f)
		return first(jp.R().U(n, strconv.FormatInt(n, 10)), scale)
	}
	return first(jp.R().C(strconv.FormatFloat(f, 'f', -1, 64)), scale)
}

func appendSegment(x jp.Expr, seg string) jp.Expr {
	if n, ok := index(seg); ok {
		return x.U(n, seg)
	}
	return x.C(seg)
}

// index recognizes canonical non negative integers ("0", "12", not "012").
func index(seg string) (int64, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseInt(seg, 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func integer(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func first(x jp.Expr, data any) (any, bool) {
	res := x.Get(data)
	if len(res) == 0 {
		return nil, false
	}
	return res[0], true
}
