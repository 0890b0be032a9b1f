package system

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"ssys/utils/debug"
)

// Style is the output of style functions: declaration names (or media query
// and selector block names) in insertion order. Values are scalars or nested
// *Style blocks. Re-setting a name replaces its value in place.
type Style struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewStyle returns an empty style.
func NewStyle() *Style {
	return &Style{m: orderedmap.New[string, any]()}
}

// StyleFromMap converts a plain (possibly nested) mapping to a style. Go maps
// carry no order, so keys are placed in natural order.
func StyleFromMap(m map[string]any) *Style {
	s := NewStyle()
	keys := slices.Collect(maps.Keys(m))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		if nested, ok := m[k].(map[string]any); ok {
			s.Set(k, StyleFromMap(nested))
			continue
		}
		s.Set(k, m[k])
	}
	return s
}

// Set assigns value to name.
func (s *Style) Set(name string, value any) {
	s.init()
	s.m.Set(name, value)
}

// Get returns value assigned to name.
func (s *Style) Get(name string) (any, bool) {
	if s == nil || s.m == nil {
		return nil, false
	}
	return s.m.Get(name)
}

// Block returns nested block stored under name.
func (s *Style) Block(name string) (*Style, bool) {
	v, ok := s.Get(name)
	if !ok {
		return nil, false
	}
	b, ok := v.(*Style)
	return b, ok
}

// Len returns number of top level entries.
func (s *Style) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Keys returns top level names in order.
func (s *Style) Keys() []string {
	keys := make([]string, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates top level entries in order.
func (s *Style) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil || s.m == nil {
			return
		}
		for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Assign copies every top level entry of other into s, replacing existing
// values (shallow).
func (s *Style) Assign(other *Style) {
	for k, v := range other.All() {
		s.Set(k, v)
	}
}

// MergeBlock merges other into the nested block stored under name, creating
// the block when needed. Declarations already in the block are kept unless
// other redefines them.
func (s *Style) MergeBlock(name string, other *Style) {
	block, ok := s.Block(name)
	if !ok {
		block = NewStyle()
		s.Set(name, block)
	}
	block.Assign(other)
}

// Merge copies other into s. Blocks present in both are merged recursively,
// everything else is replaced. Blocks of other are copied, not shared.
func (s *Style) Merge(other *Style) {
	for k, v := range other.All() {
		b, ok := v.(*Style)
		if !ok {
			s.Set(k, v)
			continue
		}
		cur, ok := s.Block(k)
		if !ok {
			cur = NewStyle()
			s.Set(k, cur)
		}
		cur.Merge(b)
	}
}

// Map converts style into plain nested maps.
func (s *Style) Map() map[string]any {
	out := make(map[string]any, s.Len())
	for k, v := range s.All() {
		if b, ok := v.(*Style); ok {
			out[k] = b.Map()
			continue
		}
		out[k] = v
	}
	return out
}

// MarshalJSON keeps declaration order.
func (s *Style) MarshalJSON() ([]byte, error) {
	if s == nil || s.m == nil {
		return json.Marshal(map[string]any{})
	}
	return s.m.MarshalJSON()
}

// MarshalYAML keeps declaration order.
func (s *Style) MarshalYAML() (any, error) {
	s.init()
	return s.m.MarshalYAML()
}

func (s *Style) String() string {
	tw := debug.NewTreeWriter()
	writeStyle(tw, 0, s)
	return tw.String()
}

func writeStyle(tw *debug.TreeWriter, depth int, s *Style) {
	for k, v := range s.All() {
		if b, ok := v.(*Style); ok {
			tw.Line(depth, "%s:", k)
			writeStyle(tw, depth+1, b)
			continue
		}
		tw.Value(depth, k, fmt.Sprint(v))
	}
}

func (s *Style) init() {
	if s.m == nil {
		s.m = orderedmap.New[string, any]()
	}
}
