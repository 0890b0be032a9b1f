package system

import (
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	yaml "gopkg.in/yaml.v3"

	"ssys/theme"
)

// themeKey is the document key holding the theme when props are decoded
// from YAML or JSON.
const themeKey = "theme"

// Props is the input of a parse function: a theme and style props in
// declared order. Declared order decides which declaration wins when two
// props produce the same output name. Setting an existing key replaces its
// value but keeps its original position.
type Props struct {
	Theme  theme.Theme
	values *orderedmap.OrderedMap[string, any]
}

// NewProps returns empty props bound to theme t (which may be nil).
func NewProps(t theme.Theme) *Props {
	return &Props{Theme: t, values: orderedmap.New[string, any]()}
}

// Set records prop value and returns p so calls can be chained.
func (p *Props) Set(key string, value any) *Props {
	if p.values == nil {
		p.values = orderedmap.New[string, any]()
	}
	p.values.Set(key, value)
	return p
}

// Get returns value of a prop.
func (p *Props) Get(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	return p.values.Get(key)
}

// Len returns number of props (theme excluded).
func (p *Props) Len() int {
	if p == nil || p.values == nil {
		return 0
	}
	return p.values.Len()
}

// All iterates props in declared order.
func (p *Props) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p == nil || p.values == nil {
			return
		}
		for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// UnmarshalYAML decodes a props mapping keeping key order. The "theme" key,
// when present, becomes the props theme.
func (p *Props) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("props must be a mapping, line %d", node.Line)
	}

	p.values = orderedmap.New[string, any](len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("bad prop name at line %d: %w", node.Content[i].Line, err)
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("bad value for prop '%s': %w", key, err)
		}
		if err := p.assign(key, value); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON decodes a props object keeping key order. Numbers decode as
// float64.
func (p *Props) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, any]()
	if err := om.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("unable to decode props: %w", err)
	}

	p.values = orderedmap.New[string, any](om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		if err := p.assign(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

func (p *Props) assign(key string, value any) error {
	if key != themeKey {
		p.values.Set(key, value)
		return nil
	}
	if value == nil {
		return nil
	}
	m, ok := theme.Generic(value).(map[string]any)
	if !ok {
		return fmt.Errorf("props theme must be a mapping, got %T", value)
	}
	p.Theme = theme.Theme(m)
	return nil
}
