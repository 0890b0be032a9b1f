package system

// StyleSpec describes single style prop in the older one-prop-per-function
// form.
type StyleSpec struct {
	// Prop is the prop name, also the output name unless CSSProperty or
	// Properties are given.
	Prop        string
	CSSProperty string
	Properties  []string
	// Alias is a second prop name sharing the same descriptor.
	Alias string
	// Key is theme scale path.
	Key string
	// Scale is the default scale.
	Scale any
	// TransformValue receives value first and scale second.
	TransformValue func(value, scale any) any
}

// Define builds parser for a single prop (and its alias).
func Define(spec StyleSpec) *Parser {
	properties := spec.Properties
	if len(properties) == 0 {
		name := spec.CSSProperty
		if name == "" {
			name = spec.Prop
		}
		properties = []string{name}
	}

	var transform Transform
	if tv := spec.TransformValue; tv != nil {
		transform = func(scale, value any) any {
			return tv(value, scale)
		}
	}

	d := Descriptor{
		Properties:   properties,
		Scale:        spec.Key,
		DefaultScale: spec.Scale,
		Transform:    transform,
	}
	config := Config{spec.Prop: d}
	if spec.Alias != "" {
		config[spec.Alias] = d
	}
	return System(config)
}
