package system

import (
	"slices"
)

// Transform turns a raw prop value into the declaration value, given the
// scale selected for the style function. Transform supplied by configuration
// is trusted: a panicking transform propagates to the caller.
type Transform func(scale, value any) any

// StyleFunc maps one resolved prop value to declarations. It is immutable
// and safe for concurrent use.
type StyleFunc struct {
	// Scale is theme path of the scale the function reads.
	Scale string
	// DefaultScale is used when the theme has nothing under Scale.
	DefaultScale any

	properties []string
	transform  Transform
}

// NewStyleFunc builds style function assigning transformed value to every
// name in properties. When transform is nil the value is resolved against the
// scale with Resolve.
func NewStyleFunc(properties []string, scale string, transform Transform, defaultScale any) *StyleFunc {
	if transform == nil {
		transform = resolveValue
	}
	return &StyleFunc{
		Scale:        scale,
		DefaultScale: defaultScale,
		properties:   slices.Clone(properties),
		transform:    transform,
	}
}

// Properties returns output declaration names.
func (f *StyleFunc) Properties() []string {
	return slices.Clone(f.properties)
}

// Apply produces declarations for value resolved against scale.
func (f *StyleFunc) Apply(scale, value any) *Style {
	out := NewStyle()
	f.applyTo(out, scale, value)
	return out
}

func (f *StyleFunc) applyTo(out *Style, scale, value any) {
	n := f.transform(scale, value)
	for _, prop := range f.properties {
		out.Set(prop, n)
	}
}

func (f *StyleFunc) entry() {}
