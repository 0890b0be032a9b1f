package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// Parse decodes theme document. JSON is recognized by its leading '{',
// everything else is treated as YAML.
func Parse(data []byte) (Theme, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Theme{}, nil
	}

	var doc any
	if trimmed[0] == '{' {
		v, err := oj.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JSON theme: %w", err)
		}
		doc = v
	} else {
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML theme: %w", err)
		}
	}

	m, ok := Generic(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("theme must be a mapping, got %T", doc)
	}
	return Theme(m), nil
}

// Load reads theme from file. Problems found by Validate are logged and the
// theme is returned anyway: style functions fall back to raw values for
// anything they cannot resolve.
func Load(path string, log *zap.Logger) (Theme, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("theme")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", path, err)
	}
	for _, e := range multierr.Errors(Validate(t)) {
		log.Warn("Theme problem, defaults will be used", zap.String("file", path), zap.Error(e))
	}
	log.Debug("Theme loaded", zap.String("file", path), zap.Int("scales", len(t)))
	return t, nil
}

// Validate reports every entry style functions would not be able to use.
func Validate(t Theme) (err error) {
	for name, v := range t {
		switch v.(type) {
		case []any, map[string]any:
		default:
			err = multierr.Append(err, fmt.Errorf("scale %q: expected sequence or mapping, got %T", name, v))
			continue
		}
		if name != KeyBreakpoints {
			continue
		}
		bps, ok := v.([]any)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("scale %q: expected sequence", name))
			continue
		}
		for i, bp := range bps {
			switch bp.(type) {
			case string, int, int64, float64:
			default:
				err = multierr.Append(err, fmt.Errorf("breakpoint %d: expected string or number, got %T", i, bp))
			}
		}
	}
	return err
}
