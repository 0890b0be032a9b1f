package state

import (
	"fmt"
	"time"

	"ssys/theme"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// LoadTheme loads theme from path, falling back to the configured theme path.
// When neither is set the environment keeps a nil theme and style functions
// use built in scales.
func (e *LocalEnv) LoadTheme(path string) error {
	if len(path) == 0 && e.Cfg != nil {
		path = e.Cfg.Theme.Path
	}
	if len(path) == 0 {
		if e.Log != nil {
			e.Log.Debug("No theme requested, using defaults")
		}
		return nil
	}

	t, err := theme.Load(path, e.Log)
	if err != nil {
		return fmt.Errorf("unable to load theme: %w", err)
	}
	e.Theme, e.ThemePath = t, path
	return nil
}
