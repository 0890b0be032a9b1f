package system

import (
	"maps"
)

// Compose merges configurations of parsers into a new parser. When two
// parsers configure the same prop, the one listed later wins: its descriptor
// (scale, transform, output names) is used, not just its computed value.
func Compose(parsers ...*Parser) *Parser {
	config := make(Config)
	for _, p := range parsers {
		if p == nil {
			continue
		}
		maps.Copy(config, p.config)
	}
	return System(config)
}
