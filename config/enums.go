package config

//go:generate go tool go-enum --marshal --names --mustparse

// Specification of requested output type.
// ENUM(css, json)
type OutputFormat int

// Ext returns file extension for the format.
func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatJson:
		return ".json"
	default:
		return ".css"
	}
}
