package output

import (
	"fmt"
	"strings"

	"github.com/vibescout/vibescout/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatICS   Format = "ics"
)

// Formatter renders event lists.
type Formatter interface {
	FormatEvents(events []core.GeneratedEvent) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatICS):
		return FormatICS, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatICS:
		return &ICSFormatter{}
	default:
		return &TableFormatter{}
	}
}
