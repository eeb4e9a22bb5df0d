package output

import (
	"encoding/json"

	"github.com/vibescout/vibescout/internal/core"
)

// JSONFormatter renders events as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatEvents renders the event list as JSON.
func (f *JSONFormatter) FormatEvents(events []core.GeneratedEvent) (string, error) {
	if events == nil {
		events = []core.GeneratedEvent{}
	}

	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(events, "", "  ")
	} else {
		data, err = json.Marshal(events)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
