package output

import (
	"encoding/json"
	"io"
)

// indexKey names the unlabelled index column in JSON objects.
const indexKey = "index"

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes each row as one JSON object keyed by header name. Empty
// values are written as null.
func (j *JSONFormatter) Format(header []string, rows [][]string) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		obj := make(map[string]interface{}, len(header))
		for i, name := range header {
			if name == "" {
				name = indexKey
			}
			if i >= len(row) || row[i] == "" {
				obj[name] = nil
				continue
			}
			obj[name] = row[i]
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
