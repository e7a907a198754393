package common

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON marshals v; unlike json.Marshal the output has no trailing
// newline and HTML escaping is optional.
func EncodeJSON(v interface{}, indent bool, escapeHTML bool) ([]byte, error) {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}
