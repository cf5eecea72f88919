package basket

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ParseInput turns the pending input buffer into a basket document. Text that
// parses as JSON is sent as that document; anything else is wrapped as
// {"message": text}. The second return value reports whether wrapping happened.
func ParseInput(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(trimmed)); err == nil {
			return json.RawMessage(buf.Bytes()), false
		}
		return json.RawMessage(trimmed), false
	}
	wrapped, err := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: text})
	if err != nil {
		// a struct holding a single string always marshals
		return json.RawMessage(`{"message":""}`), true
	}
	return json.RawMessage(wrapped), true
}
