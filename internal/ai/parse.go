// README: Tolerant decoding of model output into structured results.
package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformed reports that model output could not be recovered as a JSON
// object even after fence stripping and brace bounding.
var ErrMalformed = errors.New("malformed model output")

// CleanFences removes markdown code-block markers if present (e.g. ```json ... ```).
func CleanFences(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// DecodeObject decodes a single JSON object from raw model output into v.
// The text is not guaranteed to be clean: it may be fenced or carry leading
// and trailing prose. Strategy: strip fences and try a direct decode; on
// failure, retry with the substring between the first '{' and the last '}'
// inclusive. No deeper recovery is attempted.
func DecodeObject(raw string, v any) error {
	clean := CleanFences(raw)

	if err := json.Unmarshal([]byte(clean), v); err == nil {
		return nil
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || end <= start {
		return ErrMalformed
	}
	if err := json.Unmarshal([]byte(clean[start:end+1]), v); err != nil {
		return ErrMalformed
	}
	return nil
}
