// README: Codec for list-valued fields stored as delimited text blobs.
package trip

import (
	"encoding/json"
	"strings"
)

// Tips and places are stored one-per-line in a single text column. Embedded
// newlines and backslashes are escaped so the round trip is loss-free:
// `\` -> `\\`, newline -> `\n`. Decoding reverses the two in one pass.

func encodeList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		item = strings.ReplaceAll(item, `\`, `\\`)
		item = strings.ReplaceAll(item, "\n", `\n`)
		escaped[i] = item
	}
	return strings.Join(escaped, "\n")
}

func decodeList(blob string) []string {
	if blob == "" {
		return []string{}
	}
	lines := strings.Split(blob, "\n")
	items := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for j := 0; j < len(line); j++ {
			if line[j] == '\\' && j+1 < len(line) {
				switch line[j+1] {
				case 'n':
					b.WriteByte('\n')
					j++
					continue
				case '\\':
					b.WriteByte('\\')
					j++
					continue
				}
			}
			b.WriteByte(line[j])
		}
		items[i] = b.String()
	}
	return items
}

// encodeBreakdown serializes a budget breakdown to a JSON text blob, or ""
// when absent.
func encodeBreakdown(b Breakdown) string {
	if len(b) == 0 {
		return ""
	}
	data, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	return string(data)
}

func decodeBreakdown(blob string) Breakdown {
	if blob == "" {
		return nil
	}
	var b Breakdown
	if err := json.Unmarshal([]byte(blob), &b); err != nil {
		return nil
	}
	return b
}
