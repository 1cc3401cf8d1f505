package genai

import (
	"encoding/json"
	"strings"

	"eventease/internal/domain"
)

// ExtractJSONObject recovers the first well-formed JSON object embedded
// in free-form model output. A fenced ```json block wins if present;
// otherwise the text is scanned from the first '{' to its matching '}'.
// Returns ErrNoJSONFound when no valid object can be recovered.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	if fenced, ok := fencedBlock(text); ok {
		if obj, ok := firstObject(fenced); ok {
			return obj, nil
		}
	}
	if obj, ok := firstObject(text); ok {
		return obj, nil
	}
	return nil, domain.ErrNoJSONFound
}

// fencedBlock returns the contents of the first ``` fence, with an
// optional "json" language tag stripped.
func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	rest := text[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	block := rest[:end]
	block = strings.TrimPrefix(block, "json")
	return strings.TrimSpace(block), true
}

// firstObject scans for the first '{' and walks to its matching '}',
// honoring JSON string and escape state, then validates the candidate.
func firstObject(text string) (json.RawMessage, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := []byte(text[start : i+1])
				if json.Valid(candidate) {
					return json.RawMessage(candidate), true
				}
				return nil, false
			}
		}
	}
	return nil, false
}
