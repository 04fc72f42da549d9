package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from a model response. Models
// wrap JSON in ``` fences or conversational preamble often enough, even
// when instructed not to, that every JSON response goes through this
// before decoding. Input with no recognizable JSON passes through
// unchanged so the decoder reports the real error.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Drop a language tag like "json" on the fence line. A first line
		// that is short, has no spaces, and opens no JSON is treated as a tag.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			tag := text[:idx]
			if len(tag) < 20 && !strings.Contains(tag, " ") && !strings.Contains(tag, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Strip preamble and trailing chatter around the first object or array.
	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	start := objStart
	open := byte('{')
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start = arrStart
		open = '['
	}
	if start < 0 {
		return text
	}

	var extracted string
	if open == '{' {
		extracted = extractJSONObject(text[start:])
	} else {
		extracted = extractJSONArray(text[start:])
	}
	if extracted == "" {
		return text
	}
	return extracted
}

// extractJSONObject returns the balanced JSON object at the start of s, or
// "" when s does not start with one. Braces inside strings do not count.
func extractJSONObject(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of s, or
// "" when s does not start with one.
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

func extractBalanced(s string, open, close byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
