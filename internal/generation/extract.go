package generation

import "encoding/json"

// ExtractJSON returns the first balanced, valid JSON object embedded in text.
// Candidates start at an outermost '{' and end at its matching '}', with
// braces inside string literals ignored. A balanced span that is not valid
// JSON is skipped and the scan resumes after it. A '{' that never closes is
// treated as prose and the scan moves on to the next '{'.
func ExtractJSON(text string) (string, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		end, ok := matchBrace(text, i)
		if !ok {
			continue
		}
		span := text[i : end+1]
		if json.Valid([]byte(span)) {
			return span, true
		}
		i = end
	}
	return "", false
}

// matchBrace returns the index of the '}' closing the '{' at start.
func matchBrace(text string, start int) (int, bool) {
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
				return i, true
			}
		}
	}
	return 0, false
}
