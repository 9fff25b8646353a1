package text

import "strings"

// DefaultSpecialChars lists characters that force quoting in SafeText
const DefaultSpecialChars = ",\"\r\n"

// SafeText renders plain text so that it can be embedded in a flat item list
var SafeText = Quoter(DefaultSpecialChars)

// Quoter returns a safe text function quoting values that contain any of specials.
// Quoted values are wrapped in double quotes with embedded quotes doubled.
func Quoter(specials string) func(text string) string {
	return func(text string) string {
		if text == "" || !strings.ContainsAny(text, specials) {
			return text
		}
		var sb strings.Builder
		sb.Grow(len(text) + 2)
		sb.WriteByte('"')
		for i := 0; i < len(text); i++ {
			if text[i] == '"' {
				sb.WriteByte('"')
			}
			sb.WriteByte(text[i])
		}
		sb.WriteByte('"')
		return sb.String()
	}
}

// Identity returns text unchanged
func Identity(text string) string {
	return text
}
