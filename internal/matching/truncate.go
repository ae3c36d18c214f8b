package matching

import "strings"

// DefaultCommentLength is the display limit for domain comments.
const DefaultCommentLength = 150

// TruncateComment shortens a comment to maxLen characters on a word
// boundary and terminates it with a period when needed.
func TruncateComment(comment string, maxLen int) string {
	runes := []rune(comment)
	if maxLen < 0 {
		maxLen = 0
	}
	if len(runes) <= maxLen {
		return comment
	}

	text := string(runes[:maxLen])
	if idx := strings.LastIndex(text, " "); idx > 0 {
		text = text[:idx]
	}

	if text != "" && !strings.ContainsAny(text[len(text)-1:], ".!?") {
		text += "."
	}
	return text
}
