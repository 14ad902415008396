package utils

// Truncate cuts s to at most limit runes. Used to derive a post's display
// title from its text.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
