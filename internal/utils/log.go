package utils

import "strings"

// TruncateForLog flattens a backend response body onto one line and cuts it
// to limit runes. Flask error pages are multi-line HTML, which breaks console
// log output.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(strings.Join(strings.Fields(s), " "))
	if len(runes) <= limit {
		return string(runes)
	}

	return string(runes[:limit]) + "..."
}
