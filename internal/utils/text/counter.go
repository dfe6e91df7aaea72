// Package text provides utilities for text processing and analysis.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters (accented letters, CJK, emoji) count as one each, so
// character-limit checks behave the same for every AI provider.
func CountRunes(text string) int {
	return len([]rune(text))
}
