package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// ContainsNonLetters checks if a string has anything besides letters and combining marks
func ContainsNonLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return true
		}
	}
	return false
}

// IsValidWord checks if input can be segmented against the trie.
// Returns false for empty strings, words over maxLen runes (when maxLen > 0),
// and anything that is not purely alphabetic.
func IsValidWord(s string, maxLen int) bool {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return false
	}
	if maxLen > 0 && len([]rune(s)) > maxLen {
		return false
	}
	return !ContainsNonLetters(s)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	var sb strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}
