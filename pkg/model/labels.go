package model

import (
	"regexp"
	"strings"
)

var labelSeparators = regexp.MustCompile(`[_\-\s]+`)

// DisplayName converts an attribute name into a human-friendly label: it
// splits on underscores, dashes and camelCase boundaries, then title-cases
// each word. Used as the built-in default when neither tags nor metadata
// supply a description.
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	var words []string
	for _, chunk := range labelSeparators.Split(name, -1) {
		if chunk == "" {
			continue
		}
		for _, word := range splitCamelWords(chunk) {
			words = append(words, strings.ToUpper(word[:1])+strings.ToLower(word[1:]))
		}
	}
	return strings.Join(words, " ")
}

func splitCamelWords(chunk string) []string {
	var words []string
	start := 0
	runes := []rune(chunk)
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		lowerToUpper := prev >= 'a' && prev <= 'z' && cur >= 'A' && cur <= 'Z'
		letterToDigit := isASCIILetter(prev) && cur >= '0' && cur <= '9'
		digitToLetter := prev >= '0' && prev <= '9' && isASCIILetter(cur)
		if lowerToUpper || letterToDigit || digitToLetter {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Bound returns a pointer to v, for declaring Min/Max bounds inline.
func Bound(v float64) *float64 { return &v }
