package wordbank

import (
	"unicode"

	"typr/internal/model"
)

// filterByLength keeps words whose alphanumeric length matches the class.
func filterByLength(words []string, class model.LengthClass) []string {
	if class == model.LengthAll || class == "" {
		return words
	}
	out := make([]string, 0, len(words))
	for _, word := range words {
		if classMatches(class, alnumLen(word)) {
			out = append(out, word)
		}
	}
	return out
}

// alnumLen measures word length on letters and digits only; punctuation is
// stripped before measuring.
func alnumLen(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func classMatches(class model.LengthClass, n int) bool {
	switch class {
	case model.LengthShort:
		return n <= 4
	case model.LengthMedium:
		return n >= 5 && n <= 8
	case model.LengthLong:
		return n >= 9 && n <= 12
	case model.LengthThicc:
		return n > 12
	}
	return true
}
