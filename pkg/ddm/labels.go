package ddm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLabeler derives a label from a field name when the definition has
// none for the locale. Underscores, dashes, camelCase humps and letter/digit
// changes separate words: "A_Text" becomes "A Text", "firstName" becomes
// "First Name" and "Text1234" becomes "Text 1234".
func DefaultLabeler(name string) string {
	words := labelWords(name)
	if len(words) == 0 {
		return ""
	}
	title := cases.Title(language.Und)
	for i, word := range words {
		words[i] = title.String(word)
	}
	return strings.Join(words, " ")
}

func labelWords(name string) []string {
	var (
		words []string
		word  []rune
		prev  rune
	)
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			prev = 0
			continue
		case len(word) > 0 && wordBreak(prev, r):
			flush()
		}
		word = append(word, r)
		prev = r
	}
	flush()
	return words
}

func wordBreak(prev, next rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(next):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(next):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(next):
		return true
	}
	return false
}
