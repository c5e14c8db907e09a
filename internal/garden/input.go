package garden

import (
	"strings"

	"github.com/samber/lo"
)

// SanitizeGuess normalizes raw text-field content into a guess.
// Non-letters are stripped, only the last letter typed is kept, and it is
// uppercased. Returns "" when the input holds no ASCII letter.
func SanitizeGuess(raw string) string {
	letters := lo.Filter([]rune(raw), func(r rune, _ int) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	if len(letters) == 0 {
		return ""
	}
	return strings.ToUpper(string(letters[len(letters)-1]))
}
