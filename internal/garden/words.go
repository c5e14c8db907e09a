package garden

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// DefaultWords is the word list used when no configuration provides one.
var DefaultWords = []string{"SWIFT", "DOG", "CAT"}

// NormalizeWords trims and uppercases raw words and drops empty entries.
// Returns ErrInvalidWordList if nothing is left or a word has non-letters.
func NormalizeWords(raw []string) ([]string, error) {
	words := lo.FilterMap(raw, func(w string, _ int) (string, bool) {
		w = strings.ToUpper(strings.TrimSpace(w))
		return w, w != ""
	})
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}
	for _, w := range words {
		if !isUpperAlpha(w) {
			return nil, fmt.Errorf("%w: %q contains non-letters", ErrInvalidWordList, w)
		}
	}
	return words, nil
}

// ShuffleWords returns a permutation of words determined by seed.
// The input slice is not modified.
func ShuffleWords(words []string, seed int64) []string {
	out := slices.Clone(words)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
