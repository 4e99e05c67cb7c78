/*
Package fuzzy provides approximate matching of tokens against a known word
list, and a token validator built on top of it.

Correction preference: exact match > most frequent word > smallest edit
distance.
*/
package fuzzy

import (
	"strings"

	"github.com/charmbracelet/log"
)

// maxEditDistance is the largest edit distance still considered a
// plausible typo.
const maxEditDistance = 2

// Matcher handles approximate string matching against a fixed dictionary.
type Matcher struct {
	words    []string
	wordFreq map[string]int
}

// NewMatcher creates a matcher over a word -> frequency dictionary. Words
// are matched case-insensitively.
func NewMatcher(words map[string]int) *Matcher {
	lowered := make(map[string]int, len(words))
	list := make([]string, 0, len(words))
	for word, freq := range words {
		lw := strings.ToLower(word)
		if _, seen := lowered[lw]; !seen {
			list = append(list, lw)
		}
		if freq > lowered[lw] {
			lowered[lw] = freq
		}
	}
	return &Matcher{words: list, wordFreq: lowered}
}

// Contains reports whether input is a dictionary word (case-insensitive).
func (m *Matcher) Contains(input string) bool {
	_, ok := m.wordFreq[strings.ToLower(input)]
	return ok
}

// SuggestCorrection returns the most likely correction for a potentially
// misspelled word. The second result is false when the input was already
// correct or no plausible correction exists.
func (m *Matcher) SuggestCorrection(input string) (string, bool) {
	// very short inputs produce too many false corrections
	if len(input) < 2 {
		return input, false
	}

	lower := strings.ToLower(input)
	if m.Contains(lower) {
		return lower, false
	}

	best := ""
	bestDist := maxEditDistance + 1
	bestFreq := -1
	for _, word := range m.words {
		// edit distance can't beat the length difference
		if diff := len(word) - len(lower); diff > bestDist || -diff > bestDist {
			continue
		}
		d := editDistance(lower, word)
		if d > maxEditDistance {
			continue
		}
		if d < bestDist || (d == bestDist && m.wordFreq[word] > bestFreq) {
			best = word
			bestDist = d
			bestFreq = m.wordFreq[word]
		}
	}

	if best == "" {
		log.Debugf("no correction within distance %d for %q", maxEditDistance, input)
		return input, false
	}
	return best, true
}

// editDistance is the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
