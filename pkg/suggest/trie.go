package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Trie is a Source backed by a Patricia trie of words with frequencies.
// Lookups are case-insensitive; the capitalization pattern of the typed
// prefix is re-applied to the results.
//
// The most recent query's results are cached so repeated keystrokes that
// resolve to the same prefix don't re-walk the trie; Clear drops the cache.
type Trie struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
	minFrequency int
	limit        int

	lastPrefix  string
	lastResults []Suggestion
}

// NewTrie creates an empty suggestion trie. Words below minFrequency are
// never suggested; at most limit suggestions are returned per query (0
// means unlimited).
func NewTrie(minFrequency, limit int) *Trie {
	return &Trie{
		trie:         patricia.NewTrie(),
		minFrequency: minFrequency,
		limit:        limit,
	}
}

// AddWord inserts a word with its frequency.
func (c *Trie) AddWord(word string, frequency int) {
	c.trie.Insert(patricia.Prefix(strings.ToLower(word)), frequency)
	c.totalWords++
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
	// new words invalidate whatever the last query saw
	c.lastPrefix = ""
	c.lastResults = nil
}

// Complete returns ranked suggestions for prefix.
func (c *Trie) Complete(prefix string) []Suggestion {
	if prefix == "" {
		return nil
	}

	lowerPrefix := strings.ToLower(prefix)
	if lowerPrefix == c.lastPrefix && c.lastResults != nil {
		return copyResults(c.lastResults)
	}

	capitalPositions := make([]bool, len(prefix))
	for i := 0; i < len(prefix); i++ {
		capitalPositions[i] = prefix[i] >= 'A' && prefix[i] <= 'Z'
	}

	var suggestions []Suggestion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}

		freq := 1
		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		case float64:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		if freq < c.minFrequency {
			return nil
		}

		suggestions = append(suggestions, Suggestion{
			Word:      applyCapitalization(word, capitalPositions),
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if c.limit > 0 && len(suggestions) > c.limit {
		suggestions = suggestions[:c.limit]
	}

	c.lastPrefix = lowerPrefix
	c.lastResults = suggestions
	return copyResults(suggestions)
}

// copyResults keeps callers from mutating the cached slice.
func copyResults(results []Suggestion) []Suggestion {
	out := make([]Suggestion, len(results))
	copy(out, results)
	return out
}

// Query implements Source. Delivery is synchronous.
func (c *Trie) Query(prefix string, deliver func([]Suggestion)) {
	deliver(c.Complete(prefix))
}

// Clear implements Source, dropping the cached last query.
func (c *Trie) Clear() {
	c.lastPrefix = ""
	c.lastResults = nil
}

// Stats returns statistics about the loaded words.
func (c *Trie) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
}

// applyCapitalization re-applies the capitalization pattern of the typed
// prefix to a lowercase word from the trie.
func applyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && wordRunes[i] >= 'a' && wordRunes[i] <= 'z' {
			wordRunes[i] = wordRunes[i] - 'a' + 'A'
		}
	}
	return string(wordRunes)
}
