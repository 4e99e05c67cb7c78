// Package suggest provides the suggestion source consumed by the field
// engine: prefix retrieval over a Patricia trie with frequency ranking.
package suggest

// Suggestion is one candidate completion with its frequency rank.
type Suggestion struct {
	Word      string
	Frequency int
}

// Source supplies candidate completions for a token prefix.
//
// Query submits a prefix and delivers the ranked candidates through the
// deliver callback. Delivery may happen synchronously or later from the
// host's machinery; callers that care about ordering discard stale
// deliveries themselves. Clear drops any cached results so a dismissed
// suggestion view starts cold.
type Source interface {
	Query(prefix string, deliver func([]Suggestion))
	Clear()
}
