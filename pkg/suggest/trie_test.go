package suggest

import "testing"

func newTestTrie() *Trie {
	c := NewTrie(1, 0)
	c.AddWord("residential", 90)
	c.AddWord("residence", 40)
	c.AddWord("restaurant", 70)
	c.AddWord("retail", 60)
	c.AddWord("road", 80)
	return c
}

func TestCompleteRanking(t *testing.T) {
	c := newTestTrie()

	got := c.Complete("res")
	want := []string{"residential", "restaurant", "residence"}
	if len(got) != len(want) {
		t.Fatalf("Complete(res) returned %d suggestions, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("Complete(res)[%d] = %q, want %q", i, got[i].Word, w)
		}
	}
}

func TestCompleteLimit(t *testing.T) {
	c := NewTrie(1, 2)
	c.AddWord("residential", 90)
	c.AddWord("residence", 40)
	c.AddWord("restaurant", 70)

	if got := c.Complete("res"); len(got) != 2 {
		t.Errorf("limit 2 returned %d suggestions", len(got))
	}
}

func TestCompleteMinFrequency(t *testing.T) {
	c := NewTrie(50, 0)
	c.AddWord("residential", 90)
	c.AddWord("residence", 40)

	got := c.Complete("res")
	if len(got) != 1 || got[0].Word != "residential" {
		t.Errorf("Complete(res) = %v, want only residential", got)
	}
}

func TestCompleteSkipsExactMatch(t *testing.T) {
	c := newTestTrie()
	for _, s := range c.Complete("road") {
		if s.Word == "road" {
			t.Errorf("exact match must not be suggested for itself")
		}
	}
}

func TestCompleteCapitalization(t *testing.T) {
	c := newTestTrie()
	got := c.Complete("Res")
	if len(got) == 0 || got[0].Word != "Residential" {
		t.Errorf("Complete(Res) = %v, want capitalized results", got)
	}
}

func TestQueryDeliversAndClearDropsCache(t *testing.T) {
	c := newTestTrie()

	var delivered []Suggestion
	c.Query("res", func(s []Suggestion) { delivered = s })
	if len(delivered) != 3 {
		t.Fatalf("Query delivered %d suggestions, want 3", len(delivered))
	}

	// cached second query returns the same ranking
	first := c.Complete("res")
	second := c.Complete("res")
	if len(first) != len(second) || first[0] != second[0] {
		t.Errorf("repeated query diverged: %v vs %v", first, second)
	}

	c.Clear()
	third := c.Complete("res")
	if len(third) != 3 {
		t.Errorf("Complete after Clear = %v", third)
	}
}

// A caller mutating the returned slice must not poison the cache.
func TestCompleteResultsDetachedFromCache(t *testing.T) {
	c := newTestTrie()

	first := c.Complete("res")
	first[0] = Suggestion{Word: "mangled", Frequency: 0}

	second := c.Complete("res")
	if second[0].Word != "residential" {
		t.Errorf("Complete(res)[0] = %q after caller mutation, want residential", second[0].Word)
	}
	second[0] = Suggestion{Word: "mangled again"}
	if third := c.Complete("res"); third[0].Word != "residential" {
		t.Errorf("cached path leaked its backing array: %v", third)
	}
}

func TestEmptyPrefix(t *testing.T) {
	c := newTestTrie()
	if got := c.Complete(""); got != nil {
		t.Errorf("Complete(\"\") = %v, want nil", got)
	}
}

func TestStats(t *testing.T) {
	c := newTestTrie()
	stats := c.Stats()
	if stats["totalWords"] != 5 {
		t.Errorf("totalWords = %d, want 5", stats["totalWords"])
	}
	if stats["maxFrequency"] != 90 {
		t.Errorf("maxFrequency = %d, want 90", stats["maxFrequency"])
	}
}
