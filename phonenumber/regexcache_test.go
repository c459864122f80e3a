package phonenumber

import "testing"

func TestRegexCache_MatchesFullRequiresEntireString(t *testing.T) {
	c := NewRegexCache(4)
	if !c.MatchesFull(`\d{3}`, "123") {
		t.Fatal("expected exact-length match to succeed")
	}
	if c.MatchesFull(`\d{3}`, "1234") {
		t.Fatal("expected longer string to fail MatchesFull")
	}
}

func TestRegexCache_LooksAtMatchesPrefixOnly(t *testing.T) {
	c := NewRegexCache(4)
	if !c.LooksAt(`\d{3}`, "1234567") {
		t.Fatal("expected LooksAt to match a valid prefix")
	}
	if c.LooksAt(`\d{3}`, "12") {
		t.Fatal("expected LooksAt to fail when even the prefix is too short")
	}
}

func TestRegexCache_EvictsLeastRecentlyUsedBeyondCapacity(t *testing.T) {
	c := NewRegexCache(2)
	c.MatchesFull("a", "a")
	c.MatchesFull("b", "b")
	c.MatchesFull("c", "c")

	if len(c.entries) != 2 {
		t.Fatalf("expected cache to hold exactly 2 entries, got %d", len(c.entries))
	}
	if _, ok := c.entries[cacheKey{pattern: "a", prefix: false}]; ok {
		t.Fatal("expected least-recently-used entry 'a' to have been evicted")
	}
}

func TestRegexCache_MalformedPatternMatchesNothingInsteadOfPanicking(t *testing.T) {
	c := NewRegexCache(4)
	if c.MatchesFull("(unterminated", "anything") {
		t.Fatal("expected malformed pattern to match nothing")
	}
}
