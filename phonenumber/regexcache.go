package phonenumber

import (
	"container/list"
	"regexp"
	"sync"
)

// RegexCache memoizes compiled patterns by source string so that repeated
// classification calls against the same metadata field don't recompile
// the same regex. It is a single mutex-protected LRU, per the source
// library's own recommendation that a sharded map or a plain
// mutex-protected LRU both suffice; duplicate compilation on a cache miss
// race is acceptable and never observed to matter in practice.
//
// Go's RE2 engine, unlike Java's Pattern/Matcher, requires the anchoring
// mode to be baked into the pattern text rather than chosen per call, so
// each source string can occupy up to two cache slots: one anchored for
// a full match ("matches"), one anchored only at the start for a prefix
// match ("looking at"). The capacity below is still a hard bound on
// memory, just over a slightly larger effective key space than the
// original single-Pattern-per-source design.
type RegexCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]*list.Element
	order    *list.List
}

type cacheKey struct {
	pattern string
	prefix  bool
}

type cacheEntry struct {
	key cacheKey
	re  *regexp.Regexp
}

// NewRegexCache creates an LRU-bounded regex cache with the given
// capacity. A non-positive capacity falls back to the source library's
// measured default of 100.
func NewRegexCache(capacity int) *RegexCache {
	if capacity <= 0 {
		capacity = defaultRegexCacheSize
	}
	return &RegexCache{
		capacity: capacity,
		entries:  make(map[cacheKey]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *RegexCache) get(pattern string, prefix bool) *regexp.Regexp {
	key := cacheKey{pattern: pattern, prefix: prefix}

	c.mu.Lock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		re := elem.Value.(*cacheEntry).re
		c.mu.Unlock()
		return re
	}
	c.mu.Unlock()

	// Compile outside the lock: compilation of the same key at most once
	// is not a correctness requirement (idempotent compile is fine).
	// (?i) matches the source library's REGEX_FLAGS (UNICODE_CASE |
	// CASE_INSENSITIVE); Go's RE2 folds Unicode case under (?i) by default.
	var wrapped string
	if prefix {
		wrapped = "(?i)^(?:" + pattern + ")"
	} else {
		wrapped = "(?i)^(?:" + pattern + ")$"
	}
	re, err := regexp.Compile(wrapped)
	if err != nil {
		// A malformed regex can only come from corrupt metadata; treated
		// as an invariant violation, never surfaced as a parse error.
		re = regexp.MustCompile(`[^\x00-\x{10FFFF}]`) // matches nothing
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).re
	}
	elem := c.order.PushFront(&cacheEntry{key: key, re: re})
	c.entries[key] = elem
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	return re
}

// MatchesFull reports whether s matches pattern in its entirety.
func (c *RegexCache) MatchesFull(pattern, s string) bool {
	return c.get(pattern, false).MatchString(s)
}

// LooksAt reports whether s begins with a match for pattern (Java's
// Matcher.lookingAt semantics: matched from position 0, not necessarily
// to the end of s).
func (c *RegexCache) LooksAt(pattern, s string) bool {
	return c.get(pattern, true).MatchString(s)
}
