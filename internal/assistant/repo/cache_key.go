package repo

import (
	"strings"
	"unicode"
)

const maxCacheKeyLen = 50

// CacheKey derives the cache key from a user message: lower-cased,
// punctuation stripped, truncated. The key is a pure function of the
// message text and carries no conversation identity, so cached responses
// are deliberately shared across conversations.
func CacheKey(message string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(message) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	key := []rune(b.String())
	if len(key) > maxCacheKeyLen {
		key = key[:maxCacheKeyLen]
	}
	return string(key)
}
