package orchestrator

import "strings"

// commonPhrases gates cache writes: only messages matching this fixed
// substring list are considered common enough to share across visitors.
var commonPhrases = []string{
	"what services",
	"what do you do",
	"about lumena",
	"digital marketing",
	"website",
	"branding",
	"help me",
	"tell me about",
	"what type",
	"how can you help",
}

// IsCommonQuestion reports whether the message is eligible for caching.
func IsCommonQuestion(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range commonPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
