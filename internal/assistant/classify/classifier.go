// Package classify assigns a coarse category and a suggested UI action to a
// model reply. It is a deterministic keyword scan, evaluated as an ordered
// rule table so the precedence stays auditable: booking or pricing intent
// wins over discovery or service topic, which wins over the default.
package classify

import (
	"strings"

	"github.com/lumena-studio/concierge/internal/assistant/model"
)

var (
	// scanned against the assistant reply
	bookingKeywords = []string{"book", "call", "schedule", "consultation", "discuss"}

	// scanned against the user message
	pricingKeywords = []string{"cost", "price", "pricing", "expensive", "budget", "fee", "how much", "investment"}

	// scanned against the user message
	serviceKeywords = []string{"website", "seo", "ppc", "social media", "marketing", "design", "ecommerce", "branding", "shopify", "wordpress"}

	// scanned against the assistant reply
	discoveryPhrases = []string{"what type", "what kind", "tell me about", "what's your", "how are you", "what does"}
)

type rule struct {
	name    string
	matches func(reply, message string) bool
	result  model.Classification
}

// Rule order is the precedence. A booking keyword in the reply promotes on
// its own; a pricing keyword in the user message promotes only when the
// reply also shows discovery phrasing.
var rules = []rule{
	{
		name: "booking_in_reply",
		matches: func(reply, _ string) bool {
			return containsAny(reply, bookingKeywords)
		},
		result: model.Classification{Type: model.TypeServiceInquiry, SuggestedAction: model.ActionBookCall},
	},
	{
		name: "pricing_with_discovery",
		matches: func(reply, message string) bool {
			return containsAny(message, pricingKeywords) && containsAny(reply, discoveryPhrases)
		},
		result: model.Classification{Type: model.TypeServiceInquiry, SuggestedAction: model.ActionBookCall},
	},
	{
		name: "discovery_in_reply",
		matches: func(reply, _ string) bool {
			return containsAny(reply, discoveryPhrases)
		},
		result: model.Classification{Type: model.TypeDiscovery, SuggestedAction: model.ActionLearnMore},
	},
	{
		name: "service_topic_in_message",
		matches: func(_, message string) bool {
			return containsAny(message, serviceKeywords)
		},
		result: model.Classification{Type: model.TypeServiceInfo, SuggestedAction: model.ActionLearnMore},
	},
}

// Classify scans the lower-cased reply and user message against the rule
// table and returns the first match, falling back to general with no action.
func Classify(reply, userMessage string) model.Classification {
	lowerReply := strings.ToLower(reply)
	lowerMessage := strings.ToLower(userMessage)

	for _, r := range rules {
		if r.matches(lowerReply, lowerMessage) {
			return r.result
		}
	}
	return model.Classification{Type: model.TypeGeneral, SuggestedAction: model.ActionNone}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
