package orchestrator

import (
	"github.com/lumena-studio/concierge/internal/assistant/model"
)

// The two fallback states are deliberately distinct. NotConfigured is a
// permanent, process-lifetime condition and reads as a warm opener, not an
// apology; CallFailed is a single-request fault and reads as an apology that
// steers toward a booked call.

func (o *Orchestrator) notConfiguredResponse(conversationID string) model.Response {
	return model.Response{
		Message:         o.fallback.NotConfiguredMessage,
		Type:            model.TypeDiscovery,
		SuggestedAction: model.ActionLearnMore,
		ConversationID:  conversationID,
		Timestamp:       o.now().UTC(),
	}
}

func (o *Orchestrator) unavailableResponse(conversationID string) model.Response {
	return model.Response{
		Message:         o.fallback.UnavailableMessage,
		Type:            model.TypeError,
		SuggestedAction: model.ActionBookCall,
		ConversationID:  conversationID,
		Timestamp:       o.now().UTC(),
	}
}
