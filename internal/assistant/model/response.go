package model

import (
	"encoding/json"
	"time"
)

// ResponseType is the coarse category assigned to an assistant reply.
type ResponseType string

const (
	TypeServiceInquiry ResponseType = "service_inquiry"
	TypeDiscovery      ResponseType = "discovery"
	TypeServiceInfo    ResponseType = "service_info"
	TypeGeneral        ResponseType = "general"
	TypeError          ResponseType = "error"
)

// SuggestedAction tells the surrounding UI which call-to-action to render.
// ActionNone serializes as JSON null to keep the widget contract.
type SuggestedAction string

const (
	ActionNone      SuggestedAction = ""
	ActionBookCall  SuggestedAction = "book_call"
	ActionLearnMore SuggestedAction = "learn_more"
)

func (a SuggestedAction) MarshalJSON() ([]byte, error) {
	if a == ActionNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

func (a *SuggestedAction) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ActionNone
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a = SuggestedAction(s)
	return nil
}

// Classification is the result of the deterministic reply scan. It is
// derived per reply and never stored on its own.
type Classification struct {
	Type            ResponseType
	SuggestedAction SuggestedAction
}

// Response is the terminal output for every inbound message. Cached
// responses are shared across conversations by cache key; ConversationID is
// overwritten on each return and carries no other per-conversation identity.
type Response struct {
	Message         string          `json:"message"`
	Type            ResponseType    `json:"type"`
	SuggestedAction SuggestedAction `json:"suggestedAction"`
	ConversationID  string          `json:"conversationId"`
	Timestamp       time.Time       `json:"timestamp"`
	Cached          bool            `json:"cached,omitempty"`
}

// ChatInput is the transport-agnostic inbound message. Validation
// (length, type, sanitization) happens at the transport layer before the
// core sees it.
type ChatInput struct {
	ConversationID string         `json:"conversationId"`
	Message        string         `json:"message"`
	Context        map[string]any `json:"context,omitempty"`
}
