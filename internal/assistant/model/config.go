package model

// ================ Config ================

type GatewayConfig struct {
	Model            string  `envconfig:"GATEWAY_MODEL" default:"gpt-3.5-turbo"`
	MaxTokens        int     `envconfig:"GATEWAY_MAX_TOKENS" default:"400"`
	Temperature      float32 `envconfig:"GATEWAY_TEMPERATURE" default:"0.7"`
	PresencePenalty  float32 `envconfig:"GATEWAY_PRESENCE_PENALTY" default:"0.1"`
	FrequencyPenalty float32 `envconfig:"GATEWAY_FREQUENCY_PENALTY" default:"0.1"`
}

type ConversationConfig struct {
	// WindowTurns bounds how many recent turns go into the prompt; the
	// stored transcript itself is only bounded by IdleTTL.
	WindowTurns int    `envconfig:"CONVERSATION_WINDOW_TURNS" default:"10"`
	IdleTTL     string `envconfig:"CONVERSATION_IDLE_TTL" default:"24h"`
}

type CacheConfig struct {
	TTL string `envconfig:"RESPONSE_CACHE_TTL" default:"1h"`
}

type PersonaConfig struct {
	AssistantName string `envconfig:"PERSONA_ASSISTANT_NAME" default:"Skye"`
	BusinessName  string `envconfig:"PERSONA_BUSINESS_NAME" default:"Lumena Studio"`
	PrincipalName string `envconfig:"PERSONA_PRINCIPAL_NAME" default:"Jordan"`
}

// FallbackConfig carries the canned replies served when the gateway is
// unavailable. NotConfigured reads as a warm opener; Unavailable reads as an
// apology steering toward a call. Keep that split when rewording.
type FallbackConfig struct {
	NotConfiguredMessage string `envconfig:"FALLBACK_NOT_CONFIGURED_MESSAGE" default:"Hi! I'm Skye, and I'm here to help you explore how Lumena Studio can grow your business. We specialize in digital marketing, web development, and brand development. What type of business do you have, and what's your biggest challenge in attracting new customers right now?"`
	UnavailableMessage   string `envconfig:"FALLBACK_UNAVAILABLE_MESSAGE" default:"I'm having trouble connecting to my AI brain right now, but I'd still love to help you learn about Lumena Studio! Let's set up a quick chat with Jordan and the team so we can talk through your needs directly. What type of business do you have?"`
}
