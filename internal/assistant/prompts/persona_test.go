package prompts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumena-studio/concierge/internal/assistant/model"
	"github.com/lumena-studio/concierge/internal/assistant/prompts"
)

func TestRenderPersonaSystem(t *testing.T) {
	cfg := model.PersonaConfig{
		AssistantName: "Skye",
		BusinessName:  "Lumena Studio",
		PrincipalName: "Jordan",
	}

	out, err := prompts.RenderPersonaSystem(context.Background(), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "You are Skye")
	assert.Contains(t, out, "Lumena Studio")
	assert.Contains(t, out, "Jordan")
	// knowledge base is interpolated verbatim
	assert.Contains(t, out, "SERVICES OVERVIEW")
	assert.Contains(t, out, "WEB DESIGN & DEVELOPMENT")
	// no unexpanded template variables left behind
	assert.NotContains(t, out, "{{")
}

func TestRenderPersonaSystemIsPersonaAgnostic(t *testing.T) {
	cfg := model.PersonaConfig{
		AssistantName: "Nova",
		BusinessName:  "Acme Digital",
		PrincipalName: "Sam",
	}

	out, err := prompts.RenderPersonaSystem(context.Background(), cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "You are Nova")
	assert.Contains(t, out, "Acme Digital")
	assert.NotContains(t, out, "Skye")
}
