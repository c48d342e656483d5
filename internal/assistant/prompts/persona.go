package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/lumena-studio/concierge/internal/assistant/model"
)

//go:embed template/persona_prompt.txt
var personaTemplate string

//go:embed template/knowledge_base.txt
var knowledgeBase string

// RenderPersonaSystem renders the persona system instruction with the static
// knowledge base interpolated. The persona text is opaque to the rest of the
// core; any template satisfying the system-instruction-first contract works.
func RenderPersonaSystem(ctx context.Context, config model.PersonaConfig) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(personaTemplate),
	)
	vars := map[string]any{
		"AssistantName": config.AssistantName,
		"BusinessName":  config.BusinessName,
		"PrincipalName": config.PrincipalName,
		"KnowledgeBase": knowledgeBase,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("persona prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("persona prompt render: empty result")
	}
	return msgs[0].Content, nil
}
