package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
	"github.com/agenthands/praline/internal/llm"
)

// Composer turns a context bundle into answer text, preferring the
// generation model when one is configured and falling back to
// deterministic templates on any generation failure.
type Composer struct {
	llm llm.Client
}

func New(client llm.Client) *Composer {
	return &Composer{llm: client}
}

// Compose returns the answer text and whether it was model-generated.
func (c *Composer) Compose(ctx context.Context, query string, res intent.Result, entities []string, bundle *model.ContextBundle, sources []string) (string, bool) {
	contextText := FormatContext(bundle)

	if c.llm != nil && contextText != "" {
		system := systemPrompt(res.Category, entities)
		user := userPrompt(query, contextText, sources)

		answer, err := c.llm.Chat(ctx, system, user)
		if err == nil && strings.TrimSpace(answer) != "" {
			return strings.TrimSpace(answer), true
		}
		log.Warn().Err(err).Msg("generation failed, using deterministic answer")
	}

	return c.deterministic(query, res, entities, bundle, contextText), false
}

func systemPrompt(intentCategory string, entities []string) string {
	leadershipContext := ""
	if intentCategory == intent.CategoryCEO {
		leadershipContext = `
IMPORTANT: When answering questions about leadership, CEO, or "who runs" the company:
- Nestlé global CEO is Mark Schneider
- Nestlé Canada is a subsidiary of the global Nestlé company
- Always mention the global leadership when asked about "who runs Nestlé" or "who is the CEO"
`
	}

	entityText := "None"
	if len(entities) > 0 {
		entityText = strings.Join(entities, ", ")
	}

	return fmt.Sprintf(`You are a knowledgeable and friendly AI assistant for Nestlé Canada. You help customers learn about Nestlé products, company information, sustainability efforts, and more.

GUIDELINES:
1. Use ONLY the information provided in the context - do not add information not given
2. Be conversational, helpful, and maintain Nestlé's "Good Food, Good Life" spirit
3. If the context doesn't fully answer the question, acknowledge this and suggest visiting madewithnestle.ca
4. Keep responses informative but concise (2-4 paragraphs maximum)
5. Always be accurate and never make up information
6. Focus on being helpful and customer-oriented
%s
CURRENT QUERY CONTEXT:
- Intent: %s
- Mentioned entities: %s

Respond naturally and helpfully based on the provided context. If information is missing, guide users to appropriate resources.`, leadershipContext, intentCategory, entityText)
}

func userPrompt(query, contextText string, sources []string) string {
	if contextText == "" {
		contextText = "No specific information found in knowledge base."
	}

	var sourceLines []string
	for _, source := range sources {
		sourceLines = append(sourceLines, "- "+source)
	}
	if len(sourceLines) == 0 {
		sourceLines = []string{"- https://www.madewithnestle.ca"}
	}

	return fmt.Sprintf(`Customer Question: %s

Available Information from Knowledge Base:
%s

Additional Resources Available:
%s

Please provide a helpful and accurate response using the available information. If the information doesn't fully answer the question, acknowledge what you can share and suggest where they can find more complete information.`,
		query, contextText, strings.Join(sourceLines, "\n"))
}
