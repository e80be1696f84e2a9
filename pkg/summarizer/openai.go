package summarizer

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// maxExcerpts bounds how many member excerpts are sent per request.
const maxExcerpts = 8

// OpenAI summarizes clusters through the OpenAI chat completion API.
//
// On any API failure the caller should fall back to the heuristic summary;
// the existing template is never worse than a missing one.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-backed summarizer. model defaults to
// gpt-4o-mini when empty.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// SummarizeCluster asks the model for a single-sentence summary of the
// cluster's excerpts.
func (o *OpenAI) SummarizeCluster(ctx context.Context, topic string, memberCount int, excerpts []string) (string, error) {
	if len(excerpts) > maxExcerpts {
		excerpts = excerpts[:maxExcerpts]
	}

	prompt := fmt.Sprintf(
		"Summarize the following %d related memory fragments about %q in one sentence. Reply with the sentence only.\n\n%s",
		memberCount, topic, strings.Join(excerpts, "\n"),
	)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You compress clusters of episodic memories into terse one-sentence summaries."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarizer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarizer: empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
