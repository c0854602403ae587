package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterBaseURL is the OpenAI-compatible endpoint of OpenRouter.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAI writes lines with a chat-completions API: OpenAI itself, or
// OpenRouter and other compatible services behind baseURL.
type OpenAI struct {
	client *openai.Client
	models ModelSet
}

func NewOpenAI(apiKey, baseURL string, models ModelSet) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), models: models}, nil
}

func (o *OpenAI) Line(ctx context.Context, p Prompt) (Reply, error) {
	model := o.models.For(p.Lang)
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system(p)},
			{Role: openai.ChatMessageRoleUser, Content: p.Text},
		},
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		switch {
		case errors.As(err, &apiErr):
			return Reply{}, statusError(apiErr.HTTPStatusCode, err)
		case errors.As(err, &reqErr):
			return Reply{}, statusError(reqErr.HTTPStatusCode, err)
		}
		return Reply{}, &Error{Kind: KindUnavailable, Err: err}
	}

	reply := Reply{
		Model:        resp.Model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}
	if len(resp.Choices) == 0 {
		return reply, &Error{Kind: KindMalformed, Err: errors.New("no choices")}
	}
	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonLength {
		return reply, &Error{Kind: KindTruncated, Raw: choice.Message.Content}
	}
	reply.Line, err = decodeLine(choice.Message.Content)
	return reply, err
}

func (o *OpenAI) ModelID() string { return o.models.Default }
