package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic writes lines with the Claude Messages API.
type Anthropic struct {
	client anthropic.Client
	models ModelSet
}

// NewAnthropic builds a client. Extra options (base URL, HTTP client) are
// passed to the SDK.
func NewAnthropic(apiKey string, models ModelSet, opts ...option.RequestOption) (*Anthropic, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Anthropic{client: anthropic.NewClient(opts...), models: models}, nil
}

func (a *Anthropic) Line(ctx context.Context, p Prompt) (Reply, error) {
	model := a.models.For(p.Lang)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(p.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: system(p)}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(p.Text))},
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return Reply{}, statusError(apiErr.StatusCode, err)
		}
		return Reply{}, &Error{Kind: KindUnavailable, Err: err}
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	reply := Reply{
		Model:        string(msg.Model),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		return reply, &Error{Kind: KindTruncated, Raw: text.String()}
	}
	reply.Line, err = decodeLine(text.String())
	return reply, err
}

func (a *Anthropic) ModelID() string { return a.models.Default }
