package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// generator is the slice of the genai client used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini writes lines with the Gemini API, the same vendor the speech
// layer uses.
type Gemini struct {
	gen    generator
	models ModelSet
}

func NewGemini(ctx context.Context, apiKey string, models ModelSet) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Gemini{gen: client.Models, models: models}, nil
}

// geminiLineSchema mirrors lineSchemaJSON in Gemini's schema dialect.
var geminiLineSchema = &genai.Schema{
	Type:       genai.TypeObject,
	Properties: map[string]*genai.Schema{"line": {Type: genai.TypeString}},
	Required:   []string{"line"},
}

func (g *Gemini) Line(ctx context.Context, p Prompt) (Reply, error) {
	model := g.models.For(p.Lang)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system(p), genai.RoleUser),
		MaxOutputTokens:   int32(p.MaxTokens),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    geminiLineSchema,
	}
	if p.Temperature > 0 {
		t := float32(p.Temperature)
		cfg.Temperature = &t
	}

	res, err := g.gen.GenerateContent(ctx, model, genai.Text(p.Text), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return Reply{}, statusError(apiErr.Code, err)
		}
		return Reply{}, &Error{Kind: KindUnavailable, Err: err}
	}

	reply := Reply{Model: model}
	if u := res.UsageMetadata; u != nil {
		reply.InputTokens = int(u.PromptTokenCount)
		reply.OutputTokens = int(u.CandidatesTokenCount)
	}
	if len(res.Candidates) > 0 && res.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		return reply, &Error{Kind: KindTruncated, Raw: res.Text()}
	}
	reply.Line, err = decodeLine(res.Text())
	return reply, err
}

func (g *Gemini) ModelID() string { return g.models.Default }
