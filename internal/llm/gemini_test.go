package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/abhisek/wordgarden/internal/catalog"
)

type fakeGenerator struct {
	model string
	cfg   *genai.GenerateContentConfig
	res   *genai.GenerateContentResponse
	err   error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, _ []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.cfg = model, cfg
	return f.res, f.err
}

func geminiAnswer(text string, finish genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
			FinishReason: finish,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 40, CandidatesTokenCount: 6},
	}
}

func TestGeminiLine(t *testing.T) {
	gen := &fakeGenerator{res: geminiAnswer(`{"line":"你真棒！"}`, genai.FinishReasonStop)}
	g := &Gemini{gen: gen, models: ModelSet{Default: "gemini-2.5-flash-lite", ByLang: map[catalog.Language]string{catalog.Mandarin: "gemini-2.5-flash"}}}

	reply, err := g.Line(context.Background(), Prompt{Lang: catalog.Mandarin, System: "Be calm.", Text: "Praise.", MaxTokens: 80, Temperature: 0.8})
	require.NoError(t, err)
	assert.Equal(t, "你真棒！", reply.Line)
	assert.Equal(t, "gemini-2.5-flash", reply.Model)
	assert.Equal(t, 40, reply.InputTokens)
	assert.Equal(t, 6, reply.OutputTokens)

	assert.Equal(t, "gemini-2.5-flash", gen.model)
	assert.Equal(t, int32(80), gen.cfg.MaxOutputTokens)
	assert.Equal(t, "application/json", gen.cfg.ResponseMIMEType)
	require.NotNil(t, gen.cfg.Temperature)
	assert.InDelta(t, 0.8, *gen.cfg.Temperature, 1e-6)
	assert.Equal(t, "gemini-2.5-flash-lite", g.ModelID())
}

func TestGeminiLineFailures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want Kind
	}{
		{"rate limited", &fakeGenerator{err: genai.APIError{Code: 429, Message: "quota"}}, KindRateLimited},
		{"server error", &fakeGenerator{err: genai.APIError{Code: 500}}, KindUnavailable},
		{"truncated", &fakeGenerator{res: geminiAnswer(`{"line":"Mui`, genai.FinishReasonMaxTokens)}, KindTruncated},
		{"prose", &fakeGenerator{res: geminiAnswer("Muito bem!", genai.FinishReasonStop)}, KindMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gemini{gen: tt.gen, models: ModelSet{Default: "m"}}
			_, err := g.Line(context.Background(), Prompt{Lang: catalog.Portuguese})
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}
