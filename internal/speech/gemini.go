package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Defaults for Gemini TTS.
const (
	DefaultTTSModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice    = "Kore"
)

// ErrNoAudio is returned when a response carries no audio part.
var ErrNoAudio = errors.New("speech: response has no audio")

// Synthesizer renders an utterance to WAV bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, u Utterance) ([]byte, error)
}

// contentGenerator is the slice of the genai client used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSynth calls Gemini TTS and caches the audio.
type GeminiSynth struct {
	gen   contentGenerator
	model string
	voice string
	cache *Cache
}

// GeminiOptions configures NewGeminiSynth.
type GeminiOptions struct {
	APIKey string
	Model  string
	Voice  string
	Cache  *Cache
}

func NewGeminiSynth(ctx context.Context, opts GeminiOptions) (*GeminiSynth, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required for speech")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return newGeminiSynth(client.Models, opts), nil
}

func newGeminiSynth(gen contentGenerator, opts GeminiOptions) *GeminiSynth {
	if opts.Model == "" {
		opts.Model = DefaultTTSModel
	}
	if opts.Voice == "" {
		opts.Voice = DefaultVoice
	}
	if opts.Cache == nil {
		opts.Cache, _ = NewCache("")
	}
	return &GeminiSynth{gen: gen, model: opts.Model, voice: opts.Voice, cache: opts.Cache}
}

// Synthesize returns cached audio or asks Gemini for it.
func (g *GeminiSynth) Synthesize(ctx context.Context, u Utterance) ([]byte, error) {
	if strings.TrimSpace(u.Text) == "" {
		return nil, fmt.Errorf("speech: empty text")
	}
	key := CacheKey(u)
	if data, ok := g.cache.Get(key); ok {
		return data, nil
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}
	resp, err := g.gen.GenerateContent(ctx, g.model, genai.Text(Instruction(u)), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini tts: %w", err)
	}
	pcm, err := audioPart(resp)
	if err != nil {
		return nil, err
	}

	wav := pcm
	if !isWAV(pcm) {
		wav = wrapPCM(pcm, SampleRate, Channels, BitsPerSample)
	}
	// A failed disk write still leaves the memory copy.
	_ = g.cache.Put(key, wav)
	return wav, nil
}

// Prefetch warms the cache for u.
func (g *GeminiSynth) Prefetch(ctx context.Context, u Utterance) error {
	_, err := g.Synthesize(ctx, u)
	return err
}

func audioPart(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoAudio
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
			return p.InlineData.Data, nil
		}
	}
	return nil, ErrNoAudio
}
