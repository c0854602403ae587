package speech

import (
	"context"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/abhisek/wordgarden/internal/catalog"
)

type fakeGenerator struct {
	calls  int
	prompt string
	cfg    *genai.GenerateContentConfig
	pcm    []byte
	err    error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.cfg = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{
				InlineData: &genai.Blob{Data: f.pcm, MIMEType: "audio/L16;codec=pcm;rate=24000"},
			}}},
		}},
	}, nil
}

func TestWrapPCMHeader(t *testing.T) {
	pcm := make([]byte, 480)
	wav := wrapPCM(pcm, SampleRate, Channels, BitsPerSample)

	require.Len(t, wav, 44+len(pcm))
	assert.True(t, isWAV(wav))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]))
	assert.Equal(t, uint32(SampleRate), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(SampleRate*2), binary.LittleEndian.Uint32(wav[28:32]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.False(t, isWAV(pcm))
}

func TestCacheDiskRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)

	key := CacheKey(Word("Maçã", catalog.Portuguese, 1))
	require.NoError(t, c.Put(key, []byte("audio")))

	fresh, err := NewCache(dir)
	require.NoError(t, err)
	data, ok := fresh.Get(key)
	require.True(t, ok)
	assert.Equal(t, []byte("audio"), data)
	assert.Equal(t, 1, fresh.Len())

	_, ok = fresh.Get("missing")
	assert.False(t, ok)
}

func TestCacheKeySeparatesStyles(t *testing.T) {
	word := CacheKey(Word("Dog", catalog.English, 1))
	assert.NotEqual(t, word, CacheKey(Guided("Dog", catalog.English)))
	assert.NotEqual(t, word, CacheKey(Word("Dog", catalog.Spanish, 1)))
	assert.Equal(t, word, CacheKey(Word("Dog", catalog.English, 0.5)), "rate is applied at playback")
}

func TestGeminiSynthWrapsAndCaches(t *testing.T) {
	gen := &fakeGenerator{pcm: make([]byte, 100)}
	s := newGeminiSynth(gen, GeminiOptions{})

	u := Word("Banana", catalog.Italian, 1)
	wav, err := s.Synthesize(context.Background(), u)
	require.NoError(t, err)
	assert.True(t, isWAV(wav))
	assert.Len(t, wav, 144)

	require.NoError(t, s.Prefetch(context.Background(), u))
	assert.Equal(t, 1, gen.calls, "second call served from cache")

	require.NotNil(t, gen.cfg.SpeechConfig)
	assert.Equal(t, DefaultVoice, gen.cfg.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
	assert.Equal(t, []string{"AUDIO"}, gen.cfg.ResponseModalities)
	assert.Contains(t, gen.prompt, `"Banana"`)
	assert.Contains(t, gen.prompt, "Calm, clear, steady")
}

func TestGeminiSynthErrors(t *testing.T) {
	s := newGeminiSynth(&fakeGenerator{err: errors.New("quota")}, GeminiOptions{})
	_, err := s.Synthesize(context.Background(), Word("Sol", catalog.Portuguese, 1))
	assert.ErrorContains(t, err, "quota")

	s = newGeminiSynth(&fakeGenerator{}, GeminiOptions{})
	_, err = s.Synthesize(context.Background(), Word("Sol", catalog.Portuguese, 1))
	assert.ErrorIs(t, err, ErrNoAudio)

	_, err = s.Synthesize(context.Background(), Word("  ", catalog.Portuguese, 1))
	assert.Error(t, err)
}

func TestInstructionStyles(t *testing.T) {
	assert.Contains(t, Instruction(Guided("Gato", catalog.Spanish)), "syllable by syllable")
	m := Instruction(MascotLine("Olá!", catalog.Portuguese, "Tico"))
	assert.Contains(t, m, "You are Tico")
	assert.Contains(t, m, "DO NOT make animal noises")
	assert.True(t, strings.HasPrefix(Instruction(Feedback("Bravo!", catalog.Italian)), "Say this positive feedback phrase"))
}

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name, args})
	return f.err
}

func TestLocalVoiceArgs(t *testing.T) {
	r := &fakeRunner{}
	v := NewLocalVoice("", r.run)

	require.NoError(t, v.Speak(context.Background(), Word("Maçã", catalog.Portuguese, 1.0)))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "espeak-ng", r.calls[0].name)
	assert.Equal(t, []string{"-v", "pt-br", "-s", "140", "Maçã"}, r.calls[0].args)

	assert.Equal(t, []string{"-v", "cmn", "-s", "105", "狗"}, v.Args(Word("狗", catalog.Mandarin, 0.75)))
}

func TestPlayerAppendsFile(t *testing.T) {
	r := &fakeRunner{}
	p := NewPlayer("aplay -q", r.run)

	require.NoError(t, p.Play(context.Background(), []byte("RIFF")))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "aplay", r.calls[0].name)
	require.Len(t, r.calls[0].args, 2)
	assert.Equal(t, "-q", r.calls[0].args[0])
	assert.True(t, strings.HasSuffix(r.calls[0].args[1], ".wav"))
}

type stubSynth struct {
	err   error
	calls int
}

func (s *stubSynth) Synthesize(context.Context, Utterance) ([]byte, error) {
	s.calls++
	return []byte("wav"), s.err
}

type stubPlayer struct {
	played int
	err    error
}

func (p *stubPlayer) Play(context.Context, []byte) error {
	p.played++
	return p.err
}

type stubSpeaker struct{ said []Utterance }

func (s *stubSpeaker) Speak(_ context.Context, u Utterance) error {
	s.said = append(s.said, u)
	return errors.New("no espeak")
}

func TestBestEffortPrefersSynth(t *testing.T) {
	synth, player, local := &stubSynth{}, &stubPlayer{}, &stubSpeaker{}
	b := NewBestEffort(BestEffortOptions{Synth: synth, Player: player, Local: local})

	require.NoError(t, b.Speak(context.Background(), Word("Sun", catalog.English, 1)))
	assert.Equal(t, 1, player.played)
	assert.Empty(t, local.said)
}

func TestBestEffortFallsBack(t *testing.T) {
	synth, player, local := &stubSynth{err: errors.New("offline")}, &stubPlayer{}, &stubSpeaker{}
	b := NewBestEffort(BestEffortOptions{Synth: synth, Player: player, Local: local})

	assert.NoError(t, b.Speak(context.Background(), Word("Sun", catalog.English, 1)), "never fails")
	assert.Equal(t, 0, player.played)
	assert.Len(t, local.said, 1)

	synth.err = nil
	player.err = errors.New("no device")
	assert.NoError(t, b.Speak(context.Background(), Word("Sun", catalog.English, 1)))
	assert.Len(t, local.said, 2)
}

func TestBestEffortDisabled(t *testing.T) {
	synth, local := &stubSynth{}, &stubSpeaker{}
	b := NewBestEffort(BestEffortOptions{Synth: synth, Player: &stubPlayer{}, Local: local, Enabled: func() bool { return false }})

	require.NoError(t, b.Speak(context.Background(), Word("Sun", catalog.English, 1)))
	b.Prefetch(context.Background(), Word("Sun", catalog.English, 1))
	assert.Equal(t, 0, synth.calls)
	assert.Empty(t, local.said)
}

func TestSilent(t *testing.T) {
	var s Speaker = Silent{}
	assert.NoError(t, s.Speak(context.Background(), Word("x", catalog.English, 1)))
}
