package llm

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordgarden/internal/catalog"
)

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"line":"Muito bem, Ana!"}`, "Muito bem, Ana!"},
		{"trimmed", `  {"line":"  Bravo!  "}  `, "Bravo!"},
		{"fenced", "```json\n{\"line\":\"Très bien!\"}\n```", "Très bien!"},
		{"sixty mandarin runes", `{"line":"` + strings.Repeat("好", MaxLineRunes) + `"}`, strings.Repeat("好", MaxLineRunes)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeLine(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLineRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `Great job!`},
		{"missing line", `{"text":"Great job!"}`},
		{"extra field", `{"line":"Great job!","emoji":"🎉"}`},
		{"too long", `{"line":"` + strings.Repeat("a", MaxLineRunes+1) + `"}`},
		{"blank", `{"line":"   "}`},
		{"wrong type", `{"line":7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeLine(tt.raw)
			require.Error(t, err)
			assert.Equal(t, KindMalformed, KindOf(err))

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.raw, e.Raw)
		})
	}
}

func TestSystemAddsReplyFormat(t *testing.T) {
	assert.Equal(t, replyFormat, system(Prompt{}))
	got := system(Prompt{System: "Be calm."})
	assert.True(t, strings.HasPrefix(got, "Be calm.\n"))
	assert.True(t, strings.HasSuffix(got, replyFormat))
}

func TestModelSetFor(t *testing.T) {
	m := ModelSet{Default: "small", ByLang: map[catalog.Language]string{catalog.Mandarin: "zh-strong", catalog.French: ""}}
	assert.Equal(t, "zh-strong", m.For(catalog.Mandarin))
	assert.Equal(t, "small", m.For(catalog.French), "empty override falls back")
	assert.Equal(t, "small", m.For(catalog.Portuguese))
	assert.Equal(t, "small", ModelSet{Default: "small"}.For(catalog.English))
}

func TestErrorKinds(t *testing.T) {
	wrapped := &Error{Kind: KindRateLimited, RetryAfter: time.Second, Err: errors.New("429")}
	assert.Equal(t, KindRateLimited, KindOf(wrapped))
	assert.Equal(t, "llm: rate limited: 429", wrapped.Error())
	assert.Equal(t, "llm: truncated", (&Error{Kind: KindTruncated}).Error())
	assert.Equal(t, KindUnavailable, KindOf(errors.New("dial tcp: refused")))

	assert.Equal(t, KindRateLimited, KindOf(statusError(429, errors.New("x"))))
	assert.Equal(t, KindUnavailable, KindOf(statusError(503, errors.New("x"))))
}

func TestLookupCost(t *testing.T) {
	for _, id := range defaultModels {
		assert.NotNil(t, LookupCost(id), "default model %s has a price", id)
	}
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 2.8, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.Nil(t, LookupCost("no-such-model"))
}
