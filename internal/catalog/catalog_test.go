package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Words, 6)
	assert.Len(t, c.Modules, 3)
	assert.Len(t, c.Sequences, 2)
	assert.Len(t, c.Mascots, 8)
	assert.Len(t, c.Languages, 6)
}

func TestDefaultCatalogLinearChain(t *testing.T) {
	c := Default()

	assert.Empty(t, c.Modules[0].Requires)
	assert.Equal(t, []string{"fruits"}, c.Modules[1].Requires)
	assert.Equal(t, []string{"animals"}, c.Modules[2].Requires)

	prereqs := c.Prerequisites(2)
	require.Len(t, prereqs, 1)
	assert.Equal(t, "animals", prereqs[0].ID)

	assert.Nil(t, c.Prerequisites(-1))
	assert.Nil(t, c.Prerequisites(3))
	assert.Equal(t, []string{"animals"}, c.Dependents("fruits"))
	require.Len(t, c.Roots(), 1)
	assert.Equal(t, "fruits", c.Roots()[0].ID)
}

func TestWordText(t *testing.T) {
	c := Default()
	apple, ok := c.Word("apple")
	require.True(t, ok)

	tests := []struct {
		lang Language
		want string
	}{
		{Portuguese, "Maçã"},
		{English, "Apple"},
		{Mandarin, "苹果"},
		{Language("xx"), "Apple"},
	}
	for _, tt := range tests {
		if got := apple.Text(tt.lang); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestModuleResolution(t *testing.T) {
	c := Default()
	m, ok := c.Module("animals")
	require.True(t, ok)

	words := c.ModuleWords(m)
	require.Len(t, words, 2)
	assert.Equal(t, "dog", words[0].ID)

	seqs := c.ModuleSequences(m)
	require.Len(t, seqs, 1)
	assert.Equal(t, "dog-cat", seqs[0].ID)

	assert.Equal(t, 1, c.ModuleIndex("animals"))
	assert.Equal(t, -1, c.ModuleIndex("nope"))
}

func TestMascotFor(t *testing.T) {
	c := Default()

	assert.Equal(t, "kika", c.MascotFor(Portuguese, "default").ID)
	assert.Equal(t, "ming", c.MascotFor(Mandarin, "").ID)
	assert.Equal(t, "bela", c.MascotFor(English, "bela").ID)
	assert.Equal(t, "ollie", c.MascotFor(English, "ghost").ID)
}

func TestParseLanguage(t *testing.T) {
	l, ok := ParseLanguage("fr")
	assert.True(t, ok)
	assert.Equal(t, French, l)

	_, ok = ParseLanguage("de")
	assert.False(t, ok)
}

func TestLoadExplicitRequires(t *testing.T) {
	src := `
words:
  - {id: a, translations: {en: A}}
  - {id: b, translations: {en: B}}
  - {id: c, translations: {en: C}}
modules:
  - {id: one, words: [a]}
  - {id: two, words: [b], requires: []}
  - {id: three, words: [c], requires: [one, two]}
`
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Empty(t, c.Prerequisites(1))
	assert.Len(t, c.Prerequisites(2), 2)
	assert.Len(t, c.Roots(), 2)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("modules: [: :"))
	assert.Error(t, err)
}
