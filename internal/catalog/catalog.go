// Package catalog holds the static learning content: words, modules,
// logic sequences, mascots and per-language themes.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Language is a target language code.
type Language string

const (
	English    Language = "en"
	Spanish    Language = "es"
	French     Language = "fr"
	Italian    Language = "it"
	Mandarin   Language = "zh"
	Portuguese Language = "pt"
)

// DefaultLanguage is the language a new session starts in.
const DefaultLanguage = Portuguese

// ParseLanguage returns the Language for a code, or false if unknown.
func ParseLanguage(code string) (Language, bool) {
	switch l := Language(code); l {
	case English, Spanish, French, Italian, Mandarin, Portuguese:
		return l, true
	}
	return "", false
}

// WordItem is a vocabulary entry.
type WordItem struct {
	ID           string              `yaml:"id"`
	Category     string              `yaml:"category"`
	Emoji        string              `yaml:"emoji"`
	ImageRef     string              `yaml:"image"`
	Translations map[Language]string `yaml:"translations"`
}

// Text returns the word in lang, falling back to English and then the id.
func (w WordItem) Text(lang Language) string {
	if t := w.Translations[lang]; t != "" {
		return t
	}
	if t := w.Translations[English]; t != "" {
		return t
	}
	return w.ID
}

// SequencePart places one word at its canonical position in a phrase.
type SequencePart struct {
	WordID string `yaml:"word"`
	Order  int    `yaml:"order"`
}

// LogicSequence is an ordering exercise. Its difficulty is len(Parts).
type LogicSequence struct {
	ID                 string              `yaml:"id"`
	PhraseTranslations map[Language]string `yaml:"phrase"`
	Parts              []SequencePart      `yaml:"parts"`
}

// Module groups words (and optionally sequences) into a unit of play.
type Module struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Icon        string   `yaml:"icon"`
	WordIDs     []string `yaml:"words"`
	SequenceIDs []string `yaml:"sequences"`

	// Requires lists the module ids that gate this one. A nil list means
	// "the module listed just before this one".
	Requires []string `yaml:"requires"`
}

// Mascot is a companion character.
type Mascot struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
	Personality string `yaml:"personality"`
}

// LanguageTheme is the scenario a language is played in.
type LanguageTheme struct {
	Scenario string `yaml:"scenario"`
	Icon     string `yaml:"icon"`
	MascotID string `yaml:"mascot"`
	Welcome  string `yaml:"welcome"`
}

// LanguageInfo describes a selectable language.
type LanguageInfo struct {
	Code   Language      `yaml:"code"`
	Label  string        `yaml:"label"`
	Native string        `yaml:"native"`
	Flag   string        `yaml:"flag"`
	Theme  LanguageTheme `yaml:"theme"`
}

// Catalog is the full, read-only content set with lookup indices.
type Catalog struct {
	Languages []LanguageInfo  `yaml:"languages"`
	Mascots   []Mascot        `yaml:"mascots"`
	Words     []WordItem      `yaml:"words"`
	Sequences []LogicSequence `yaml:"sequences"`
	Modules   []Module        `yaml:"modules"`

	words     map[string]*WordItem
	sequences map[string]*LogicSequence
	modules   map[string]int
	mascots   map[string]*Mascot
}

//go:embed catalog.yaml
var defaultYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file
// cannot be decoded, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load decodes a catalog from YAML.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML bytes and builds its indices.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c.build()
	return &c, nil
}

// New builds a catalog from in-memory content.
func New(words []WordItem, sequences []LogicSequence, modules []Module) *Catalog {
	c := &Catalog{Words: words, Sequences: sequences, Modules: modules}
	c.build()
	return c
}

func (c *Catalog) build() {
	for i := range c.Modules {
		if c.Modules[i].Requires == nil && i > 0 {
			c.Modules[i].Requires = []string{c.Modules[i-1].ID}
		}
	}

	c.words = make(map[string]*WordItem, len(c.Words))
	for i := range c.Words {
		c.words[c.Words[i].ID] = &c.Words[i]
	}
	c.sequences = make(map[string]*LogicSequence, len(c.Sequences))
	for i := range c.Sequences {
		c.sequences[c.Sequences[i].ID] = &c.Sequences[i]
	}
	c.modules = make(map[string]int, len(c.Modules))
	for i := range c.Modules {
		c.modules[c.Modules[i].ID] = i
	}
	c.mascots = make(map[string]*Mascot, len(c.Mascots))
	for i := range c.Mascots {
		c.mascots[c.Mascots[i].ID] = &c.Mascots[i]
	}
}

// Word returns a word by id.
func (c *Catalog) Word(id string) (WordItem, bool) {
	w, ok := c.words[id]
	if !ok {
		return WordItem{}, false
	}
	return *w, true
}

// Sequence returns a logic sequence by id.
func (c *Catalog) Sequence(id string) (LogicSequence, bool) {
	s, ok := c.sequences[id]
	if !ok {
		return LogicSequence{}, false
	}
	return *s, true
}

// Module returns a module by id.
func (c *Catalog) Module(id string) (Module, bool) {
	i, ok := c.modules[id]
	if !ok {
		return Module{}, false
	}
	return c.Modules[i], true
}

// ModuleIndex returns the position of a module in display order, or -1.
func (c *Catalog) ModuleIndex(id string) int {
	if i, ok := c.modules[id]; ok {
		return i
	}
	return -1
}

// Mascot returns a mascot by id.
func (c *Catalog) Mascot(id string) (Mascot, bool) {
	m, ok := c.mascots[id]
	if !ok {
		return Mascot{}, false
	}
	return *m, true
}

// Language returns the info for a language code.
func (c *Catalog) Language(code Language) (LanguageInfo, bool) {
	for _, l := range c.Languages {
		if l.Code == code {
			return l, true
		}
	}
	return LanguageInfo{}, false
}

// MascotFor picks the mascot for a language, honoring a preferred mascot id
// unless it is "default" or unknown.
func (c *Catalog) MascotFor(lang Language, preferred string) Mascot {
	if preferred != "" && preferred != "default" {
		if m, ok := c.Mascot(preferred); ok {
			return m
		}
	}
	if info, ok := c.Language(lang); ok {
		if m, ok := c.Mascot(info.Theme.MascotID); ok {
			return m
		}
	}
	if len(c.Mascots) > 0 {
		return c.Mascots[0]
	}
	return Mascot{ID: "default", Name: "Mascot"}
}

// ModuleWords resolves a module's word ids. Unknown ids are skipped.
func (c *Catalog) ModuleWords(m Module) []WordItem {
	out := make([]WordItem, 0, len(m.WordIDs))
	for _, id := range m.WordIDs {
		if w, ok := c.words[id]; ok {
			out = append(out, *w)
		}
	}
	return out
}

// ModuleSequences resolves a module's sequence ids. Unknown ids are skipped.
func (c *Catalog) ModuleSequences(m Module) []LogicSequence {
	out := make([]LogicSequence, 0, len(m.SequenceIDs))
	for _, id := range m.SequenceIDs {
		if s, ok := c.sequences[id]; ok {
			out = append(out, *s)
		}
	}
	return out
}
