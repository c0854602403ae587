// Package speech turns catalog words and mascot lines into audio. The
// primary voice is Gemini TTS; a local espeak-ng voice is the fallback and
// silence the last resort.
package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/wordgarden/internal/catalog"
)

// Style picks the delivery instruction sent with the text.
type Style int

const (
	StyleWord Style = iota
	StyleGuided
	StyleMascot
	StyleFeedback
)

func (s Style) String() string {
	switch s {
	case StyleGuided:
		return "guided"
	case StyleMascot:
		return "mascot"
	case StyleFeedback:
		return "feedback"
	}
	return "word"
}

// Utterance is one thing to say.
type Utterance struct {
	Text  string
	Lang  catalog.Language
	Style Style

	// Mascot is the speaking character's name for StyleMascot.
	Mascot string

	// Rate scales playback speed; zero means 1.0.
	Rate float64
}

// Word is a plain word utterance at rate.
func Word(text string, lang catalog.Language, rate float64) Utterance {
	return Utterance{Text: text, Lang: lang, Style: StyleWord, Rate: rate}
}

// Guided asks for a slow syllable-by-syllable reading followed by a
// normal one.
func Guided(text string, lang catalog.Language) Utterance {
	return Utterance{Text: text, Lang: lang, Style: StyleGuided, Rate: 1.0}
}

// MascotLine is spoken in the mascot's calm character voice.
func MascotLine(text string, lang catalog.Language, mascot string) Utterance {
	return Utterance{Text: text, Lang: lang, Style: StyleMascot, Mascot: mascot, Rate: 0.9}
}

// Feedback is a short praise phrase in a happy voice.
func Feedback(text string, lang catalog.Language) Utterance {
	return Utterance{Text: text, Lang: lang, Style: StyleFeedback, Rate: 1.0}
}

func (u Utterance) rate() float64 {
	if u.Rate <= 0 {
		return 1.0
	}
	return u.Rate
}

// Speaker says utterances.
type Speaker interface {
	Speak(ctx context.Context, u Utterance) error
}

// Silent is a Speaker that says nothing.
type Silent struct{}

func (Silent) Speak(context.Context, Utterance) error { return nil }

// Instruction renders the TTS prompt for u.
func Instruction(u Utterance) string {
	var b strings.Builder
	switch u.Style {
	case StyleGuided:
		fmt.Fprintf(&b, "Speak the word %q in %s twice.\n", u.Text, u.Lang)
		b.WriteString("First time: Speak very slowly, syllable by syllable, clearly.\n")
		b.WriteString("Then pause for 2 seconds.\n")
		b.WriteString("Second time: Speak at a normal, friendly, and encouraging speed.")
	case StyleMascot:
		fmt.Fprintf(&b, "Roleplay: You are %s, a supportive companion for an autistic child.\n", u.Mascot)
		b.WriteString("Voice Personality: Very calm, patient, warm, and hyper-articulate.\n")
		b.WriteString("Target Audience: Autistic children (6-13 years).\n\n")
		b.WriteString("Instructions:\n")
		b.WriteString("1. Speak slowly and clearly.\n")
		b.WriteString("2. Use a soothing, reassuring tone.\n")
		b.WriteString("3. No loud surprises.\n")
		fmt.Fprintf(&b, "4. If %s is an animal, DO NOT make animal noises, just speak in a human voice with that character's vibe.\n\n", u.Mascot)
		fmt.Fprintf(&b, "Say this in %s: %q", u.Lang, u.Text)
	case StyleFeedback:
		fmt.Fprintf(&b, "Say this positive feedback phrase in a happy and encouraging voice: %s", u.Text)
	default:
		b.WriteString("Task: Speak the following word/phrase for an autistic child (age 6-13).\n")
		b.WriteString("Tone: Calm, clear, steady, and friendly.\n")
		b.WriteString("Rules:\n")
		b.WriteString("1. Articulate every syllable distinctly.\n")
		b.WriteString("2. Keep a steady pace. Do NOT speak too fast.\n")
		b.WriteString("3. Avoid sudden loudness or aggressive intonation.\n")
		b.WriteString("4. Be encouraging but not overstimulating.\n\n")
		fmt.Fprintf(&b, "Word/Phrase to speak in %s: %q", u.Lang, u.Text)
	}
	return b.String()
}
