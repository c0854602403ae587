package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/speech"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Say text with the configured voice, for checking audio setup",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := parseLang(cmd)
		if err != nil {
			return err
		}
		style, _ := cmd.Flags().GetString("style")
		rate, _ := cmd.Flags().GetFloat64("rate")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		text := strings.Join(args, " ")
		var u speech.Utterance
		switch style {
		case "word":
			u = speech.Word(text, lang, rate)
		case "guided":
			u = speech.Guided(text, lang)
		case "mascot":
			u = speech.MascotLine(text, lang, e.catalog.MascotFor(lang, "").Name)
		case "feedback":
			u = speech.Feedback(text, lang)
		default:
			return fmt.Errorf("unknown style %q", style)
		}

		voice := newVoice(cmd.Context(), e.cfg.Speech, e.log, nil)
		return voice.Speak(cmd.Context(), u)
	},
}

func init() {
	speakCmd.Flags().String("lang", "", "Language of the text (default pt)")
	speakCmd.Flags().String("style", "word", "Reading style: word, guided, mascot or feedback")
	speakCmd.Flags().Float64("rate", 1.0, "Speaking rate for the word style")
}
