package speech

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/wordgarden/internal/catalog"
)

// playTimeout bounds one external audio command.
const playTimeout = 20 * time.Second

// Runner executes an external command. Tests replace it.
type Runner func(ctx context.Context, name string, args ...string) error

// ExecRunner runs the command and folds its output into the error.
func ExecRunner(ctx context.Context, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	ctx, cancel := context.WithTimeout(ctx, playTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w; out=%s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Player plays WAV audio through an external command.
type Player struct {
	cmd []string
	run Runner
}

// DefaultPlayerCmd is afplay on macOS and aplay elsewhere.
func DefaultPlayerCmd() string {
	if runtime.GOOS == "darwin" {
		return "afplay"
	}
	return "aplay -q"
}

// NewPlayer parses cmd ("aplay -q") and appends the file path on play.
func NewPlayer(cmd string, run Runner) *Player {
	if strings.TrimSpace(cmd) == "" {
		cmd = DefaultPlayerCmd()
	}
	if run == nil {
		run = ExecRunner
	}
	return &Player{cmd: strings.Fields(cmd), run: run}
}

// Play writes wav to a temp file and plays it to the end.
func (p *Player) Play(ctx context.Context, wav []byte) error {
	f, err := os.CreateTemp("", "wordgarden-*.wav")
	if err != nil {
		return fmt.Errorf("create temp audio: %w", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(wav); err != nil {
		f.Close()
		return fmt.Errorf("write temp audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	args := append(append([]string{}, p.cmd[1:]...), f.Name())
	return p.run(ctx, p.cmd[0], args...)
}

// espeakBaseWPM is espeak-ng's default speed.
const espeakBaseWPM = 175

// localRateScale slows the fallback voice relative to the requested rate.
const localRateScale = 0.8

// LocalVoice speaks through espeak-ng.
type LocalVoice struct {
	cmd string
	run Runner
}

func NewLocalVoice(cmd string, run Runner) *LocalVoice {
	if cmd == "" {
		cmd = "espeak-ng"
	}
	if run == nil {
		run = ExecRunner
	}
	return &LocalVoice{cmd: cmd, run: run}
}

// espeakVoices maps catalog languages to espeak-ng voice names.
var espeakVoices = map[catalog.Language]string{
	catalog.English:    "en",
	catalog.Spanish:    "es",
	catalog.French:     "fr",
	catalog.Italian:    "it",
	catalog.Mandarin:   "cmn",
	catalog.Portuguese: "pt-br",
}

// Args returns the espeak-ng arguments for u.
func (v *LocalVoice) Args(u Utterance) []string {
	voice, ok := espeakVoices[u.Lang]
	if !ok {
		voice = "en"
	}
	wpm := int(math.Round(espeakBaseWPM * u.rate() * localRateScale))
	return []string{"-v", voice, "-s", strconv.Itoa(wpm), u.Text}
}

func (v *LocalVoice) Speak(ctx context.Context, u Utterance) error {
	if strings.TrimSpace(u.Text) == "" {
		return nil
	}
	return v.run(ctx, v.cmd, v.Args(u)...)
}
