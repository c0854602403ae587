package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

const (
	dayIcon   = "🍎"
	emptyIcon = "·"
)

// Terminal renders r as a styled block for the terminal, width columns wide.
func Terminal(r Report, width int) string {
	if width <= 0 {
		width = 72
	}
	title := theme.Title.Width(width).Render("Parent Report")

	if r.Empty() {
		return title + "\n\n" + theme.Subtitle.Width(width).Render("No activity yet. Play a game to start the garden.")
	}

	totals := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Minutes", r.Minutes),
		statCard("Words", r.WordsLearned),
		statCard("Stars", r.Stars),
		statCard("Stickers", r.Stickers),
	)

	var week strings.Builder
	week.WriteString(theme.Body.Bold(true).Render("This week") + "\n")
	for _, d := range r.Week {
		fmt.Fprintf(&week, "%-6s %s %s\n",
			d.Label,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(dayBar(d)),
			theme.Hint.Render(fmt.Sprintf("%d words, %d stars", d.Words, d.Stars)),
		)
	}

	var modules strings.Builder
	modules.WriteString(theme.Body.Bold(true).Render("Modules") + "\n")
	for _, m := range r.Modules {
		lock := "🔒"
		if m.Unlocked {
			lock = "  "
		}
		fmt.Fprintf(&modules, "%s %s %-18s %s %d/%d\n",
			lock, m.Icon, m.Title, progressBar(m.Fraction(), 16), m.Learned, m.Total)
	}

	var words strings.Builder
	words.WriteString(theme.Body.Bold(true).Render("Learned words") + "\n")
	if len(r.Words) == 0 {
		words.WriteString(theme.Hint.Render("none yet"))
	}
	for i, w := range r.Words {
		if i > 0 {
			words.WriteString("  ")
		}
		words.WriteString(w.Emoji + " " + w.Text)
	}

	body := strings.Join([]string{totals, week.String(), modules.String(), words.String()}, "\n")
	return title + "\n\n" + theme.Card.Width(width).Render(body)
}

func statCard(label string, n int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprint(n)) + "\n" + theme.Hint.Render(label))
}

func dayBar(d Day) string {
	n := d.Icons()
	return strings.Repeat(dayIcon, n) + strings.Repeat(emptyIcon, MaxDayIcons-n)
}

func progressBar(frac float64, width int) string {
	filled := min(max(int(frac*float64(width)), 0), width)
	return lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled))
}

// Text renders r without styling, for logs and the plain email part.
func Text(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word Garden report (%s)\n\n", r.GeneratedAt.Format("2006-01-02"))
	if r.Empty() {
		b.WriteString("No activity yet.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Practice minutes: %d\nWords learned:    %d\nStars earned:     %d\nStickers:         %d\n",
		r.Minutes, r.WordsLearned, r.Stars, r.Stickers)

	if len(r.Week) > 0 {
		b.WriteString("\nThis week\n")
		for _, d := range r.Week {
			fmt.Fprintf(&b, "  %-6s %2d words  %3d stars\n", d.Label, d.Words, d.Stars)
		}
	}

	b.WriteString("\nModules\n")
	for _, m := range r.Modules {
		state := "locked"
		if m.Unlocked {
			state = "open"
		}
		fmt.Fprintf(&b, "  %-20s %d/%d (%s)\n", m.Title, m.Learned, m.Total, state)
	}

	if len(r.Words) > 0 {
		texts := make([]string, len(r.Words))
		for i, w := range r.Words {
			texts[i] = w.Text
		}
		fmt.Fprintf(&b, "\nLearned words: %s\n", strings.Join(texts, ", "))
	}
	return b.String()
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"bar": dayBar,
	"pct": func(f float64) int { return int(f * 100) },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Word Garden report</title></head>
<body style="font-family: Arial, sans-serif; color: #1E293B; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #8B5CF6;">Word Garden report</h1>
  <p style="color: #64748B;">{{.GeneratedAt.Format "Monday, 2 January 2006"}}</p>
{{- if .Empty}}
  <p>No activity yet.</p>
{{- else}}
  <table style="width: 100%; text-align: center; margin: 20px 0;">
    <tr>
      <td><strong style="font-size: 24px;">{{.Minutes}}</strong><br>minutes</td>
      <td><strong style="font-size: 24px;">{{.WordsLearned}}</strong><br>words</td>
      <td><strong style="font-size: 24px;">{{.Stars}}</strong><br>stars</td>
      <td><strong style="font-size: 24px;">{{.Stickers}}</strong><br>stickers</td>
    </tr>
  </table>
{{- with .Week}}
  <h2>This week</h2>
  <table>
  {{- range .}}
    <tr><td>{{.Label}}</td><td>{{bar .}}</td><td>{{.Words}} words, {{.Stars}} stars</td></tr>
  {{- end}}
  </table>
{{- end}}
  <h2>Modules</h2>
  <ul>
  {{- range .Modules}}
    <li>{{.Icon}} {{.Title}}: {{.Learned}}/{{.Total}} ({{pct .Fraction}}%){{if not .Unlocked}} &#128274;{{end}}</li>
  {{- end}}
  </ul>
{{- with .Words}}
  <h2>Learned words</h2>
  <p>{{range $i, $w := .}}{{if $i}}, {{end}}{{$w.Emoji}} {{$w.Text}}{{end}}</p>
{{- end}}
{{- end}}
</body>
</html>
`))

// HTML renders r as an email body.
func HTML(r Report) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render report html: %w", err)
	}
	return buf.String(), nil
}
