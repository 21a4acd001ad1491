package tui

import (
	"fmt"
	"strings"

	"serpsim/internal/app"

	"github.com/mattn/go-runewidth"
)

// Placeholder copy shown before the user has typed anything.
const (
	placeholderTitle = "Your Page Title"
	placeholderDesc  = "Your meta description appears here..."
)

// fitCells trims a line to a number of terminal columns. This measures
// display cells, not SERP pixels; the two units are unrelated.
func fitCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// wrapCells greedily wraps text into lines of at most width columns,
// breaking on spaces where possible.
func wrapCells(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := ""
	for _, w := range words {
		if line == "" {
			line = w
		} else if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	for i := range lines {
		lines[i] = fitCells(lines[i], width)
	}
	return lines
}

// renderPreview draws the simulated result: title, breadcrumb URL,
// description, and the optional rich-snippet block. Review/Rating sits
// between URL and description; FAQ hangs below the description.
func renderPreview(t Theme, result app.RowResult, schema app.SchemaKind, width int) string {
	title := result.Title.TruncatedText
	if strings.TrimSpace(result.Input.Title) == "" {
		title = placeholderTitle
	}
	desc := result.Description.TruncatedText
	if strings.TrimSpace(result.Input.Description) == "" {
		desc = placeholderDesc
	}

	titleStyle := t.SerpTitle
	if result.Title.Truncated {
		titleStyle = t.SerpTitleOver
	}
	descStyle := t.SerpDesc
	if result.Description.Truncated {
		descStyle = t.SerpDescOver
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitCells(title, width)))
	b.WriteString("\n")
	b.WriteString(t.SerpURL.Render(fitCells(app.FormatURL(result.Input.URL), width)))
	b.WriteString("\n")

	if schema == app.SchemaReview {
		stars, caption := app.SampleRating()
		b.WriteString(t.SerpStars.Render(stars))
		b.WriteString(" ")
		b.WriteString(t.SerpRatingText.Render(fitCells(caption, width-runewidth.StringWidth(stars)-1)))
		b.WriteString("\n")
	}

	for _, line := range wrapCells(desc, width) {
		b.WriteString(descStyle.Render(line))
		b.WriteString("\n")
	}

	if schema == app.SchemaFAQ {
		for _, q := range app.SampleFAQ() {
			b.WriteString(t.SerpFAQ.Render(fitCells(q+" ▾", width)))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// metricLine formats one field's measurement for the metrics panel.
func metricLine(label, text string, m app.SnippetMetrics) string {
	status := "OK"
	if m.Truncated {
		status = "OVER"
	}
	return fmt.Sprintf("%s %s: %d chars, %spx / %spx", status, label, len([]rune(text)), formatPx(m.PixelWidth), formatPx(m.Limit))
}

func formatPx(w float64) string {
	s := fmt.Sprintf("%.1f", w)
	return strings.TrimSuffix(s, ".0")
}
