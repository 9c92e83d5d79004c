// Package render produces Markdown and terminal output from a report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/cpsss/internal/assess"
	"github.com/dshills/cpsss/internal/guide"
)

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorAmber = "\033[33m"
	colorRed   = "\033[31m"
)

// Color returns the display color name for a severity label.
func Color(l assess.Label) string {
	switch l {
	case assess.LabelHigh:
		return "red"
	case assess.LabelPossible:
		return "orange"
	case assess.LabelLow:
		return "green"
	default:
		return ""
	}
}

func ansi(l assess.Label) string {
	switch l {
	case assess.LabelHigh:
		return colorRed
	case assess.LabelPossible:
		return colorAmber
	case assess.LabelLow:
		return colorGreen
	default:
		return ""
	}
}

// Markdown renders a report as a Markdown document. g supplies question
// labels, notes, and references and may be nil.
func Markdown(r *assess.Report, g *guide.Guide) string {
	var b strings.Builder

	title := "CP-SSS Assessment"
	if g != nil && g.Title != "" {
		title = g.Title
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Score:** %d / %d", r.Result.Score, assess.MaxScore)
	if total := assess.Points(r.Answers); total > r.Result.Score {
		fmt.Fprintf(&b, " (findings total %d, capped)", total)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Severity:** %s\n\n", r.Result.SeverityLabel)

	// Interpretation
	b.WriteString("## Interpretation\n\n")
	fmt.Fprintf(&b, "<span style=\"color:%s;\">%s</span>\n\n", Color(r.Result.SeverityLabel), r.Result.SeverityText)

	// Answers
	b.WriteString("## Findings\n\n")
	b.WriteString("| Observation | Answer | Points |\n")
	b.WriteString("|---|---|---|\n")
	for _, row := range rows(r.Answers) {
		heading, answer := row.id, row.value
		if g != nil {
			if q, ok := g.Question(row.id); ok {
				heading = q.Heading
				answer = q.ChoiceLabel(row.value)
			}
		}
		fmt.Fprintf(&b, "| %s | %s | %d |\n", heading, answer, row.points)
	}
	b.WriteString("\n")

	if g != nil && len(g.Notes) > 0 {
		b.WriteString("## Important\n\n")
		for _, n := range g.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	if g != nil && len(g.References) > 0 {
		b.WriteString("## References\n\n")
		b.WriteString(guide.FormatReferences(g))
		b.WriteString("\n")
	}

	// Source used
	if r.Source.File != "" {
		b.WriteString("## Source\n\n")
		fmt.Fprintf(&b, "- %s (%s)\n\n", r.Source.File, r.Source.Hash)
	}

	return b.String()
}

// Text renders a short terminal summary, colored by severity when color is set.
func Text(r *assess.Report, color bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CP-SSS Score: %d / %d\n", r.Result.Score, assess.MaxScore)
	line := fmt.Sprintf("%s: %s", r.Result.SeverityLabel, r.Result.SeverityText)
	if c := ansi(r.Result.SeverityLabel); color && c != "" {
		line = c + line + colorReset
	}
	b.WriteString(line)
	b.WriteString("\n")
	return b.String()
}

type row struct {
	id     string
	value  string
	points int
}

func rows(in assess.Input) []row {
	abnormal := assess.Abnormal(in)
	points := func(field string) int {
		if abnormal[field] {
			return assess.Weight(field)
		}
		return 0
	}
	return []row{
		{"gaze_deviation", string(in.GazeDeviation), points("gaze_deviation")},
		{"arm_weakness", string(in.ArmWeakness), points("arm_weakness")},
		{"loc_questions", string(in.LOCQuestions), points("loc_questions")},
		{"loc_commands", string(in.LOCCommands), points("loc_commands")},
	}
}
