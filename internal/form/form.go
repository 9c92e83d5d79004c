// Package form asks the guide's questions on a terminal and collects answers.
package form

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/cpsss/internal/assess"
	"github.com/dshills/cpsss/internal/guide"
)

// Ask prints each question in g to out and reads answers from in until every
// observation has a valid value. An answer is a choice number or any alias
// accepted by the assess Parse functions. Invalid answers are re-prompted.
func Ask(in io.Reader, out io.Writer, g *guide.Guide) (assess.Input, error) {
	var input assess.Input
	setters := map[string]func(string) bool{
		"gaze_deviation": func(s string) bool {
			input.GazeDeviation = assess.ParseGazeDeviation(s)
			return input.GazeDeviation.Valid()
		},
		"arm_weakness": func(s string) bool {
			input.ArmWeakness = assess.ParseArmWeakness(s)
			return input.ArmWeakness.Valid()
		},
		"loc_questions": func(s string) bool {
			input.LOCQuestions = assess.ParseLOCQuestions(s)
			return input.LOCQuestions.Valid()
		},
		"loc_commands": func(s string) bool {
			input.LOCCommands = assess.ParseLOCCommands(s)
			return input.LOCCommands.Valid()
		},
	}

	fmt.Fprintf(out, "%s\n\n", g.Title)
	if g.Disclaimer != "" {
		fmt.Fprintf(out, "%s\n\n", strings.TrimSpace(g.Disclaimer))
	}

	sc := bufio.NewScanner(in)
	for _, q := range g.Questions {
		set, ok := setters[q.ID]
		if !ok {
			return assess.Input{}, fmt.Errorf("form.Ask: guide %q has unknown question %q", g.Name, q.ID)
		}
		writeQuestion(out, q)
		for {
			fmt.Fprintf(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return assess.Input{}, fmt.Errorf("form.Ask: %s: %w", q.ID, err)
				}
				return assess.Input{}, fmt.Errorf("form.Ask: %s: %w", q.ID, io.ErrUnexpectedEOF)
			}
			if set(resolve(q, sc.Text())) {
				break
			}
			fmt.Fprintf(out, "Please answer 1-%d.\n", len(q.Choices))
		}
		fmt.Fprintln(out)
	}

	if errs := assess.Validate(input); len(errs) > 0 {
		return assess.Input{}, fmt.Errorf("form.Ask: %w", &assess.InputError{Fields: errs})
	}
	return input, nil
}

func writeQuestion(out io.Writer, q guide.Question) {
	fmt.Fprintf(out, "%s\n", q.Heading)
	fmt.Fprintf(out, "%s\n", q.Prompt)
	if q.Help != "" {
		fmt.Fprintf(out, "(%s)\n", q.Help)
	}
	for i, c := range q.Choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c.Label)
	}
}

// resolve turns a choice number into its enum value; other text is passed
// through for alias parsing.
func resolve(q guide.Question, answer string) string {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Choices) {
		return q.Choices[n-1].Value
	}
	return answer
}
