package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/cpsss/internal/answers"
	"github.com/dshills/cpsss/internal/assess"
	"github.com/dshills/cpsss/internal/guide"
	"github.com/dshills/cpsss/internal/render"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type outputFlags struct {
	format    string
	out       string
	failOn    string
	guideName string
	noColor   bool
	verbose   bool
}

type scoreFlags struct {
	outputFlags
	gaze         string
	arm          string
	locQuestions string
	locCommands  string
}

func addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, json, or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if severity meets this level: possible or high")
	flags.StringVar(&f.guideName, "guide", guide.DefaultName, "Guide used for question text and references")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colored text output (colors are only used when stdout is a terminal)")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score [answer-file]",
		Short: "Score an assessment from an answer file and/or flags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(args, f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.gaze, "gaze", "", "Conjugate gaze deviation: absent|present (yes/no accepted)")
	flags.StringVar(&f.arm, "arm", "", "Arm weakness: absent|present (yes/no accepted)")
	flags.StringVar(&f.locQuestions, "loc-questions", "", "LOC questions: normal|abnormal (yes = at least one incorrect)")
	flags.StringVar(&f.locCommands, "loc-commands", "", "LOC commands: normal|abnormal (yes = fails at least one)")
	addOutputFlags(cmd, &f.outputFlags)

	return cmd
}

func runScore(args []string, f *scoreFlags, stdout io.Writer) error {
	verbose := verboseLogger(f.verbose)

	var in assess.Input
	src := assess.Source{Mode: "flags"}

	// 1. Load answer file
	if len(args) == 1 {
		verbose("Loading answers: %s", args[0])
		sheet, err := answers.Load(args[0])
		if err != nil {
			return exitError(3, "failed to load answers: %v", err)
		}
		in = sheet.Input
		src = assess.Source{File: filepath.Base(args[0]), Hash: sheet.Hash, Mode: "file"}
	}

	// 2. Flag overrides
	if f.gaze != "" {
		in.GazeDeviation = assess.ParseGazeDeviation(f.gaze)
	}
	if f.arm != "" {
		in.ArmWeakness = assess.ParseArmWeakness(f.arm)
	}
	if f.locQuestions != "" {
		in.LOCQuestions = assess.ParseLOCQuestions(f.locQuestions)
	}
	if f.locCommands != "" {
		in.LOCCommands = assess.ParseLOCCommands(f.locCommands)
	}

	return emit(in, src, &f.outputFlags, stdout, verbose)
}

// emit scores in and writes the report in the requested format.
func emit(in assess.Input, src assess.Source, f *outputFlags, stdout io.Writer, verbose func(string, ...any)) error {
	if f.failOn != "" {
		if _, err := labelMeetsThreshold(assess.LabelHigh, f.failOn); err != nil {
			return exitError(3, "%v", err)
		}
	}

	verbose("Loading guide: %s", f.guideName)
	g, err := guide.LoadBuiltin(f.guideName)
	if err != nil {
		return exitError(3, "failed to load guide: %v", err)
	}

	verbose("Scoring")
	res, err := assess.Compute(in)
	if err != nil {
		return exitError(5, "%v", err)
	}
	verbose("Score %d (%s)", res.Score, res.SeverityLabel)

	rep := assess.Report{
		Tool:    "cpsss",
		Version: version,
		Source:  src,
		Answers: in,
		Result:  res,
	}

	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(&rep, g)
	case "text":
		output = render.Text(&rep, !f.noColor && f.out == "" && isTerminal(stdout))
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(stdout, output)
	}

	if f.failOn != "" {
		if meets, _ := labelMeetsThreshold(res.SeverityLabel, f.failOn); meets {
			return exitError(2, "severity %s meets fail threshold %s", res.SeverityLabel, f.failOn)
		}
	}

	return nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func verboseLogger(enabled bool) func(string, ...any) {
	logger := log.New(os.Stderr, "", 0)
	return func(msg string, args ...any) {
		if enabled {
			logger.Printf(msg, args...)
		}
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func labelMeetsThreshold(label assess.Label, failOn string) (bool, error) {
	thresholdLevel := map[string]int{
		"possible": assess.LabelPossible.Rank(),
		"high":     assess.LabelHigh.Rank(),
	}

	tl, ok := thresholdLevel[strings.ToLower(failOn)]
	if !ok {
		return false, fmt.Errorf("unrecognized --fail-on value %q (want possible or high)", failOn)
	}
	ll := label.Rank()
	if ll < 0 {
		return false, nil
	}
	return ll >= tl, nil
}
