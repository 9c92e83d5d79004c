package assess

import "strings"

// GazeDeviation records whether the eyes are persistently deviated to one side.
type GazeDeviation string

const (
	GazeAbsent  GazeDeviation = "ABSENT"
	GazePresent GazeDeviation = "PRESENT"
)

func (g GazeDeviation) Valid() bool {
	switch g {
	case GazeAbsent, GazePresent:
		return true
	}
	return false
}

// ArmWeakness records whether the patient cannot hold one arm up for 10 seconds.
type ArmWeakness string

const (
	ArmAbsent  ArmWeakness = "ABSENT"
	ArmPresent ArmWeakness = "PRESENT"
)

func (a ArmWeakness) Valid() bool {
	switch a {
	case ArmAbsent, ArmPresent:
		return true
	}
	return false
}

// LOCQuestions records the answers to the level of consciousness questions
// (age, month).
type LOCQuestions string

const (
	LOCQuestionsNormal   LOCQuestions = "NORMAL"
	LOCQuestionsAbnormal LOCQuestions = "ABNORMAL"
)

func (q LOCQuestions) Valid() bool {
	switch q {
	case LOCQuestionsNormal, LOCQuestionsAbnormal:
		return true
	}
	return false
}

// LOCCommands records the response to the level of consciousness commands
// (close eyes, open and close hand).
type LOCCommands string

const (
	LOCCommandsNormal   LOCCommands = "NORMAL"
	LOCCommandsAbnormal LOCCommands = "ABNORMAL"
)

func (c LOCCommands) Valid() bool {
	switch c {
	case LOCCommandsNormal, LOCCommandsAbnormal:
		return true
	}
	return false
}

// Label is the qualitative severity band for a score.
type Label string

const (
	LabelLow      Label = "LOW"
	LabelPossible Label = "POSSIBLE"
	LabelHigh     Label = "HIGH"
)

func (l Label) Valid() bool {
	switch l {
	case LabelLow, LabelPossible, LabelHigh:
		return true
	}
	return false
}

// Rank orders labels by severity (higher = more severe).
func (l Label) Rank() int {
	switch l {
	case LabelHigh:
		return 2
	case LabelPossible:
		return 1
	case LabelLow:
		return 0
	default:
		return -1
	}
}

// ParseGazeDeviation maps a free-form answer onto a GazeDeviation.
// Unrecognized answers are returned unchanged so validation can report them.
func ParseGazeDeviation(s string) GazeDeviation {
	switch yesNo(s) {
	case "yes":
		return GazePresent
	case "no":
		return GazeAbsent
	}
	return GazeDeviation(canonical(s))
}

// ParseArmWeakness maps a free-form answer onto an ArmWeakness.
func ParseArmWeakness(s string) ArmWeakness {
	switch yesNo(s) {
	case "yes":
		return ArmPresent
	case "no":
		return ArmAbsent
	}
	return ArmWeakness(canonical(s))
}

// ParseLOCQuestions maps a free-form answer onto LOCQuestions. "yes" means at
// least one question was answered incorrectly.
func ParseLOCQuestions(s string) LOCQuestions {
	switch yesNo(s) {
	case "yes":
		return LOCQuestionsAbnormal
	case "no":
		return LOCQuestionsNormal
	}
	return LOCQuestions(canonical(s))
}

// ParseLOCCommands maps a free-form answer onto LOCCommands. "yes" means at
// least one command was failed.
func ParseLOCCommands(s string) LOCCommands {
	switch yesNo(s) {
	case "yes":
		return LOCCommandsAbnormal
	case "no":
		return LOCCommandsNormal
	}
	return LOCCommands(canonical(s))
}

func yesNo(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return "yes"
	case "no", "n", "false", "0":
		return "no"
	}
	return ""
}

// canonical upper-cases known enum spellings and leaves everything else
// as typed.
func canonical(s string) string {
	t := strings.ToUpper(strings.TrimSpace(s))
	switch t {
	case "ABSENT", "PRESENT", "NORMAL", "ABNORMAL":
		return t
	}
	return s
}
