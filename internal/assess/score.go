package assess

// MaxScore is the highest attainable score.
const MaxScore = 4

const (
	textHigh     = "High likelihood of severe stroke (NIHSS ≥ 15) and increased probability of large vessel occlusion."
	textPossible = "Possible stroke; score is low but not zero."
	textLow      = "Low likelihood of severe stroke, but stroke is not excluded."
)

// Weights of each observation when abnormal, keyed by field name.
var weights = map[string]int{
	"gaze_deviation": 2,
	"arm_weakness":   1,
	"loc_questions":  1,
	"loc_commands":   1,
}

// Weight returns the points an abnormal finding for field contributes, or 0
// for an unknown field.
func Weight(field string) int {
	return weights[field]
}

// Compute scores a complete Input. It returns an *InputError wrapping
// ErrInvalidInput if any observation is missing or unknown. The weighted sum
// of all four abnormal findings is 5; the score is capped at MaxScore.
func Compute(in Input) (Result, error) {
	if errs := Validate(in); len(errs) > 0 {
		return Result{}, &InputError{Fields: errs}
	}
	score := min(Points(in), MaxScore)
	label, text := Interpret(score)
	return Result{Score: score, SeverityLabel: label, SeverityText: text}, nil
}

// Points sums the weights of the abnormal findings without capping.
// Values are not validated.
func Points(in Input) int {
	score := 0
	for field, abnormal := range Abnormal(in) {
		if abnormal {
			score += Weight(field)
		}
	}
	return score
}

// Abnormal reports, per field name, whether the finding is abnormal.
func Abnormal(in Input) map[string]bool {
	return map[string]bool{
		"gaze_deviation": in.GazeDeviation == GazePresent,
		"arm_weakness":   in.ArmWeakness == ArmPresent,
		"loc_questions":  in.LOCQuestions == LOCQuestionsAbnormal,
		"loc_commands":   in.LOCCommands == LOCCommandsAbnormal,
	}
}

// Interpret maps a score onto its severity band.
func Interpret(score int) (Label, string) {
	switch {
	case score >= 2:
		return LabelHigh, textHigh
	case score == 1:
		return LabelPossible, textPossible
	default:
		return LabelLow, textLow
	}
}

// All returns every valid Input, gaze varying slowest.
func All() []Input {
	var all []Input
	for _, g := range []GazeDeviation{GazeAbsent, GazePresent} {
		for _, a := range []ArmWeakness{ArmAbsent, ArmPresent} {
			for _, q := range []LOCQuestions{LOCQuestionsNormal, LOCQuestionsAbnormal} {
				for _, c := range []LOCCommands{LOCCommandsNormal, LOCCommandsAbnormal} {
					all = append(all, Input{g, a, q, c})
				}
			}
		}
	}
	return all
}
