package assess

import "fmt"

// Validate reports every missing or out-of-range observation in fixed field
// order. An empty result means in can be scored.
func Validate(in Input) []FieldError {
	var errs []FieldError
	check := func(field, value string, ok bool, allowed ...string) {
		switch {
		case value == "":
			errs = append(errs, FieldError{field, "required"})
		case !ok:
			errs = append(errs, FieldError{field, fmt.Sprintf("invalid %q, want %s or %s", value, allowed[0], allowed[1])})
		}
	}
	check("gaze_deviation", string(in.GazeDeviation), in.GazeDeviation.Valid(), string(GazeAbsent), string(GazePresent))
	check("arm_weakness", string(in.ArmWeakness), in.ArmWeakness.Valid(), string(ArmAbsent), string(ArmPresent))
	check("loc_questions", string(in.LOCQuestions), in.LOCQuestions.Valid(), string(LOCQuestionsNormal), string(LOCQuestionsAbnormal))
	check("loc_commands", string(in.LOCCommands), in.LOCCommands.Valid(), string(LOCCommandsNormal), string(LOCCommandsAbnormal))
	return errs
}
