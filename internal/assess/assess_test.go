package assess

import (
	"errors"
	"testing"
)

// --- Enum validation tests ---

func TestObservationValid(t *testing.T) {
	for _, g := range []GazeDeviation{GazeAbsent, GazePresent} {
		if !g.Valid() {
			t.Errorf("expected %q to be valid", g)
		}
	}
	for _, a := range []ArmWeakness{ArmAbsent, ArmPresent} {
		if !a.Valid() {
			t.Errorf("expected %q to be valid", a)
		}
	}
	for _, q := range []LOCQuestions{LOCQuestionsNormal, LOCQuestionsAbnormal} {
		if !q.Valid() {
			t.Errorf("expected %q to be valid", q)
		}
	}
	for _, c := range []LOCCommands{LOCCommandsNormal, LOCCommandsAbnormal} {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if GazeDeviation("").Valid() {
		t.Error("expected empty gaze to be invalid")
	}
	if ArmWeakness("NORMAL").Valid() {
		t.Error("expected NORMAL arm weakness to be invalid")
	}
	if LOCQuestions("PRESENT").Valid() {
		t.Error("expected PRESENT loc questions to be invalid")
	}
	if LOCCommands("Yes").Valid() {
		t.Error("expected Yes loc commands to be invalid")
	}
}

func TestLabelValid(t *testing.T) {
	for _, l := range []Label{LabelLow, LabelPossible, LabelHigh} {
		if !l.Valid() {
			t.Errorf("expected %q to be valid", l)
		}
	}
	if Label("MODERATE").Valid() {
		t.Error("expected MODERATE to be invalid")
	}
	if !(LabelHigh.Rank() > LabelPossible.Rank() && LabelPossible.Rank() > LabelLow.Rank()) {
		t.Error("label ranks out of order")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		gaze GazeDeviation
		locq LOCQuestions
	}{
		{"yes", GazePresent, LOCQuestionsAbnormal},
		{" Y ", GazePresent, LOCQuestionsAbnormal},
		{"true", GazePresent, LOCQuestionsAbnormal},
		{"1", GazePresent, LOCQuestionsAbnormal},
		{"No", GazeAbsent, LOCQuestionsNormal},
		{"0", GazeAbsent, LOCQuestionsNormal},
		{"present", GazePresent, LOCQuestions("PRESENT")},
		{"normal", GazeDeviation("NORMAL"), LOCQuestionsNormal},
		{"maybe", GazeDeviation("maybe"), LOCQuestions("maybe")},
		{"", GazeDeviation(""), LOCQuestions("")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseGazeDeviation(tt.in); got != tt.gaze {
				t.Errorf("ParseGazeDeviation(%q) = %q, want %q", tt.in, got, tt.gaze)
			}
			if got := ParseLOCQuestions(tt.in); got != tt.locq {
				t.Errorf("ParseLOCQuestions(%q) = %q, want %q", tt.in, got, tt.locq)
			}
		})
	}
	if ParseArmWeakness("yes") != ArmPresent || ParseArmWeakness("absent") != ArmAbsent {
		t.Error("ParseArmWeakness mismatch")
	}
	if ParseLOCCommands("yes") != LOCCommandsAbnormal || ParseLOCCommands("Abnormal") != LOCCommandsAbnormal {
		t.Error("ParseLOCCommands mismatch")
	}
}

// --- Score tests ---

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		score int
		label Label
	}{
		{"all normal", Input{GazeAbsent, ArmAbsent, LOCQuestionsNormal, LOCCommandsNormal}, 0, LabelLow},
		{"all abnormal", Input{GazePresent, ArmPresent, LOCQuestionsAbnormal, LOCCommandsAbnormal}, 4, LabelHigh},
		{"gaze only", Input{GazePresent, ArmAbsent, LOCQuestionsNormal, LOCCommandsNormal}, 2, LabelHigh},
		{"arm and questions", Input{GazeAbsent, ArmPresent, LOCQuestionsAbnormal, LOCCommandsNormal}, 2, LabelHigh},
		{"questions only", Input{GazeAbsent, ArmAbsent, LOCQuestionsAbnormal, LOCCommandsNormal}, 1, LabelPossible},
		{"commands only", Input{GazeAbsent, ArmAbsent, LOCQuestionsNormal, LOCCommandsAbnormal}, 1, LabelPossible},
		{"arm only", Input{GazeAbsent, ArmPresent, LOCQuestionsNormal, LOCCommandsNormal}, 1, LabelPossible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.in)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if got.Score != tt.score {
				t.Errorf("score = %d, want %d", got.Score, tt.score)
			}
			if got.SeverityLabel != tt.label {
				t.Errorf("label = %s, want %s", got.SeverityLabel, tt.label)
			}
			_, text := Interpret(tt.score)
			if got.SeverityText != text {
				t.Errorf("text = %q, want %q", got.SeverityText, text)
			}
		})
	}
}

func TestComputeAllCombinations(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("All() returned %d inputs, want 16", len(all))
	}
	seen := make(map[Input]bool)
	for _, in := range all {
		if seen[in] {
			t.Errorf("duplicate input %+v", in)
		}
		seen[in] = true

		first, err := Compute(in)
		if err != nil {
			t.Fatalf("Compute(%+v): %v", in, err)
		}
		second, _ := Compute(in)
		if first != second {
			t.Errorf("Compute(%+v) not deterministic: %+v vs %+v", in, first, second)
		}
		if first.Score < 0 || first.Score > MaxScore {
			t.Errorf("score %d out of range for %+v", first.Score, in)
		}
	}
}

func TestComputeMonotonic(t *testing.T) {
	flips := []func(Input) Input{
		func(in Input) Input { in.GazeDeviation = GazePresent; return in },
		func(in Input) Input { in.ArmWeakness = ArmPresent; return in },
		func(in Input) Input { in.LOCQuestions = LOCQuestionsAbnormal; return in },
		func(in Input) Input { in.LOCCommands = LOCCommandsAbnormal; return in },
	}
	for _, in := range All() {
		base, _ := Compute(in)
		for i, flip := range flips {
			after, err := Compute(flip(in))
			if err != nil {
				t.Fatal(err)
			}
			if after.Score < base.Score {
				t.Errorf("flip %d on %+v decreased score %d -> %d", i, in, base.Score, after.Score)
			}
			if after.SeverityLabel.Rank() < base.SeverityLabel.Rank() {
				t.Errorf("flip %d on %+v lowered label %s -> %s", i, in, base.SeverityLabel, after.SeverityLabel)
			}
		}
	}
}

func TestComputeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		fields []string
	}{
		{"empty", Input{}, []string{"gaze_deviation", "arm_weakness", "loc_questions", "loc_commands"}},
		{"missing arm", Input{GazeAbsent, "", LOCQuestionsNormal, LOCCommandsNormal}, []string{"arm_weakness"}},
		{"unknown gaze", Input{"Yes", ArmAbsent, LOCQuestionsNormal, LOCCommandsNormal}, []string{"gaze_deviation"}},
		{"swapped enums", Input{GazeAbsent, ArmAbsent, "ABSENT", "PRESENT"}, []string{"loc_questions", "loc_commands"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v does not match ErrInvalidInput", err)
			}
			if res != (Result{}) {
				t.Errorf("expected zero result, got %+v", res)
			}
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *InputError, got %T", err)
			}
			if len(ie.Fields) != len(tt.fields) {
				t.Fatalf("got %d field errors, want %d: %v", len(ie.Fields), len(tt.fields), ie.Fields)
			}
			for i, f := range tt.fields {
				if ie.Fields[i].Field != f {
					t.Errorf("field[%d] = %s, want %s", i, ie.Fields[i].Field, f)
				}
			}
		})
	}
}

func TestComputeAllAbnormalCapped(t *testing.T) {
	in := Input{GazePresent, ArmPresent, LOCQuestionsAbnormal, LOCCommandsAbnormal}
	if got := Points(in); got != 5 {
		t.Errorf("Points() = %d, want 5 before capping", got)
	}
	res, err := Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != MaxScore {
		t.Errorf("score = %d, want %d", res.Score, MaxScore)
	}
	if res.SeverityLabel != LabelHigh {
		t.Errorf("label = %s, want HIGH", res.SeverityLabel)
	}
}

func TestWeight(t *testing.T) {
	tests := map[string]int{
		"gaze_deviation": 2,
		"arm_weakness":   1,
		"loc_questions":  1,
		"loc_commands":   1,
		"speech":         0,
	}
	for field, want := range tests {
		if got := Weight(field); got != want {
			t.Errorf("Weight(%q) = %d, want %d", field, got, want)
		}
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		score int
		label Label
	}{
		{0, LabelLow},
		{1, LabelPossible},
		{2, LabelHigh},
		{3, LabelHigh},
		{4, LabelHigh},
	}
	for _, tt := range tests {
		if got, _ := Interpret(tt.score); got != tt.label {
			t.Errorf("Interpret(%d) = %s, want %s", tt.score, got, tt.label)
		}
	}
}
