// Package assess implements the Cincinnati Prehospital Stroke Severity Scale.
package assess

// Input is one complete set of exam findings. Every field must be set.
type Input struct {
	GazeDeviation GazeDeviation `json:"gaze_deviation" yaml:"gaze_deviation"`
	ArmWeakness   ArmWeakness   `json:"arm_weakness" yaml:"arm_weakness"`
	LOCQuestions  LOCQuestions  `json:"loc_questions" yaml:"loc_questions"`
	LOCCommands   LOCCommands   `json:"loc_commands" yaml:"loc_commands"`
}

// Result is the score derived from an Input.
type Result struct {
	Score         int    `json:"score"`
	SeverityLabel Label  `json:"severity_label"`
	SeverityText  string `json:"severity_text"`
}

// Report is the output envelope written by the CLI.
type Report struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Source  Source `json:"source"`
	Answers Input  `json:"answers"`
	Result  Result `json:"result"`
}

// Source records where the answers came from.
type Source struct {
	File string `json:"file,omitempty"`
	Hash string `json:"hash,omitempty"`
	Mode string `json:"mode"`
}
