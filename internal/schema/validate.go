// Package schema validates saved reports against the cpsss report schema.
package schema

import (
	"fmt"
	"strings"

	"github.com/dshills/cpsss/internal/assess"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Report for structural validity and for agreement between
// the recorded answers and the recorded result.
func Validate(r *assess.Report) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if r.Source.Hash != "" && !strings.HasPrefix(r.Source.Hash, "sha256:") {
		errs = append(errs, ValidationError{"source.hash", fmt.Sprintf("must start with sha256:, got %q", r.Source.Hash)})
	}

	for _, fe := range assess.Validate(r.Answers) {
		errs = append(errs, ValidationError{"answers." + fe.Field, fe.Message})
	}

	res := r.Result
	if res.Score < 0 || res.Score > assess.MaxScore {
		errs = append(errs, ValidationError{"result.score", fmt.Sprintf("must be within 0..%d, got %d", assess.MaxScore, res.Score)})
	}
	if !res.SeverityLabel.Valid() {
		errs = append(errs, ValidationError{"result.severity_label", fmt.Sprintf("invalid: %q", res.SeverityLabel)})
	}

	// Verify score consistency
	if expected, err := assess.Compute(r.Answers); err == nil {
		if res.Score != expected.Score {
			errs = append(errs, ValidationError{"result.score", fmt.Sprintf("score %d does not match computed %d", res.Score, expected.Score)})
		}
	}

	// Verify the band matches the recorded score
	label, text := assess.Interpret(res.Score)
	if res.SeverityLabel.Valid() && res.SeverityLabel != label {
		errs = append(errs, ValidationError{"result.severity_label", fmt.Sprintf("expected %s for score %d, got %s", label, res.Score, res.SeverityLabel)})
	}
	if res.SeverityText != text {
		errs = append(errs, ValidationError{"result.severity_text", fmt.Sprintf("does not match text for score %d", res.Score)})
	}

	return errs
}
