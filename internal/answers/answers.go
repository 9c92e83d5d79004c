// Package answers handles reading and hashing answer sheet files.
package answers

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/cpsss/internal/assess"
	"gopkg.in/yaml.v3"
)

// Sheet holds a loaded answer file with its normalized answers.
type Sheet struct {
	FilePath string
	Raw      string
	Hash     string
	Input    assess.Input
}

// raw mirrors assess.Input with free-form answers.
type raw struct {
	GazeDeviation string `yaml:"gaze_deviation"`
	ArmWeakness   string `yaml:"arm_weakness"`
	LOCQuestions  string `yaml:"loc_questions"`
	LOCCommands   string `yaml:"loc_commands"`
}

// Load reads a YAML or JSON answer file and computes its SHA-256 hash.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("answers.Load: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("answers.Load: %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

// Parse decodes answer sheet bytes. JSON input is accepted since it is valid
// YAML. Unknown keys and multi-document files are rejected; missing keys are
// left empty for assess.Compute to report.
func Parse(data []byte) (*Sheet, error) {
	var r raw
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse: %w", err)
		}
	} else {
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, errors.New("parse: answer file must contain a single document")
		}
	}
	h := sha256.Sum256(data)
	return &Sheet{
		Raw:   string(data),
		Hash:  fmt.Sprintf("sha256:%x", h),
		Input: r.normalize(),
	}, nil
}

func (r raw) normalize() assess.Input {
	return assess.Input{
		GazeDeviation: assess.ParseGazeDeviation(r.GazeDeviation),
		ArmWeakness:   assess.ParseArmWeakness(r.ArmWeakness),
		LOCQuestions:  assess.ParseLOCQuestions(r.LOCQuestions),
		LOCCommands:   assess.ParseLOCCommands(r.LOCCommands),
	}
}
