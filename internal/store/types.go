package store

import (
	"fmt"
	"time"
)

// Job modes supported by the server and checkpoint store.
const (
	// ModeTarget evolves a one-dimensional genome toward a target number.
	ModeTarget = "target"
	// ModeFunction minimizes a named benchmark objective.
	ModeFunction = "function"
)

// JobConfig holds the configuration of an evolution job. It lives here
// (rather than in the server package) so checkpoints can embed it without
// an import cycle.
type JobConfig struct {
	Mode               string  `json:"mode"`                         // target, function
	Target             float64 `json:"target,omitempty"`             // target mode: the number to approximate
	Objective          string  `json:"objective,omitempty"`          // function mode: benchmark name
	Dim                int     `json:"dim,omitempty"`                // function mode: dimensionality
	PopSize            int     `json:"popSize"`                      // population size
	Generations        int     `json:"generations"`                  // generations to evolve
	MutationRate       float64 `json:"mutationRate"`                 // rate passed to each advance
	Seed               int64   `json:"seed"`                         // random seed for the initial population
	CheckpointInterval int     `json:"checkpointInterval,omitempty"` // checkpoint every N generations (0 = disabled)
}

// GenomeDim returns the genome length implied by the config.
func (c JobConfig) GenomeDim() int {
	if c.Mode == ModeTarget {
		return 1
	}
	return c.Dim
}

// Checkpoint is the persisted state of an evolution job.
//
// Only the best genome is saved, not the full population: resuming
// reseeds a fresh population around the stored genome, so a resumed run
// diverges from an uninterrupted one but never loses the best result.
// Saving whole populations would tie the checkpoint format to organism
// internals for little benefit.
type Checkpoint struct {
	// JobID is the unique identifier for this evolution job.
	JobID string `json:"jobId"`

	// BestGenome is the genome of the fittest organism seen so far.
	BestGenome []float64 `json:"bestGenome"`

	// BestFitness is the fitness achieved by BestGenome.
	BestFitness float64 `json:"bestFitness"`

	// Generation is the generation count when the checkpoint was taken.
	Generation int `json:"generation"`

	// Timestamp records when this checkpoint was created.
	Timestamp time.Time `json:"timestamp"`

	// Config holds the job configuration, used to validate resumes.
	Config JobConfig `json:"config"`
}

// CheckpointInfo is checkpoint metadata without the genome payload, used
// for listing.
type CheckpointInfo struct {
	JobID       string    `json:"jobId"`
	BestFitness float64   `json:"bestFitness"`
	Generation  int       `json:"generation"`
	Timestamp   time.Time `json:"timestamp"`
	Mode        string    `json:"mode"`
	Objective   string    `json:"objective,omitempty"`
	Target      float64   `json:"target,omitempty"`
}

// NewCheckpoint creates a checkpoint from runtime job state.
func NewCheckpoint(jobID string, bestGenome []float64, bestFitness float64, generation int, config JobConfig) *Checkpoint {
	return &Checkpoint{
		JobID:       jobID,
		BestGenome:  bestGenome,
		BestFitness: bestFitness,
		Generation:  generation,
		Timestamp:   time.Now(),
		Config:      config,
	}
}

// ToInfo strips the checkpoint down to its listing metadata.
func (c *Checkpoint) ToInfo() CheckpointInfo {
	return CheckpointInfo{
		JobID:       c.JobID,
		BestFitness: c.BestFitness,
		Generation:  c.Generation,
		Timestamp:   c.Timestamp,
		Mode:        c.Config.Mode,
		Objective:   c.Config.Objective,
		Target:      c.Config.Target,
	}
}

// Validate checks that the checkpoint holds a complete, consistent state.
func (c *Checkpoint) Validate() error {
	if c.JobID == "" {
		return &ValidationError{Field: "JobID", Reason: "cannot be empty"}
	}
	if len(c.BestGenome) == 0 {
		return &ValidationError{Field: "BestGenome", Reason: "cannot be empty"}
	}
	if c.BestFitness < 0 {
		return &ValidationError{Field: "BestFitness", Reason: "cannot be negative"}
	}
	if c.Generation < 0 {
		return &ValidationError{Field: "Generation", Reason: "cannot be negative"}
	}
	if c.Timestamp.IsZero() {
		return &ValidationError{Field: "Timestamp", Reason: "cannot be zero"}
	}
	switch c.Config.Mode {
	case ModeTarget:
		if len(c.BestGenome) != 1 {
			return &ValidationError{Field: "BestGenome", Reason: "target mode requires a single value"}
		}
	case ModeFunction:
		if c.Config.Objective == "" {
			return &ValidationError{Field: "Config.Objective", Reason: "cannot be empty in function mode"}
		}
		if c.Config.Dim <= 0 {
			return &ValidationError{Field: "Config.Dim", Reason: "must be positive in function mode"}
		}
		if len(c.BestGenome) != c.Config.Dim {
			return &ValidationError{
				Field:  "BestGenome",
				Reason: fmt.Sprintf("length mismatch: got %d values for dim %d", len(c.BestGenome), c.Config.Dim),
			}
		}
	case "":
		return &ValidationError{Field: "Config.Mode", Reason: "cannot be empty"}
	default:
		return &ValidationError{Field: "Config.Mode", Reason: fmt.Sprintf("unknown mode %q", c.Config.Mode)}
	}
	if c.Config.PopSize <= 0 {
		return &ValidationError{Field: "Config.PopSize", Reason: "must be positive"}
	}
	if c.Config.Generations <= 0 {
		return &ValidationError{Field: "Config.Generations", Reason: "must be positive"}
	}
	if c.Config.MutationRate < 0 {
		return &ValidationError{Field: "Config.MutationRate", Reason: "cannot be negative"}
	}
	return nil
}

// ValidationError reports an invalid checkpoint field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}

// IsCompatible checks whether the checkpoint can be resumed under the
// given config. The evolved problem must be identical; run-length and
// rate settings may differ.
func (c *Checkpoint) IsCompatible(config JobConfig) error {
	if c.Config.Mode != config.Mode {
		return &CompatibilityError{Field: "Mode", Expected: c.Config.Mode, Actual: config.Mode}
	}
	switch config.Mode {
	case ModeTarget:
		if c.Config.Target != config.Target {
			return &CompatibilityError{
				Field:    "Target",
				Expected: fmt.Sprintf("%g", c.Config.Target),
				Actual:   fmt.Sprintf("%g", config.Target),
			}
		}
	case ModeFunction:
		if c.Config.Objective != config.Objective {
			return &CompatibilityError{Field: "Objective", Expected: c.Config.Objective, Actual: config.Objective}
		}
		if c.Config.Dim != config.Dim {
			return &CompatibilityError{
				Field:    "Dim",
				Expected: fmt.Sprintf("%d", c.Config.Dim),
				Actual:   fmt.Sprintf("%d", config.Dim),
			}
		}
	}
	return nil
}

// CompatibilityError reports a config mismatch between a checkpoint and a
// resume request.
type CompatibilityError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *CompatibilityError) Error() string {
	return "compatibility error: " + e.Field + " mismatch (expected " + e.Expected + ", got " + e.Actual + ")"
}
