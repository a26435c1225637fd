package store

import (
	"testing"
	"time"
)

func validTargetCheckpoint() *Checkpoint {
	return &Checkpoint{
		JobID:       "job-t",
		BestGenome:  []float64{3.14},
		BestFitness: 12.5,
		Generation:  40,
		Timestamp:   time.Now(),
		Config: JobConfig{
			Mode:         ModeTarget,
			Target:       3.14159,
			PopSize:      10,
			Generations:  50,
			MutationRate: 0.1,
			Seed:         1,
		},
	}
}

func TestCheckpointValidate(t *testing.T) {
	if err := validTargetCheckpoint().Validate(); err != nil {
		t.Errorf("Valid target checkpoint rejected: %v", err)
	}
	if err := createTestCheckpoint("job-f").Validate(); err != nil {
		t.Errorf("Valid function checkpoint rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Checkpoint)
	}{
		{"empty job ID", func(c *Checkpoint) { c.JobID = "" }},
		{"empty genome", func(c *Checkpoint) { c.BestGenome = nil }},
		{"negative fitness", func(c *Checkpoint) { c.BestFitness = -1 }},
		{"negative generation", func(c *Checkpoint) { c.Generation = -1 }},
		{"zero timestamp", func(c *Checkpoint) { c.Timestamp = time.Time{} }},
		{"empty mode", func(c *Checkpoint) { c.Config.Mode = "" }},
		{"unknown mode", func(c *Checkpoint) { c.Config.Mode = "annealing" }},
		{"multi-value target genome", func(c *Checkpoint) { c.BestGenome = []float64{1, 2} }},
		{"zero pop size", func(c *Checkpoint) { c.Config.PopSize = 0 }},
		{"zero generations", func(c *Checkpoint) { c.Config.Generations = 0 }},
		{"negative rate", func(c *Checkpoint) { c.Config.MutationRate = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTargetCheckpoint()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Errorf("Checkpoint with %s passed validation", tt.name)
			}
		})
	}
}

func TestCheckpointValidateFunctionMode(t *testing.T) {
	c := createTestCheckpoint("job-f")
	c.Config.Objective = ""
	if err := c.Validate(); err == nil {
		t.Error("Function checkpoint without objective passed validation")
	}

	c = createTestCheckpoint("job-f")
	c.Config.Dim = 0
	if err := c.Validate(); err == nil {
		t.Error("Function checkpoint without dim passed validation")
	}

	c = createTestCheckpoint("job-f")
	c.BestGenome = []float64{1}
	if err := c.Validate(); err == nil {
		t.Error("Genome/dim length mismatch passed validation")
	}
}

func TestCheckpointCompatibility(t *testing.T) {
	c := createTestCheckpoint("job-f")

	compatible := c.Config
	compatible.Generations = 9999
	compatible.MutationRate = 0.5
	if err := c.IsCompatible(compatible); err != nil {
		t.Errorf("Run-length changes should be compatible: %v", err)
	}

	wrongMode := c.Config
	wrongMode.Mode = ModeTarget
	if err := c.IsCompatible(wrongMode); err == nil {
		t.Error("Mode mismatch should be incompatible")
	}

	wrongObjective := c.Config
	wrongObjective.Objective = "rastrigin"
	if err := c.IsCompatible(wrongObjective); err == nil {
		t.Error("Objective mismatch should be incompatible")
	}

	wrongDim := c.Config
	wrongDim.Dim = 5
	if err := c.IsCompatible(wrongDim); err == nil {
		t.Error("Dim mismatch should be incompatible")
	}

	target := validTargetCheckpoint()
	wrongTarget := target.Config
	wrongTarget.Target = 2.71828
	if err := target.IsCompatible(wrongTarget); err == nil {
		t.Error("Target mismatch should be incompatible")
	}
}

func TestGenomeDim(t *testing.T) {
	if got := (JobConfig{Mode: ModeTarget}).GenomeDim(); got != 1 {
		t.Errorf("Target mode dim = %d, want 1", got)
	}
	if got := (JobConfig{Mode: ModeFunction, Dim: 6}).GenomeDim(); got != 6 {
		t.Errorf("Function mode dim = %d, want 6", got)
	}
}

func TestToInfo(t *testing.T) {
	c := createTestCheckpoint("job-f")
	info := c.ToInfo()

	if info.JobID != c.JobID || info.Generation != c.Generation || info.BestFitness != c.BestFitness {
		t.Errorf("Info %+v does not match checkpoint", info)
	}
	if info.Mode != ModeFunction || info.Objective != "sphere" {
		t.Errorf("Info %+v missing config fields", info)
	}
}
