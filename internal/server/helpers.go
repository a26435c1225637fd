package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cwbudde/ecosystem/internal/store"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// cloneGenome copies a genome slice; nil stays nil.
func cloneGenome(genome []float64) []float64 {
	if genome == nil {
		return nil
	}
	clone := make([]float64, len(genome))
	copy(clone, genome)
	return clone
}

// applyConfigDefaults fills in unset job config fields.
func applyConfigDefaults(config *JobConfig) {
	if config.Mode == "" {
		config.Mode = store.ModeTarget
	}
	if config.PopSize <= 0 {
		config.PopSize = 30
	}
	if config.Generations <= 0 {
		config.Generations = 100
	}
	if config.MutationRate <= 0 {
		config.MutationRate = 0.1
	}
	if config.Mode == store.ModeFunction && config.Dim <= 0 {
		config.Dim = 2
	}
}

// validateConfig rejects configs the worker cannot run.
func validateConfig(config JobConfig) error {
	switch config.Mode {
	case store.ModeTarget:
		return nil
	case store.ModeFunction:
		if config.Objective == "" {
			return fmt.Errorf("objective is required in function mode")
		}
		return nil
	default:
		return fmt.Errorf("unknown mode: %s", config.Mode)
	}
}
