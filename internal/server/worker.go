package server

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/ecosystem"
	"github.com/cwbudde/ecosystem/internal/objective"
	"github.com/cwbudde/ecosystem/internal/store"
	"github.com/cwbudde/ecosystem/organism"
)

// targetSpan is the half-width of the search interval around the target
// in target mode.
const targetSpan = 10.0

// buildEvaluator derives the cost function and bounds from a job config.
func buildEvaluator(config JobConfig) (eval func([]float64) float64, lower, upper []float64, err error) {
	switch config.Mode {
	case store.ModeTarget:
		target := config.Target
		eval = func(x []float64) float64 {
			return math.Abs(target - x[0])
		}
		return eval, []float64{target - targetSpan}, []float64{target + targetSpan}, nil

	case store.ModeFunction:
		obj, err := objective.Lookup(config.Objective)
		if err != nil {
			return nil, nil, nil, err
		}
		lower, upper = obj.Bounds(config.Dim)
		return obj.Eval, lower, upper, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown mode: %s", config.Mode)
	}
}

// seedPopulation builds the initial population. Without a seed genome the
// population is uniform random inside the bounds. With one (a resume), the
// first organism carries the genome exactly and the rest carry mutated
// copies, so the best result so far is never lost.
func seedPopulation(config JobConfig, eval func([]float64) float64, lower, upper []float64, seedGenome []float64) []*organism.Vector {
	rng := rand.New(rand.NewSource(config.Seed))

	organisms := make([]*organism.Vector, config.PopSize)
	for i := range organisms {
		organisms[i] = organism.NewVector(eval, lower, upper, rng)
		if seedGenome != nil {
			copy(organisms[i].Genome, seedGenome)
			if i > 0 {
				organisms[i].Mutate(config.MutationRate)
			}
		}
	}
	return organisms
}

// RunJob executes an evolution job synchronously, updating job state,
// broadcasting progress, appending trace entries, and checkpointing as it
// goes. The HTTP server runs it in a goroutine per job; the resume CLI
// calls it directly and blocks. With resumeFrom set, the run continues
// from that checkpoint's state.
func RunJob(ctx context.Context, jm *JobManager, checkpointStore *store.FSStore, jobID string, resumeFrom *store.Checkpoint) error {
	job, exists := jm.GetJob(jobID)
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}

	if err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	}); err != nil {
		return err
	}

	slog.Info("Starting job", "job_id", jobID, "mode", job.Config.Mode, "generations", job.Config.Generations)

	eval, lower, upper, err := buildEvaluator(job.Config)
	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	var seedGenome []float64
	startGeneration := 0
	if resumeFrom != nil {
		seedGenome = resumeFrom.BestGenome
		startGeneration = resumeFrom.Generation
	}

	organisms := seedPopulation(job.Config, eval, lower, upper, seedGenome)
	eco, err := ecosystem.NewWithRand(organisms, rand.New(rand.NewSource(job.Config.Seed)))
	if err != nil {
		markJobFailed(jm, jobID, fmt.Errorf("failed to build population: %w", err))
		return err
	}

	var trace *store.TraceWriter
	if checkpointStore != nil {
		trace, err = store.NewTraceWriter(checkpointStore.BaseDir(), jobID, resumeFrom != nil)
		if err != nil {
			markJobFailed(jm, jobID, err)
			return err
		}
		defer trace.Close()
	}

	start := time.Now()
	bestGenome := cloneGenome(seedGenome)
	bestFitness := 0.0
	if resumeFrom != nil {
		bestFitness = resumeFrom.BestFitness
	}

	for g := 1; g <= job.Config.Generations; g++ {
		select {
		case <-ctx.Done():
			slog.Info("Job cancelled", "job_id", jobID, "generation", startGeneration+g-1)
			saveCheckpoint(checkpointStore, jm, jobID, bestGenome, bestFitness, startGeneration+g-1)
			markJobCancelled(jm, jobID)
			return ctx.Err()
		default:
		}

		eco.AdvanceGeneration(job.Config.MutationRate)
		generation := startGeneration + g

		fittest := eco.Fittest()
		if f := fittest.Fitness(); f > bestFitness || bestGenome == nil {
			bestFitness = f
			bestGenome = cloneGenome(fittest.Genome)
		}

		gps := float64(g) / time.Since(start).Seconds()

		jm.UpdateJob(jobID, func(j *Job) {
			j.Generation = generation
			j.BestGenome = bestGenome
			j.BestFitness = bestFitness
		})
		jm.broadcaster.Broadcast(ProgressEvent{
			JobID:       jobID,
			State:       StateRunning,
			Generation:  generation,
			BestFitness: bestFitness,
			GPS:         gps,
			Timestamp:   time.Now(),
		})

		if trace != nil {
			if err := trace.Write(store.TraceEntry{
				Generation:  generation,
				BestFitness: bestFitness,
				Timestamp:   time.Now(),
			}); err != nil {
				slog.Warn("Failed to write trace entry", "job_id", jobID, "error", err)
			}
		}

		if interval := job.Config.CheckpointInterval; interval > 0 && g%interval == 0 {
			saveCheckpoint(checkpointStore, jm, jobID, bestGenome, bestFitness, generation)
			if trace != nil {
				trace.Flush()
			}
		}
	}

	finalGeneration := startGeneration + job.Config.Generations
	saveCheckpoint(checkpointStore, jm, jobID, bestGenome, bestFitness, finalGeneration)

	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCompleted
		j.Generation = finalGeneration
		j.BestGenome = bestGenome
		j.BestFitness = bestFitness
		j.EndTime = &endTime
	})
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:       jobID,
		State:       StateCompleted,
		Generation:  finalGeneration,
		BestFitness: bestFitness,
		GPS:         float64(job.Config.Generations) / endTime.Sub(start).Seconds(),
		Timestamp:   endTime,
	})

	slog.Info("Job completed",
		"job_id", jobID,
		"generations", finalGeneration,
		"best_fitness", bestFitness,
		"elapsed", endTime.Sub(start),
	)
	return nil
}

// saveCheckpoint persists the current best state, logging failures rather
// than aborting the run.
func saveCheckpoint(checkpointStore *store.FSStore, jm *JobManager, jobID string, bestGenome []float64, bestFitness float64, generation int) {
	if checkpointStore == nil || bestGenome == nil {
		return
	}

	job, exists := jm.GetJob(jobID)
	if !exists {
		return
	}

	checkpoint := store.NewCheckpoint(jobID, bestGenome, bestFitness, generation, job.Config)
	if err := checkpointStore.SaveCheckpoint(jobID, checkpoint); err != nil {
		slog.Warn("Failed to save checkpoint", "job_id", jobID, "error", err)
	}
}

// markJobFailed records a job failure.
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateFailed,
		Timestamp: endTime,
	})
	slog.Error("Job failed", "job_id", jobID, "error", err)
}

// markJobCancelled records a job cancellation.
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateCancelled,
		Timestamp: endTime,
	})
}
