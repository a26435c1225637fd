package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/ecosystem/internal/server"
	"github.com/cwbudde/ecosystem/internal/store"
	"github.com/spf13/cobra"
)

var (
	resumeDataDir     string
	resumeGenerations int
)

var resumeCmd = &cobra.Command{
	Use:   "resume [job-id]",
	Short: "Resume an evolution job from its checkpoint",
	Long: `Resumes a checkpointed job: a fresh population is seeded around the
stored best genome and evolved further. The best result so far is never
lost, though the run will diverge from an uninterrupted one.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().StringVar(&resumeDataDir, "data-dir", "./data", "Base directory for checkpoint storage")
	resumeCmd.Flags().IntVar(&resumeGenerations, "generations", 0, "Generations to evolve (0 = the checkpointed config's count)")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	jobID := args[0]

	checkpointStore, err := store.NewFSStore(resumeDataDir)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint store: %w", err)
	}

	checkpoint, err := checkpointStore.LoadCheckpoint(jobID)
	if err != nil {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if err := checkpoint.Validate(); err != nil {
		return fmt.Errorf("checkpoint is not resumable: %w", err)
	}

	config := checkpoint.Config
	if resumeGenerations > 0 {
		config.Generations = resumeGenerations
	}
	if err := checkpoint.IsCompatible(config); err != nil {
		return err
	}

	slog.Info("Resuming job",
		"job_id", jobID,
		"from_generation", checkpoint.Generation,
		"best_fitness", checkpoint.BestFitness,
		"generations", config.Generations,
	)

	jm := server.NewJobManager()
	job := jm.AdoptJob(jobID, config)

	if err := server.RunJob(cmd.Context(), jm, checkpointStore, job.ID, checkpoint); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	finished, _ := jm.GetJob(jobID)
	fmt.Printf("Resumed job %s: generation %d -> %d, best fitness %.6g\n",
		jobID, checkpoint.Generation, finished.Generation, finished.BestFitness)

	return nil
}
