package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var serverURL string

var statusCmd = &cobra.Command{
	Use:   "status [job-id]",
	Short: "Query the job server",
	Long: `Queries a running job server. Without arguments it lists all jobs;
with a job ID it shows that job's detailed status.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listJobs(fmt.Sprintf("%s/api/v1/jobs", serverURL))
	}
	jobID := args[0]
	return getJobStatus(fmt.Sprintf("%s/api/v1/jobs/%s/status", serverURL, jobID), jobID)
}

func listJobs(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned error: %s", string(body))
	}

	var jobs []struct {
		ID          string  `json:"id"`
		State       string  `json:"state"`
		Generation  int     `json:"generation"`
		BestFitness float64 `json:"bestFitness"`
		Config      struct {
			Mode      string  `json:"mode"`
			Target    float64 `json:"target"`
			Objective string  `json:"objective"`
		} `json:"config"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs found")
		return nil
	}

	fmt.Printf("Found %d job(s):\n\n", len(jobs))
	for _, job := range jobs {
		fmt.Printf("Job ID: %s\n", job.ID)
		fmt.Printf("  State: %s\n", job.State)
		if job.Config.Mode == "function" {
			fmt.Printf("  Problem: %s\n", job.Config.Objective)
		} else {
			fmt.Printf("  Problem: target %g\n", job.Config.Target)
		}
		fmt.Printf("  Generation: %d\n", job.Generation)
		if job.BestFitness > 0 {
			fmt.Printf("  Best fitness: %.6g\n", job.BestFitness)
		}
		fmt.Println()
	}

	return nil
}

func getJobStatus(url, jobID string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("job not found: %s", jobID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned error: %s", string(body))
	}

	var status struct {
		ID          string    `json:"id"`
		State       string    `json:"state"`
		Generation  int       `json:"generation"`
		BestGenome  []float64 `json:"bestGenome"`
		BestFitness float64   `json:"bestFitness"`
		Elapsed     float64   `json:"elapsed"`
		GPS         float64   `json:"gps"`
		Error       string    `json:"error"`
		Config      struct {
			Mode         string  `json:"mode"`
			Target       float64 `json:"target"`
			Objective    string  `json:"objective"`
			Dim          int     `json:"dim"`
			PopSize      int     `json:"popSize"`
			Generations  int     `json:"generations"`
			MutationRate float64 `json:"mutationRate"`
		} `json:"config"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("Job: %s\n", status.ID)
	fmt.Printf("State: %s\n", status.State)
	fmt.Println()

	fmt.Println("Configuration:")
	fmt.Printf("  Mode: %s\n", status.Config.Mode)
	if status.Config.Mode == "function" {
		fmt.Printf("  Objective: %s (dim %d)\n", status.Config.Objective, status.Config.Dim)
	} else {
		fmt.Printf("  Target: %g\n", status.Config.Target)
	}
	fmt.Printf("  Population: %d\n", status.Config.PopSize)
	fmt.Printf("  Generations: %d\n", status.Config.Generations)
	fmt.Printf("  Mutation rate: %g\n", status.Config.MutationRate)
	fmt.Println()

	fmt.Println("Progress:")
	fmt.Printf("  Generation: %d\n", status.Generation)
	if status.BestFitness > 0 {
		fmt.Printf("  Best fitness: %.6g\n", status.BestFitness)
	}
	if len(status.BestGenome) > 0 && len(status.BestGenome) <= 8 {
		fmt.Printf("  Best genome: %v\n", status.BestGenome)
	}
	if status.Elapsed > 0 {
		elapsed := time.Duration(status.Elapsed * float64(time.Second))
		fmt.Printf("  Elapsed: %s\n", elapsed.Round(time.Millisecond))
	}
	if status.GPS > 0 {
		fmt.Printf("  Throughput: %.1f generations/sec\n", status.GPS)
	}

	if status.Error != "" {
		fmt.Printf("\nError: %s\n", status.Error)
	}

	return nil
}
