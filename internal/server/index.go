package server

import (
	"fmt"
	"html/template"
	"net/http"
	"sort"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ecosystem jobs</title>
<style>
body { font-family: monospace; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.4em 0.8em; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>Evolution jobs</h1>
{{if .}}
<table>
<tr><th>ID</th><th>State</th><th>Mode</th><th>Generation</th><th>Best fitness</th><th>Started</th></tr>
{{range .}}
<tr>
<td><a href="/api/v1/jobs/{{.ID}}/status">{{.ShortID}}</a></td>
<td>{{.State}}</td>
<td>{{.Mode}}</td>
<td>{{.Generation}}</td>
<td>{{.BestFitness}}</td>
<td>{{.Started}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No jobs yet. POST a config to /api/v1/jobs to start one.</p>
{{end}}
</body>
</html>
`))

type indexRow struct {
	ID          string
	ShortID     string
	State       JobState
	Mode        string
	Generation  int
	BestFitness string
	Started     string
}

// handleIndex handles GET / with a plain job listing.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	jobs := s.jobManager.ListJobs()
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartTime.After(jobs[j].StartTime)
	})

	rows := make([]indexRow, len(jobs))
	for i, job := range jobs {
		shortID := job.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		rows[i] = indexRow{
			ID:          job.ID,
			ShortID:     shortID,
			State:       job.State,
			Mode:        job.Config.Mode,
			Generation:  job.Generation,
			BestFitness: fmt.Sprintf("%.6g", job.BestFitness),
			Started:     job.StartTime.Format("2006-01-02 15:04:05"),
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, rows); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
