package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"linkvetter/internal/queue"
	"linkvetter/internal/store"

	"github.com/google/uuid"
)

// UploadResponse is what we send back to the user.
type UploadResponse struct {
	JobID     string `json:"job_id"`
	TotalRows int    `json:"total_rows"`
	Message   string `json:"message"`
}

func uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large or malformed", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing 'file' parameter in form data", http.StatusBadRequest)
		return
	}
	defer file.Close()

	urls, err := parseCSVURLs(file)
	if err != nil {
		http.Error(w, "Invalid CSV format", http.StatusBadRequest)
		return
	}
	if len(urls) == 0 {
		http.Error(w, "CSV is empty", http.StatusBadRequest)
		return
	}

	jobID := uuid.New().String()
	ctx := r.Context()

	query := `INSERT INTO jobs (id, status, total_count, created_at) VALUES ($1, 'pending', $2, $3)`
	if _, err := store.DB.Exec(ctx, query, jobID, len(urls), time.Now()); err != nil {
		fmt.Printf("DB Error: %v\n", err)
		http.Error(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	enqueued := enqueueJobTasks(ctx, jobID, urls, queue.Enqueue)

	// The worker only flips a job to 'completed' when processed_count
	// reaches total_count, so a dropped row would leave the job pending
	// forever. Shrink the total to the rows that actually made it onto the
	// queue; a job with nothing queued is dead on arrival and marked failed.
	if enqueued < len(urls) {
		reconcile := `
			UPDATE jobs
			SET total_count = $1,
			    status = CASE
			        WHEN $1 = 0 THEN 'failed'
			        WHEN processed_count >= $1 THEN 'completed'
			        ELSE status
			    END,
			    completed_at = CASE
			        WHEN $1 > 0 AND processed_count >= $1 THEN NOW()
			        ELSE completed_at
			    END
			WHERE id = $2
		`
		if _, err := store.DB.Exec(ctx, reconcile, enqueued, jobID); err != nil {
			log.Printf("[ERROR] Failed to reconcile job %s total: %v", jobID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	resp := UploadResponse{
		JobID:     jobID,
		TotalRows: enqueued,
		Message:   "Job created successfully. Processing started.",
	}
	json.NewEncoder(w).Encode(resp)
}

// parseCSVURLs reads a CSV of URLs, one per row, first column. Blank cells
// are skipped.
func parseCSVURLs(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	var urls []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) > 0 && record[0] != "" {
			urls = append(urls, record[0])
		}
	}

	return urls, nil
}

// enqueueJobTasks pushes one task per URL and returns how many made it onto
// the queue. Failed pushes are logged and skipped; the caller is responsible
// for reconciling the job's total against the returned count.
func enqueueJobTasks(ctx context.Context, jobID string, urls []string, enqueue func(context.Context, queue.Task) error) int {
	enqueued := 0
	for _, u := range urls {
		if err := enqueue(ctx, queue.Task{JobID: jobID, URL: u}); err != nil {
			log.Printf("[ERROR] Failed to enqueue %s: %v", u, err)
			continue
		}
		enqueued++
	}
	return enqueued
}
