package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"linkvetter/internal/queue"
	"linkvetter/internal/scorer"
	"linkvetter/internal/store"
)

// Start launches the worker loop over the given scoring engine.
// It blocks forever, waiting for queued batch tasks.
func Start(engine *scorer.Engine) {
	log.Println("👷 Worker started. Waiting for scan tasks...")
	ctx := context.Background()

	for {
		// Blocking pop from Redis (0s timeout = wait forever).
		// BLPOP returns [queue_name, value].
		result, err := queue.Client.BLPop(ctx, 0*time.Second, queue.QueueName).Result()
		if err != nil {
			log.Printf("❌ Redis error: %v\n", err)
			time.Sleep(1 * time.Second) // backoff on error
			continue
		}

		rawJSON := result[1]
		var task queue.Task
		if err := json.Unmarshal([]byte(rawJSON), &task); err != nil {
			log.Printf("❌ Malformed task: %s\n", rawJSON)
			continue
		}

		// Score the URL. Batch tasks carry no redirect chain or AI verdict:
		// those layers contribute zero, which the scorer treats as valid
		// input rather than an error. Even a parse failure produces a
		// terminal Error assessment worth persisting.
		start := time.Now()
		assessment := engine.Assess(task.URL, nil, nil)
		assessment.Duration = time.Since(start).String()

		resultJSON, _ := json.Marshal(assessment)

		tx, err := store.DB.Begin(ctx)
		if err != nil {
			log.Printf("DB transaction error: %v\n", err)
			continue
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO scans (job_id, url, domain, score, trust_level, data)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, task.JobID, assessment.URL, assessment.Domain, assessment.Score,
			string(assessment.TrustLevel), resultJSON)

		if err != nil {
			log.Printf("Failed to save scan: %v\n", err)
			tx.Rollback(ctx)
			continue
		}

		// Bump job progress; the final task flips the job to 'completed'.
		_, err = tx.Exec(ctx, `
			UPDATE jobs
			SET processed_count = processed_count + 1,
			    status = CASE
                    WHEN processed_count + 1 >= total_count THEN 'completed'
                    ELSE status
                END,
				completed_at = CASE
                    WHEN processed_count + 1 >= total_count THEN NOW()
                    ELSE completed_at
                END
			WHERE id = $1
		`, task.JobID)

		if err != nil {
			log.Printf("Failed to update job: %v\n", err)
			tx.Rollback(ctx)
			continue
		}

		if err := tx.Commit(ctx); err != nil {
			log.Printf("Failed to commit transaction: %v\n", err)
		} else {
			fmt.Printf("✅ Scanned: %s (%s, score %d)\n", task.URL, assessment.TrustLevel, assessment.Score)
		}
	}
}
