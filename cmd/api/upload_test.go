package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"linkvetter/internal/queue"
)

func TestParseCSVURLs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{
			name:     "one url per row",
			input:    "https://a.example\nhttps://b.example\n",
			expected: []string{"https://a.example", "https://b.example"},
		},
		{
			name:     "first column only",
			input:    "https://a.example,extra,columns\nhttps://b.example,x\n",
			expected: []string{"https://a.example", "https://b.example"},
		},
		{
			name:     "blank cells skipped",
			input:    "https://a.example\n\"\"\nhttps://b.example\n",
			expected: []string{"https://a.example", "https://b.example"},
		},
		{
			name:     "empty file",
			input:    "",
			expected: nil,
		},
		{
			name:    "ragged quoting rejected",
			input:   "https://a.example\n\"unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := parseCSVURLs(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCSVURLs error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(urls) != len(tt.expected) {
				t.Fatalf("parsed %v, want %v", urls, tt.expected)
			}
			for i := range urls {
				if urls[i] != tt.expected[i] {
					t.Errorf("url[%d] = %q, want %q", i, urls[i], tt.expected[i])
				}
			}
		})
	}
}

func TestEnqueueJobTasksCountsOnlyQueuedRows(t *testing.T) {
	urls := []string{
		"https://a.example",
		"https://b.example",
		"https://c.example",
		"https://d.example",
	}

	// Every second push fails. The returned count must reflect only the
	// rows that reached the queue: that count becomes the job's
	// total_count, and the worker completes a job when processed_count
	// catches up to it.
	calls := 0
	flaky := func(ctx context.Context, task queue.Task) error {
		calls++
		if calls%2 == 0 {
			return errors.New("connection reset")
		}
		return nil
	}

	enqueued := enqueueJobTasks(context.Background(), "job-1", urls, flaky)
	if enqueued != 2 {
		t.Errorf("enqueued = %d, want 2", enqueued)
	}
	if calls != len(urls) {
		t.Errorf("enqueue attempts = %d, want %d (failures must not abort the loop)", calls, len(urls))
	}
}

func TestEnqueueJobTasksTagsTasksWithJob(t *testing.T) {
	var seen []queue.Task
	record := func(ctx context.Context, task queue.Task) error {
		seen = append(seen, task)
		return nil
	}

	urls := []string{"https://a.example", "https://b.example"}
	if got := enqueueJobTasks(context.Background(), "job-7", urls, record); got != len(urls) {
		t.Fatalf("enqueued = %d, want %d", got, len(urls))
	}

	for i, task := range seen {
		if task.JobID != "job-7" {
			t.Errorf("task %d job id = %q, want job-7", i, task.JobID)
		}
		if task.URL != urls[i] {
			t.Errorf("task %d url = %q, want %q", i, task.URL, urls[i])
		}
	}
}
