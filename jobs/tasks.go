package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportWarmup refreshes the snapshot and primes the report cache.
	TaskReportWarmup = "reports:warmup"
)

// ReportWarmupPayload scopes the warmup pass. An empty payload warms the
// unbounded reports, which is what the dashboard opens with.
type ReportWarmupPayload struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Keyword string `json:"keyword,omitempty"`
}

// NewReportWarmupTask constructs an Asynq task.
func NewReportWarmupTask(payload ReportWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportWarmup, data), nil
}
