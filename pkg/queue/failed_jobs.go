package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// failedJobsCollection stores jobs that exhausted their retries.
const failedJobsCollection = "shallerhub_failed_jobs"

// FailedJobRecord is the document persisted to the failed-jobs collection.
type FailedJobRecord struct {
	JobType  string    `bson:"jobType"`
	Payload  string    `bson:"payload"`
	Error    string    `bson:"error"`
	Attempts int       `bson:"attempts"`
	FailedAt time.Time `bson:"failedAt"`
}

// failedJobDB is the optional Mongo backend for persisting failed jobs.
// Set via UseDB() — nil means in-memory only.
var failedJobDB *mongo.Database

// UseDB configures the queue to persist failed jobs to MongoDB.
// Call once at boot (after mongodb.Connect()):
//
//	queue.UseDB(mongodb.DB())
func UseDB(db *mongo.Database) {
	failedJobDB = db
}

// persistFailed writes a failed job record to the database (if configured)
// and also appends to the in-memory slice as a fallback.
func (m *Manager) persistFailed(job Job, typeName string, lastErr error, attempts int) {
	// Always append to in-memory slice.
	m.mu.Lock()
	m.failed = append(m.failed, FailedJob{
		Job: job, Err: lastErr, FailedAt: time.Now(), Attempts: attempts,
	})
	m.mu.Unlock()

	if failedJobDB == nil {
		return
	}

	payload, err := json.Marshal(job)
	if err != nil {
		payload = []byte(fmt.Sprintf(`{"error": "could not marshal: %v"}`, err))
	}

	record := FailedJobRecord{
		JobType:  typeName,
		Payload:  string(payload),
		Error:    lastErr.Error(),
		Attempts: attempts,
		FailedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := failedJobDB.Collection(failedJobsCollection).InsertOne(ctx, record); err != nil {
		// Non-fatal — the in-memory slice still has it.
		// logger is not imported here to avoid import cycle, use fmt.
		fmt.Printf("queue: failed to persist failed job %s: %v\n", typeName, err)
	}
}
