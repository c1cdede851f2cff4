package extraction

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus tracks a batch extraction job through its lifecycle.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job is one transcript queued for extraction.
type Job struct {
	ID        string
	Source    string
	Status    JobStatus
	Result    *Result
	Err       string
	CreatedAt time.Time
}

// NewJob creates a pending job for the given transcript source.
func NewJob(source string) *Job {
	return &Job{
		ID:        uuid.NewString(),
		Source:    source,
		Status:    JobPending,
		CreatedAt: time.Now(),
	}
}

// JobStore manages in-memory batch extraction jobs.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	ttl  time.Duration
	done chan struct{}
}

// NewJobStore creates a job store with background cleanup of expired jobs.
func NewJobStore(ttl time.Duration) *JobStore {
	js := &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
		done: make(chan struct{}),
	}
	go js.cleanup()
	return js
}

// Create stores a new job.
func (js *JobStore) Create(job *Job) error {
	if job.ID == "" {
		return fmt.Errorf("job ID is required")
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	js.jobs[job.ID] = job
	return nil
}

// Get retrieves a job by ID.
func (js *JobStore) Get(id string) (*Job, error) {
	js.mu.RLock()
	defer js.mu.RUnlock()
	job, ok := js.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	return job, nil
}

// Update modifies an existing job.
func (js *JobStore) Update(job *Job) error {
	js.mu.Lock()
	defer js.mu.Unlock()
	if _, ok := js.jobs[job.ID]; !ok {
		return fmt.Errorf("job not found: %s", job.ID)
	}
	js.jobs[job.ID] = job
	return nil
}

// List returns all jobs ordered by creation time.
func (js *JobStore) List() []*Job {
	js.mu.RLock()
	defer js.mu.RUnlock()
	out := make([]*Job, 0, len(js.jobs))
	for _, job := range js.jobs {
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Stop signals the background cleanup goroutine to exit.
func (js *JobStore) Stop() {
	close(js.done)
}

func (js *JobStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-js.done:
			return
		case <-ticker.C:
			js.sweep(time.Now())
		}
	}
}

// sweep drops jobs older than the TTL.
func (js *JobStore) sweep(now time.Time) {
	js.mu.Lock()
	defer js.mu.Unlock()
	for id, job := range js.jobs {
		if now.Sub(job.CreatedAt) > js.ttl {
			delete(js.jobs, id)
		}
	}
}
