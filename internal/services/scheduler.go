package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is a unit of scheduled work.
type Job func(ctx context.Context) error

// JobInfo represents information about a scheduled job
type JobInfo struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Schedule   string        `json:"schedule"`
	LastRun    time.Time     `json:"last_run"`
	NextRun    time.Time     `json:"next_run"`
	Status     string        `json:"status"`
	RunCount   int           `json:"run_count"`
	ErrorCount int           `json:"error_count"`
	LastError  string        `json:"last_error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

type scheduledJob struct {
	info    JobInfo
	entryID cron.EntryID
	run     Job
}

// Scheduler runs league jobs such as automatic week simulation on cron
// schedules. Standard five-field expressions are accepted.
type Scheduler struct {
	cron      *cron.Cron
	logger    logrus.FieldLogger
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.RWMutex
	jobs      map[string]*scheduledJob
	isRunning bool
}

func NewScheduler(logger logrus.FieldLogger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cron.VerbosePrintfLogger(logger))),
		logger: logger.WithField("component", "scheduler"),
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(map[string]*scheduledJob),
	}
}

// AddJob registers run under id. A bad schedule expression is an error.
func (s *Scheduler) AddJob(id, name, schedule string, run Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %s already scheduled", id)
	}

	entryID, err := s.cron.AddFunc(schedule, func() { s.runJob(id) })
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", id, err)
	}

	s.jobs[id] = &scheduledJob{
		info: JobInfo{
			ID:       id,
			Name:     name,
			Schedule: schedule,
			Status:   "scheduled",
		},
		entryID: entryID,
		run:     run,
	}

	s.logger.WithFields(logrus.Fields{
		"job_id":   id,
		"job_name": name,
		"schedule": schedule,
	}).Info("Scheduled job added")
	return nil
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobs)).Info("Scheduler started")
	return nil
}

// Stop halts the schedule and waits for a running job to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.mu.Unlock()

	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// RunNow executes a job immediately, outside its schedule.
func (s *Scheduler) RunNow(id string) error {
	s.mu.RLock()
	_, exists := s.jobs[id]
	s.mu.RUnlock()
	if !exists {
		return fmt.Errorf("job %s not found", id)
	}
	return s.runJob(id)
}

// Jobs returns a snapshot of every job ordered by id.
func (s *Scheduler) Jobs() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]JobInfo, 0, len(s.jobs))
	for _, j := range s.jobs {
		info := j.info
		if entry := s.cron.Entry(j.entryID); entry.Valid() {
			info.NextRun = entry.Next
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

func (s *Scheduler) runJob(id string) (err error) {
	s.mu.Lock()
	job, exists := s.jobs[id]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("job %s not found", id)
	}
	job.info.Status = "running"
	job.info.LastRun = time.Now()
	job.info.RunCount++
	run := job.run
	s.mu.Unlock()

	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{"job_id": id, "job_name": job.info.Name})
	log.Info("Starting scheduled job")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", id, r)
		}

		s.mu.Lock()
		job.info.Duration = time.Since(start)
		if err != nil {
			job.info.Status = "failed"
			job.info.ErrorCount++
			job.info.LastError = err.Error()
		} else {
			job.info.Status = "completed"
			job.info.LastError = ""
		}
		s.mu.Unlock()

		if err != nil {
			log.WithError(err).Error("Scheduled job failed")
		} else {
			log.WithField("duration", time.Since(start)).Info("Scheduled job completed")
		}
	}()

	return run(s.ctx)
}
