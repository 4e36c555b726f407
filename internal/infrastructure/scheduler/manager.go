// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const (
	JobOrphanBlobSweep       = "orphan-blob-sweep"
	JobNotificationRetention = "notification-retention"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager runs the maintenance jobs on a single gocron scheduler.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterOrphanBlobSweep runs job hourly, starting one interval after Start.
func (m *SchedulerManager) RegisterOrphanBlobSweep(job BatchJob) error {
	return m.registerBatchJob(JobOrphanBlobSweep, time.Hour, 10*time.Minute, job, "storage")
}

// RegisterNotificationRetention runs job daily at 03:30 business time.
func (m *SchedulerManager) RegisterNotificationRetention(job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 30, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runBatchJob(ctx, JobNotificationRetention, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification"),
		gocron.WithName(JobNotificationRetention),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered scheduled job", "job", JobNotificationRetention, "at", "03:30")
	return nil
}

func (m *SchedulerManager) registerBatchJob(name string, interval, timeout time.Duration, job BatchJob, tags ...string) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runBatchJob(ctx, name, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags(tags...),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered scheduled job", "job", name, "interval", interval.String())
	return nil
}

func (m *SchedulerManager) runBatchJob(ctx context.Context, name string, job BatchJob) {
	startTime := biztime.NowUTC()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("scheduled job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
		return
	}
	m.logger.Debugw("scheduled job found nothing to do", "job", name)
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
