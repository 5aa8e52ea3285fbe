package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// RefreshJob periodically refreshes every page through the service.
type RefreshJob struct {
	mu        sync.Mutex
	refresher refresher
	interval  time.Duration
	telemetry Telemetry
	scheduler *gocron.Scheduler
}

type refresher interface {
	RefreshAll(ctx context.Context) error
}

// NewRefreshJob builds a job that calls RefreshAll every interval. Failed
// runs are recorded through telemetry.
func NewRefreshJob(r refresher, interval time.Duration, telemetry Telemetry) *RefreshJob {
	return &RefreshJob{refresher: r, interval: interval, telemetry: normalizeTelemetry(telemetry)}
}

// Start schedules the job. A non-positive interval disables it.
func (j *RefreshJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.interval <= 0 {
		return nil
	}
	if j.refresher == nil {
		return errors.New("dashboard: refresh job requires a service")
	}
	if j.scheduler != nil {
		return nil
	}
	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(j.interval).Do(j.run); err != nil {
		return err
	}
	s.StartAsync()
	j.scheduler = s
	return nil
}

// Stop halts the scheduler.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.scheduler != nil {
		j.scheduler.Stop()
		j.scheduler = nil
	}
}

func (j *RefreshJob) run() {
	ctx := context.Background()
	if err := j.refresher.RefreshAll(ctx); err != nil {
		j.telemetry.Record(ctx, "dashboard.refresh.error", map[string]any{
			"interval": j.interval.String(),
			"error":    err.Error(),
		})
	}
}
