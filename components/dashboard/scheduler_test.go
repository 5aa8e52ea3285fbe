package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) RefreshAll(context.Context) error {
	c.calls.Add(1)
	return c.err
}

type syncTelemetry struct {
	mu     sync.Mutex
	events []string
}

func (s *syncTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *syncTelemetry) has(event string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, got := range s.events {
		if got == event {
			return true
		}
	}
	return false
}

func TestRefreshJobRunsUntilStopped(t *testing.T) {
	refresher := &countingRefresher{}
	job := NewRefreshJob(refresher, 10*time.Millisecond, nil)
	require.NoError(t, job.Start())
	require.NoError(t, job.Start(), "starting twice keeps the running scheduler")

	require.Eventually(t, func() bool { return refresher.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	job.Stop()
	stopped := refresher.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, refresher.calls.Load(), stopped+1, "no runs are scheduled after Stop")
	job.Stop()
}

func TestRefreshJobDisabledByNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		refresher := &countingRefresher{}
		job := NewRefreshJob(refresher, interval, nil)
		require.NoError(t, job.Start())
		time.Sleep(20 * time.Millisecond)
		assert.Zero(t, refresher.calls.Load(), interval.String())
		job.Stop()
	}
}

func TestRefreshJobRequiresRefresher(t *testing.T) {
	job := NewRefreshJob(nil, time.Second, nil)
	assert.Error(t, job.Start())
}

func TestRefreshJobRecordsFailures(t *testing.T) {
	telemetry := &syncTelemetry{}
	job := NewRefreshJob(&countingRefresher{err: errors.New("hook down")}, 10*time.Millisecond, telemetry)
	require.NoError(t, job.Start())
	defer job.Stop()
	require.Eventually(t, func() bool { return telemetry.has("dashboard.refresh.error") }, time.Second, 5*time.Millisecond)
}

func TestRefreshJobRefreshesService(t *testing.T) {
	hook := &eventRecorder{}
	charts := &stubCharts{}
	svc := newTestService(t, Options{RefreshHook: hook, Charts: charts})
	job := NewRefreshJob(svc, 10*time.Millisecond, nil)
	require.NoError(t, job.Start())
	defer job.Stop()
	require.Eventually(t, func() bool { return hook.has(EventRefresh) }, time.Second, 5*time.Millisecond)
	charts.mu.Lock()
	defer charts.mu.Unlock()
	assert.Positive(t, charts.purged, "refresh purges rendered charts")
}
