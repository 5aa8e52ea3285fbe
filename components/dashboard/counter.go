package dashboard

import (
	"context"
	"errors"
	"time"
)

// DefaultCounterDuration is how long a stat card takes to count up.
const DefaultCounterDuration = 1500 * time.Millisecond

// DefaultCounterInterval approximates one animation frame.
const DefaultCounterInterval = 16 * time.Millisecond

var errInvalidInterval = errors.New("dashboard: counter interval must be positive")

// Counter interpolates a displayed value from 0 to Target over Duration.
type Counter struct {
	Target   float64
	Duration time.Duration
	Locale   string
	Prefix   string
	Suffix   string
}

// CounterFrame is one emitted step of a running counter.
type CounterFrame struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Done    bool    `json:"done"`
}

// NewCounter builds a counter for target. Non-positive durations use the default.
func NewCounter(target float64, duration time.Duration) Counter {
	return Counter{Target: target, Duration: duration}
}

// CounterForStat builds a counter that formats like the stat card.
func CounterForStat(stat MetricStat, duration time.Duration, locale string) Counter {
	return Counter{
		Target:   stat.Value,
		Duration: duration,
		Locale:   locale,
		Prefix:   stat.Prefix,
		Suffix:   stat.Suffix,
	}
}

func (c Counter) duration() time.Duration {
	if c.Duration <= 0 {
		return DefaultCounterDuration
	}
	return c.Duration
}

// ValueAt returns the interpolated value after elapsed. The value grows
// linearly and holds at Target once the duration has passed.
func (c Counter) ValueAt(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	d := c.duration()
	if elapsed >= d {
		return c.Target
	}
	return c.Target * float64(elapsed) / float64(d)
}

// Decimals is 2 when the target has a fractional part, else 0.
func (c Counter) Decimals() int {
	return decimalsFor(c.Target)
}

// Format renders an intermediate or final value using the target's precision.
func (c Counter) Format(value float64) string {
	return c.Prefix + FormatNumber(value, c.Decimals(), c.Locale) + c.Suffix
}

// Final is the display string once the counter settles.
func (c Counter) Final() string {
	return c.Format(c.Target)
}

// Run emits frames every interval until the counter settles or ctx ends. The
// last frame always carries the exact Target and Done=true.
func (c Counter) Run(ctx context.Context, interval time.Duration, emit func(CounterFrame) error) error {
	if interval <= 0 {
		return errInvalidInterval
	}
	start := time.Now()
	if err := emit(CounterFrame{Value: 0, Display: c.Format(0)}); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			value := c.ValueAt(elapsed)
			done := elapsed >= c.duration()
			if err := emit(CounterFrame{Value: value, Display: c.Format(value), Done: done}); err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}
