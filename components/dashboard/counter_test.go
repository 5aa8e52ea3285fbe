package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterFinalFormatting(t *testing.T) {
	cases := []struct {
		target float64
		want   string
	}{
		{1284.53, "1,284.53"},
		{24758, "24,758"},
		{69.85, "69.85"},
		{879432, "879,432"},
	}
	for _, tc := range cases {
		c := NewCounter(tc.target, 1500*time.Millisecond)
		if got := c.Final(); got != tc.want {
			t.Fatalf("Final(%v) = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestCounterValueAtIsMonotonicAndHolds(t *testing.T) {
	c := NewCounter(1284.53, 1500*time.Millisecond)
	assert.Equal(t, 0.0, c.ValueAt(0))
	prev := 0.0
	for ms := 0; ms <= 2000; ms += 50 {
		v := c.ValueAt(time.Duration(ms) * time.Millisecond)
		if v < prev {
			t.Fatalf("value decreased at %dms: %v < %v", ms, v, prev)
		}
		prev = v
	}
	assert.Equal(t, 1284.53, c.ValueAt(1500*time.Millisecond))
	assert.Equal(t, 1284.53, c.ValueAt(time.Hour))
}

func TestCounterDefaultsDuration(t *testing.T) {
	c := NewCounter(100, 0)
	assert.Equal(t, 50.0, c.ValueAt(DefaultCounterDuration/2))
}

func TestCounterRunEmitsUntilTarget(t *testing.T) {
	c := CounterForStat(MetricStat{Value: 1284.53, Prefix: "$"}, 30*time.Millisecond, "en")
	var frames []CounterFrame
	err := c.Run(context.Background(), 2*time.Millisecond, func(f CounterFrame) error {
		frames = append(frames, f)
		return nil
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, "$0.00", frames[0].Display)
	last := frames[len(frames)-1]
	assert.True(t, last.Done)
	assert.Equal(t, 1284.53, last.Value)
	assert.Equal(t, "$1,284.53", last.Display)
	for i := 1; i < len(frames); i++ {
		if frames[i].Value < frames[i-1].Value {
			t.Fatalf("frame %d decreased", i)
		}
	}
}

func TestCounterRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCounter(24758, time.Hour)
	frames := 0
	err := c.Run(ctx, time.Millisecond, func(CounterFrame) error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCounterRunRejectsInvalidInterval(t *testing.T) {
	err := NewCounter(1, time.Second).Run(context.Background(), 0, func(CounterFrame) error { return nil })
	assert.Error(t, err)
}
