package countdown

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances instantly when waited on. lag simulates a late wakeup
// after every wait.
type fakeClock struct {
	now   time.Time
	lag   time.Duration
	waits []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	c.now = c.now.Add(d + c.lag)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

// cancelClock cancels the countdown the first time it is waited on and never
// fires.
type cancelClock struct {
	fakeClock
	cancel context.CancelFunc
}

func (c *cancelClock) After(time.Duration) <-chan time.Time {
	c.cancel()
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// frames returns the text drawn on each tick.
func frames(out string) []string {
	var got []string
	for _, part := range strings.Split(out, ansi.SaveCursor)[1:] {
		got = append(got, part[:strings.Index(part, ansi.RestoreCursor)])
	}
	return got
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{125, "02:05"},
		{1499, "24:59"},
		{3600, "60:00"},
		{6000, "100:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds), "FormatClock(%d)", tt.seconds)
	}
}

func TestRunDrawsEverySecond(t *testing.T) {
	var buf bytes.Buffer
	clock := newFakeClock()
	start := clock.Now()
	r := New(NewSurface(&buf), WithClock(clock))

	require.NoError(t, r.Run(context.Background(), 130))

	got := frames(buf.String())
	require.Len(t, got, 130)
	assert.Equal(t, "02:09", got[0])
	assert.Equal(t, "02:05", got[4])
	assert.Equal(t, "00:00", got[129])
	assert.Equal(t, 130*time.Second, clock.Now().Sub(start))
}

func TestRunCountsDownWithoutGaps(t *testing.T) {
	var buf bytes.Buffer
	r := New(NewSurface(&buf), WithClock(newFakeClock()))

	require.NoError(t, r.Run(context.Background(), 61))

	got := frames(buf.String())
	require.Len(t, got, 61)
	for i, frame := range got {
		assert.Equal(t, FormatClock(60-i), frame)
	}
}

func TestRunClearsAfterLastTick(t *testing.T) {
	var buf bytes.Buffer
	r := New(NewSurface(&buf), WithClock(newFakeClock()))

	require.NoError(t, r.Run(context.Background(), 2))

	want := ansi.SaveCursor + "00:01" + ansi.RestoreCursor + ansi.RestoreCursor + ansi.EraseScreenBelow +
		ansi.SaveCursor + "00:00" + ansi.RestoreCursor + ansi.RestoreCursor + ansi.EraseScreenBelow
	assert.Equal(t, want, buf.String())
}

func TestRunZeroReturnsImmediately(t *testing.T) {
	var buf bytes.Buffer
	clock := newFakeClock()
	r := New(NewSurface(&buf), WithClock(clock))

	require.NoError(t, r.Run(context.Background(), 0))
	assert.Empty(t, buf.String())
	assert.Empty(t, clock.waits)
}

func TestRunZeroWithRealClock(t *testing.T) {
	var buf bytes.Buffer
	r := New(NewSurface(&buf))

	begin := time.Now()
	require.NoError(t, r.Run(context.Background(), 0))
	assert.Less(t, time.Since(begin), 50*time.Millisecond)
	assert.Empty(t, buf.String())
}

func TestRunAbsorbsLateWakeups(t *testing.T) {
	var buf bytes.Buffer
	clock := newFakeClock()
	clock.lag = 30 * time.Millisecond
	start := clock.Now()
	r := New(NewSurface(&buf), WithClock(clock))

	require.NoError(t, r.Run(context.Background(), 10))

	// Late wakeups shorten the following wait instead of accumulating.
	drift := clock.Now().Sub(start) - 10*time.Second
	assert.LessOrEqual(t, drift, 50*time.Millisecond)
	assert.Len(t, frames(buf.String()), 10)
	for _, d := range clock.waits[1:] {
		assert.Equal(t, time.Second-30*time.Millisecond, d)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	r := New(NewSurface(&buf), WithClock(newFakeClock()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestRunCancelledMidTick(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	clock := &cancelClock{fakeClock: *newFakeClock(), cancel: cancel}
	r := New(NewSurface(&buf), WithClock(clock))

	err := r.Run(ctx, 300)
	require.ErrorIs(t, err, context.Canceled)

	out := buf.String()
	assert.Equal(t, []string{"04:59"}, frames(out))
	assert.True(t, strings.HasSuffix(out, ansi.RestoreCursor+ansi.EraseScreenBelow), "line should be cleared")
}

func TestRunWriteFailure(t *testing.T) {
	r := New(NewSurface(failingWriter{}), WithClock(newFakeClock()))

	err := r.Run(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render countdown")
	assert.Contains(t, err.Error(), "broken pipe")
}
