// Package countdown draws a once-per-second mm:ss countdown in place on the
// terminal.
package countdown

import (
	"context"
	"fmt"
	"time"
)

const tick = time.Second

// Renderer counts down on a Surface. It is not safe for concurrent use; one
// countdown owns the cursor at a time.
type Renderer struct {
	surface *Surface
	clock   Clock
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(r *Renderer) {
		r.clock = c
	}
}

func New(s *Surface, opts ...Option) *Renderer {
	r := &Renderer{
		surface: s,
		clock:   RealClock{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks for totalSeconds seconds, drawing the remaining time once per
// second from totalSeconds-1 down to 0. The first tick is drawn immediately.
//
// Tick deadlines are measured from the start of the countdown rather than
// from the previous tick, so a slow write does not push the end back.
// Cancelling ctx clears the line and returns ctx.Err() at the next tick.
func (r *Renderer) Run(ctx context.Context, totalSeconds int) error {
	if totalSeconds <= 0 {
		return nil
	}

	start := r.clock.Now()
	for i := 0; i < totalSeconds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		remaining := totalSeconds - 1 - i
		r.surface.SavePosition()
		r.surface.WriteString(FormatClock(remaining))
		r.surface.RestorePosition()
		if err := r.surface.Flush(); err != nil {
			return fmt.Errorf("render countdown: %w", err)
		}

		deadline := start.Add(time.Duration(i+1) * tick)
		waitErr := r.wait(ctx, deadline)

		r.surface.RestorePosition()
		r.surface.ClearBelow()
		if err := r.surface.Flush(); err != nil {
			return fmt.Errorf("clear countdown: %w", err)
		}
		if waitErr != nil {
			return waitErr
		}
	}
	return nil
}

func (r *Renderer) wait(ctx context.Context, deadline time.Time) error {
	d := deadline.Sub(r.clock.Now())
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.clock.After(d):
		return nil
	}
}

// FormatClock renders seconds as zero-padded mm:ss. Minutes are not wrapped
// into hours.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
