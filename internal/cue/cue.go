// Package cue delivers the notifications and sounds that mark phase
// boundaries. Delivery is fire-and-forget: callers never wait on a cue and
// never see its failures.
package cue

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cue identifies a phase boundary.
type Cue int

const (
	WorkStarted Cue = iota
	BreakStarted
	BackToWork
)

var cueNames = map[Cue]string{
	WorkStarted:  "work_started",
	BreakStarted: "break_started",
	BackToWork:   "back_to_work",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Message is the desktop notification body for the cue.
func (c Cue) Message() string {
	switch c {
	case WorkStarted:
		return "Work time!"
	case BreakStarted:
		return "Time to take a break!"
	case BackToWork:
		return "Back to work!"
	}
	return ""
}

// Sound is the audio sample played for the cue.
func (c Cue) Sound() Sound {
	switch c {
	case WorkStarted:
		return SoundClock
	case BreakStarted:
		return SoundSuccess
	case BackToWork:
		return SoundEndBreak
	}
	return ""
}

// Sound names an audio sample in the audio directory, without extension.
type Sound string

const (
	SoundClock    Sound = "clock"
	SoundSuccess  Sound = "success"
	SoundEndBreak Sound = "endbreak"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Player plays a sound and returns once it has finished.
type Player interface {
	Play(ctx context.Context, s Sound) error
}

// Nop is a Notifier and Player that does nothing. It backs --mute and
// --no-notify.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }
func (Nop) Play(context.Context, Sound) error    { return nil }

// Dispatcher runs each cue's notification and sound as independent tasks.
type Dispatcher struct {
	ctx      context.Context
	notifier Notifier
	player   Player
	logger   *zap.Logger
	tasks    errgroup.Group
}

// NewDispatcher returns a Dispatcher whose tasks run under ctx. Tasks are
// not bounded in time; a sound may still be playing when the next phase
// starts.
func NewDispatcher(ctx context.Context, n Notifier, p Player, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		ctx:      ctx,
		notifier: n,
		player:   p,
		logger:   logger,
	}
}

// Fire starts delivering c and returns immediately. Failures are logged.
func (d *Dispatcher) Fire(c Cue) {
	d.tasks.Go(func() error {
		if err := d.player.Play(d.ctx, c.Sound()); err != nil {
			d.logger.Warn("play sound failed",
				zap.Stringer("cue", c),
				zap.String("sound", string(c.Sound())),
				zap.Error(err))
			return fmt.Errorf("play %s: %w", c.Sound(), err)
		}
		return nil
	})
	d.tasks.Go(func() error {
		if err := d.notifier.Notify(d.ctx, c.Message()); err != nil {
			d.logger.Warn("notification failed",
				zap.Stringer("cue", c),
				zap.Error(err))
			return fmt.Errorf("notify %s: %w", c, err)
		}
		return nil
	})
	d.logger.Debug("cue fired", zap.Stringer("cue", c))
}

// Wait blocks until every fired task has finished and returns the first
// failure, which has already been logged.
func (d *Dispatcher) Wait() error {
	return d.tasks.Wait()
}
