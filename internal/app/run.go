package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sadopc/pomodoro/internal/countdown"
	"github.com/sadopc/pomodoro/internal/cue"
	"github.com/sadopc/pomodoro/internal/session"
	"github.com/sadopc/pomodoro/internal/tui"
)

// ErrInterrupted is returned when the session was stopped by a signal.
var ErrInterrupted = errors.New("session interrupted")

type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func run(ctx context.Context, opts options, std streams, deps collaborators) error {
	logger, err := newLogger(opts.LogLevel, opts.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	console := tui.NewConsole(std.out)
	console.Intro(opts.Session)

	ready, err := tui.WaitForStart(ctx, std.in, std.out)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return interrupted(std)
		}
		return err
	}
	if !ready {
		console.NotStarted()
		return nil
	}

	// The surface owns the cursor until the session ends, whichever way it
	// ends.
	surface := countdown.NewSurface(std.out)
	surface.HideCursor()
	if err := surface.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	defer func() {
		if err := surface.Close(); err != nil {
			logger.Warn("restore cursor failed", zap.Error(err))
		}
	}()

	cues := cue.NewDispatcher(ctx, deps.notifier(opts), deps.player(opts), logger.Named("cue"))
	renderer := countdown.New(surface, countdown.WithClock(deps.clock))
	seq := session.New(opts.Session, renderer, cues,
		session.WithObserver(console),
		session.WithLogger(logger.Named("session")),
	)

	logger.Info("session starting",
		zap.Int("work_minutes", opts.Session.WorkMinutes),
		zap.Int("break_minutes", opts.Session.BreakMinutes),
		zap.Int("cycles", opts.Session.Cycles))

	if err := seq.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return interrupted(std)
		}
		return err
	}

	console.Goodbye()
	return nil
}

func interrupted(std streams) error {
	tui.NewConsole(std.errOut).Stopped()
	return ErrInterrupted
}
