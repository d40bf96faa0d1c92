// Package session sequences the work and break phases of a Pomodoro
// session.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sadopc/pomodoro/internal/cue"
)

// Renderer blocks for the given number of seconds while showing the
// countdown.
type Renderer interface {
	Run(ctx context.Context, seconds int) error
}

// Trigger fires a cue without waiting for it.
type Trigger interface {
	Fire(c cue.Cue)
}

// Observer is told about progress, typically to print status lines.
type Observer interface {
	PhaseStarted(p Phase)
	CycleCompleted(cycle int)
}

type nopObserver struct{}

func (nopObserver) PhaseStarted(Phase)  {}
func (nopObserver) CycleCompleted(int) {}

// Sequencer alternates work and break phases for the configured number of
// cycles.
type Sequencer struct {
	cfg      Config
	renderer Renderer
	cues     Trigger
	observer Observer
	logger   *zap.Logger
}

// Option configures a Sequencer.
type Option func(*Sequencer)

func WithObserver(o Observer) Option {
	return func(s *Sequencer) {
		s.observer = o
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Sequencer) {
		s.logger = l
	}
}

func New(cfg Config, r Renderer, cues Trigger, opts ...Option) *Sequencer {
	s := &Sequencer{
		cfg:      cfg,
		renderer: r,
		cues:     cues,
		observer: nopObserver{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the session to completion. It returns early only when the
// renderer fails or ctx is cancelled.
func (s *Sequencer) Run(ctx context.Context) error {
	phases := Plan(s.cfg)
	for i, p := range phases {
		switch p.Kind {
		case Work:
			s.cues.Fire(cue.WorkStarted)
		case Break:
			s.cues.Fire(cue.BreakStarted)
		}

		s.observer.PhaseStarted(p)
		s.logger.Debug("phase started",
			zap.Stringer("kind", p.Kind),
			zap.Int("cycle", p.Cycle),
			zap.Int("seconds", p.Seconds))

		if err := s.renderer.Run(ctx, p.Seconds); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}

		if p.Kind == Break {
			// No transition cue after the final break.
			if i < len(phases)-1 {
				s.cues.Fire(cue.BackToWork)
			}
			s.observer.CycleCompleted(p.Cycle)
		}
	}

	s.logger.Debug("session complete", zap.Int("cycles", s.cfg.Cycles))
	return nil
}
