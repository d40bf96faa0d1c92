package session

import (
	"errors"
	"fmt"
)

// maxCycles matches the 8-bit cycle counter users have always been able to
// pass on the command line.
const maxCycles = 255

// Config is the immutable shape of a session.
type Config struct {
	WorkMinutes  int
	BreakMinutes int
	Cycles       int
}

func DefaultConfig() Config {
	return Config{
		WorkMinutes:  25,
		BreakMinutes: 5,
		Cycles:       4,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.WorkMinutes < 0 {
		errs = append(errs, fmt.Errorf("work time must not be negative, got %d", c.WorkMinutes))
	}
	if c.BreakMinutes < 0 {
		errs = append(errs, fmt.Errorf("break time must not be negative, got %d", c.BreakMinutes))
	}
	if c.Cycles < 0 || c.Cycles > maxCycles {
		errs = append(errs, fmt.Errorf("cycles must be between 0 and %d, got %d", maxCycles, c.Cycles))
	}
	return errors.Join(errs...)
}

// Kind is the label of a phase.
type Kind int

const (
	Work Kind = iota
	Break
)

var kindNames = map[Kind]string{
	Work:  "work",
	Break: "break",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Phase is one timed interval of a session.
type Phase struct {
	Kind    Kind
	Cycle   int // 1-based
	Seconds int
}

func (p Phase) String() string {
	return fmt.Sprintf("%s phase %d", p.Kind, p.Cycle)
}

// Plan lists the phases a session runs through, in order.
func Plan(cfg Config) []Phase {
	phases := make([]Phase, 0, 2*max(cfg.Cycles, 0))
	for i := 1; i <= cfg.Cycles; i++ {
		phases = append(phases,
			Phase{Kind: Work, Cycle: i, Seconds: cfg.WorkMinutes * 60},
			Phase{Kind: Break, Cycle: i, Seconds: cfg.BreakMinutes * 60},
		)
	}
	return phases
}
