// Package tui prints the session's status lines and asks the user to start.
package tui

import (
	"fmt"
	"io"

	"github.com/sadopc/pomodoro/internal/session"
)

// Console writes human-facing status lines. It implements session.Observer.
// Write errors are ignored here; the countdown reports a broken terminal.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Intro(cfg session.Config) {
	fmt.Fprintln(c.out, titleStyle.Render("Welcome to the Pomodoro CLI!"))
	fmt.Fprintln(c.out, textStyle.Render(fmt.Sprintf(
		"You've chosen to work in %s minute intervals with %s minute breaks",
		highlightStyle.Render(fmt.Sprint(cfg.WorkMinutes)),
		highlightStyle.Render(fmt.Sprint(cfg.BreakMinutes)),
	)))
	fmt.Fprintln(c.out, textStyle.Render(fmt.Sprintf(
		"This cycle will continue %s times",
		highlightStyle.Render(fmt.Sprint(cfg.Cycles)),
	)))
}

func (c *Console) PhaseStarted(p session.Phase) {
	switch p.Kind {
	case session.Work:
		fmt.Fprintln(c.out, workStyle.Render(fmt.Sprintf("Work time! Cycle %d", p.Cycle)))
	case session.Break:
		fmt.Fprintln(c.out, breakStyle.Render("Nice job! Time to take a break"))
	}
}

func (c *Console) CycleCompleted(int) {
	fmt.Fprintln(c.out)
}

func (c *Console) Goodbye() {
	fmt.Fprintln(c.out, titleStyle.Render("Hope you got everything done! Goodbye!"))
}

func (c *Console) NotStarted() {
	fmt.Fprintln(c.out, mutedStyle.Render("Maybe next time."))
}

// Stopped reports an interrupted session.
func (c *Console) Stopped() {
	fmt.Fprintln(c.out, stoppedStyle.Render("Session stopped."))
}
