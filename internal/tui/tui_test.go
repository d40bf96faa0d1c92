package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/pomodoro/internal/session"
)

// plain strips styling so assertions do not depend on the color profile.
func plain(s string) string {
	return ansi.Strip(s)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed badly") }

// ============================================================
// Console
// ============================================================

func TestConsoleIntro(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Intro(session.Config{WorkMinutes: 50, BreakMinutes: 10, Cycles: 3})

	want := "Welcome to the Pomodoro CLI!\n" +
		"You've chosen to work in 50 minute intervals with 10 minute breaks\n" +
		"This cycle will continue 3 times\n"
	assert.Equal(t, want, plain(buf.String()))
}

func TestConsolePhaseLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PhaseStarted(session.Phase{Kind: session.Work, Cycle: 2, Seconds: 1500})
	c.PhaseStarted(session.Phase{Kind: session.Break, Cycle: 2, Seconds: 300})
	c.CycleCompleted(2)
	c.Goodbye()

	want := "Work time! Cycle 2\n" +
		"Nice job! Time to take a break\n" +
		"\n" +
		"Hope you got everything done! Goodbye!\n"
	assert.Equal(t, want, plain(buf.String()))
}

func TestConsoleUnknownPhasePrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).PhaseStarted(session.Phase{Kind: session.Kind(9)})
	assert.Empty(t, buf.String())
}

func TestConsoleStoppedAndNotStarted(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.NotStarted()
	c.Stopped()
	assert.Equal(t, "Maybe next time.\nSession stopped.\n", plain(buf.String()))
}

// ============================================================
// Start gate
// ============================================================

func TestWaitForStartReadsLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\nleftover\n")

	ok, err := WaitForStart(context.Background(), in, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Press enter to start\n", plain(out.String()))
}

func TestWaitForStartEOFStarts(t *testing.T) {
	var out bytes.Buffer

	ok, err := WaitForStart(context.Background(), strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWaitForStartReadError(t *testing.T) {
	var out bytes.Buffer

	ok, err := WaitForStart(context.Background(), errReader{}, &out)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "read start line")
}

func TestGateKeyMapQuit(t *testing.T) {
	km := gateKeyMap()
	assert.ElementsMatch(t, []string{"q", "esc", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, key.Help{Key: "q", Desc: "quit"}, km.Quit.Help())
}
