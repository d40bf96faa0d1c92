package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

const startPrompt = "Press enter to start"

// WaitForStart blocks until the user is ready. On a terminal it shows a
// Start/Quit prompt; otherwise it waits for one line on in. It reports false
// when the user chose to quit.
func WaitForStart(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return confirmStart(ctx, f, out)
	}
	return readLine(in, out)
}

func confirmStart(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	start := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(startPrompt).
				Affirmative("Start").
				Negative("Quit").
				Value(&start),
		),
	).WithKeyMap(gateKeyMap()).
		WithShowHelp(true).
		WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, fmt.Errorf("start prompt: %w", err)
	}
	return start, nil
}

// readLine waits for a newline. End of input counts as ready so the timer
// can be started from a script.
func readLine(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, mutedStyle.Render(startPrompt))
	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read start line: %w", err)
	}
	return true, nil
}
