package countdown

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Surface is the terminal region the countdown draws on. It owns the cursor
// for as long as a session runs and must be closed to show the cursor again.
//
// Writes are buffered. The first write error sticks: later calls are no-ops
// and Flush and Close report it.
type Surface struct {
	w   *bufio.Writer
	err error
}

func NewSurface(w io.Writer) *Surface {
	return &Surface{w: bufio.NewWriter(w)}
}

func (s *Surface) write(seq string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(seq)
}

func (s *Surface) SavePosition()    { s.write(ansi.SaveCursor) }
func (s *Surface) RestorePosition() { s.write(ansi.RestoreCursor) }
func (s *Surface) ClearBelow()      { s.write(ansi.EraseScreenBelow) }
func (s *Surface) HideCursor()      { s.write(ansi.HideCursor) }
func (s *Surface) ShowCursor()      { s.write(ansi.ShowCursor) }

// WriteString queues text at the current cursor position.
func (s *Surface) WriteString(text string) { s.write(text) }

// Flush pushes queued output to the terminal.
func (s *Surface) Flush() error {
	if s.err != nil {
		return fmt.Errorf("write terminal: %w", s.err)
	}
	if err := s.w.Flush(); err != nil {
		s.err = err
		return fmt.Errorf("flush terminal: %w", err)
	}
	return nil
}

// Close shows the cursor again. It is safe to call more than once.
func (s *Surface) Close() error {
	s.ShowCursor()
	return s.Flush()
}
