package platform

import (
	"io"
	"os"
)

// Lines written by the console backend on lifecycle transitions.
const (
	ConsoleInitLine     = "platform-unix: initialized\n"
	ConsoleShutdownLine = "platform-unix: shutdown\n"
)

// Console is the backend that writes to a console stream.
type Console struct {
	w io.Writer
}

// NewConsole creates a console backend writing to w.
// A nil w selects os.Stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Init writes the initialization line.
func (c *Console) Init() {
	c.write(ConsoleInitLine)
}

// Shutdown writes the shutdown line.
func (c *Console) Shutdown() {
	c.write(ConsoleShutdownLine)
}

// Print writes msg exactly as given.
func (c *Console) Print(msg string) {
	c.write(msg)
}

// write ignores errors: the capability has no failure mode to report them through.
func (c *Console) write(s string) {
	_, _ = io.WriteString(c.w, s)
}
