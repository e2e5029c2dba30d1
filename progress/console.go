package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/mattn/go-isatty"
)

// Console writes to a terminal or a plain stream. On a terminal the bar is
// redrawn in place; otherwise a bar line is printed every tenth of the stage
// and once on completion.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	tty   bool
	bar   Bar
	track Tracker
	open  bool // a bar line is being redrawn and lacks its newline
}

type fder interface{ Fd() uintptr }

// NewConsole returns a console sink writing to w.
func NewConsole(w io.Writer) *Console {
	c := &Console{w: w, bar: DefaultBar}
	if f, ok := w.(fder); ok {
		c.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return c
}

func (c *Console) Logf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeBar()
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) Step(stage string, done, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	line := c.bar.Render(stage, done, total, c.track.Elapsed(stage, done))
	if c.tty {
		fmt.Fprintf(c.w, "\r%s", line)
		c.open = true
		if done >= total {
			c.closeBar()
		}
		return
	}
	every := max(total/10, 1)
	if done >= total || done%every == 0 {
		fmt.Fprintln(c.w, line)
	}
}

func (c *Console) closeBar() {
	if c.open {
		fmt.Fprintln(c.w)
		c.open = false
	}
}
