package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-flowlayout"
	"github.com/grindlemire/go-flowlayout/internal/debug"
	"golang.org/x/term"
)

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	width := fs.Int("width", 0, "Viewport width in cells (default: terminal width)")
	height := fs.Int("height", 30, "Viewport height in cells")
	horizontal := fs.Bool("horizontal", false, "Scroll horizontally")
	frames := fs.Bool("frames", false, "List element frames instead of drawing them")
	logPath := fs.String("log", "", "Path to debug log file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer debug.Close()
	}

	w := *width
	if w <= 0 {
		w = terminalWidth()
	}
	dir := flowlayout.Vertical
	if *horizontal {
		dir = flowlayout.Horizontal
	}

	l, cat, _, err := newDemoLayout(dir, flowlayout.NewRect(0, 0, float64(w), float64(*height)))
	if err != nil {
		return err
	}
	settle(l, cat, flowlayout.Rect{})

	content := l.ContentSize()
	all := flowlayout.NewRect(0, 0, content.Width, content.Height)
	if *frames {
		return writeFrames(os.Stdout, l.AttributesForElements(all))
	}
	_, err = fmt.Fprintln(os.Stdout, paint(l, cat, all).String())
	return err
}

func writeFrames(out io.Writer, elements []flowlayout.Attributes) error {
	for _, a := range elements {
		f := a.Frame
		if _, err := fmt.Fprintf(out, "%-10s %-8s x=%-5g y=%-5g w=%-5g h=%-5g z=%d\n",
			a.Kind, a.IndexPath, f.X, f.Y, f.Width, f.Height, a.ZIndex); err != nil {
			return err
		}
	}
	return nil
}

// terminalWidth returns the width of the terminal on stdout, or 80 when stdout
// is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
