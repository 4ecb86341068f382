package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/grindlemire/go-flowlayout"
	"golang.org/x/sync/errgroup"
)

type sweepResult struct {
	width    int
	content  flowlayout.Size
	measured int
	elements int
}

// runSweep lays out the demo catalog at a range of viewport widths. Each
// width gets its own Layout on its own goroutine.
func runSweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	from := fs.Int("from", 20, "Smallest viewport width")
	to := fs.Int("to", 120, "Largest viewport width")
	step := fs.Int("step", 10, "Width increment")
	height := fs.Int("height", 30, "Viewport height")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *step < 1 || *from < 1 || *to < *from {
		return fmt.Errorf("invalid range %d..%d step %d", *from, *to, *step)
	}

	var widths []int
	for w := *from; w <= *to; w += *step {
		widths = append(widths, w)
	}
	results := make([]sweepResult, len(widths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range widths {
		g.Go(func() error {
			l, cat, _, err := newDemoLayout(flowlayout.Vertical, flowlayout.NewRect(0, 0, float64(w), float64(*height)))
			if err != nil {
				return fmt.Errorf("width %d: %w", w, err)
			}
			measured := settle(l, cat, flowlayout.Rect{})
			content := l.ContentSize()
			results[i] = sweepResult{
				width:    w,
				content:  content,
				measured: measured,
				elements: len(l.AttributesForElements(flowlayout.NewRect(0, 0, content.Width, content.Height))),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WIDTH\tCONTENT HEIGHT\tMEASURED\tELEMENTS")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%v\t%d\t%d\n", r.width, r.content.Height, r.measured, r.elements)
	}
	return tw.Flush()
}
