package plan

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LoggingCollector writes each stage count to W as a comma-grouped
// decimal, e.g. "12,345 region(s) labelled". It is a concrete, optional
// Collector; Plan's default remains the no-op.
type LoggingCollector struct {
	W io.Writer
	p *message.Printer
}

// NewLoggingCollector returns a LoggingCollector writing to w.
func NewLoggingCollector(w io.Writer) *LoggingCollector {
	return &LoggingCollector{W: w, p: message.NewPrinter(language.English)}
}

func (c *LoggingCollector) OnLabel(n int) {
	c.p.Fprintf(c.W, "%d region(s) labelled\n", n)
}

func (c *LoggingCollector) OnAdjacency(n int) {
	c.p.Fprintf(c.W, "%d adjacency edge(s) found\n", n)
}

func (c *LoggingCollector) OnBands(n int) {
	c.p.Fprintf(c.W, "%d cut band(s) built\n", n)
}

func (c *LoggingCollector) OnRegionTree(n int) {
	c.p.Fprintf(c.W, "%d cut leaf/leaves in the region tree\n", n)
}

func (c *LoggingCollector) OnPaths(n int) {
	c.p.Fprintf(c.W, "%d tool path(s) generated\n", n)
}
