package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/cetusw/g-loc/matching"
	"github.com/cetusw/g-loc/postman"
)

// printer renders results, highlighting the tour start and failures.
type printer struct {
	w     io.Writer
	name  *color.Color
	start *color.Color
	warn  *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:     w,
		name:  color.New(color.Bold),
		start: color.New(color.FgGreen, color.Bold),
		warn:  color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.name, p.start, p.warn} {
			c.DisableColor()
		}
	}

	return p
}

// tour prints "name: a -> b -> ... -> a (cost c, +k edges)".
func (p *printer) tour(name string, res *postman.Result) {
	steps := make([]string, len(res.Tour))
	for i, v := range res.Tour {
		if i == 0 || i == len(res.Tour)-1 {
			steps[i] = p.start.Sprint(v)
			continue
		}
		steps[i] = v
	}
	fmt.Fprintf(p.w, "%s: %s (cost %g, +%d edges)\n",
		p.name.Sprint(name), strings.Join(steps, " -> "), res.Cost, len(res.AddedEdges))
}

// noTour prints why no tour exists, followed by the connected components
// when there are any.
func (p *printer) noTour(name string, reason error, components [][]string) {
	fmt.Fprintf(p.w, "%s: %s\n", p.name.Sprint(name), p.warn.Sprintf("no tour (%v)", reason))
	for i, c := range components {
		fmt.Fprintf(p.w, "  component %d: %s\n", i+1, strings.Join(c, " "))
	}
}

// matching prints the size and one "a-b" line per matched pair.
func (p *printer) matching(name string, m *matching.Matching) {
	fmt.Fprintf(p.w, "%s: %d pairs\n", p.name.Sprint(name), m.Size())
	for _, pair := range m.Pairs() {
		fmt.Fprintf(p.w, "  %s-%s\n", pair[0], pair[1])
	}
}

// observer forwards solver events to the logger. Walk steps go to trace.
func observer(log *logrus.Logger, name string) func(postman.Event) {
	return func(e postman.Event) {
		entry := log.WithFields(logrus.Fields{"input": name, "event": e.Kind.String()})
		switch e.Kind {
		case postman.EventStep:
			entry.WithField("forced", e.Forced).Tracef("%s -> %s", e.Vertices[0], e.Vertices[1])
		case postman.EventBlossom:
			entry.WithFields(logrus.Fields{"base": e.Vertex, "depth": e.Depth}).Debugf("cycle %v", e.Vertices)
		case postman.EventDuplicate:
			entry.WithField("edge", e.Edge.ID).Debugf("weight %g", e.Edge.Weight)
		default:
			entry.Debugf("%v", e.Vertices)
		}
	}
}
