package ui

import (
	"fmt"
	"strings"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"wifi-check-termui/internal/monitor"
	"wifi-check-termui/internal/probe"
)

// NewMonitorScreen creates and returns the monitoring screen controller.
func NewMonitorScreen() *MonitorScreen {
	c := &MonitorScreen{
		Grid:     ui.NewGrid(),
		body:     widgets.NewParagraph(),
		hintText: widgets.NewParagraph(),
		footText: widgets.NewParagraph(),
	}
	c.initUI()
	return c
}

// MonitorScreen shows one styled block per wireless interface plus the
// hide hint and the reachability foot line.
type MonitorScreen struct {
	*ui.Grid

	body     *widgets.Paragraph
	hintText *widgets.Paragraph
	footText *widgets.Paragraph
}

func (c *MonitorScreen) Resize() {
	w, h := ui.TerminalDimensions()
	c.Grid.SetRect(0, 0, w, h)
}

func (c *MonitorScreen) initUI() {
	c.body.Title = "monitoring"
	c.hintText.Title = "hint"
	c.footText.Border = false

	c.Grid.Set(
		ui.NewRow(.7, c.body),
		ui.NewRow(.2, c.hintText),
		ui.NewRow(.1, c.footText),
	)
}

// Update rebuilds the row block and the hide hint from one sample.
func (c *MonitorScreen) Update(rows []monitor.Row, hide bool) {
	lines := make([]string, 0, len(rows)*3)

	for _, row := range rows {
		name := row.Name
		if row.Associated {
			name = fmt.Sprintf("[%s](mod:bold)", row.Name)
		}
		lines = append(lines,
			name,
			fmt.Sprintf("Connection [ %d ](fg:%s)dBm", row.SignalDBM, colorFor(row.Level)),
			fmt.Sprintf("Mac address [ %s ](fg:green)", row.Mac),
		)
	}
	c.body.Text = strings.Join(lines, "\n")

	if hide {
		c.hintText.Text = "For show mac address press 'h'"
	} else {
		c.hintText.Text = "For hide mac address press 'h'"
	}
}

// UpdateProbe refreshes the reachability foot line.
func (c *MonitorScreen) UpdateProbe(r probe.Result) {
	switch {
	case r.CheckedAt.IsZero():
		c.footText.Text = "Internet: checking..."
	case r.Reachable:
		c.footText.Text = fmt.Sprintf("Internet: reachable (%s)", r.Latency.Round(time.Millisecond))
	default:
		c.footText.Text = "Internet: unreachable"
	}
}

func colorFor(level monitor.Level) string {
	switch level {
	case monitor.LevelWarn:
		return "yellow"
	case monitor.LevelBad:
		return "red"
	default:
		return "green"
	}
}
