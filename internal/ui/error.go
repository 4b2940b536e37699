package ui

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// NewErrorScreen creates and returns the error screen controller.
func NewErrorScreen() *ErrorScreen {
	c := &ErrorScreen{
		Grid:       ui.NewGrid(),
		headerText: widgets.NewParagraph(),
		detailText: widgets.NewParagraph(),
		hintText:   widgets.NewParagraph(),
	}
	c.initUI()
	return c
}

// ErrorScreen shows a sampling failure until the user acknowledges it.
type ErrorScreen struct {
	*ui.Grid

	headerText *widgets.Paragraph
	detailText *widgets.Paragraph
	hintText   *widgets.Paragraph
}

func (c *ErrorScreen) Resize() {
	w, h := ui.TerminalDimensions()
	c.Grid.SetRect(0, 0, w, h)
}

func (c *ErrorScreen) initUI() {
	c.hintText.Title = "hint"
	c.hintText.Text = "For update menu press 'u'"

	c.Grid.Set(
		ui.NewRow(.1, c.headerText),
		ui.NewRow(.8, c.detailText),
		ui.NewRow(.1, c.hintText),
	)
}

// Update sets the failure header and detail text.
func (c *ErrorScreen) Update(header, detail string) {
	c.headerText.Text = header
	c.detailText.Text = fmt.Sprintf("[%s](fg:red)", detail)
}
