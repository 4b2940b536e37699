package ui

import (
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// NewMainScreen creates and returns the start screen controller.
func NewMainScreen() *MainScreen {
	c := &MainScreen{
		Grid:     ui.NewGrid(),
		body:     widgets.NewParagraph(),
		helpText: widgets.NewParagraph(),
	}
	c.initUI()
	return c
}

// MainScreen is the static start screen.
type MainScreen struct {
	*ui.Grid

	body     *widgets.Paragraph
	helpText *widgets.Paragraph
}

func (c *MainScreen) Resize() {
	w, h := ui.TerminalDimensions()
	c.Grid.SetRect(0, 0, w, h)
}

func (c *MainScreen) initUI() {
	c.body.Title = "Main"
	c.helpText.Text = "Press 'esc' to quit\nPress 'm' to change state"

	c.Grid.Set(
		ui.NewRow(.8, c.body),
		ui.NewRow(.2, c.helpText),
	)
}
