package ui

import (
	ui "github.com/gizak/termui/v3"
)

// Controller is a drawable and resizable UI screen.
type Controller interface {
	ui.Drawable
	// Resize updates controller size.
	Resize()
}
