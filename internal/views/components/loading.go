package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var overlayBackdrop = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}

// LoadingOverlay covers the whole screen with a translucent backdrop and a
// spinner while fetches are in flight.
type LoadingOverlay struct {
	container *fyne.Container
	backdrop  *canvas.Rectangle
	activity  *widget.Activity
	visible   bool
}

func NewLoadingOverlay() *LoadingOverlay {
	lo := &LoadingOverlay{}
	lo.createComponents()
	lo.buildLayout()
	return lo
}

func (lo *LoadingOverlay) createComponents() {
	lo.backdrop = canvas.NewRectangle(overlayBackdrop)
	lo.activity = widget.NewActivity()
}

func (lo *LoadingOverlay) buildLayout() {
	lo.container = container.NewStack(
		lo.backdrop,
		container.NewCenter(lo.activity),
	)
	lo.container.Hide()
}

// SetVisible shows or hides the overlay and starts or stops the spinner.
func (lo *LoadingOverlay) SetVisible(visible bool) {
	if visible == lo.visible {
		return
	}
	lo.visible = visible
	if visible {
		lo.container.Show()
		lo.activity.Start()
	} else {
		lo.activity.Stop()
		lo.container.Hide()
	}
}

func (lo *LoadingOverlay) IsVisible() bool {
	return lo.visible
}

func (lo *LoadingOverlay) GetContainer() *fyne.Container {
	return lo.container
}
