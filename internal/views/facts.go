package views

import (
	"numberfacts/internal/models"
	"numberfacts/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	monthEntry = 0
	dayEntry   = 1
)

// FactsView is the facts screen. It renders a FactsState and forwards user
// input to handlers set by the controller.
type FactsView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	numberSection *components.FactSection
	dateSection   *components.FactSection
	overlay       *components.LoadingOverlay

	numberChangeHandler func(string)
	monthChangeHandler  func(string)
	dayChangeHandler    func(string)
	numberFactHandler   func()
	dateFactHandler     func()
}

// NewFactsView builds the screen and sets it as the window content.
func NewFactsView(window fyne.Window) *FactsView {
	view := &FactsView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (fv *FactsView) initializeComponents() {
	fv.numberSection = components.NewFactSection("Number Facts", "Get Number Fact", "Enter a number")
	fv.dateSection = components.NewFactSection("Date Facts", "Get Date Fact", "Month (1-12)", "Day (1-31)")
	fv.overlay = components.NewLoadingOverlay()
}

func (fv *FactsView) buildLayout() {
	sections := container.NewVBox(
		fv.numberSection.GetContainer(),
		widget.NewSeparator(),
		fv.dateSection.GetContainer(),
	)

	fv.mainContainer = container.NewStack(
		container.NewVScroll(container.NewPadded(sections)),
		fv.overlay.GetContainer(),
	)

	fv.window.SetContent(fv.mainContainer)
}

func (fv *FactsView) setupEventHandlers() {
	fv.numberSection.SetChangeHandler(0, func(text string) {
		if fv.numberChangeHandler != nil {
			fv.numberChangeHandler(text)
		}
	})

	fv.dateSection.SetChangeHandler(monthEntry, func(text string) {
		if fv.monthChangeHandler != nil {
			fv.monthChangeHandler(text)
		}
	})

	fv.dateSection.SetChangeHandler(dayEntry, func(text string) {
		if fv.dayChangeHandler != nil {
			fv.dayChangeHandler(text)
		}
	})

	fv.numberSection.SetSubmitHandler(func() {
		if fv.numberFactHandler != nil {
			fv.numberFactHandler()
		}
	})

	fv.dateSection.SetSubmitHandler(func() {
		if fv.dateFactHandler != nil {
			fv.dateFactHandler()
		}
	})
}

// Event handler setters - called by controller

func (fv *FactsView) SetNumberChangeHandler(handler func(string)) {
	fv.numberChangeHandler = handler
}

func (fv *FactsView) SetMonthChangeHandler(handler func(string)) {
	fv.monthChangeHandler = handler
}

func (fv *FactsView) SetDayChangeHandler(handler func(string)) {
	fv.dayChangeHandler = handler
}

func (fv *FactsView) SetNumberFactHandler(handler func()) {
	fv.numberFactHandler = handler
}

func (fv *FactsView) SetDateFactHandler(handler func()) {
	fv.dateFactHandler = handler
}

// Bind renders state now and again after every change. The returned function
// stops updates.
func (fv *FactsView) Bind(state *models.FactsState) (unbind func()) {
	unbind = state.Subscribe(func(models.Field) {
		fyne.Do(func() {
			fv.Render(state.Snapshot())
		})
	})
	fyne.Do(func() {
		fv.Render(state.Snapshot())
	})
	return unbind
}

// Render applies a snapshot to the widgets. It must run on the UI thread.
func (fv *FactsView) Render(snap models.FactsSnapshot) {
	fv.numberSection.SetEntryText(0, snap.Number)
	fv.numberSection.SetFact(snap.NumberFact)

	fv.dateSection.SetEntryText(monthEntry, snap.Month)
	fv.dateSection.SetEntryText(dayEntry, snap.Day)
	fv.dateSection.SetFact(snap.DateFact)

	fv.overlay.SetVisible(snap.Loading)
}

// Show displays the window.
func (fv *FactsView) Show() {
	fv.window.Show()
}

func (fv *FactsView) GetWindow() fyne.Window {
	return fv.window
}

func (fv *FactsView) GetContainer() *fyne.Container {
	return fv.mainContainer
}

func (fv *FactsView) NumberSection() *components.FactSection {
	return fv.numberSection
}

func (fv *FactsView) DateSection() *components.FactSection {
	return fv.dateSection
}

func (fv *FactsView) Overlay() *components.LoadingOverlay {
	return fv.overlay
}
