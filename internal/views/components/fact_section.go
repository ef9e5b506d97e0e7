package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FactSection is one card of the facts screen: a title, one or more input
// entries, a trigger button and the fact text.
type FactSection struct {
	container *fyne.Container
	title     *widget.Label
	entries   []*NumericEntry
	button    *widget.Button
	fact      *widget.Label

	onSubmit func()
}

// NewFactSection creates a section with one entry per placeholder. Entries
// are laid out side by side.
func NewFactSection(title, buttonText string, placeholders ...string) *FactSection {
	fs := &FactSection{}
	fs.createComponents(title, buttonText, placeholders)
	fs.buildLayout()
	return fs
}

func (fs *FactSection) createComponents(title, buttonText string, placeholders []string) {
	fs.title = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	for _, p := range placeholders {
		entry := NewNumericEntry()
		entry.SetPlaceHolder(p)
		fs.entries = append(fs.entries, entry)
	}

	fs.button = widget.NewButton(buttonText, func() {
		if fs.onSubmit != nil {
			fs.onSubmit()
		}
	})
	fs.button.Importance = widget.HighImportance

	fs.fact = widget.NewLabel("")
	fs.fact.Wrapping = fyne.TextWrapWord
	fs.fact.Hide()
}

func (fs *FactSection) buildLayout() {
	inputs := make([]fyne.CanvasObject, 0, len(fs.entries))
	for _, e := range fs.entries {
		inputs = append(inputs, e)
	}

	fs.container = container.NewPadded(container.NewVBox(
		fs.title,
		container.NewGridWithColumns(len(inputs), inputs...),
		fs.button,
		fs.fact,
	))
}

// SetSubmitHandler sets the handler for the trigger button.
func (fs *FactSection) SetSubmitHandler(handler func()) {
	fs.onSubmit = handler
}

// SetChangeHandler sets the handler for edits of the entry at index.
func (fs *FactSection) SetChangeHandler(index int, handler func(string)) {
	fs.entries[index].OnChanged = handler
}

// SetEntryText updates an entry unless it already shows text, so that the
// cursor of an entry being typed into is left alone.
func (fs *FactSection) SetEntryText(index int, text string) {
	if fs.entries[index].Text != text {
		fs.entries[index].SetText(text)
	}
}

// SetFact shows text, or hides the fact area when text is empty.
func (fs *FactSection) SetFact(text string) {
	fs.fact.SetText(text)
	if text == "" {
		fs.fact.Hide()
	} else {
		fs.fact.Show()
	}
}

func (fs *FactSection) Entry(index int) *NumericEntry {
	return fs.entries[index]
}

func (fs *FactSection) Button() *widget.Button {
	return fs.button
}

func (fs *FactSection) Fact() *widget.Label {
	return fs.fact
}

// GetContainer returns the section container.
func (fs *FactSection) GetContainer() *fyne.Container {
	return fs.container
}
