package components

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericEntry is an entry that asks mobile platforms for the number pad.
// Input is not filtered.
type NumericEntry struct {
	widget.Entry
}

func NewNumericEntry() *NumericEntry {
	e := &NumericEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// Keyboard implements mobile.Keyboardable.
func (e *NumericEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
