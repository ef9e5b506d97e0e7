package views

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numberfacts/internal/models"
)

func newTestView(t *testing.T) *FactsView {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("facts")
	t.Cleanup(w.Close)
	return NewFactsView(w)
}

func TestFactsViewLayout(t *testing.T) {
	view := newTestView(t)

	assert.Equal(t, "Enter a number", view.NumberSection().Entry(0).PlaceHolder)
	assert.Equal(t, "Month (1-12)", view.DateSection().Entry(0).PlaceHolder)
	assert.Equal(t, "Day (1-31)", view.DateSection().Entry(1).PlaceHolder)
	assert.Equal(t, "Get Number Fact", view.NumberSection().Button().Text)
	assert.Equal(t, "Get Date Fact", view.DateSection().Button().Text)

	assert.False(t, view.NumberSection().Fact().Visible())
	assert.False(t, view.DateSection().Fact().Visible())
	assert.False(t, view.Overlay().IsVisible())
}

func TestFactsViewForwardsInput(t *testing.T) {
	view := newTestView(t)

	var number, month, day string
	var numberTaps, dateTaps int
	view.SetNumberChangeHandler(func(s string) { number = s })
	view.SetMonthChangeHandler(func(s string) { month = s })
	view.SetDayChangeHandler(func(s string) { day = s })
	view.SetNumberFactHandler(func() { numberTaps++ })
	view.SetDateFactHandler(func() { dateTaps++ })

	test.Type(view.NumberSection().Entry(0), "42")
	test.Type(view.DateSection().Entry(0), "3")
	test.Type(view.DateSection().Entry(1), "14")
	test.Tap(view.NumberSection().Button())
	test.Tap(view.DateSection().Button())
	test.Tap(view.DateSection().Button())

	assert.Equal(t, "42", number)
	assert.Equal(t, "3", month)
	assert.Equal(t, "14", day)
	assert.Equal(t, 1, numberTaps)
	assert.Equal(t, 2, dateTaps)
}

func TestFactsViewWithoutHandlers(t *testing.T) {
	view := newTestView(t)

	assert.NotPanics(t, func() {
		test.Type(view.NumberSection().Entry(0), "1")
		test.Tap(view.NumberSection().Button())
		test.Tap(view.DateSection().Button())
	})
}

func TestFactsViewRender(t *testing.T) {
	view := newTestView(t)

	view.Render(models.FactsSnapshot{
		Number:     "7",
		Month:      "3",
		Day:        "14",
		NumberFact: "Error fetching number fact",
		DateFact:   "March 14th is Pi Day.",
		Loading:    true,
	})

	assert.Equal(t, "7", view.NumberSection().Entry(0).Text)
	assert.Equal(t, "3", view.DateSection().Entry(0).Text)
	assert.Equal(t, "14", view.DateSection().Entry(1).Text)
	assert.Equal(t, "Error fetching number fact", view.NumberSection().Fact().Text)
	assert.True(t, view.NumberSection().Fact().Visible())
	assert.Equal(t, "March 14th is Pi Day.", view.DateSection().Fact().Text)
	assert.True(t, view.Overlay().IsVisible())
	assert.True(t, view.Overlay().GetContainer().Visible())

	view.Render(models.FactsSnapshot{Month: "3", Day: "14"})
	assert.False(t, view.NumberSection().Fact().Visible())
	assert.False(t, view.Overlay().IsVisible())
	assert.False(t, view.Overlay().GetContainer().Visible())
}

func TestFactsViewBindFollowsState(t *testing.T) {
	view := newTestView(t)
	state := models.NewFactsState()
	state.SetDate("10", "19")

	unbind := view.Bind(state)
	t.Cleanup(unbind)

	require.Eventually(t, func() bool {
		return view.DateSection().Entry(1).Text == "19"
	}, time.Second, 10*time.Millisecond)

	state.SetLoading(true)
	state.SetDateFact("October 19th is the day in 1781 that ...")

	require.Eventually(t, func() bool {
		return view.Overlay().IsVisible() &&
			view.DateSection().Fact().Text == "October 19th is the day in 1781 that ..."
	}, time.Second, 10*time.Millisecond)

	unbind()
	state.SetDateFact("ignored")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "October 19th is the day in 1781 that ...", view.DateSection().Fact().Text)
}

func TestFactsViewTypingUpdatesBoundState(t *testing.T) {
	view := newTestView(t)
	state := models.NewFactsState()
	view.SetNumberChangeHandler(state.SetNumber)
	view.SetDayChangeHandler(state.SetDay)
	t.Cleanup(view.Bind(state))

	test.Type(view.NumberSection().Entry(0), "99")
	test.Type(view.DateSection().Entry(1), "5")

	assert.Equal(t, "99", state.Number())
	assert.Equal(t, "5", state.Day())
	require.Eventually(t, func() bool {
		return view.NumberSection().Entry(0).Text == "99"
	}, time.Second, 10*time.Millisecond)
}
