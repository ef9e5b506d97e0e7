package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactsStateStartsEmpty(t *testing.T) {
	fs := NewFactsState()
	assert.Equal(t, FactsSnapshot{}, fs.Snapshot())
}

func TestSettersNotifyOnlyOnChange(t *testing.T) {
	fs := NewFactsState()

	var got []Field
	fs.Subscribe(func(changed Field) { got = append(got, changed) })

	fs.SetNumber("42")
	fs.SetNumber("42")
	fs.SetLoading(true)
	fs.SetLoading(true)
	fs.SetNumberFact("42 is the number of...")
	fs.SetDateFact("")

	assert.Equal(t, []Field{FieldNumber, FieldLoading, FieldNumberFact}, got)
	assert.Equal(t, FactsSnapshot{
		Number:     "42",
		NumberFact: "42 is the number of...",
		Loading:    true,
	}, fs.Snapshot())
}

func TestSetDateNotifiesOnce(t *testing.T) {
	fs := NewFactsState()

	var got []Field
	fs.Subscribe(func(changed Field) { got = append(got, changed) })

	fs.SetDate("3", "14")
	require.Len(t, got, 1)
	assert.Equal(t, FieldDate, got[0])

	fs.SetDate("3", "15")
	require.Len(t, got, 2)
	assert.Equal(t, FieldDay, got[1])
	assert.False(t, got[1].Has(FieldMonth))

	fs.SetDate("3", "15")
	assert.Len(t, got, 2)
}

func TestListenersCanReadAndWriteState(t *testing.T) {
	fs := NewFactsState()

	fs.Subscribe(func(changed Field) {
		if changed.Has(FieldMonth) {
			fs.SetDateFact("fact for " + fs.Month())
		}
	})

	fs.SetMonth("7")
	assert.Equal(t, "fact for 7", fs.DateFact())
}

func TestUnsubscribe(t *testing.T) {
	fs := NewFactsState()

	var first, second int
	unsubscribe := fs.Subscribe(func(Field) { first++ })
	fs.Subscribe(func(Field) { second++ })

	fs.SetDay("1")
	unsubscribe()
	unsubscribe()
	fs.SetDay("2")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	fs := NewFactsState()

	var order []string
	fs.Subscribe(func(Field) { order = append(order, "a") })
	fs.Subscribe(func(Field) { order = append(order, "b") })
	fs.Subscribe(func(Field) { order = append(order, "c") })

	fs.SetLoading(true)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "none", Field(0).String())
	assert.Equal(t, "month|day", FieldDate.String())
	assert.Equal(t, "number|loading", (FieldNumber | FieldLoading).String())
}

func TestFactsStateConcurrentAccess(t *testing.T) {
	fs := NewFactsState()
	fs.Subscribe(func(Field) { _ = fs.Snapshot() })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				fs.SetLoading(j%2 == 0)
				fs.SetNumber(string(rune('0' + i)))
				_ = fs.Loading()
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, fs.Number(), 1)
}
