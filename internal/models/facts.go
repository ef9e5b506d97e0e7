package models

import (
	"strings"
	"sync"
)

// Field identifies one piece of FactsState. Values combine as a bitmask so a
// single notification can report several fields changing together.
type Field uint8

const (
	FieldNumber Field = 1 << iota
	FieldMonth
	FieldDay
	FieldNumberFact
	FieldDateFact
	FieldLoading
)

// FieldDate covers both date inputs.
const FieldDate = FieldMonth | FieldDay

// Has reports whether any of the fields in other are set in f.
func (f Field) Has(other Field) bool {
	return f&other != 0
}

func (f Field) String() string {
	names := []struct {
		field Field
		name  string
	}{
		{FieldNumber, "number"},
		{FieldMonth, "month"},
		{FieldDay, "day"},
		{FieldNumberFact, "number_fact"},
		{FieldDateFact, "date_fact"},
		{FieldLoading, "loading"},
	}

	parts := make([]string, 0, len(names))
	for _, n := range names {
		if f.Has(n.field) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// FactsSnapshot is a point-in-time copy of the screen state.
type FactsSnapshot struct {
	Number     string
	Month      string
	Day        string
	NumberFact string
	DateFact   string
	Loading    bool
}

// Listener is called with the set of fields that changed.
type Listener func(changed Field)

// FactsState is the observable view-model of the facts screen.
type FactsState struct {
	mu    sync.RWMutex
	state FactsSnapshot

	listenerMu sync.RWMutex
	listeners  map[int]Listener
	order      []int
	nextID     int
}

func NewFactsState() *FactsState {
	return &FactsState{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers l and returns a function that removes it.
func (fs *FactsState) Subscribe(l Listener) (unsubscribe func()) {
	fs.listenerMu.Lock()
	id := fs.nextID
	fs.nextID++
	fs.listeners[id] = l
	fs.order = append(fs.order, id)
	fs.listenerMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			fs.listenerMu.Lock()
			defer fs.listenerMu.Unlock()
			delete(fs.listeners, id)
			for i, existing := range fs.order {
				if existing == id {
					fs.order = append(fs.order[:i], fs.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (fs *FactsState) Snapshot() FactsSnapshot {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state
}

func (fs *FactsState) Number() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.Number
}

func (fs *FactsState) Month() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.Month
}

func (fs *FactsState) Day() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.Day
}

func (fs *FactsState) NumberFact() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.NumberFact
}

func (fs *FactsState) DateFact() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.DateFact
}

func (fs *FactsState) Loading() bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.Loading
}

func (fs *FactsState) SetNumber(number string) {
	fs.update(func(s *FactsSnapshot) Field {
		return setString(&s.Number, number, FieldNumber)
	})
}

func (fs *FactsState) SetMonth(month string) {
	fs.update(func(s *FactsSnapshot) Field {
		return setString(&s.Month, month, FieldMonth)
	})
}

func (fs *FactsState) SetDay(day string) {
	fs.update(func(s *FactsSnapshot) Field {
		return setString(&s.Day, day, FieldDay)
	})
}

// SetDate replaces month and day as one change, so listeners watching the
// date see a single notification.
func (fs *FactsState) SetDate(month, day string) {
	fs.update(func(s *FactsSnapshot) Field {
		return setString(&s.Month, month, FieldMonth) | setString(&s.Day, day, FieldDay)
	})
}

func (fs *FactsState) SetNumberFact(fact string) {
	fs.update(func(s *FactsSnapshot) Field {
		return setString(&s.NumberFact, fact, FieldNumberFact)
	})
}

func (fs *FactsState) SetDateFact(fact string) {
	fs.update(func(s *FactsSnapshot) Field {
		return setString(&s.DateFact, fact, FieldDateFact)
	})
}

func (fs *FactsState) SetLoading(loading bool) {
	fs.update(func(s *FactsSnapshot) Field {
		if s.Loading == loading {
			return 0
		}
		s.Loading = loading
		return FieldLoading
	})
}

// update applies mutate under the lock and notifies listeners after it is
// released.
func (fs *FactsState) update(mutate func(*FactsSnapshot) Field) {
	fs.mu.Lock()
	changed := mutate(&fs.state)
	fs.mu.Unlock()

	if changed != 0 {
		fs.notify(changed)
	}
}

func (fs *FactsState) notify(changed Field) {
	fs.listenerMu.RLock()
	listeners := make([]Listener, 0, len(fs.order))
	for _, id := range fs.order {
		listeners = append(listeners, fs.listeners[id])
	}
	fs.listenerMu.RUnlock()

	for _, l := range listeners {
		l(changed)
	}
}

func setString(dst *string, value string, field Field) Field {
	if *dst == value {
		return 0
	}
	*dst = value
	return field
}
