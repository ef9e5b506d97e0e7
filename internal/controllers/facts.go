package controllers

import (
	"context"
	"strconv"
	"sync"
	"time"

	"numberfacts/internal/logger"
	"numberfacts/internal/models"
	"numberfacts/internal/views"
)

// Texts shown in place of a fact when a fetch fails for any reason.
const (
	NumberFactError = "Error fetching number fact"
	DateFactError   = "Error fetching date fact"
)

// FactSource is the remote side of the screen.
type FactSource interface {
	NumberFact(ctx context.Context, number string) (string, error)
	DateFact(ctx context.Context, month, day string) (string, error)
}

// Dispatcher runs fn on the UI thread and returns once it has run.
type Dispatcher func(fn func())

// Option configures a FactsController.
type Option func(*FactsController)

// WithClock overrides the clock used to seed today's date.
func WithClock(now func() time.Time) Option {
	return func(fc *FactsController) { fc.now = now }
}

// WithDispatcher sets how completion handlers reach the UI thread.
func WithDispatcher(d Dispatcher) Option {
	return func(fc *FactsController) { fc.dispatch = d }
}

// FactsController drives the facts screen: it owns the fetch operations and
// the mount and date-change triggers.
type FactsController struct {
	state    *models.FactsState
	source   FactSource
	logger   logger.Logger
	dispatch Dispatcher
	now      func() time.Time

	view *views.FactsView

	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup

	mu                 sync.Mutex
	mounted            bool
	unsubscribeTrigger func()
}

func NewFactsController(state *models.FactsState, source FactSource, log logger.Logger, opts ...Option) *FactsController {
	ctx, cancel := context.WithCancel(context.Background())
	fc := &FactsController{
		state:    state,
		source:   source,
		logger:   log,
		dispatch: func(fn func()) { fn() },
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(fc)
	}
	if fc.logger == nil {
		fc.logger = logger.NewNop()
	}
	return fc
}

// SetMainView connects the view's input events to the state and actions.
func (fc *FactsController) SetMainView(view *views.FactsView) {
	fc.view = view
	fc.setupViewEventHandlers()
}

func (fc *FactsController) setupViewEventHandlers() {
	if fc.view == nil {
		return
	}

	fc.view.SetNumberChangeHandler(fc.state.SetNumber)
	fc.view.SetMonthChangeHandler(fc.state.SetMonth)
	fc.view.SetDayChangeHandler(fc.state.SetDay)
	fc.view.SetNumberFactHandler(fc.FetchNumberFact)
	fc.view.SetDateFactHandler(fc.FetchDateFact)
}

// Initialize is the mount trigger. It arms the date-change trigger and seeds
// month and day from the local clock, which issues today's date fact. Calls
// after the first are ignored.
func (fc *FactsController) Initialize() {
	fc.mu.Lock()
	if fc.mounted {
		fc.mu.Unlock()
		return
	}
	fc.mounted = true
	fc.unsubscribeTrigger = fc.state.Subscribe(fc.onDateChanged)
	fc.mu.Unlock()

	today := fc.now()
	fc.logger.Info("FactsController", "screen mounted", map[string]interface{}{
		"month": int(today.Month()),
		"day":   today.Day(),
	})
	fc.state.SetDate(strconv.Itoa(int(today.Month())), strconv.Itoa(today.Day()))
}

// onDateChanged is the date-change trigger.
func (fc *FactsController) onDateChanged(changed models.Field) {
	if !changed.Has(models.FieldDate) {
		return
	}
	fc.FetchDateFact()
}

// FetchNumberFact requests trivia for the current number. It does nothing
// while the number is empty.
func (fc *FactsController) FetchNumberFact() {
	number := fc.state.Number()
	if number == "" {
		return
	}

	fc.state.SetLoading(true)
	fc.launch("number", func(ctx context.Context) (string, error) {
		return fc.source.NumberFact(ctx, number)
	}, fc.state.SetNumberFact, NumberFactError)
}

// FetchDateFact requests trivia for the current month and day. It does
// nothing while either is empty.
func (fc *FactsController) FetchDateFact() {
	snap := fc.state.Snapshot()
	if snap.Month == "" || snap.Day == "" {
		return
	}

	fc.state.SetLoading(true)
	fc.launch("date", func(ctx context.Context) (string, error) {
		return fc.source.DateFact(ctx, snap.Month, snap.Day)
	}, fc.state.SetDateFact, DateFactError)
}

// launch runs fetch in the background and hands the outcome to the UI
// thread. Every failure becomes failureText; loading is cleared by whichever
// completion runs last.
func (fc *FactsController) launch(kind string, fetch func(context.Context) (string, error), apply func(string), failureText string) {
	fc.inflight.Add(1)
	go func() {
		defer fc.inflight.Done()

		fact, err := fetch(fc.ctx)
		if fc.ctx.Err() != nil {
			fc.logger.Debug("FactsController", "fetch dropped after unmount", map[string]interface{}{
				"kind": kind,
			})
			return
		}

		if err != nil {
			fc.logger.Debug("FactsController", "fetch failed", map[string]interface{}{
				"kind":  kind,
				"cause": err.Error(),
			})
			fact = failureText
		}

		fc.dispatch(func() {
			apply(fact)
			fc.state.SetLoading(false)
		})
	}()
}

// Wait blocks until every launched fetch has finished.
func (fc *FactsController) Wait() {
	fc.inflight.Wait()
}

// Shutdown is the unmount path: in-flight requests are cancelled and their
// results discarded. It does not wait for them; use Wait for that.
func (fc *FactsController) Shutdown() {
	fc.mu.Lock()
	unsubscribe := fc.unsubscribeTrigger
	fc.unsubscribeTrigger = nil
	fc.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	fc.cancel()

	fc.logger.Info("FactsController", "screen unmounted", nil)
}
