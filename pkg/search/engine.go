package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/clinickit/pkg/logger"
)

// Searcher resolves a term to a filtered collection, usually by calling a
// backend. It must honour ctx: superseded and torn-down requests are cancelled.
type Searcher[T any] func(ctx context.Context, term string) ([]T, error)

// Sink receives the result of every completed, non-stale search.
type Sink[T any] func(results []T)

// Engine debounces keystrokes and delivers search results to a Sink.
//
// Every search that actually runs is issued a sequence number. Only the
// result of the latest issued search is delivered; older results are dropped
// even if they finish later. Deliveries are serialized, so the sink must not
// call Flush, Clear or Close synchronously.
type Engine[T any] struct {
	mu        sync.Mutex
	deliverMu sync.Mutex

	sink      Sink[T]
	searcher  Searcher[T]
	source    []T
	fields    []Field[T]
	normalize Normalizer
	delay     time.Duration
	timeout   time.Duration
	logger    *slog.Logger

	term     string
	tick     uint64 // invalidates timers that already fired but lost the race for mu
	seq      uint64
	loading  bool
	timer    *time.Timer
	inflight context.CancelFunc
	closed   bool

	ctx  context.Context
	stop context.CancelFunc
}

// New creates an Engine delivering results to sink.
func New[T any](sink Sink[T], opts ...Option[T]) (*Engine[T], error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	e := &Engine[T]{
		sink:      sink,
		normalize: FoldCase,
		delay:     DefaultDelay,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("search"))
	e.ctx, e.stop = context.WithCancel(context.Background())
	return e, nil
}

// Search records term and restarts the debounce timer. The search runs once
// no further call arrives within the debounce window.
func (e *Engine[T]) Search(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.term = term
	e.scheduleLocked()
}

// SetSource replaces the collection and restarts the debounce cycle with the
// current term.
func (e *Engine[T]) SetSource(data []T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.source = data
	e.scheduleLocked()
}

// Flush cancels the pending timer and runs the search for the current term on
// the calling goroutine, returning once the result has been delivered or
// discarded.
func (e *Engine[T]) Flush() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.cancelTimerLocked()
	term := e.term
	e.mu.Unlock()

	e.run(term)
}

// Clear resets the term and delivers the full source immediately, or an empty
// slice when no source is set. Any pending timer and in-flight request are
// cancelled and their results discarded.
func (e *Engine[T]) Clear() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.cancelTimerLocked()
	e.cancelInflightLocked()
	e.term = ""
	e.seq++
	seq := e.seq
	e.loading = false
	source := e.source
	e.mu.Unlock()
	if source == nil {
		source = []T{}
	}

	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()
	if !e.isCurrent(seq) {
		return
	}
	e.sink(source)
}

// Term returns the latest recorded term.
func (e *Engine[T]) Term() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.term
}

// Loading reports whether the latest issued search is still running.
func (e *Engine[T]) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Close stops the engine. Pending timers and in-flight requests are cancelled
// and the sink is never called again. Close waits for a delivery that is
// already running, so it must not be called from the sink. Close is idempotent.
func (e *Engine[T]) Close() error {
	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.cancelTimerLocked()
	e.cancelInflightLocked()
	e.loading = false
	e.stop()
	return nil
}

func (e *Engine[T]) scheduleLocked() {
	e.cancelTimerLocked()
	tick := e.tick
	e.timer = time.AfterFunc(e.delay, func() { e.fire(tick) })
}

func (e *Engine[T]) cancelTimerLocked() {
	e.tick++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine[T]) cancelInflightLocked() {
	if e.inflight != nil {
		e.inflight()
		e.inflight = nil
	}
}

func (e *Engine[T]) isCurrent(seq uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && seq == e.seq
}

func (e *Engine[T]) fire(tick uint64) {
	e.mu.Lock()
	if e.closed || tick != e.tick {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	term := e.term
	e.mu.Unlock()

	e.run(term)
}

func (e *Engine[T]) run(term string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.cancelInflightLocked()
	e.seq++
	seq := e.seq
	ctx, cancel := e.requestContext()
	e.inflight = cancel
	e.loading = true
	searcher, source, fields, normalize := e.searcher, e.source, e.fields, e.normalize
	e.mu.Unlock()
	defer cancel()

	log := e.logger.With(logger.SearchID(uuid.New()), logger.Sequence(seq))
	start := time.Now()

	var (
		results []T
		err     error
	)
	if searcher != nil {
		results, err = callSearcher(ctx, searcher, term)
	} else {
		results = Filter(source, term, fields, normalize)
	}

	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()

	e.mu.Lock()
	current := !e.closed && seq == e.seq
	if current {
		e.loading = false
		e.inflight = nil
	}
	e.mu.Unlock()

	if !current {
		log.DebugContext(ctx, "discarding stale search result", logger.Duration(time.Since(start)))
		return
	}

	if err != nil {
		log.ErrorContext(ctx, "external search failed",
			logger.Term(term),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		results = []T{}
	} else if results == nil {
		results = []T{}
	}

	e.sink(results)
}

func (e *Engine[T]) requestContext() (context.Context, context.CancelFunc) {
	if e.timeout > 0 {
		return context.WithTimeout(e.ctx, e.timeout)
	}
	return context.WithCancel(e.ctx)
}

func callSearcher[T any](ctx context.Context, s Searcher[T], term string) (results []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			results, err = nil, errors.Join(ErrSearcherPanic, fmt.Errorf("%v", r))
		}
	}()
	return s(ctx, term)
}
