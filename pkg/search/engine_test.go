package search_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinickit/pkg/logger"
	"github.com/dmitrymomot/clinickit/pkg/search"
)

const testDelay = 40 * time.Millisecond

func newLocalEngine(t *testing.T, rec *recorder[patient], opts ...search.Option[patient]) *search.Engine[patient] {
	t.Helper()
	base := []search.Option[patient]{
		search.WithDelay[patient](testDelay),
		search.WithSource(samplePatients()),
		search.WithFields(patientFields()...),
	}
	engine, err := search.New(rec.sink, append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func names(rows []patient) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.FullName)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := search.New[patient](nil)
	assert.ErrorIs(t, err, search.ErrNilSink)
}

func TestEngine_Debounce(t *testing.T) {
	t.Parallel()

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec)

	engine.Search("a")
	engine.Search("ab")
	engine.Search("abc")

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDelay)

	calls := rec.snapshot()
	require.Len(t, calls, 1, "only the last keystroke should trigger a search")
	assert.Equal(t, []string{"abc clinic"}, names(calls[0]))
	assert.Equal(t, "abc", engine.Term())
	assert.False(t, engine.Loading())
}

func TestEngine_RestartsTimerOnEachKeystroke(t *testing.T) {
	t.Parallel()

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithDelay[patient](80*time.Millisecond))

	for _, term := range []string{"n", "ng", "ngu", "nguy"} {
		engine.Search(term)
		time.Sleep(20 * time.Millisecond)
	}
	assert.Equal(t, 0, rec.count(), "timer must restart while typing continues")

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Nguyễn Văn An"}, names(rec.last()))
}

func TestEngine_WhitespaceTermReturnsSource(t *testing.T) {
	t.Parallel()

	source := samplePatients()
	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithSource(source))

	engine.Search("   ")
	engine.Flush()

	got := rec.last()
	require.Len(t, got, len(source))
	assert.Same(t, &source[0], &got[0])
}

func TestEngine_CaseInsensitive(t *testing.T) {
	t.Parallel()

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec)

	engine.Search("TRẦN")
	engine.Flush()

	assert.Equal(t, []string{"Trần Nhật Trường"}, names(rec.last()))
}

func TestEngine_Flush(t *testing.T) {
	t.Parallel()

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec)

	engine.Search("lê")
	engine.Flush()
	require.Equal(t, 1, rec.count(), "flush delivers synchronously")

	time.Sleep(3 * testDelay)
	assert.Equal(t, 1, rec.count(), "flush cancels the pending timer")
	assert.Equal(t, []string{"Lê Thị Đào"}, names(rec.last()))
}

func TestEngine_Clear(t *testing.T) {
	t.Parallel()

	source := samplePatients()
	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithSource(source))

	engine.Search("trần")
	engine.Clear()

	require.Equal(t, 1, rec.count(), "clear restores the source without waiting")
	assert.Len(t, rec.last(), len(source))
	assert.Empty(t, engine.Term())

	time.Sleep(3 * testDelay)
	assert.Equal(t, 1, rec.count(), "pending search must be cancelled by clear")
}

func TestEngine_ClearWithoutSource(t *testing.T) {
	t.Parallel()

	searcher := func(context.Context, string) ([]patient, error) {
		return []patient{{ID: 42, FullName: "from backend"}}, nil
	}
	rec := &recorder[patient]{}
	engine, err := search.New(rec.sink, search.WithSearcher(searcher), search.WithDelay[patient](testDelay))
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })

	engine.Clear()

	require.Equal(t, 1, rec.count())
	assert.NotNil(t, rec.last(), "clear delivers an empty slice, not nil")
	assert.Empty(t, rec.last())
}

func TestEngine_SetSource(t *testing.T) {
	t.Parallel()

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec)

	engine.Search("an")
	engine.Flush()
	require.Equal(t, []string{"Nguyễn Văn An"}, names(rec.last()))

	engine.SetSource([]patient{{ID: 9, FullName: "Phạm An Khang"}})
	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Phạm An Khang"}, names(rec.last()))
}

func TestEngine_ExternalSearcher(t *testing.T) {
	t.Parallel()

	var gotTerm string
	searcher := func(_ context.Context, term string) ([]patient, error) {
		gotTerm = term
		return []patient{{ID: 42, FullName: "from backend"}}, nil
	}

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithSearcher(searcher))

	engine.Search("  Trần ")
	engine.Flush()

	assert.Equal(t, "  Trần ", gotTerm, "searcher receives the raw term")
	assert.Equal(t, []string{"from backend"}, names(rec.last()))
}

func TestEngine_ExternalFailure(t *testing.T) {
	t.Parallel()

	t.Run("error delivers empty result", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		searcher := func(context.Context, string) ([]patient, error) {
			return nil, errors.New("backend unavailable")
		}

		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec, search.WithSearcher(searcher), search.WithLogger[patient](log))

		engine.Search("Trần Nhật")
		engine.Flush()

		require.Equal(t, 1, rec.count())
		assert.NotNil(t, rec.last())
		assert.Empty(t, rec.last())
		assert.False(t, engine.Loading())
		assert.Contains(t, buf.String(), "external search failed")
		assert.Contains(t, buf.String(), "backend unavailable")
		assert.NotContains(t, buf.String(), "Trần", "search terms must not be logged")
	})

	t.Run("panic delivers empty result", func(t *testing.T) {
		searcher := func(context.Context, string) ([]patient, error) {
			panic("nil map")
		}

		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec, search.WithSearcher(searcher))

		assert.NotPanics(t, func() {
			engine.Search("x")
			engine.Flush()
		})
		require.Equal(t, 1, rec.count())
		assert.Empty(t, rec.last())
		assert.False(t, engine.Loading())
	})

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		searcher := func(context.Context, string) ([]patient, error) { return nil, nil }

		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec, search.WithSearcher(searcher))
		engine.Flush()

		assert.NotNil(t, rec.last())
	})

	t.Run("timeout delivers empty result", func(t *testing.T) {
		searcher := func(ctx context.Context, _ string) ([]patient, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}

		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec,
			search.WithSearcher(searcher),
			search.WithTimeout[patient](20*time.Millisecond),
		)
		engine.Flush()

		require.Equal(t, 1, rec.count())
		assert.Empty(t, rec.last())
		assert.False(t, engine.Loading())
	})
}

// blockingSearcher blocks on release for the term "slow" and ignores
// cancellation, so the sequence guard is what keeps its result out.
type blockingSearcher struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once

	mu      sync.Mutex
	slowErr error
}

func newBlockingSearcher() *blockingSearcher {
	return &blockingSearcher{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingSearcher) search(ctx context.Context, term string) ([]patient, error) {
	if term != "slow" {
		return []patient{{FullName: term}}, nil
	}
	b.once.Do(func() { close(b.started) })
	<-b.release
	b.mu.Lock()
	b.slowErr = ctx.Err()
	b.mu.Unlock()
	return []patient{{FullName: "slow"}}, nil
}

func (b *blockingSearcher) ctxErr() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slowErr
}

func TestEngine_StaleResultsDiscarded(t *testing.T) {
	t.Parallel()

	bs := newBlockingSearcher()
	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithSearcher(bs.search), search.WithDelay[patient](time.Hour))

	engine.Search("slow")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		engine.Flush()
	}()
	<-bs.started
	assert.True(t, engine.Loading())

	engine.Search("fast")
	engine.Flush()
	assert.Equal(t, []string{"fast"}, names(rec.last()))

	close(bs.release)
	wg.Wait()

	calls := rec.snapshot()
	require.Len(t, calls, 1, "superseded result must not be delivered")
	assert.Equal(t, []string{"fast"}, names(calls[0]))
	assert.ErrorIs(t, bs.ctxErr(), context.Canceled, "superseded request is cancelled")
	assert.False(t, engine.Loading())
}

func TestEngine_LoadingState(t *testing.T) {
	t.Parallel()

	bs := newBlockingSearcher()
	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithSearcher(bs.search))

	assert.False(t, engine.Loading())
	engine.Search("slow")
	require.Eventually(t, engine.Loading, time.Second, 5*time.Millisecond)

	close(bs.release)
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, engine.Loading())
}

func TestEngine_Close(t *testing.T) {
	t.Parallel()

	t.Run("cancels pending timer", func(t *testing.T) {
		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec)

		engine.Search("trần")
		require.NoError(t, engine.Close())
		time.Sleep(3 * testDelay)
		assert.Equal(t, 0, rec.count())
	})

	t.Run("cancels in-flight request", func(t *testing.T) {
		bs := newBlockingSearcher()
		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec, search.WithSearcher(bs.search), search.WithDelay[patient](time.Hour))

		engine.Search("slow")
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine.Flush()
		}()
		<-bs.started

		require.NoError(t, engine.Close())
		assert.False(t, engine.Loading())
		close(bs.release)
		wg.Wait()

		assert.Equal(t, 0, rec.count(), "no callback after teardown")
		assert.ErrorIs(t, bs.ctxErr(), context.Canceled)
	})

	t.Run("closed engine ignores calls", func(t *testing.T) {
		rec := &recorder[patient]{}
		engine := newLocalEngine(t, rec)
		require.NoError(t, engine.Close())
		require.NoError(t, engine.Close())

		engine.Search("trần")
		engine.SetSource(nil)
		engine.Flush()
		engine.Clear()
		time.Sleep(3 * testDelay)
		assert.Equal(t, 0, rec.count())
	})
}

func TestEngine_WithConfig(t *testing.T) {
	t.Parallel()

	rec := &recorder[patient]{}
	engine := newLocalEngine(t, rec, search.WithConfig[patient](search.Config{
		Delay:          testDelay,
		FoldDiacritics: true,
	}))

	engine.Search("truong")
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Trần Nhật Trường"}, names(rec.last()))
}
