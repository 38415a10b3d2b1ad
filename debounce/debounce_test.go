package debounce_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokolov/algokit/debounce"
)

// recorder collects invocations behind a mutex for race-safe asserts.
type recorder struct {
	mu   sync.Mutex
	args []int
}

func (r *recorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = append(r.args, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int(nil), r.args...)
}

func TestNew_Validation(t *testing.T) {
	_, err := debounce.New[int](10*time.Millisecond, nil)
	assert.ErrorIs(t, err, debounce.ErrNilFunc)

	_, err = debounce.New(0, func(int) {})
	assert.ErrorIs(t, err, debounce.ErrNonPositiveDelay)

	_, err = debounce.New(-time.Second, func(int) {})
	assert.ErrorIs(t, err, debounce.ErrNonPositiveDelay)
}

// Three calls inside one quiet window collapse to a single firing with
// the LAST call's argument.
func TestCall_LastCallWins(t *testing.T) {
	rec := &recorder{}
	d, err := debounce.New(30*time.Millisecond, rec.record)
	require.NoError(t, err)

	d.Call(1)
	d.Call(2)
	d.Call(3)

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, []int{3}, rec.snapshot())
}

func TestCall_SeparateWindowsBothFire(t *testing.T) {
	rec := &recorder{}
	d, err := debounce.New(20*time.Millisecond, rec.record)
	require.NoError(t, err)

	d.Call(1)
	time.Sleep(80 * time.Millisecond)
	d.Call(2)
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

func TestNotify_WinnerSettlesNil(t *testing.T) {
	rec := &recorder{}
	d, err := debounce.New(20*time.Millisecond, rec.record)
	require.NoError(t, err)

	ch := d.Notify(7)
	select {
	case got := <-ch:
		assert.NoError(t, got)
	case <-time.After(time.Second):
		t.Fatal("winner never settled")
	}
	assert.Equal(t, []int{7}, rec.snapshot())
}

// A superseded call's channel settles immediately with ErrSuperseded;
// it is never left pending.
func TestNotify_SupersededSettles(t *testing.T) {
	d, err := debounce.New(50*time.Millisecond, func(int) {})
	require.NoError(t, err)

	loser := d.Notify(1)
	winner := d.Notify(2)

	select {
	case got := <-loser:
		assert.ErrorIs(t, got, debounce.ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("superseded waiter never settled")
	}
	select {
	case got := <-winner:
		assert.NoError(t, got)
	case <-time.After(time.Second):
		t.Fatal("winner never settled")
	}
}

func TestStop_SettlesPendingAndDisables(t *testing.T) {
	var fired atomic.Int32
	d, err := debounce.New(30*time.Millisecond, func(int) { fired.Add(1) })
	require.NoError(t, err)

	ch := d.Notify(1)
	d.Stop()

	select {
	case got := <-ch:
		assert.ErrorIs(t, got, debounce.ErrStopped)
	case <-time.After(time.Second):
		t.Fatal("stopped waiter never settled")
	}

	// after Stop, nothing schedules
	d.Call(2)
	assert.ErrorIs(t, <-d.Notify(3), debounce.ErrStopped)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, d.Pending())

	d.Stop() // idempotent
}

func TestPending(t *testing.T) {
	d, err := debounce.New(40*time.Millisecond, func(int) {})
	require.NoError(t, err)

	assert.False(t, d.Pending())
	d.Call(1)
	assert.True(t, d.Pending())
	time.Sleep(150 * time.Millisecond)
	assert.False(t, d.Pending())
}

// TestConcurrentCalls hammers Call from several goroutines; exactly
// one firing must result once the burst quiets down, and -race must
// stay silent.
func TestConcurrentCalls(t *testing.T) {
	var fired atomic.Int32
	d, err := debounce.New(50*time.Millisecond, func(int) { fired.Add(1) })
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			d.Call(v)
		}(i)
	}
	wg.Wait()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}
