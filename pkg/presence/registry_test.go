package presence

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]int64
}

func (r *recorder) NotifyOnline(ids []int64) {
	r.mu.Lock()
	r.calls = append(r.calls, ids)
	r.mu.Unlock()
}

func TestRegisterLookupUnregister(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry()
	r.SetNotifier(rec)

	r.Register(1, "c1")
	connID, ok := r.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "c1", connID)
	assert.Equal(t, []int64{1}, r.Online())

	r.Unregister(1)
	_, ok = r.Lookup(1)
	assert.False(t, ok)
	assert.Empty(t, r.Online())

	require.Len(t, rec.calls, 2)
	assert.Equal(t, []int64{1}, rec.calls[0])
	assert.Empty(t, rec.calls[1])
}

func TestRegister_LastWins(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry()
	r.SetNotifier(rec)

	r.Register(1, "old")
	r.Register(1, "new")

	connID, ok := r.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "new", connID)
	assert.Equal(t, 1, r.Count())
	assert.Len(t, rec.calls, 2)
}

func TestRelease_StaleConnection(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry()
	r.SetNotifier(rec)

	r.Register(1, "old")
	r.Register(1, "new")

	assert.False(t, r.Release(1, "old"))
	connID, ok := r.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "new", connID)
	assert.Len(t, rec.calls, 2)

	assert.True(t, r.Release(1, "new"))
	_, ok = r.Lookup(1)
	assert.False(t, ok)
	assert.Len(t, rec.calls, 3)
}

func TestBroadcastListIsSorted(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry()
	r.SetNotifier(rec)

	r.Register(30, "a")
	r.Register(10, "b")
	r.Register(20, "c")

	assert.Equal(t, []int64{10, 20, 30}, rec.calls[2])
}

func TestConcurrentRegister(t *testing.T) {
	var calls int
	var mu sync.Mutex
	r := NewRegistry()
	r.SetNotifier(NotifierFunc(func([]int64) {
		mu.Lock()
		calls++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := int64(1); i <= 100; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			r.Register(uid, "conn")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, r.Count())
	assert.Equal(t, 100, calls)
}

// 第一次广播卡住时, 后续变更的广播必须排在它之后
func TestBroadcastOrder_SlowNotifier(t *testing.T) {
	var (
		mu      sync.Mutex
		last    []int64
		first   = true
		entered = make(chan struct{})
		release = make(chan struct{})
	)
	r := NewRegistry()
	r.SetNotifier(NotifierFunc(func(ids []int64) {
		mu.Lock()
		block := first
		first = false
		mu.Unlock()
		if block {
			close(entered)
			<-release
		}
		mu.Lock()
		last = ids
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.Register(1, "c1")
	}()
	<-entered
	go func() {
		defer wg.Done()
		r.Register(2, "c2")
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int64{1, 2}, r.Online())
	assert.Equal(t, r.Online(), last)
}

func TestBroadcastOrder_MixedChanges(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry()
	r.SetNotifier(rec)

	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			r.Register(uid, "conn")
			if uid%2 == 0 {
				r.Release(uid, "conn")
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, rec.calls, 75)
	assert.Equal(t, r.Online(), rec.calls[len(rec.calls)-1])
	assert.Len(t, r.Online(), 25)
}
