package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects values passed to a debounced function.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestZeroDelayCallsImmediately(t *testing.T) {
	rec := &recorder{}
	d := New(0, rec.record)

	d.Trigger("#ff0000")
	d.Trigger("#00ff00")

	assert.Equal(t, []string{"#ff0000", "#00ff00"}, rec.snapshot())
	assert.False(t, d.Pending())
}

func TestNegativeDelayIsZero(t *testing.T) {
	rec := &recorder{}
	d := New(-time.Second, rec.record)

	assert.Equal(t, time.Duration(0), d.Delay())
	d.Trigger("a")
	assert.Equal(t, []string{"a"}, rec.snapshot())
}

func TestBurstCoalescesToLatest(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.record)

	for _, v := range []string{"#000001", "#000002", "#000003", "#000004"} {
		d.Trigger(v)
	}
	assert.True(t, d.Pending())
	assert.Empty(t, rec.snapshot(), "nothing should fire inside the window")

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	// Give a stale timer a chance to misfire.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"#000004"}, rec.snapshot())
	assert.False(t, d.Pending())
}

func TestSeparateBurstsFireSeparately(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.record)

	d.Trigger("first")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger("second")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestCancel(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)

	assert.False(t, d.Cancel(), "nothing pending yet")

	d.Trigger("dropped")
	assert.True(t, d.Cancel())
	assert.False(t, d.Pending())

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestFlush(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.record)

	assert.False(t, d.Flush(), "nothing pending yet")

	d.Trigger("a")
	d.Trigger("b")
	assert.True(t, d.Flush())
	assert.Equal(t, []string{"b"}, rec.snapshot())
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
}

func TestSetDelay(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.record)

	d.SetDelay(0)
	assert.Equal(t, time.Duration(0), d.Delay())

	d.Trigger("now")
	assert.Equal(t, []string{"now"}, rec.snapshot())
}

func TestConcurrentTriggers(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Trigger("x")
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}
