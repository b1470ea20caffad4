package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

// echoProcessFunc returns a result carrying the item's index and board.
func echoProcessFunc(item WorkItem) ProcessResult {
	return ProcessResult{Index: item.Index, Board: item.Board}
}

// countingProcessFunc returns a ProcessFunc that counts how many items it saw.
func countingProcessFunc(counter *int64) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt64(counter, 1)
		return echoProcessFunc(item)
	}
}

// collectResults drains the pool's result channel.
func collectResults(pool *Pool) []ProcessResult {
	var results []ProcessResult
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

// runPool submits n initial boards from a producer goroutine and returns
// every result.
func runPool(pool *Pool, n int) []ProcessResult {
	pool.Start()
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(WorkItem{Board: engine.NewInitialBoard(), Index: i})
		}
		pool.Close()
	}()
	return collectResults(pool)
}

func TestPoolBasic(t *testing.T) {
	var processed int64
	pool := NewPool(4, 10, countingProcessFunc(&processed))

	results := runPool(pool, 50)

	if len(results) != 50 {
		t.Errorf("got %d results, want 50", len(results))
	}
	if processed != 50 {
		t.Errorf("processed %d items, want 50", processed)
	}
}

func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 1, echoProcessFunc)

	results := runPool(pool, 10)

	// A single worker preserves submission order.
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("result %d has index %d", i, r.Index)
		}
	}
}

func TestPoolQueriesBoards(t *testing.T) {
	pool := NewPool(3, 4, func(item WorkItem) ProcessResult {
		moves, err := engine.AllDestinations(item.Board, item.Board.ToMove)
		n := 0
		for _, m := range moves {
			n += m.Len()
		}
		if n != 20 {
			t.Errorf("item %d: %d moves, want 20", item.Index, n)
		}
		return ProcessResult{Index: item.Index, Board: item.Board, Error: err}
	})

	for _, r := range runPool(pool, 12) {
		if r.Error != nil {
			t.Errorf("item %d: %v", r.Index, r.Error)
		}
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int64
	var pool *Pool
	pool = NewPool(2, 100, func(item WorkItem) ProcessResult {
		if atomic.AddInt64(&processed, 1) >= 5 {
			pool.Stop()
		}
		return echoProcessFunc(item)
	})

	results := runPool(pool, 100)

	if !pool.IsStopped() {
		t.Error("pool should be stopped")
	}
	if len(results) >= 100 {
		t.Errorf("got %d results, want fewer than 100 after stop", len(results))
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(1, 1, echoProcessFunc)
	if pool.IsStopped() {
		t.Error("new pool should not be stopped")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop")
	}
}

func TestPoolTrySubmit(t *testing.T) {
	pool := NewPool(1, 1, echoProcessFunc)

	// Not started: the buffer takes one item, then refuses.
	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("TrySubmit on a full buffer should fail")
	}

	pool.Stop()
	if pool.TrySubmit(WorkItem{Index: 2}) {
		t.Error("TrySubmit on a stopped pool should fail")
	}
}

func TestPoolSubmitAfterStop(t *testing.T) {
	pool := NewPool(1, 4, echoProcessFunc)
	if !pool.Submit(WorkItem{Index: 0}) {
		t.Fatal("Submit before Stop should succeed")
	}
	pool.Stop()
	pool.Stop() // idempotent
	if pool.Submit(WorkItem{Index: 1}) {
		t.Error("Submit after Stop should fail")
	}

	pool.Start()
	pool.Close()
	if n := len(collectResults(pool)); n != 0 {
		t.Errorf("got %d results from a stopped pool, want 0", n)
	}
}

func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"one", 1, 1},
		{"eight", 8, 8},
		{"zero falls back to default", 0, 1},
		{"negative falls back to default", -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPool(tt.n, 1, echoProcessFunc).NumWorkers(); got != tt.want {
				t.Errorf("NumWorkers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolNoRace(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	pool := NewPool(8, 4, func(item WorkItem) ProcessResult {
		// Each worker queries its own board copy.
		b := item.Board.Copy()
		if _, err := engine.AllDestinations(b, chess.White); err != nil {
			return ProcessResult{Index: item.Index, Error: err}
		}
		mu.Lock()
		seen[item.Index] = true
		mu.Unlock()
		time.Sleep(time.Microsecond)
		return echoProcessFunc(item)
	})

	results := runPool(pool, 200)

	if len(results) != 200 {
		t.Errorf("got %d results, want 200", len(results))
	}
	if len(seen) != 200 {
		t.Errorf("saw %d distinct items, want 200", len(seen))
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	pool := NewPoolWithOptions(echoProcessFunc)
	if pool.NumWorkers() != 1 {
		t.Errorf("default NumWorkers() = %d, want 1", pool.NumWorkers())
	}
	if cap(pool.items) != 10 {
		t.Errorf("default buffer = %d, want 10", cap(pool.items))
	}

	pool = NewPoolWithOptions(echoProcessFunc, WithWorkers(6), WithBufferSize(32))
	if pool.NumWorkers() != 6 {
		t.Errorf("NumWorkers() = %d, want 6", pool.NumWorkers())
	}
	if cap(pool.items) != 32 || cap(pool.results) != 32 {
		t.Errorf("buffers = %d/%d, want 32", cap(pool.items), cap(pool.results))
	}
}

func TestInOrder(t *testing.T) {
	pool := NewPool(4, 8, func(item WorkItem) ProcessResult {
		// Later items finish first.
		time.Sleep(time.Duration(20-item.Index) * 100 * time.Microsecond)
		return echoProcessFunc(item)
	})
	pool.Start()
	go func() {
		for i := 0; i < 20; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	var got []int
	InOrder(pool.Results(), func(r ProcessResult) bool {
		got = append(got, r.Index)
		return true
	})

	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InOrder mismatch (-want +got):\n%s", diff)
	}
}

func TestInOrder_StopEarly(t *testing.T) {
	results := make(chan ProcessResult, 5)
	for _, i := range []int{2, 0, 4, 1, 3} {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var got []int
	InOrder(results, func(r ProcessResult) bool {
		got = append(got, r.Index)
		return len(got) < 2
	})

	if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
		t.Errorf("InOrder mismatch (-want +got):\n%s", diff)
	}
}

func TestInOrder_Gap(t *testing.T) {
	results := make(chan ProcessResult, 3)
	for _, i := range []int{3, 0, 5} {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var got []int
	InOrder(results, func(r ProcessResult) bool {
		got = append(got, r.Index)
		return true
	})

	if diff := cmp.Diff([]int{0, 3, 5}, got); diff != "" {
		t.Errorf("InOrder mismatch (-want +got):\n%s", diff)
	}
}
