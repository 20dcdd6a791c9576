package watcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
	"unique"

	"go.trai.ch/shade/internal/core/ports"
)

// Debouncer coalesces rapid file system events into batches. Within a window only
// the last operation seen for a path is kept. Batches are delivered one at a time
// and in order.
type Debouncer struct {
	// delivering is a one-slot semaphore held from drain until the callback
	// returns. Acquire it before mu.
	delivering chan struct{}
	mu         sync.Mutex
	pending    map[unique.Handle[string]]ports.WatchOp
	timer      *time.Timer
	window     time.Duration
	callback   func(events []ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		delivering: make(chan struct{}, 1),
		pending:    make(map[unique.Handle[string]]ports.WatchOp),
		window:     window,
		callback:   callback,
	}
}

// Add records event and restarts the window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(event.Path)] = event.Operation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.delivering <- struct{}{}
	defer func() { <-d.delivering }()

	d.mu.Lock()
	d.timer = nil
	batch := d.drain()
	d.mu.Unlock()

	d.deliver(batch)
}

// Flush delivers pending events immediately. It returns once every batch drained
// so far, including one whose window already expired, has been handed to the
// callback.
func (d *Debouncer) Flush() {
	d.delivering <- struct{}{}
	defer func() { <-d.delivering }()

	d.mu.Lock()
	if d.timer != nil {
		// If the timer already fired, its fire call finds nothing left to drain.
		d.timer.Stop()
		d.timer = nil
	}
	batch := d.drain()
	d.mu.Unlock()

	d.deliver(batch)
}

func (d *Debouncer) deliver(batch []ports.WatchEvent) {
	if len(batch) > 0 && d.callback != nil {
		d.callback(batch)
	}
}

// drain empties the pending set into a batch sorted by path. mu must be held.
func (d *Debouncer) drain() []ports.WatchEvent {
	batch := make([]ports.WatchEvent, 0, len(d.pending))
	for handle, op := range d.pending {
		batch = append(batch, ports.WatchEvent{Path: handle.Value(), Operation: op})
	}
	d.pending = make(map[unique.Handle[string]]ports.WatchOp)

	slices.SortFunc(batch, func(a, b ports.WatchEvent) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return batch
}
