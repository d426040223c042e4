// Package timeline provides a frame-indexed task sequencer used to drive
// cinematics, level-transition delays and other staged events.
//
// A Timeline is advanced once per rendered frame with Tick. Scheduled items
// fire once their frame offset has been reached, in the order they were
// added. An optional progress callback is invoked on every tick, and the
// whole schedule can replay a bounded or unbounded number of times.
package timeline

// Action is a scheduled zero-argument task. A nil Action is a pure time
// marker.
type Action func()

// Progress receives percent-complete values while the timeline runs.
type Progress func(percent float64)

// item is a single scheduled entry.
type item struct {
	frame  uint64
	action Action
	done   bool
}

// Timeline is a deterministic frame-indexed scheduler.
// The zero value is idle and ready for Schedule/Begin; it loops once.
type Timeline struct {
	items    []item
	pos      uint64   // logical frame counter
	callback Progress // optional per-tick callback
	running  bool
	looped   uint64 // completed iterations
	loop     uint64 // iterations to run, 0 means forever
	started  bool   // whether Begin has been called since the last Reset
}

// New creates an idle timeline.
func New() *Timeline {
	t := &Timeline{}
	t.Reset()
	return t
}

// Reset clears the schedule and callback, stops the timeline and restores
// a single-iteration loop count.
func (t *Timeline) Reset() {
	t.items = t.items[:0]
	t.pos = 0
	t.callback = nil
	t.running = false
	t.looped = 0
	t.loop = 1
	t.started = false
}

// Schedule appends an item firing once the frame counter reaches frame.
// Items are kept in insertion order, not sorted by frame.
func (t *Timeline) Schedule(frame uint64, action Action) {
	t.items = append(t.items, item{frame: frame, action: action})
}

// SetCallback registers the progress callback, replacing any previous one.
func (t *Timeline) SetCallback(fn Progress) {
	t.callback = fn
}

// Begin starts the timeline from frame zero. loops is the number of
// iterations to run; 0 repeats forever.
func (t *Timeline) Begin(loops uint64) {
	t.looped = 0
	t.loop = loops
	t.pos = 0
	t.running = true
	t.started = true
}

// End stops the timeline without clearing its schedule.
func (t *Timeline) End() {
	t.running = false
}

// Running reports whether Tick currently has any effect.
func (t *Timeline) Running() bool {
	return t.running
}

// Stopped reports whether the timeline was started and has since stopped,
// either through End or by exhausting its loop budget.
func (t *Timeline) Stopped() bool {
	return t.started && !t.running
}

// Pos returns the current logical frame.
func (t *Timeline) Pos() uint64 {
	return t.pos
}

// Len returns the number of scheduled items.
func (t *Timeline) Len() int {
	return len(t.items)
}

// Tick advances the timeline by one frame.
//
// Actions and the callback may reset and reschedule this same timeline; the
// scan re-checks the item count on every step so a shrunk schedule is never
// indexed past its end.
func (t *Timeline) Tick() {
	if !t.running {
		return
	}

	remain := 0
	for i := 0; i < len(t.items); i++ {
		if !t.items[i].done && t.items[i].frame <= t.pos {
			t.items[i].done = true
			if fn := t.items[i].action; fn != nil {
				fn()
			}
		}

		if t.running && i < len(t.items) && !t.items[i].done {
			remain++
		}
	}

	if t.callback != nil {
		if len(t.items) == 1 && t.items[0].action == nil && t.items[0].frame > 0 {
			t.callback(100 * float64(t.pos) / float64(t.items[0].frame))
		} else {
			t.callback(0)
		}
	}

	if remain == 0 {
		t.looped++
		if t.loop == 0 || t.looped < t.loop {
			t.pos = 0
			for i := range t.items {
				t.items[i].done = false
			}
		} else {
			t.running = false
		}
	}

	t.pos++
}
