package timeline

import (
	"testing"
)

func TestSingleShotFiresOnce(t *testing.T) {
	tl := New()
	fired := 0
	tl.Schedule(5, func() { fired++ })
	tl.Begin(1)

	for i := 0; i < 5; i++ {
		tl.Tick()
	}
	if fired != 0 {
		t.Fatalf("action fired early: fired=%d after 5 ticks", fired)
	}

	tl.Tick() // pos == 5
	if fired != 1 {
		t.Fatalf("expected action to fire on the tick with pos 5, fired=%d", fired)
	}

	for i := 0; i < 50; i++ {
		tl.Tick()
	}
	if fired != 1 {
		t.Errorf("action re-fired: fired=%d", fired)
	}
	if tl.Running() {
		t.Error("timeline should stop after its single iteration")
	}
	if !tl.Stopped() {
		t.Error("Stopped() should report an exhausted timeline")
	}
}

func TestZeroOffsetFiresOnFirstTick(t *testing.T) {
	tl := New()
	fired := false
	tl.Schedule(0, func() { fired = true })
	tl.Begin(1)
	tl.Tick()
	if !fired {
		t.Error("offset 0 should fire on the first tick")
	}
}

func TestInfiniteLoopRepeats(t *testing.T) {
	const n = 4
	tl := New()
	var firedAt []int
	tick := 0
	tl.Schedule(n, func() { firedAt = append(firedAt, tick) })
	tl.Begin(0)

	for tick = 0; tick < 40; tick++ {
		tl.Tick()
	}

	if len(firedAt) < 3 {
		t.Fatalf("expected repeated firing, got %v", firedAt)
	}
	if firedAt[0] != n {
		t.Errorf("first firing at tick %d, expected %d", firedAt[0], n)
	}
	for i := 1; i < len(firedAt); i++ {
		if gap := firedAt[i] - firedAt[i-1]; gap != n {
			t.Errorf("firing %d came %d ticks after the previous one, expected %d", i, gap, n)
		}
	}
	if !tl.Running() {
		t.Error("infinite timeline stopped")
	}
}

func TestBoundedLoop(t *testing.T) {
	tl := New()
	fired := 0
	tl.Schedule(2, func() { fired++ })
	tl.Begin(3)

	for i := 0; i < 100; i++ {
		tl.Tick()
	}
	if fired != 3 {
		t.Errorf("fired %d times, expected 3", fired)
	}
	if tl.Running() {
		t.Error("bounded timeline should stop")
	}
}

func TestPercentCallback(t *testing.T) {
	tl := New()
	var got []float64
	tl.Schedule(10, nil)
	tl.SetCallback(func(p float64) { got = append(got, p) })
	tl.Begin(1)

	for i := 0; i < 20; i++ {
		tl.Tick()
	}

	if len(got) != 11 {
		t.Fatalf("expected 11 callback values, got %d: %v", len(got), got)
	}
	for i, p := range got {
		if want := float64(i * 10); p != want {
			t.Errorf("callback %d = %v, expected %v", i, p, want)
		}
	}
}

func TestCallbackZeroWhenNotSingleTimer(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tl *Timeline)
	}{
		{"two items", func(tl *Timeline) {
			tl.Schedule(10, nil)
			tl.Schedule(20, nil)
		}},
		{"item with action", func(tl *Timeline) {
			tl.Schedule(10, func() {})
		}},
		{"timer at zero", func(tl *Timeline) {
			tl.Schedule(0, nil)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tl := New()
			tc.setup(tl)
			var got []float64
			tl.SetCallback(func(p float64) { got = append(got, p) })
			tl.Begin(1)
			for i := 0; i < 5; i++ {
				tl.Tick()
			}
			for i, p := range got {
				if p != 0 {
					t.Errorf("callback %d = %v, expected 0", i, p)
				}
			}
		})
	}
}

func TestNotRunningIsNoop(t *testing.T) {
	tl := New()
	fired := false
	tl.Schedule(0, func() { fired = true })
	tl.Tick()
	if fired {
		t.Error("tick before Begin should do nothing")
	}
	if tl.Pos() != 0 {
		t.Errorf("Pos() = %d, expected 0", tl.Pos())
	}

	tl.Begin(1)
	tl.End()
	tl.Tick()
	if fired {
		t.Error("tick after End should do nothing")
	}
	if tl.Len() != 1 {
		t.Errorf("End should keep the schedule, Len() = %d", tl.Len())
	}
}

func TestResetClearsEverything(t *testing.T) {
	tl := New()
	calls := 0
	tl.Schedule(1, nil)
	tl.SetCallback(func(float64) { calls++ })
	tl.Begin(0)
	tl.Tick()

	tl.Reset()
	if tl.Len() != 0 || tl.Running() || tl.Pos() != 0 {
		t.Errorf("Reset left state: len=%d running=%v pos=%d", tl.Len(), tl.Running(), tl.Pos())
	}

	tl.Schedule(0, nil)
	tl.Begin(1)
	before := calls
	tl.Tick()
	if calls != before {
		t.Error("Reset should drop the callback")
	}
}

func TestActionMayResetTimeline(t *testing.T) {
	tl := New()
	next := 0
	tl.Schedule(0, func() {
		tl.Reset()
		tl.Schedule(3, func() { next++ })
		tl.Begin(1)
	})
	tl.Schedule(0, func() { t.Error("item dropped by Reset should not fire") })
	tl.Begin(1)

	for i := 0; i < 10; i++ {
		tl.Tick()
	}
	if next != 1 {
		t.Errorf("rescheduled action fired %d times, expected 1", next)
	}
}

func TestCallbackMayRestartTimeline(t *testing.T) {
	tl := New()
	restarted := false
	tl.Schedule(10, nil)
	tl.SetCallback(func(p float64) {
		if p >= 50 && !restarted {
			restarted = true
			tl.Reset()
			tl.Schedule(2, nil)
			tl.Begin(1)
		}
	})
	tl.Begin(1)

	for i := 0; i < 30; i++ {
		tl.Tick()
	}
	if !restarted {
		t.Fatal("callback never restarted the timeline")
	}
	if tl.Running() {
		t.Error("restarted single-iteration timeline should have finished")
	}
}
