package game

import (
	"math"
	"testing"
)

func TestTrailHistoryStaysBounded(t *testing.T) {
	tr := NewSegmentTrail(4, 3, 5, 0)
	for i := 0; i < 3; i++ {
		tr.Grow(Vec3{}, Vec3{0, 0, 1})
	}
	for i := 0; i < 500; i++ {
		tr.Record(Vec3{float64(i), 1, 0}, 1.0/60)
		if len(tr.History) > tr.Capacity() {
			t.Fatalf("frame %d: history %d exceeds capacity %d", i, len(tr.History), tr.Capacity())
		}
	}
	if got, want := len(tr.History), 3*4+3; got != want {
		t.Fatalf("history len = %d, want %d", got, want)
	}
	if last := tr.History[len(tr.History)-1]; last[0] != 499 {
		t.Fatalf("newest sample x = %v, want 499", last[0])
	}
}

func TestTrailSegmentsConvergeOnHistory(t *testing.T) {
	tr := NewSegmentTrail(3, 2, 5, 0)
	tr.Grow(Vec3{}, Vec3{0, 0, 1})
	tr.Grow(Vec3{}, Vec3{0, 0, 1})

	// Head parked: every sample identical, segments must settle onto it.
	head := Vec3{10, 1, -4}
	for i := 0; i < 600; i++ {
		tr.Record(head, 1.0/60)
		tr.Update(1.0 / 60)
	}
	for i, p := range tr.Positions() {
		if d := p.Sub(head).Len(); d > 1e-3 {
			t.Fatalf("segment %d at %v, %.4f from head", i, p, d)
		}
	}
}

func TestTrailSegmentTargetsLagBySpacing(t *testing.T) {
	tr := NewSegmentTrail(5, 1, 1000, 0) // smoothing saturates to a snap
	tr.Grow(Vec3{}, Vec3{0, 0, 1})
	tr.Grow(Vec3{}, Vec3{0, 0, 1})
	for i := 0; i < 40; i++ {
		tr.Record(Vec3{0, 1, float64(i)}, 1.0/60)
	}
	tr.Update(1.0 / 60)

	pos := tr.Positions()
	if math.Abs(pos[0][2]-34) > 1e-9 {
		t.Errorf("segment 0 z = %v, want 34", pos[0][2])
	}
	if math.Abs(pos[1][2]-29) > 1e-9 {
		t.Errorf("segment 1 z = %v, want 29", pos[1][2])
	}
}

func TestTrailUpdateWithShortHistoryLeavesSegments(t *testing.T) {
	tr := NewSegmentTrail(10, 2, 5, 0)
	s := tr.Grow(Vec3{0, 1, 0}, Vec3{0, 0, 1})
	tr.Record(Vec3{3, 1, 3}, 1.0/60)
	tr.Update(1.0 / 60)
	if got := tr.Segments[0].Pos; got != s.Pos {
		t.Fatalf("segment moved to %v before history was long enough", got)
	}
}

func TestTrailGrowPlacement(t *testing.T) {
	tr := NewSegmentTrail(4, 2, 5, 0)
	fwd := Vec3{1, 0, 0}
	first := tr.Grow(Vec3{5, 1, 0}, fwd)
	if math.Abs(first.Pos[0]-3.8) > 1e-9 {
		t.Fatalf("first segment x = %v, want 3.8", first.Pos[0])
	}
	second := tr.Grow(Vec3{5, 1, 0}, fwd)
	if math.Abs(second.Pos[0]-3.0) > 1e-9 {
		t.Fatalf("second segment x = %v, want 3.0", second.Pos[0])
	}
	if first.ID == second.ID {
		t.Fatal("segments share an id")
	}
}

func TestTrailSampleInterval(t *testing.T) {
	tr := NewSegmentTrail(2, 2, 5, 0.05)
	tr.Grow(Vec3{}, Vec3{0, 0, 1})
	for i := 0; i < 6; i++ {
		tr.Record(Vec3{float64(i), 0, 0}, 0.02)
	}
	// 0.12s elapsed at 0.05s per sample.
	if len(tr.History) != 2 {
		t.Fatalf("history len = %d, want 2", len(tr.History))
	}
}

func TestTrailReset(t *testing.T) {
	tr := NewSegmentTrail(2, 2, 5, 0)
	tr.Grow(Vec3{}, Vec3{0, 0, 1})
	tr.Record(Vec3{1, 0, 0}, 0.1)
	tr.Reset()
	if tr.Len() != 0 || len(tr.History) != 0 {
		t.Fatalf("reset left %d segments and %d samples", tr.Len(), len(tr.History))
	}
}

func TestTrailLagIsFrameRateIndependent(t *testing.T) {
	interval := DefaultSettings().SampleInterval
	if interval <= 0 {
		t.Fatalf("default sample interval %v samples every frame", interval)
	}
	// The head travels +Z at one unit per second for three seconds.
	follow := func(fps int) []Vec3 {
		tr := NewSegmentTrail(4, 2, 1e6, interval)
		for i := 0; i < 3; i++ {
			tr.Grow(Vec3{}, Vec3{0, 0, 1})
		}
		dt := 1.0 / float64(fps)
		for i := 1; i <= 3*fps; i++ {
			tr.Record(Vec3{0, 0, float64(i) * dt}, dt)
			tr.Update(dt)
		}
		return tr.Positions()
	}

	slow, fast := follow(30), follow(120)
	for i := range slow {
		if d := slow[i].Sub(fast[i]).Len(); d > 1.5*interval {
			t.Fatalf("segment %d: %v at 30fps vs %v at 120fps", i, slow[i], fast[i])
		}
	}
}
