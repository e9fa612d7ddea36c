package game

// Segment is one body piece following the head.
type Segment struct {
	ID    EntityID
	Pos   Vec3
	Scale float64
}

// SegmentTrail makes body segments follow the exact path the head took.
// History holds head samples, oldest first. Segment i targets the sample
// (i+1)*Spacing steps behind the newest one.
type SegmentTrail struct {
	History  []Vec3
	Segments []Segment

	Spacing        int     // history samples between consecutive segments
	Buffer         int     // extra samples kept beyond the last segment
	Smoothing      float64 // lerp factor per second toward the target sample
	SampleInterval float64 // seconds between samples, <= 0 samples every frame

	sampleTimer float64
}

func NewSegmentTrail(spacing, buffer int, smoothing, interval float64) *SegmentTrail {
	if spacing < 1 {
		spacing = 1
	}
	if buffer < 1 {
		buffer = 1
	}
	return &SegmentTrail{
		Spacing:        spacing,
		Buffer:         buffer,
		Smoothing:      smoothing,
		SampleInterval: interval,
	}
}

// Capacity is the number of samples retained for the current body length.
func (t *SegmentTrail) Capacity() int {
	return len(t.Segments)*t.Spacing + t.Buffer
}

// Record appends the head position and evicts the oldest samples past capacity.
func (t *SegmentTrail) Record(head Vec3, dt float64) {
	if t.SampleInterval > 0 {
		t.sampleTimer += dt
		if t.sampleTimer < t.SampleInterval {
			return
		}
		t.sampleTimer -= t.SampleInterval
		if t.sampleTimer > t.SampleInterval {
			t.sampleTimer = 0
		}
	}
	t.History = append(t.History, head)
	if over := len(t.History) - t.Capacity(); over > 0 {
		t.History = append(t.History[:0], t.History[over:]...)
	}
}

// Update moves every segment toward its target sample. Segments whose
// target is not yet in history stay where they are.
func (t *SegmentTrail) Update(dt float64) {
	k := clampF(dt*t.Smoothing, 0, 1)
	n := len(t.History)
	for i := range t.Segments {
		idx := n - 1 - (i+1)*t.Spacing
		if idx < 0 {
			continue
		}
		s := &t.Segments[i]
		s.Pos = lerpVec(s.Pos, t.History[idx], k)
	}
}

// Grow appends a segment behind the current tail and returns it.
func (t *SegmentTrail) Grow(head, forward Vec3) Segment {
	var pos Vec3
	if len(t.Segments) == 0 {
		pos = head.Sub(forward.Mul(1.2))
	} else {
		pos = t.Segments[len(t.Segments)-1].Pos.Sub(forward.Mul(0.8))
	}
	s := Segment{ID: newID(), Pos: pos, Scale: 0.9}
	t.Segments = append(t.Segments, s)
	return s
}

// Reset clears history and segments.
func (t *SegmentTrail) Reset() {
	t.History = t.History[:0]
	t.Segments = t.Segments[:0]
	t.sampleTimer = 0
}

func (t *SegmentTrail) Len() int { return len(t.Segments) }

// Positions returns segment positions head-to-tail.
func (t *SegmentTrail) Positions() []Vec3 {
	out := make([]Vec3, len(t.Segments))
	for i, s := range t.Segments {
		out[i] = s.Pos
	}
	return out
}
