package audio

import (
	"math"
	"testing"
)

func TestSineOscBoundedAndFinite(t *testing.T) {
	osc := &sineOsc{freq: 440, limit: 1000}
	buf := make([][2]float64, 256)

	total := 0
	for {
		n, ok := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -1 || v > 1 {
				t.Fatalf("sample %d = %v out of [-1, 1]", total+i, v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("channels diverged")
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != 1000 {
		t.Errorf("streamed %d samples, want 1000", total)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	// Constant-amplitude source to isolate the envelope curve
	src := &constOsc{limit: 100}
	env := &envelope{streamer: src, attack: 20, release: 20, total: 100}

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d, want 100", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("attack start = %v, want 0", buf[0][0])
	}
	if math.Abs(buf[50][0]-1) > 1e-9 {
		t.Errorf("sustain = %v, want 1", buf[50][0])
	}
	if buf[99][0] >= buf[50][0] {
		t.Error("release did not fall below sustain")
	}
	for i := 1; i < 20; i++ {
		if buf[i][0] < buf[i-1][0] {
			t.Fatalf("attack not rising at sample %d", i)
		}
	}
}

func TestSilentEngineIsSafe(t *testing.T) {
	var e *Engine
	if e.Ready() {
		t.Error("nil engine reports ready")
	}
	e.PlayNudge() // must not panic

	e = &Engine{}
	e.PlayNudge()
	e.Close()
}

type constOsc struct {
	position int
	limit    int
}

func (o *constOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.limit {
			return i, false
		}
		samples[i][0] = 1
		samples[i][1] = 1
		o.position++
	}
	return len(samples), true
}

func (o *constOsc) Err() error { return nil }
