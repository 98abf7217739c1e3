package avatar

import (
	"math"
	"testing"
)

// The four windows partition the state axis: each weight stays in [0, 1]
// everywhere and the sum is exactly 1 at integer boundaries
func TestWeightPartition(t *testing.T) {
	for i := 0; i <= 300; i++ {
		s := float64(i) / 100
		w := StateWeights(s)

		for _, pair := range []struct {
			name string
			v    float64
		}{
			{"idle", w.Idle}, {"think", w.Think}, {"talk", w.Talk}, {"listen", w.Listen},
		} {
			if pair.v < 0 || pair.v > 1 {
				t.Fatalf("state %v: weight %s = %v out of [0, 1]", s, pair.name, pair.v)
			}
		}

		sum := w.Idle + w.Think + w.Talk + w.Listen
		if i%100 == 0 && math.Abs(sum-1) > 1e-12 {
			t.Errorf("state %v: weight sum = %v, want exactly 1", s, sum)
		}
		// Within each unit segment the two active windows also sum to 1
		if sum < 1-1e-9 || sum > 1+1e-9 {
			t.Errorf("state %v: weight sum = %v, want 1", s, sum)
		}
	}
}

func TestWeightPeaks(t *testing.T) {
	tests := []struct {
		name  string
		state float64
		want  Weights
	}{
		{"Idle peak", 0, Weights{Idle: 1}},
		{"Think peak", 1, Weights{Think: 1}},
		{"Talk peak", 2, Weights{Talk: 1}},
		{"Listen full", 3, Weights{Listen: 1}},
		{"Idle-think blend", 0.5, Weights{Idle: 0.5, Think: 0.5}},
		{"Think-talk blend", 1.5, Weights{Think: 0.5, Talk: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StateWeights(tt.state)
			if math.Abs(got.Idle-tt.want.Idle) > 1e-12 ||
				math.Abs(got.Think-tt.want.Think) > 1e-12 ||
				math.Abs(got.Talk-tt.want.Talk) > 1e-12 ||
				math.Abs(got.Listen-tt.want.Listen) > 1e-12 {
				t.Errorf("StateWeights(%v) = %+v, want %+v", tt.state, got, tt.want)
			}
		})
	}
}

func TestStateBuckets(t *testing.T) {
	tests := []struct {
		state float64
		want  Bucket
	}{
		{0, BucketIdle},
		{0.49, BucketIdle},
		{0.5, BucketThinking},
		{1.49, BucketThinking},
		{1.5, BucketToolUse},
		{2.0, BucketToolUse},
		{2.49, BucketToolUse},
		{2.5, BucketStreaming},
		{3.0, BucketStreaming},
	}

	for _, tt := range tests {
		if got := StateBucket(tt.state); got != tt.want {
			t.Errorf("StateBucket(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestSleepingAndNudged(t *testing.T) {
	if !Sleeping(0.29) || Sleeping(0.3) {
		t.Error("sleep threshold should be presence < 0.3")
	}
	if !Nudged(0.11) || Nudged(0.1) {
		t.Error("nudge threshold should be notification > 0.1")
	}
}
