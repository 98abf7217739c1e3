package avatar

import (
	"github.com/lixenwraith/familiar/parameter"
	"github.com/lixenwraith/familiar/vmath"
)

// Weights are the four triangular-window blend values spanning the state
// axis. Within each unit segment, exactly two are nonzero and sum to 1,
// giving a continuous cross-fade with no seam at integer boundaries
type Weights struct {
	Idle   float64
	Think  float64
	Talk   float64
	Listen float64
}

// StateWeights evaluates the windows at position s on the activity axis
func StateWeights(s float64) Weights {
	c0 := vmath.Clamp01(s)
	c1 := vmath.Clamp01(s - 1)
	c2 := vmath.Clamp01(s - 2)
	return Weights{
		Idle:   1 - c0,
		Think:  c0 * (1 - c1),
		Talk:   c1 * (1 - c2),
		Listen: c2,
	}
}

// Bucket is the discrete activity classification both renderers share
type Bucket uint8

const (
	BucketIdle Bucket = iota
	BucketThinking
	BucketToolUse
	BucketStreaming
)

// StateBucket classifies a state value the same way in every backend
func StateBucket(s float64) Bucket {
	switch {
	case s >= 2.5:
		return BucketStreaming
	case s >= 1.5:
		return BucketToolUse
	case s >= 0.5:
		return BucketThinking
	default:
		return BucketIdle
	}
}

// Sleeping reports whether presence has faded below the sleep posture level
func Sleeping(presence float64) bool {
	return presence < parameter.SleepPresenceThreshold
}

// Nudged reports whether notification intensity is visible
func Nudged(notification float64) bool {
	return notification > parameter.NudgeVisibleThreshold
}
