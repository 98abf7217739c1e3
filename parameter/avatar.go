// Package parameter centralizes avatar tuning values.
package parameter

import "time"

// Interpolator response tuning
const (
	// BaseFactor is the per-tick fraction of remaining distance covered
	BaseFactor = 0.08

	// SpeedRiseMul accelerates speed increases so new activity registers
	// immediately; SpeedRiseCap bounds the ramp
	SpeedRiseMul = 1.8
	SpeedRiseCap = 0.2

	// HoverMul slows hover response to absorb pointer jitter
	HoverMul = 0.4

	// PresenceMul smooths noisy idle-detection sampling
	PresenceMul = 0.5

	// NotificationMul makes nudges visually immediate
	NotificationMul = 2.0
)

// Presence thresholds: idle duration to attentiveness level
const (
	PresenceShortIdle  = 30 * time.Second  // below: 1.0
	PresenceMediumIdle = 120 * time.Second // below: 0.7
	PresenceLongIdle   = 300 * time.Second // below: 0.4, else 0.2

	PresenceFull   = 1.0
	PresenceFaded  = 0.7
	PresenceDim    = 0.4
	PresenceGone   = 0.2
	PresenceAsleep = 0.1
)

// Hover and drag emphasis
const (
	HoverBoostOff = 1.0
	HoverBoostOn  = 1.35
)

// Nudge behavior
const (
	// NudgeMinSpeed keeps the avatar animated while a nudge is pending
	NudgeMinSpeed = 0.5

	// NudgeHold is how long notification stays at full before the driver
	// republishes the residual level
	NudgeHold     = 3 * time.Second
	NudgeResidual = 0.4
)

// Render cadence
const (
	FrameInterval = time.Second / 60
	FrameDelta    = 1.0 / 60.0

	// PresencePollInterval is the sampling cadence of the presence driver
	PresencePollInterval = 5 * time.Second
)

// Figure kinematics
const (
	// BlinkPeriod fires independent of activity state; BlinkDuration is how
	// long the eyes stay shut
	BlinkPeriod   = 3.5
	BlinkDuration = 0.2

	FigureLegCount = 8
)

// Bucket thresholds shared by both renderers
const (
	SleepPresenceThreshold = 0.3
	NudgeVisibleThreshold  = 0.1
)
