package avatar

import (
	"github.com/lixenwraith/familiar/parameter"
)

// Inputs bundles the external signals the mapper consumes
type Inputs struct {
	Activity ActivitySignal
	Presence PresenceSample
	Nudge    NudgeSignal
	Hovered  bool
	DragOver bool
}

// Map computes a target vector from the current signals. Pure function,
// re-evaluated by the caller whenever any input changes
func Map(in Inputs) Vector {
	v := Default()
	v.Speed, v.State = activityPose(in.Activity)
	v.Presence = presenceLevel(in.Presence)

	if in.Hovered {
		v.HoverBoost = parameter.HoverBoostOn
	} else {
		v.HoverBoost = parameter.HoverBoostOff
	}
	if in.DragOver {
		v.DropHighlight = 1
	}

	// A pending nudge must surface visually: the avatar never sleeps and
	// never stalls while output waits for the user
	if in.Nudge.Pending {
		if v.Speed < parameter.NudgeMinSpeed {
			v.Speed = parameter.NudgeMinSpeed
		}
		v.Presence = parameter.PresenceFull
		v.Notification = in.Nudge.Level
	}

	return v.Clamp()
}

// activityPose returns the (speed, state) pair for an activity signal
func activityPose(sig ActivitySignal) (float64, float64) {
	switch sig.Kind {
	case ActivityWorkingMain:
		switch sig.Tool {
		case ToolBash:
			return 0.7, 2.0
		case ToolRead:
			return 0.4, 1.5
		case ToolWrite:
			return 0.6, 2.5
		case ToolEdit:
			return 0.5, 2.5
		case ToolAttach:
			return 0.45, 1.8
		case ToolOther:
			return 0.6, 2.0
		default: // plain job
			return 0.6, 1.0
		}
	case ActivityWorkingOther:
		return 0.4, 1.0
	case ActivityOverridden:
		return 0.5, 2.0
	default:
		return 0.15, 0.0
	}
}

// presenceLevel maps an idle-duration sample to attentiveness.
// Screen-asleep overrides everything else
func presenceLevel(p PresenceSample) float64 {
	if p.Asleep {
		return parameter.PresenceAsleep
	}
	d := p.IdleFor
	if d < 0 {
		d = 0
	}
	switch {
	case d < parameter.PresenceShortIdle:
		return parameter.PresenceFull
	case d < parameter.PresenceMediumIdle:
		return parameter.PresenceFaded
	case d < parameter.PresenceLongIdle:
		return parameter.PresenceDim
	default:
		return parameter.PresenceGone
	}
}
