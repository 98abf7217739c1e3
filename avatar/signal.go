// Package avatar holds the numeric core of the on-screen familiar: the
// parameter vector contract, the mapper from discrete agent/user signals to
// target vectors, and the per-tick interpolator that smooths the current
// vector toward the target.
package avatar

import "time"

// ActivityKind tags what the agent is doing
type ActivityKind uint8

const (
	ActivityIdle ActivityKind = iota
	ActivityWorkingMain
	ActivityWorkingOther
	ActivityOverridden
)

// ToolKind refines ActivityWorkingMain when a tool runs
type ToolKind uint8

const (
	ToolNone ToolKind = iota // main work without a tool (a job)
	ToolBash
	ToolRead
	ToolWrite
	ToolEdit
	ToolAttach
	ToolOther
)

// ActivitySignal is the agent activity input, pushed on change
type ActivitySignal struct {
	Kind ActivityKind
	Tool ToolKind // meaningful only for ActivityWorkingMain
}

// PresenceSample is the user attentiveness input, polled at a slow cadence
type PresenceSample struct {
	IdleFor time.Duration
	Asleep  bool
}

// NudgeSignal is the pending-notification input. Counter increases
// monotonically with each new nudge; Level lets the nudge owner republish a
// residual intensity after the initial hold
type NudgeSignal struct {
	Pending bool
	Counter uint64
	Level   float64
}

func (k ActivityKind) String() string {
	switch k {
	case ActivityWorkingMain:
		return "working"
	case ActivityWorkingOther:
		return "working-other"
	case ActivityOverridden:
		return "overridden"
	default:
		return "idle"
	}
}

func (k ToolKind) String() string {
	switch k {
	case ToolBash:
		return "bash"
	case ToolRead:
		return "read"
	case ToolWrite:
		return "write"
	case ToolEdit:
		return "edit"
	case ToolAttach:
		return "attach"
	case ToolOther:
		return "tool"
	default:
		return "job"
	}
}
