package avatar

import "github.com/lixenwraith/familiar/parameter"

// Advance moves current a fraction of the remaining distance toward target,
// once per render tick at a fixed cadence. Each field carries its own
// response factor; none ever overshoots. Total function, always defined
func Advance(current, target Vector, f float64) Vector {
	speedFactor := f
	if target.Speed > current.Speed {
		// Activity increases register immediately, decreases ease out to
		// avoid flicker on brief state churn
		speedFactor = f * parameter.SpeedRiseMul
		if speedFactor > parameter.SpeedRiseCap {
			speedFactor = parameter.SpeedRiseCap
		}
	}

	current.Speed += (target.Speed - current.Speed) * speedFactor
	current.State += (target.State - current.State) * f
	current.HoverBoost += (target.HoverBoost - current.HoverBoost) * f * parameter.HoverMul
	current.DropHighlight += (target.DropHighlight - current.DropHighlight) * f
	current.Presence += (target.Presence - current.Presence) * f * parameter.PresenceMul
	current.Notification += (target.Notification - current.Notification) * f * parameter.NotificationMul
	return current
}
