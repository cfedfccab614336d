package profile

// Stage is the explicit conversation state. It replaces branching on raw
// history length scattered through the responder: the length is mapped to
// a stage exactly once, and there is no silent fallthrough to Complete for
// odd-length histories (a client retry resending one extra turn stays in
// the same stage).
type Stage int

const (
	// StageAwaitingGoals covers the opening exchange: the user has sent
	// their first message and we still need goals and logistics.
	StageAwaitingGoals Stage = iota
	// StageAwaitingHealthInfo covers the second exchange: logistics are
	// in, health constraints are the last missing piece.
	StageAwaitingHealthInfo
	// StageComplete means enough has been collected to attach a plan.
	StageComplete
)

// StageFor maps the echoed transcript length to a stage. The client sends
// history in increments of two (user + assistant), so the canonical
// lengths are 0, 2, and 4+; intermediate lengths round down to the stage
// they belong to.
func StageFor(historyLen int) Stage {
	switch {
	case historyLen < 2:
		return StageAwaitingGoals
	case historyLen < 4:
		return StageAwaitingHealthInfo
	default:
		return StageComplete
	}
}

func (s Stage) String() string {
	switch s {
	case StageAwaitingGoals:
		return "awaiting_goals"
	case StageAwaitingHealthInfo:
		return "awaiting_health_info"
	default:
		return "complete"
	}
}
