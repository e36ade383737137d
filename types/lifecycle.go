package types //nolint:revive,nolintlint // allow pkg name 'types'

// LifecycleState is the state of one submission attempt.
type LifecycleState int

const (
	StateIdle LifecycleState = iota
	StateSubmitting
	StatePending
	StateAccepted
	StateRejectedByUser
	StateFailed
)

var lifecycleStateNames = map[LifecycleState]string{
	StateIdle:           "idle",
	StateSubmitting:     "submitting",
	StatePending:        "pending",
	StateAccepted:       "accepted",
	StateRejectedByUser: "rejected_by_user",
	StateFailed:         "failed",
}

func (s LifecycleState) String() string {
	if n, ok := lifecycleStateNames[s]; ok {
		return n
	}

	return "unknown"
}

// IsTerminal reports whether no further transition can happen for the attempt.
func (s LifecycleState) IsTerminal() bool {
	return s == StateAccepted || s == StateRejectedByUser || s == StateFailed
}
