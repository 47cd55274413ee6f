package services

import "task-tracker.com/td/internal/constants"

// transitions lists, per state, the states a task may move to when the
// service runs in strict mode. Terminal states have no outgoing edges.
var transitions = map[constants.TaskStatus][]constants.TaskStatus{
	constants.StatusPending: {
		constants.StatusInProgress,
		constants.StatusCancelled,
	},
	constants.StatusInProgress: {
		constants.StatusCompleted,
		constants.StatusPending,
		constants.StatusCancelled,
	},
}

func canTransition(from, to constants.TaskStatus) bool {
	if from.Terminal() {
		return false
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
