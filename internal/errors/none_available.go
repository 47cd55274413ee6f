package errors

var ErrNoTaskWaiting = &Exception{
	Code:    "NO_TASK_WAITING",
	Message: "No tasks waiting. All done!",
}

var ErrNoActiveTask = &Exception{
	Code:    "NO_ACTIVE_TASK",
	Message: "No active task.",
	Hint:    "use `td next` to promote one",
}

var ErrNothingToPause = &Exception{
	Code:    "NOTHING_TO_PAUSE",
	Message: "No active task to pause.",
}
