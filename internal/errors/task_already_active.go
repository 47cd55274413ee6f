package errors

var ErrTaskAlreadyActive = &Exception{
	Code:    "ALREADY_ACTIVE",
	Message: "A task is already active.",
	Hint:    "use `td show` to see current task",
}
