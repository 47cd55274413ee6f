package errors

import (
	"fmt"

	"task-tracker.com/td/internal/constants"
)

var ErrInvalidTransition = &Exception{
	Code:    "INVALID_TRANSITION",
	Message: "invalid status transition",
}

func InvalidTransition(id int64, from, to constants.TaskStatus) error {
	return ErrInvalidTransition.withMessage(
		fmt.Sprintf("Task %d is %s and cannot become %s", id, from, to),
	)
}
