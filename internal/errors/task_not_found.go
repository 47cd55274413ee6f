package errors

import "fmt"

var ErrTaskNotFound = &Exception{
	Code:    "NOT_FOUND",
	Message: "task not found",
}

func TaskNotFound(id int64) error {
	return ErrTaskNotFound.withMessage(fmt.Sprintf("No task with id %d", id))
}
