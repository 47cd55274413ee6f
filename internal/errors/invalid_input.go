package errors

var ErrInvalidInput = &Exception{
	Code:    "INVALID_INPUT",
	Message: "invalid input",
}

func InvalidInput(msg string) error {
	return ErrInvalidInput.withMessage(msg)
}
