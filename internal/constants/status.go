package constants

import (
	"database/sql/driver"
	"fmt"
)

// TaskStatus is persisted as a small integer code.
type TaskStatus int64

const (
	StatusPending    TaskStatus = 0
	StatusInProgress TaskStatus = 1
	StatusCompleted  TaskStatus = 2
	StatusCancelled  TaskStatus = 3
)

// StatusFromCode maps a stored code to a TaskStatus. Unknown codes are an error.
func StatusFromCode(code int64) (TaskStatus, error) {
	switch TaskStatus(code) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return TaskStatus(code), nil
	default:
		return 0, fmt.Errorf("unknown task status code %d", code)
	}
}

func (s TaskStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("TaskStatus(%d)", int64(s))
	}
}

// Terminal reports whether no further transition may leave s.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s TaskStatus) Value() (driver.Value, error) {
	if _, err := StatusFromCode(int64(s)); err != nil {
		return nil, err
	}
	return int64(s), nil
}

func (s *TaskStatus) Scan(value any) error {
	var code int64
	switch v := value.(type) {
	case int64:
		code = v
	case int:
		code = int64(v)
	case int32:
		code = int64(v)
	default:
		return fmt.Errorf("cannot scan %T into TaskStatus", value)
	}

	status, err := StatusFromCode(code)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
