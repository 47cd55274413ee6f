package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"task-tracker.com/td/internal/constants"
	"task-tracker.com/td/internal/dates"
	apperrors "task-tracker.com/td/internal/errors"
	model "task-tracker.com/td/internal/models"
	repository "task-tracker.com/td/internal/repositories"
)

// TaskService drives the task state machine on top of the repository.
//
// In the default lenient mode explicit-id Advance, Complete and Cancel write
// the new status without looking at the current one, so e.g. a Completed
// task can be advanced again. Strict mode rejects every transition not in
// the transitions table with ErrInvalidTransition.
type TaskService struct {
	repo   *repository.TaskRepository
	strict bool
	loc    *time.Location
	log    *zap.Logger
}

type Option func(*TaskService)

func WithStrict(strict bool) Option {
	return func(s *TaskService) { s.strict = strict }
}

// WithLocation sets the zone due dates are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *TaskService) { s.loc = loc }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *TaskService) { s.log = l }
}

func NewTaskService(repo *repository.TaskRepository, opts ...Option) *TaskService {
	s := &TaskService{
		repo: repo,
		loc:  time.Local,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask creates a pending task. A nil priority means the default; a due
// date that does not parse is dropped rather than failing the add.
func (s *TaskService) AddTask(ctx context.Context, description string, priority *int, due string) (*model.Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.InvalidInput("Task description must not be empty")
	}

	p := model.DefaultPriority
	if priority != nil {
		p = *priority
	}

	var dueAt *int64
	if due != "" {
		ts, err := dates.ParseInput(due, s.loc)
		if err != nil {
			s.log.Warn("ignoring unparseable due date", zap.String("due", due), zap.Error(err))
		} else {
			dueAt = &ts
		}
	}

	task, err := s.repo.CreateTask(ctx, description, p, dueAt)
	if err != nil {
		return nil, err
	}

	s.log.Debug("task added", zap.Int64("task_id", task.ID), zap.Int("priority", p))
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, scope model.ListScope) ([]model.Task, error) {
	return s.repo.List(ctx, scope)
}

// Active returns the task in progress, or ErrNoActiveTask.
func (s *TaskService) Active(ctx context.Context) (*model.Task, error) {
	task, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.ErrNoActiveTask
	}
	return task, nil
}

// Advance promotes a task to InProgress. With a nil id the next pending task
// is chosen. It fails with ErrTaskAlreadyActive while another task is in
// progress and with ErrNoTaskWaiting when nothing is pending.
func (s *TaskService) Advance(ctx context.Context, id *int64) (*model.Task, error) {
	var promoted *model.Task

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		active, err := tx.FindActive(ctx)
		if err != nil {
			return err
		}
		if active != nil {
			return apperrors.ErrTaskAlreadyActive
		}

		var target int64
		if id != nil {
			target = *id
		} else {
			next, ok, err := tx.FindNextPending(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.ErrNoTaskWaiting
			}
			target = next
		}

		promoted, err = s.transition(ctx, tx, target, constants.StatusInProgress)
		return err
	})
	if err != nil {
		return nil, err
	}

	return promoted, nil
}

func (s *TaskService) Complete(ctx context.Context, id int64) (*model.Task, error) {
	return s.transitionInTx(ctx, id, constants.StatusCompleted)
}

// CompleteAndAdvance completes id and then promotes the next pending task if
// nothing is in progress afterwards. When another task is still active,
// promoted is nil and err is nil. When nothing is waiting, completed is set
// and err is ErrNoTaskWaiting.
func (s *TaskService) CompleteAndAdvance(ctx context.Context, id int64) (completed, promoted *model.Task, err error) {
	completed, err = s.Complete(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	promoted, err = s.Advance(ctx, nil)
	if errors.Is(err, apperrors.ErrTaskAlreadyActive) {
		return completed, nil, nil
	}
	return completed, promoted, err
}

// Pause moves the active task back to Pending.
func (s *TaskService) Pause(ctx context.Context) (*model.Task, error) {
	var paused *model.Task

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		active, err := tx.FindActive(ctx)
		if err != nil {
			return err
		}
		if active == nil {
			return apperrors.ErrNothingToPause
		}

		paused, err = s.transition(ctx, tx, active.ID, constants.StatusPending)
		return err
	})
	if err != nil {
		return nil, err
	}

	return paused, nil
}

func (s *TaskService) Cancel(ctx context.Context, id int64) (*model.Task, error) {
	return s.transitionInTx(ctx, id, constants.StatusCancelled)
}

// CancelAndCollect cancels id and immediately deletes every cancelled task.
func (s *TaskService) CancelAndCollect(ctx context.Context, id int64) (*model.Task, int64, error) {
	cancelled, err := s.Cancel(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	removed, err := s.CollectGarbage(ctx)
	if err != nil {
		return cancelled, 0, err
	}
	return cancelled, removed, nil
}

// CollectGarbage permanently deletes cancelled tasks.
func (s *TaskService) CollectGarbage(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteCancelled(ctx)
	if err != nil {
		return 0, err
	}

	s.log.Debug("cancelled tasks removed", zap.Int64("count", removed))
	return removed, nil
}

func (s *TaskService) transitionInTx(ctx context.Context, id int64, to constants.TaskStatus) (*model.Task, error) {
	var task *model.Task

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		var err error
		task, err = s.transition(ctx, tx, id, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) transition(ctx context.Context, tx *repository.TaskRepository, id int64, to constants.TaskStatus) (*model.Task, error) {
	if s.strict {
		current, err := tx.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !canTransition(current.Status, to) {
			return nil, apperrors.InvalidTransition(id, current.Status, to)
		}
	}

	if err := tx.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}

	s.log.Debug("task status changed", zap.Int64("task_id", id), zap.Stringer("status", to))
	return tx.FindByID(ctx, id)
}
