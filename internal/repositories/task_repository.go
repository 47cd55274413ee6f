package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/td/internal/constants"
	apperrors "task-tracker.com/td/internal/errors"
	model "task-tracker.com/td/internal/models"
)

type TaskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

// Transaction runs fn against a repository bound to a single transaction.
// fn must not use the outer repository: the pool holds one connection.
func (r *TaskRepository) Transaction(ctx context.Context, fn func(tx *TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TaskRepository{db: tx, now: r.now})
	})
}

func (r *TaskRepository) CreateTask(ctx context.Context, description string, priority int, dueAt *int64) (*model.Task, error) {
	task := &model.Task{
		Description: description,
		Status:      constants.StatusPending,
		Priority:    priority,
		CreatedAt:   r.now().Unix(),
		DueAt:       dueAt,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	if len(tasks) == 0 {
		return nil, apperrors.TaskNotFound(id)
	}
	return &tasks[0], nil
}

func (r *TaskRepository) List(ctx context.Context, scope model.ListScope) ([]model.Task, error) {
	query := r.db.WithContext(ctx)

	switch scope {
	case model.ScopeAll:
		query = query.Order("id asc")
	case model.ScopeCompleted:
		query = query.Where("status = ?", constants.StatusCompleted).Order("id asc")
	case model.ScopeActive:
		query = query.
			Where("status IN ?", []constants.TaskStatus{constants.StatusPending, constants.StatusInProgress}).
			Order("status desc, priority desc, id asc")
	default:
		return nil, fmt.Errorf("unknown list scope %d", scope)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus is the only write path for status changes.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrTaskAlreadyActive
		}
		return fmt.Errorf("update task %d: %w", id, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.TaskNotFound(id)
	}

	return nil
}

// FindActive returns the InProgress task, or nil when there is none.
func (r *TaskRepository) FindActive(ctx context.Context) (*model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("status = ?", constants.StatusInProgress).
		Limit(1).Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("find active task: %w", err)
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	return &tasks[0], nil
}

// FindNextPending picks the pending task to work on next: highest priority,
// then earliest due date (undated last), then earliest creation.
func (r *TaskRepository) FindNextPending(ctx context.Context) (int64, bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("status = ?", constants.StatusPending).
		Order("priority desc, due_at IS NULL, due_at asc, created_at asc, id asc").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, fmt.Errorf("find next pending task: %w", err)
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

func (r *TaskRepository) DeleteCancelled(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ?", constants.StatusCancelled).
		Delete(&model.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete cancelled tasks: %w", res.Error)
	}
	return res.RowsAffected, nil
}
