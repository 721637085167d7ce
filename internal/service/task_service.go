package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/tick/internal/domain"
	"github.com/vedran77/tick/internal/repository"
	"github.com/vedran77/tick/pkg/validator"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNoFields     = errors.New("no valid fields to update")
)

// TaskService performs CRUD over the task store. Every operation is scoped
// to the owner id supplied by the caller; it is never read from input.
type TaskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
}

type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
}

func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID uuid.UUID, taskID int64) (*domain.Task, error) {
	task, err := s.taskRepo.GetByOwnerAndID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	if err := validator.ValidateTaskFields(&input.Title, input.Description, input.DueDate, input.Priority); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		Title:     strings.TrimSpace(input.Title),
		Completed: input.Completed != nil && *input.Completed,
		Priority:  domain.PriorityMedium,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.Description != nil {
		if desc := strings.TrimSpace(*input.Description); desc != "" {
			task.Description = &desc
		}
	}
	if input.Priority != nil && *input.Priority != "" {
		task.Priority = domain.Priority(*input.Priority)
	}
	if input.DueDate != nil && *input.DueDate != "" {
		due, err := domain.ParseDate(*input.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parsing due date: %w", err)
		}
		task.DueDate = &due
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return task, nil
}

// Update applies only the fields present in input. The ownership check
// runs before field validation, so a foreign or missing task is always
// reported as not found regardless of payload.
func (s *TaskService) Update(ctx context.Context, ownerID uuid.UUID, taskID int64, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.taskRepo.GetByOwnerAndID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if input.Title == nil && input.Description == nil && input.Completed == nil &&
		input.DueDate == nil && input.Priority == nil {
		return nil, ErrNoFields
	}

	if err := validator.ValidateTaskFields(input.Title, input.Description, input.DueDate, input.Priority); err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		if desc := strings.TrimSpace(*input.Description); desc != "" {
			task.Description = &desc
		} else {
			task.Description = nil
		}
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := domain.ParseDate(*input.DueDate)
			if err != nil {
				return nil, fmt.Errorf("parsing due date: %w", err)
			}
			task.DueDate = &due
		}
	}
	if input.Priority != nil && *input.Priority != "" {
		task.Priority = domain.Priority(*input.Priority)
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID uuid.UUID, taskID int64) error {
	deleted, err := s.taskRepo.DeleteByOwnerAndID(ctx, ownerID, taskID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
