package application

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/taskify/taskify-api/internal/domain/apperror"
	"github.com/taskify/taskify-api/internal/domain/entity"
	repo "github.com/taskify/taskify-api/internal/domain/repository"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 5000
)

const invalidStatusMessage = "Invalid task status. Must be: to do, in progress, or done"

// TaskService implements the task use cases. Every operation takes the
// acting user's id explicitly; a task that does not belong to that user is
// reported as not found so the existence of other users' tasks never leaks.
type TaskService struct {
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
	NewID  func() string
	Now    func() time.Time
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{
		Tasks:  tasks,
		Logger: logger,
		NewID:  uuid.NewString,
		Now:    time.Now,
	}
}

type CreateTaskInput struct {
	Title       string
	UserID      string
	Description string
	Status      string
}

// CreateTask validates and stores a new task. An empty status falls back to
// "to do".
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*entity.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperror.NewValidationError("Task title is required")
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLength {
		return nil, apperror.NewValidationError("Task title must be less than 255 characters")
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		return nil, apperror.NewValidationError("Task description must be less than 5000 characters")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, apperror.NewValidationError("User ID is required")
	}
	if in.Status != "" && !entity.ValidTaskStatus(in.Status) {
		return nil, apperror.NewValidationError(invalidStatusMessage)
	}

	status := entity.TaskStatus(in.Status)
	if in.Status == "" {
		status = entity.StatusTodo
	}

	t := &entity.Task{
		ID:          s.NewID(),
		Title:       in.Title,
		UserID:      in.UserID,
		Status:      status,
		Description: in.Description,
	}
	if err := s.Tasks.Create(t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", in.UserID).Error("create task failed")
		}
		return nil, err
	}
	return t, nil
}

type GetTasksInput struct {
	UserID string
	Status string
}

// GetTasks lists the user's tasks, optionally narrowed to one status.
func (s *TaskService) GetTasks(ctx context.Context, in GetTasksInput) ([]*entity.Task, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, apperror.NewValidationError("User ID is required")
	}
	if in.Status != "" && !entity.ValidTaskStatus(in.Status) {
		return nil, apperror.NewValidationError(invalidStatusMessage)
	}

	if in.Status != "" {
		return s.Tasks.FindByUserIDAndStatus(in.UserID, entity.TaskStatus(in.Status))
	}
	return s.Tasks.FindByUserID(in.UserID)
}

type FilterTasksInput struct {
	UserID string
	Status string
}

// FilterTasksByStatus is the stricter sibling of GetTasks: the status is
// mandatory here.
func (s *TaskService) FilterTasksByStatus(ctx context.Context, in FilterTasksInput) ([]*entity.Task, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, apperror.NewValidationError("User ID is required")
	}
	if strings.TrimSpace(in.Status) == "" {
		return nil, apperror.NewValidationError("Status is required")
	}
	if !entity.ValidTaskStatus(in.Status) {
		return nil, apperror.NewValidationError(invalidStatusMessage)
	}
	return s.Tasks.FindByUserIDAndStatus(in.UserID, entity.TaskStatus(in.Status))
}

type UpdateTaskInput struct {
	ID     string
	UserID string
	// Nil means "not provided". A non-nil empty Description clears the
	// field; title and status fall back to the stored value when absent.
	Title       *string
	Description *string
	Status      *string
}

// UpdateTask applies a partial update after an ownership check. createdAt
// is carried over unchanged; updatedAt always advances even when no
// optional field was provided.
func (s *TaskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*entity.Task, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, apperror.NewValidationError("Task ID is required")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, apperror.NewValidationError("User ID is required")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, apperror.NewValidationError("Task title cannot be empty")
	}
	if in.Title != nil && utf8.RuneCountInString(*in.Title) > maxTitleLength {
		return nil, apperror.NewValidationError("Task title must be less than 255 characters")
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > maxDescriptionLength {
		return nil, apperror.NewValidationError("Task description must be less than 5000 characters")
	}
	if in.Status != nil && *in.Status != "" && !entity.ValidTaskStatus(*in.Status) {
		return nil, apperror.NewValidationError(invalidStatusMessage)
	}

	belongs, err := s.Tasks.BelongsToUser(in.ID, in.UserID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, apperror.NewNotFoundError("Task")
	}

	// The ownership check just passed, but the row may have vanished in
	// between; the fetch is re-checked rather than assumed.
	existing, err := s.Tasks.FindByID(in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Task")
	}

	title := existing.Title
	if in.Title != nil && *in.Title != "" {
		title = *in.Title
	}
	status := existing.Status
	if in.Status != nil && *in.Status != "" {
		status = entity.TaskStatus(*in.Status)
	}
	description := existing.Description
	if in.Description != nil {
		description = *in.Description
	}

	updated := &entity.Task{
		ID:          existing.ID,
		Title:       title,
		UserID:      existing.UserID,
		Status:      status,
		Description: description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.Now(),
	}
	if err := s.Tasks.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

type DeleteTaskInput struct {
	ID     string
	UserID string
}

// DeleteTask removes a task after an ownership check. The boolean reports
// whether a row was actually deleted; false after a passing ownership check
// means the row vanished concurrently.
func (s *TaskService) DeleteTask(ctx context.Context, in DeleteTaskInput) (bool, error) {
	if strings.TrimSpace(in.ID) == "" {
		return false, apperror.NewValidationError("Task ID is required")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return false, apperror.NewValidationError("User ID is required")
	}

	belongs, err := s.Tasks.BelongsToUser(in.ID, in.UserID)
	if err != nil {
		return false, err
	}
	if !belongs {
		return false, apperror.NewNotFoundError("Task")
	}

	return s.Tasks.Delete(in.ID)
}
