package repository

import "github.com/taskify/taskify-api/internal/domain/entity"

// TaskRepository defines the persistence contract for tasks.
// FindByID returns (nil, nil) when no task matches. List methods return
// tasks newest first.
type TaskRepository interface {
	Create(t *entity.Task) error
	FindByID(id string) (*entity.Task, error)
	FindByUserID(userID string) ([]*entity.Task, error)
	FindByUserIDAndStatus(userID string, status entity.TaskStatus) ([]*entity.Task, error)
	Update(t *entity.Task) error
	Delete(id string) (bool, error)
	Exists(id string) (bool, error)
	BelongsToUser(taskID, userID string) (bool, error)
}
