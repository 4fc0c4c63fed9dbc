package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskify/taskify-api/internal/domain/entity"
	"github.com/taskify/taskify-api/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(t *entity.Task) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (id, title, description, status, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, t.ID, t.Title, t.Description, string(t.Status), t.UserID)

	return row.Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) FindByID(id string) (*entity.Task, error) {
	ctx := context.Background()
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return t, nil
}

func (r *TaskRepository) FindByUserID(userID string) ([]*entity.Task, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepository) FindByUserIDAndStatus(userID string, status entity.TaskStatus) ([]*entity.Task, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, userID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepository) Update(t *entity.Task) error {
	ctx := context.Background()
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5
	`, t.Title, t.Description, string(t.Status), t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *TaskRepository) Delete(id string) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *TaskRepository) Exists(id string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func (r *TaskRepository) BelongsToUser(taskID, userID string) (bool, error) {
	ctx := context.Background()
	var belongs bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1 AND user_id = $2)
	`, taskID, userID).Scan(&belongs)
	return belongs, err
}

func scanTasks(rows pgx.Rows) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := &entity.Task{}
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
