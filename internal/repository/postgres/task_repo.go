package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/tick/internal/domain"
)

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

func (r *TaskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, description, completed, due_date, priority, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return r.pool.QueryRow(ctx, query,
		task.Title, task.Description, task.Completed, dueDateArg(task.DueDate),
		task.Priority, task.OwnerID, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
}

func (r *TaskRepo) GetByOwnerAndID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	query := `
		SELECT id, title, description, completed, due_date, priority, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2`

	row := r.pool.QueryRow(ctx, query, id, ownerID)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT id, title, description, completed, due_date, priority, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, due_date = $4, priority = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`

	_, err := r.pool.Exec(ctx, query,
		task.Title, task.Description, task.Completed, dueDateArg(task.DueDate),
		task.Priority, task.UpdatedAt, task.ID, task.OwnerID,
	)
	return err
}

func (r *TaskRepo) DeleteByOwnerAndID(ctx context.Context, ownerID uuid.UUID, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t   domain.Task
		due *time.Time
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &due,
		&t.Priority, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if due != nil {
		t.DueDate = &domain.Date{Time: *due}
	}
	return &t, nil
}

func dueDateArg(d *domain.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
