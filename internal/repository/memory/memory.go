// Package memory provides in-memory implementations of the repository
// interfaces, used as a stand-in for postgres in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/tick/internal/domain"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

type TaskRepo struct {
	mu     sync.RWMutex
	tasks  map[int64]domain.Task
	nextID int64
}

func NewTaskRepo() *TaskRepo {
	return &TaskRepo{tasks: make(map[int64]domain.Task)}
}

func (r *TaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepo) GetByOwnerAndID(_ context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tasks[id]; ok && t.OwnerID == ownerID {
		return &t, nil
	}
	return nil, nil
}

func (r *TaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var tasks []domain.Task
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
	return tasks, nil
}

func (r *TaskRepo) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[task.ID]; ok && t.OwnerID == task.OwnerID {
		r.tasks[task.ID] = *task
	}
	return nil
}

func (r *TaskRepo) DeleteByOwnerAndID(_ context.Context, ownerID uuid.UUID, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok && t.OwnerID == ownerID {
		delete(r.tasks, id)
		return true, nil
	}
	return false, nil
}
