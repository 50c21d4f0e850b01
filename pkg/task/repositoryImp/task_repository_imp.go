package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campo/database"
	"campo/entities"
	"campo/pkg/task/repository"
)

type taskRepo struct {
	db *gorm.DB
	n  *database.Notifier
}

func New(db *gorm.DB, n *database.Notifier) repository.TaskRepository {
	return &taskRepo{db: db, n: n}
}

func (r *taskRepo) Insert(t *entities.Task) (uint, error) {
	if t.Status == "" {
		t.Status = entities.StatusPending
	}
	if t.SyncStatus == "" {
		t.SyncStatus = entities.SyncLocal
	}
	if err := r.db.Create(t).Error; err != nil {
		return 0, err
	}
	r.n.Publish(database.TopicTasks)
	return t.ID, nil
}

func (r *taskRepo) Update(t *entities.Task) error {
	err := r.db.Model(&entities.Task{}).Where("id = ?", t.ID).Updates(map[string]any{
		"name":           t.Name,
		"area":           t.Area,
		"scheduled_time": t.ScheduledTime,
		"end_time":       t.EndTime,
		"observations":   t.Observations,
		"status":         t.Status,
		"sync_status":    t.SyncStatus,
	}).Error
	if err != nil {
		return err
	}
	r.n.Publish(database.TopicTasks)
	return nil
}

func (r *taskRepo) Delete(id uint) error {
	if err := r.db.Delete(&entities.Task{}, id).Error; err != nil {
		return err
	}
	r.n.Publish(database.TopicTasks)
	return nil
}

func (r *taskRepo) Get(id uint) (*entities.Task, error) {
	var out entities.Task
	if err := r.db.First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *taskRepo) All() ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) SetSyncStatus(id uint, s entities.SyncStatus) error {
	err := r.db.Model(&entities.Task{}).Where("id = ?", id).Update("sync_status", s).Error
	if err != nil {
		return err
	}
	r.n.Publish(database.TopicTasks)
	return nil
}

func (r *taskRepo) Watch(ctx context.Context) <-chan []entities.Task {
	out := make(chan []entities.Task, 1)
	sig, cancel := r.n.Subscribe(database.TopicTasks)
	go func() {
		defer cancel()
		defer close(out)
		for {
			if ts, err := r.All(); err == nil {
				select {
				case out <- ts:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-sig:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
