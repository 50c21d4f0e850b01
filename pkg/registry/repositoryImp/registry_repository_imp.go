package repositoryImp

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campo/database"
	"campo/entities"
	"campo/pkg/registry/repository"
)

type registryRepo struct {
	db *gorm.DB
	n  *database.Notifier
}

func New(db *gorm.DB, n *database.Notifier) repository.RegistryRepository {
	return &registryRepo{db: db, n: n}
}

func (r *registryRepo) Insert(reg *entities.TaskRegistry) error {
	err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(reg).Error
	if err != nil {
		return err
	}
	r.n.Publish(database.TopicRegistries)
	return nil
}

func (r *registryRepo) InsertWithTask(reg *entities.TaskRegistry, t *entities.Task) error {
	if t.Status == "" {
		t.Status = entities.StatusPending
	}
	if t.SyncStatus == "" {
		t.SyncStatus = entities.SyncLocal
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(reg).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
	if err != nil {
		return err
	}
	r.n.Publish(database.TopicRegistries)
	r.n.Publish(database.TopicTasks)
	return nil
}

func (r *registryRepo) All() ([]entities.TaskRegistry, error) {
	var out []entities.TaskRegistry
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *registryRepo) Watch(ctx context.Context) <-chan []entities.TaskRegistry {
	out := make(chan []entities.TaskRegistry, 1)
	sig, cancel := r.n.Subscribe(database.TopicRegistries)
	go func() {
		defer cancel()
		defer close(out)
		for {
			if regs, err := r.All(); err == nil {
				select {
				case out <- regs:
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
