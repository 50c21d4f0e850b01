package serviceImp

import (
	"context"
	"log"

	"campo/entities"
	"campo/pkg/mirror"
	repo "campo/pkg/task/repository"
	"campo/pkg/task/service"
)

type taskSvc struct {
	r repo.TaskRepository
	m mirror.Client
}

func New(r repo.TaskRepository, m mirror.Client) service.TaskService {
	return &taskSvc{r: r, m: m}
}

func (s *taskSvc) All() ([]entities.Task, error)       { return s.r.All() }
func (s *taskSvc) Get(id uint) (*entities.Task, error) { return s.r.Get(id) }
func (s *taskSvc) DeleteLocal(id uint) error           { return s.r.Delete(id) }

func (s *taskSvc) Update(ctx context.Context, t *entities.Task) error {
	t.SyncStatus = entities.SyncSyncing
	if err := s.r.Update(t); err != nil {
		return err
	}
	status := entities.SyncSynced
	if err := s.m.Update(ctx, t); err != nil {
		log.Printf("[sync] mirror update task %d: %v", t.ID, err)
		status = entities.SyncError
	}
	if err := s.r.SetSyncStatus(t.ID, status); err != nil {
		log.Printf("[sync] set sync status %s on task %d: %v", status, t.ID, err)
	}
	t.SyncStatus = status
	return nil
}

func (s *taskSvc) Delete(ctx context.Context, t *entities.Task) {
	if err := s.m.Delete(ctx, t); err != nil {
		log.Printf("[sync] mirror delete task %d: %v", t.ID, err)
	}
}

func (s *taskSvc) History(ctx context.Context, id uint) ([]entities.HistoryEntry, error) {
	hist, err := s.m.History(ctx, id)
	if err != nil {
		// Remote reads degrade to absence, never to a hard failure.
		log.Printf("[sync] history for task %d: %v", id, err)
		return nil, nil
	}
	return hist, nil
}

func (s *taskSvc) Watch(ctx context.Context) <-chan []entities.Task {
	return s.r.Watch(ctx)
}
