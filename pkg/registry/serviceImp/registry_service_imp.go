package serviceImp

import (
	"context"
	"log"

	"campo/entities"
	"campo/pkg/mirror"
	repo "campo/pkg/registry/repository"
	"campo/pkg/registry/service"
	taskrepo "campo/pkg/task/repository"
	"campo/pkg/timecheck"
)

type registrySvc struct {
	r     repo.RegistryRepository
	tasks taskrepo.TaskRepository
	m     mirror.Client
}

func New(r repo.RegistryRepository, tasks taskrepo.TaskRepository, m mirror.Client) service.RegistryService {
	return &registrySvc{r: r, tasks: tasks, m: m}
}

// Validate collects every violated rule, in a fixed order, so the caller can
// render the complete list at once.
func Validate(reg *entities.TaskRegistry) []string {
	var msgs []string
	if reg.Type == "" {
		msgs = append(msgs, "Informe o tipo de atividade")
	}
	if reg.Area == "" {
		msgs = append(msgs, "Informe o talhão")
	}
	if len(reg.StartTime) < 4 || len(reg.StartTime) > 5 {
		msgs = append(msgs, "Hora de início incompleta")
	}
	if len(reg.EndTime) < 4 || len(reg.EndTime) > 5 {
		msgs = append(msgs, "Hora de término incompleta")
	}
	if !timecheck.IsValidTimeFormat(reg.StartTime) {
		msgs = append(msgs, "Hora de início inválida")
	}
	if !timecheck.IsValidTimeFormat(reg.EndTime) {
		msgs = append(msgs, "Hora de término inválida")
	}
	if !timecheck.IsValidTimeRange(reg.StartTime) {
		msgs = append(msgs, "Hora de início fora do intervalo permitido")
	}
	if !timecheck.IsValidTimeRange(reg.EndTime) {
		msgs = append(msgs, "Hora de término fora do intervalo permitido")
	}
	if !timecheck.IsEndTimeAfterStartTime(reg.StartTime, reg.EndTime) {
		msgs = append(msgs, "Hora de término deve ser após a hora de início")
	}
	return msgs
}

// Derive builds the task a registry gives rise to: type becomes the name,
// times carry over, status starts PENDING.
func Derive(reg *entities.TaskRegistry) entities.Task {
	return entities.Task{
		Name:          reg.Type,
		Area:          reg.Area,
		ScheduledTime: reg.StartTime,
		EndTime:       reg.EndTime,
		Observations:  reg.Observations,
		Status:        entities.StatusPending,
		SyncStatus:    entities.SyncLocal,
	}
}

func (s *registrySvc) Register(ctx context.Context, reg *entities.TaskRegistry) (*entities.Task, []string, error) {
	if msgs := Validate(reg); len(msgs) > 0 {
		return nil, msgs, nil
	}

	t := Derive(reg)
	if err := s.r.InsertWithTask(reg, &t); err != nil {
		return nil, nil, err
	}

	// Local state is authoritative from here on; the mirror is best-effort
	// and a failure must not roll anything back.
	s.markSync(t.ID, entities.SyncSyncing)
	status := entities.SyncSynced
	if err := s.m.Upload(ctx, &t, entities.ActionRegistered); err != nil {
		log.Printf("[sync] mirror task %d: %v", t.ID, err)
		status = entities.SyncError
	}
	if err := s.m.UploadRegistry(ctx, reg); err != nil {
		log.Printf("[sync] mirror registry %d: %v", reg.ID, err)
	}
	s.markSync(t.ID, status)
	t.SyncStatus = status
	return &t, nil, nil
}

func (s *registrySvc) markSync(id uint, st entities.SyncStatus) {
	if err := s.tasks.SetSyncStatus(id, st); err != nil {
		log.Printf("[sync] set sync status %s on task %d: %v", st, id, err)
	}
}

func (s *registrySvc) All() ([]entities.TaskRegistry, error) { return s.r.All() }

func (s *registrySvc) Watch(ctx context.Context) <-chan []entities.TaskRegistry {
	return s.r.Watch(ctx)
}
