package serviceImp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campo/database"
	"campo/entities"
	"campo/pkg/mirror"
	regRepoImp "campo/pkg/registry/repositoryImp"
	"campo/pkg/registry/service"
	taskrepo "campo/pkg/task/repository"
	taskRepoImp "campo/pkg/task/repositoryImp"
)

func newTestService(t *testing.T, m mirror.Client) (service.RegistryService, taskrepo.TaskRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "campo.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.TaskRegistry{}, &entities.Task{}))
	n := database.NewNotifier()
	tasks := taskRepoImp.New(db, n)
	return New(regRepoImp.New(db, n), tasks, m), tasks, db
}

func validRegistry() *entities.TaskRegistry {
	return &entities.TaskRegistry{Type: "Plantio", Area: "Talhão 1", StartTime: "08:00", EndTime: "10:00"}
}

func TestValidateOrderAndCompleteness(t *testing.T) {
	msgs := Validate(&entities.TaskRegistry{})
	require.NotEmpty(t, msgs)
	assert.Equal(t, "Informe o tipo de atividade", msgs[0])
	assert.Equal(t, "Informe o talhão", msgs[1])
	// every violated rule present, not just the first
	assert.Contains(t, msgs, "Hora de início incompleta")
	assert.Contains(t, msgs, "Hora de término deve ser após a hora de início")
}

func TestValidateUnmaskedTimes(t *testing.T) {
	reg := validRegistry()
	reg.StartTime = "1000"
	reg.EndTime = "0900"
	msgs := Validate(reg)
	assert.Contains(t, msgs, "Hora de início inválida")
	assert.Contains(t, msgs, "Hora de término inválida")
	assert.Contains(t, msgs, "Hora de término deve ser após a hora de início")
}

func TestValidateEndNotAfterStart(t *testing.T) {
	reg := validRegistry()
	reg.StartTime = "10:00"
	reg.EndTime = "10:00"
	msgs := Validate(reg)
	assert.Equal(t, []string{"Hora de término deve ser após a hora de início"}, msgs)
}

func TestValidateAcceptsGoodInput(t *testing.T) {
	assert.Empty(t, Validate(validRegistry()))
}

func TestDeriveMapsFields(t *testing.T) {
	task := Derive(validRegistry())
	assert.Equal(t, "Plantio", task.Name)
	assert.Equal(t, "Talhão 1", task.Area)
	assert.Equal(t, "08:00", task.ScheduledTime)
	assert.Equal(t, "10:00", task.EndTime)
	assert.Equal(t, entities.StatusPending, task.Status)
}

func TestRegisterPersistsRegistryAndDerivedTask(t *testing.T) {
	m := mirror.NewMock()
	s, tasks, _ := newTestService(t, m)

	task, msgs, err := s.Register(context.Background(), validRegistry())
	require.NoError(t, err)
	assert.Empty(t, msgs)
	require.NotNil(t, task)
	assert.NotZero(t, task.ID)

	regs, err := s.All()
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Plantio", regs[0].Type)
	assert.Equal(t, "Talhão 1", regs[0].Area)
	assert.False(t, regs[0].IsModified)
	assert.False(t, regs[0].IsDeleted)

	all, err := tasks.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Plantio", all[0].Name)
	assert.Equal(t, "08:00", all[0].ScheduledTime)
	assert.Equal(t, entities.StatusPending, all[0].Status)
	assert.Equal(t, entities.SyncSynced, all[0].SyncStatus)

	hist, err := m.History(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, entities.ActionRegistered, hist[0].Action)
	assert.Equal(t, "Plantio", hist[0].TaskName)
}

func TestRegisterRejectsAndWritesNothing(t *testing.T) {
	m := mirror.NewMock()
	s, tasks, _ := newTestService(t, m)

	reg := validRegistry()
	reg.StartTime = "1000"
	reg.EndTime = "0900"
	task, msgs, err := s.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.Contains(t, msgs, "Hora de término deve ser após a hora de início")

	regs, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, regs)
	all, err := tasks.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRegisterSurvivesMirrorFailure(t *testing.T) {
	m := mirror.NewFailingMock(errors.New("remote down"))
	s, tasks, _ := newTestService(t, m)

	task, msgs, err := s.Register(context.Background(), validRegistry())
	require.NoError(t, err, "mirror failure must not fail the call")
	assert.Empty(t, msgs)
	require.NotNil(t, task)
	assert.Equal(t, entities.SyncError, task.SyncStatus)

	// local writes stand
	all, err := tasks.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entities.SyncError, all[0].SyncStatus)
}
