// pkg/mirror/mock_client.go

package mirror

import (
	"context"
	"sync"
	"time"

	"campo/entities"
)

// mockClient is an in-memory mirror for tests and for running without a
// reachable remote.
type mockClient struct {
	mu         sync.Mutex
	tasks      map[uint]*entities.Task
	registries map[uint]*entities.TaskRegistry
	history    map[uint][]entities.HistoryEntry
	fail       bool
	failErr    error
}

func NewMock() Client { return &mockClient{} }

// NewFailingMock returns a mirror whose every operation fails with err, for
// exercising the best-effort paths.
func NewFailingMock(err error) Client { return &mockClient{fail: true, failErr: err} }

func (m *mockClient) Upload(ctx context.Context, t *entities.Task, action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return m.failErr
	}
	if m.tasks == nil {
		m.tasks = map[uint]*entities.Task{}
	}
	cp := *t
	m.tasks[t.ID] = &cp
	m.append(t, action)
	return nil
}

func (m *mockClient) Update(ctx context.Context, t *entities.Task) error {
	return m.Upload(ctx, t, entities.ActionUpdated)
}

func (m *mockClient) Delete(ctx context.Context, t *entities.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return m.failErr
	}
	m.append(t, entities.ActionDeleted)
	return nil
}

func (m *mockClient) append(t *entities.Task, action string) {
	if m.history == nil {
		m.history = map[uint][]entities.HistoryEntry{}
	}
	now := time.Now()
	m.history[t.ID] = append(m.history[t.ID], entities.HistoryEntry{
		Action:        action,
		Timestamp:     now.UnixMilli(),
		FormattedTime: now.Format("15:04:05"),
		TaskName:      t.Name,
		Area:          t.Area,
		ScheduledTime: t.ScheduledTime,
		EndTime:       t.EndTime,
		Status:        t.Status,
	})
}

func (m *mockClient) UploadRegistry(ctx context.Context, reg *entities.TaskRegistry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return m.failErr
	}
	if m.registries == nil {
		m.registries = map[uint]*entities.TaskRegistry{}
	}
	cp := *reg
	m.registries[reg.ID] = &cp
	return nil
}

func (m *mockClient) History(ctx context.Context, taskID uint) ([]entities.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, m.failErr
	}
	hist := m.history[taskID]
	out := make([]entities.HistoryEntry, 0, len(hist))
	for i := len(hist) - 1; i >= 0; i-- {
		out = append(out, hist[i])
	}
	return out, nil
}

func (m *mockClient) NextTaskID(ctx context.Context) uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 1
	}
	var max uint
	for id := range m.tasks {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (m *mockClient) PurgeDeleted(ctx context.Context, retention time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, m.failErr
	}
	cutoff := time.Now().Add(-retention).UnixMilli()
	purged := 0
	for id, hist := range m.history {
		if len(hist) == 0 {
			continue
		}
		last := hist[len(hist)-1]
		if last.Action == entities.ActionDeleted && last.Timestamp <= cutoff {
			delete(m.tasks, id)
			delete(m.history, id)
			purged++
		}
	}
	return purged, nil
}

func (m *mockClient) Ping(ctx context.Context) error {
	if m.fail {
		return m.failErr
	}
	return nil
}
