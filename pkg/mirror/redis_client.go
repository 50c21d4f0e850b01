// pkg/mirror/redis_client.go

package mirror

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"campo/entities"
)

// Key layout:
//
//	task:<id>              task document (JSON)
//	task:<id>:hseq         atomic history counter
//	task:<id>:history:<n>  history entry n (JSON)
//	registry:<id>          registry document (JSON)
//
// The history sub-identifier comes from INCR on the counter key, so two
// concurrent appends can never claim the same slot.
type redisMirror struct {
	rdb *redis.Client
}

func NewRedis(addr, password string, db int) Client {
	return &redisMirror{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func taskKey(id uint) string { return fmt.Sprintf("task:%d", id) }
func seqKey(id uint) string  { return fmt.Sprintf("task:%d:hseq", id) }

func historyKey(id uint, n int64) string {
	return fmt.Sprintf("task:%d:history:%d", id, n)
}

func (m *redisMirror) Upload(ctx context.Context, t *entities.Task, action string) error {
	now := time.Now()
	raw, err := encodeTask(t, now.UnixMilli())
	if err != nil {
		return err
	}
	if err := m.rdb.Set(ctx, taskKey(t.ID), raw, 0).Err(); err != nil {
		log.Printf("[mirror] upload task %d: %v", t.ID, err)
		return err
	}
	return m.appendHistory(ctx, t, action, now)
}

func (m *redisMirror) Update(ctx context.Context, t *entities.Task) error {
	return m.Upload(ctx, t, entities.ActionUpdated)
}

func (m *redisMirror) Delete(ctx context.Context, t *entities.Task) error {
	// History only. The document outlives the local row until the retention
	// purge collects it.
	return m.appendHistory(ctx, t, entities.ActionDeleted, time.Now())
}

func (m *redisMirror) appendHistory(ctx context.Context, t *entities.Task, action string, at time.Time) error {
	raw, err := encodeHistory(entities.HistoryEntry{
		Action:        action,
		Timestamp:     at.UnixMilli(),
		FormattedTime: at.Format("15:04:05"),
		TaskName:      t.Name,
		Area:          t.Area,
		ScheduledTime: t.ScheduledTime,
		EndTime:       t.EndTime,
		Status:        t.Status,
	})
	if err != nil {
		return err
	}
	seq, err := m.rdb.Incr(ctx, seqKey(t.ID)).Result()
	if err != nil {
		log.Printf("[mirror] history seq for task %d: %v", t.ID, err)
		return err
	}
	if err := m.rdb.Set(ctx, historyKey(t.ID, seq), raw, 0).Err(); err != nil {
		log.Printf("[mirror] append history %d/%d: %v", t.ID, seq, err)
		return err
	}
	return nil
}

func (m *redisMirror) UploadRegistry(ctx context.Context, reg *entities.TaskRegistry) error {
	raw, err := encodeRegistry(reg)
	if err != nil {
		return err
	}
	if err := m.rdb.Set(ctx, fmt.Sprintf("registry:%d", reg.ID), raw, 0).Err(); err != nil {
		log.Printf("[mirror] upload registry %d: %v", reg.ID, err)
		return err
	}
	return nil
}

func (m *redisMirror) History(ctx context.Context, taskID uint) ([]entities.HistoryEntry, error) {
	keys, err := m.scan(ctx, fmt.Sprintf("task:%d:history:*", taskID))
	if err != nil {
		log.Printf("[mirror] history scan for task %d: %v", taskID, err)
		return nil, err
	}
	type seqEntry struct {
		seq int64
		h   entities.HistoryEntry
	}
	entries := make([]seqEntry, 0, len(keys))
	for _, k := range keys {
		raw, err := m.rdb.Get(ctx, k).Bytes()
		if err != nil {
			continue
		}
		h, err := decodeHistory(raw)
		if err != nil {
			continue
		}
		seq, _ := strconv.ParseInt(k[strings.LastIndexByte(k, ':')+1:], 10, 64)
		entries = append(entries, seqEntry{seq: seq, h: h})
	}
	// seq reflects append order exactly, so it breaks same-millisecond ties
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })
	out := make([]entities.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.h)
	}
	return out, nil
}

func (m *redisMirror) NextTaskID(ctx context.Context) uint {
	keys, err := m.scan(ctx, "task:*")
	if err != nil {
		return 1
	}
	var max uint64
	for _, k := range keys {
		rest := strings.TrimPrefix(k, "task:")
		if strings.Contains(rest, ":") {
			continue // counter or history key
		}
		id, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			continue
		}
		if id > max {
			max = id
		}
	}
	return uint(max) + 1
}

func (m *redisMirror) PurgeDeleted(ctx context.Context, retention time.Duration) (int, error) {
	keys, err := m.scan(ctx, "task:*")
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-retention).UnixMilli()
	purged := 0
	for _, k := range keys {
		rest := strings.TrimPrefix(k, "task:")
		if strings.Contains(rest, ":") {
			continue
		}
		id, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			continue
		}
		hist, err := m.History(ctx, uint(id))
		if err != nil || len(hist) == 0 {
			continue
		}
		if hist[0].Action != entities.ActionDeleted || hist[0].Timestamp > cutoff {
			continue
		}
		hkeys, err := m.scan(ctx, fmt.Sprintf("task:%d:history:*", id))
		if err != nil {
			continue
		}
		del := append(hkeys, taskKey(uint(id)), seqKey(uint(id)))
		if err := m.rdb.Del(ctx, del...).Err(); err != nil {
			log.Printf("[mirror] purge task %d: %v", id, err)
			continue
		}
		purged++
	}
	return purged, nil
}

func (m *redisMirror) Ping(ctx context.Context) error {
	return m.rdb.Ping(ctx).Err()
}

func (m *redisMirror) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := m.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}
