package mirror

import (
	"encoding/json"
	"strconv"

	"campo/entities"
)

// Wire documents. Field names follow the remote collections; decoding fills
// defaults for fields older documents may miss.

type taskDoc struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Area          string `json:"area"`
	ScheduledTime string `json:"scheduledTime"`
	EndTime       string `json:"endTime"`
	Observations  string `json:"observations"`
	Status        string `json:"status"`
	RemoteID      string `json:"remoteId"`
	SyncStatus    string `json:"syncStatus"`
	LastSyncedAt  int64  `json:"lastSyncedAt"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type registryDoc struct {
	ID           uint   `json:"id"`
	Type         string `json:"type"`
	Area         string `json:"area"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Observations string `json:"observations"`
	IsModified   bool   `json:"isModified"`
	IsDeleted    bool   `json:"isDeleted"`
}

type historyDoc struct {
	Action        string `json:"action"`
	Timestamp     int64  `json:"timestamp"`
	FormattedTime string `json:"formattedTime"`
	TaskName      string `json:"taskName"`
	Area          string `json:"area"`
	ScheduledTime string `json:"scheduledTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}

func encodeTask(t *entities.Task, syncedAt int64) ([]byte, error) {
	return json.Marshal(taskDoc{
		ID:            t.ID,
		Name:          t.Name,
		Area:          t.Area,
		ScheduledTime: t.ScheduledTime,
		EndTime:       t.EndTime,
		Observations:  t.Observations,
		Status:        string(t.Status),
		RemoteID:      strconv.FormatUint(uint64(t.ID), 10),
		SyncStatus:    string(entities.SyncSynced),
		LastSyncedAt:  syncedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	})
}

func decodeTask(raw []byte) (*entities.Task, error) {
	var d taskDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	t := &entities.Task{
		ID:            d.ID,
		Name:          d.Name,
		Area:          d.Area,
		ScheduledTime: d.ScheduledTime,
		EndTime:       d.EndTime,
		Observations:  d.Observations,
		Status:        entities.TaskStatus(d.Status),
		SyncStatus:    entities.SyncStatus(d.SyncStatus),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if t.Status == "" {
		t.Status = entities.StatusPending
	}
	if t.SyncStatus == "" {
		t.SyncStatus = entities.SyncLocal
	}
	return t, nil
}

func encodeRegistry(reg *entities.TaskRegistry) ([]byte, error) {
	return json.Marshal(registryDoc{
		ID:           reg.ID,
		Type:         reg.Type,
		Area:         reg.Area,
		StartTime:    reg.StartTime,
		EndTime:      reg.EndTime,
		Observations: reg.Observations,
		IsModified:   reg.IsModified,
		IsDeleted:    reg.IsDeleted,
	})
}

func encodeHistory(h entities.HistoryEntry) ([]byte, error) {
	return json.Marshal(historyDoc{
		Action:        h.Action,
		Timestamp:     h.Timestamp,
		FormattedTime: h.FormattedTime,
		TaskName:      h.TaskName,
		Area:          h.Area,
		ScheduledTime: h.ScheduledTime,
		EndTime:       h.EndTime,
		Status:        string(h.Status),
	})
}

func decodeHistory(raw []byte) (entities.HistoryEntry, error) {
	var d historyDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return entities.HistoryEntry{}, err
	}
	h := entities.HistoryEntry{
		Action:        d.Action,
		Timestamp:     d.Timestamp,
		FormattedTime: d.FormattedTime,
		TaskName:      d.TaskName,
		Area:          d.Area,
		ScheduledTime: d.ScheduledTime,
		EndTime:       d.EndTime,
		Status:        entities.TaskStatus(d.Status),
	}
	if h.Status == "" {
		h.Status = entities.StatusPending
	}
	return h, nil
}
