package entities

// Actions recorded in a task's remote history log.
const (
	ActionRegistered = "registrado"
	ActionUpdated    = "alterado"
	ActionDeleted    = "excluido"
)

// HistoryEntry is an append-only audit record kept in the remote mirror.
// It snapshots the task fields at the moment of the action.
type HistoryEntry struct {
	Action        string     `json:"action"`
	Timestamp     int64      `json:"timestamp"`
	FormattedTime string     `json:"formattedTime"` // HH:mm:ss local time at append
	TaskName      string     `json:"taskName"`
	Area          string     `json:"area"`
	ScheduledTime string     `json:"scheduledTime"`
	EndTime       string     `json:"endTime"`
	Status        TaskStatus `json:"status"`
}
