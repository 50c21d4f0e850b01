package entities

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

type SyncStatus string

const (
	SyncLocal   SyncStatus = "LOCAL"
	SyncSyncing SyncStatus = "SYNCING"
	SyncSynced  SyncStatus = "SYNCED"
	SyncError   SyncStatus = "SYNC_ERROR"
)

type Task struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `json:"name"`
	Area          string     `json:"area"`
	ScheduledTime string     `json:"scheduled_time"` // HH:mm
	EndTime       string     `json:"end_time"`       // HH:mm, empty = not set
	Observations  string     `json:"observations"`
	Status        TaskStatus `json:"status"`
	SyncStatus    SyncStatus `json:"sync_status"`
	CreatedAt     int64      `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt     int64      `gorm:"autoUpdateTime:milli" json:"updated_at"`
}
