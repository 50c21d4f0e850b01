package entities

// TaskRegistry is one submitted activity log entry ("Plantio", "Pulverização", ...).
// Inserting one derives a Task with the same fields and status PENDING.
type TaskRegistry struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Type         string `json:"type"`
	Area         string `json:"area"`
	StartTime    string `json:"start_time"` // HH:mm
	EndTime      string `json:"end_time"`   // HH:mm, must be after StartTime
	Observations string `json:"observations"`
	IsModified   bool   `json:"is_modified"`
	IsDeleted    bool   `json:"is_deleted"`
}
