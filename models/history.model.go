package models

import (
	"time"

	"gorm.io/datatypes"
)

// DisplayTimeFormat renders the human-readable timestamp shown alongside a
// history record ("26 Aug 2026, 04:15 PM"). Ordering always uses CreatedAt,
// never this string.
const DisplayTimeFormat = "02 Jan 2006, 03:04 PM"

// HistoryRecord is one persisted prediction event owned by a user (by
// username). Records are append-only: never updated after creation, removed
// only by the owner's bulk clear or the retention scheduler.
type HistoryRecord struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	RecordID    string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"record_id"`
	Username    string         `gorm:"not null;index:idx_history_user_created,priority:1" json:"username"`
	Timestamp   string         `gorm:"not null" json:"timestamp"`
	Inputs      datatypes.JSON `json:"inputs"`
	Result      string         `gorm:"not null" json:"result"`
	ResultType  string         `gorm:"not null" json:"result_type"`
	Probability float64        `gorm:"not null" json:"probability"`
	CreatedAt   time.Time      `gorm:"index:idx_history_user_created,priority:2,sort:desc" json:"created_at"`
}
