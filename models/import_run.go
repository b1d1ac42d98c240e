package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ImportRunStatusRunning = "running"
	ImportRunStatusSuccess = "success"
	ImportRunStatusFailed  = "failed"
)

// ImportRun is the persisted record of one execute-phase smart import.
// Analyze runs are not recorded; they are read-only.
type ImportRun struct {
	ID            uint           `json:"run_id" gorm:"primaryKey;autoIncrement"`
	FileName      string         `json:"file_name" gorm:"column:file_name;type:varchar(255)"`
	TriggeredByID uint           `json:"triggered_by_id" gorm:"column:triggered_by_id"`
	Status        string         `json:"status" gorm:"type:enum('running','success','failed');not null;default:'running'"`
	ErrorMessage  *string        `json:"error_message,omitempty" gorm:"type:text"`
	StartedAt     time.Time      `json:"started_at" gorm:"column:started_at;autoCreateTime"`
	FinishedAt    *time.Time     `json:"finished_at,omitempty" gorm:"column:finished_at"`
	Duration      *float64       `json:"duration_seconds,omitempty" gorm:"column:duration_seconds"`
	TotalRows     uint           `json:"total_rows" gorm:"column:total_rows;not null;default:0"`
	CreatedCount  uint           `json:"created_count" gorm:"column:created_count;not null;default:0"`
	UpdatedCount  uint           `json:"updated_count" gorm:"column:updated_count;not null;default:0"`
	SkippedCount  uint           `json:"skipped_count" gorm:"column:skipped_count;not null;default:0"`
	ErrorCount    uint           `json:"error_count" gorm:"column:error_count;not null;default:0"`
	FailedCommits uint           `json:"failed_commits" gorm:"column:failed_commits;not null;default:0"`
	CreatedAt     time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`

	TriggeredBy User `gorm:"foreignKey:TriggeredByID" json:"triggered_by,omitempty"`
}

func (ImportRun) TableName() string { return "import_runs" }
