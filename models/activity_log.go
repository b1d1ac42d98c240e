package models

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionCVCreated          = "CV_CREATED"
	ActionCVUpdated          = "CV_UPDATED"
	ActionCVDeleted          = "CV_DELETED"
	ActionCVStatusChanged    = "CV_STATUS_CHANGED"
	ActionCVBooked           = "CV_BOOKED"
	ActionBookingReleased    = "BOOKING_RELEASED"
	ActionContractCreated    = "CONTRACT_CREATED"
	ActionContractTerminated = "CONTRACT_TERMINATED"
	ActionImportExecuted     = "IMPORT_EXECUTED"
)

// ActivityLog is one audit trail entry. Instead of an untyped JSON blob the
// per-action context lives in dedicated nullable columns; Notes is the only
// free-form field.
type ActivityLog struct {
	LogID       uint      `gorm:"primaryKey;column:log_id" json:"log_id"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	CVID        *uint     `gorm:"column:cv_id" json:"cv_id,omitempty"`
	Action      string    `gorm:"column:action;type:varchar(40)" json:"action"`
	Description string    `gorm:"column:description" json:"description"`

	// Typed metadata, populated per action.
	IdentityNumber *string `gorm:"column:identity_number" json:"identity_number,omitempty"` // bookings/contracts
	OldStatus      *string `gorm:"column:old_status" json:"old_status,omitempty"`           // status changes
	NewStatus      *string `gorm:"column:new_status" json:"new_status,omitempty"`
	ImportRunID    *uint   `gorm:"column:import_run_id" json:"import_run_id,omitempty"` // import commits
	MatchReason    *string `gorm:"column:match_reason" json:"match_reason,omitempty"`
	Notes          *string `gorm:"column:notes" json:"notes,omitempty"`

	TargetName string    `gorm:"column:target_name" json:"target_name"`
	CreateAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
