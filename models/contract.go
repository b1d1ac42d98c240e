package models

import "time"

const (
	ContractStatusActive     = "ACTIVE"
	ContractStatusTerminated = "TERMINATED"
)

// Contract records a hire. One per CV; creating a contract consumes the
// booking and moves the CV to HIRED.
type Contract struct {
	ContractID     uint       `gorm:"primaryKey;column:contract_id" json:"contract_id"`
	CVID           uint       `gorm:"column:cv_id;unique" json:"cv_id"`
	IdentityNumber string     `gorm:"column:identity_number" json:"identity_number"`
	ContractDate   *time.Time `gorm:"column:contract_date" json:"contract_date,omitempty"`
	Salary         *string    `gorm:"column:salary" json:"salary,omitempty"`
	Notes          *string    `gorm:"column:notes" json:"notes,omitempty"`
	Status         string     `gorm:"column:status;type:enum('ACTIVE','TERMINATED');default:'ACTIVE'" json:"status"`
	CreatedByID    uint       `gorm:"column:created_by_id" json:"created_by_id"`
	CreateAt       time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
	TerminatedAt   *time.Time `gorm:"column:terminated_at" json:"terminated_at,omitempty"`

	CV        CV   `gorm:"foreignKey:CVID" json:"cv,omitempty"`
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Contract) TableName() string { return "contracts" }
