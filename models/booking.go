package models

import "time"

// Booking reserves a CV for a client. The cv_id column is unique so a
// record can only be booked once at a time.
type Booking struct {
	BookingID      uint       `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	CVID           uint       `gorm:"column:cv_id;unique" json:"cv_id"`
	IdentityNumber string     `gorm:"column:identity_number" json:"identity_number"`
	Notes          *string    `gorm:"column:notes" json:"notes,omitempty"`
	BookedByID     uint       `gorm:"column:booked_by_id" json:"booked_by_id"`
	BookedAt       time.Time  `gorm:"column:booked_at;autoCreateTime" json:"booked_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`

	CV       CV   `gorm:"foreignKey:CVID" json:"cv,omitempty"`
	BookedBy User `gorm:"foreignKey:BookedByID" json:"booked_by,omitempty"`
}

func (Booking) TableName() string { return "bookings" }
