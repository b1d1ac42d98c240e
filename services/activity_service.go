package services

import (
	"log"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"

	"gorm.io/gorm"
)

// ActivityService writes the audit trail and operator notifications.
// Recording failures are logged, never propagated: losing an audit line must
// not fail the operation it describes.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	if db == nil {
		db = config.DB
	}
	return &ActivityService{db: db}
}

func (s *ActivityService) Record(entry *models.ActivityLog) {
	if entry == nil || s.db == nil {
		return
	}
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("activity log: record %s: %v", entry.Action, err)
	}
}

// RecordImportCommit logs one committed import row.
func (s *ActivityService) RecordImportCommit(actorID, cvID, runID uint, action, candidateName, matchReason string) {
	entry := &models.ActivityLog{
		UserID:      actorID,
		CVID:        &cvID,
		Action:      action,
		Description: "Smart import committed candidate " + candidateName,
		ImportRunID: &runID,
		TargetName:  candidateName,
	}
	if matchReason != "" {
		entry.MatchReason = &matchReason
	}
	s.Record(entry)
}

func (s *ActivityService) Notify(userID uint, title, message, kind string, cvID *uint) {
	if s.db == nil {
		return
	}
	n := &models.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        kind,
		RelatedCVID: cvID,
	}
	if err := s.db.Create(n).Error; err != nil {
		log.Printf("notification: create: %v", err)
	}
}
