package services

import (
	"errors"
	"time"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"

	"gorm.io/gorm"
)

var ErrImportRunNotFound = errors.New("import run not found")

// ImportRunService records execute-phase runs for the operator history view.
type ImportRunService struct {
	db *gorm.DB
}

func NewImportRunService(db *gorm.DB) *ImportRunService {
	if db == nil {
		db = config.DB
	}
	return &ImportRunService{db: db}
}

func (s *ImportRunService) Start(fileName string, actorID uint) (*models.ImportRun, error) {
	run := &models.ImportRun{
		FileName:      fileName,
		TriggeredByID: actorID,
		Status:        models.ImportRunStatusRunning,
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (s *ImportRunService) MarkSuccess(runID uint, result *models.ImportResult, duration float64) error {
	return s.finish(runID, models.ImportRunStatusSuccess, result, nil, duration)
}

func (s *ImportRunService) MarkFailure(runID uint, result *models.ImportResult, err error, duration float64) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return s.finish(runID, models.ImportRunStatusFailed, result, &msg, duration)
}

func (s *ImportRunService) finish(runID uint, status string, result *models.ImportResult, errMsg *string, duration float64) error {
	updates := map[string]interface{}{
		"status":           status,
		"finished_at":      time.Now(),
		"duration_seconds": duration,
	}
	if result != nil {
		updates["total_rows"] = result.TotalRows
		updates["created_count"] = result.NewRecords
		updates["updated_count"] = result.UpdatedRecords
		updates["skipped_count"] = result.SkippedRecords
		updates["error_count"] = result.ErrorRecords
		updates["failed_commits"] = len(result.ExecutionErrors)
	}
	if errMsg != nil {
		msg := *errMsg
		if len(msg) > 2000 {
			msg = msg[:1997] + "..."
		}
		updates["error_message"] = msg
	}
	res := s.db.Model(&models.ImportRun{}).Where("id = ?", runID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrImportRunNotFound
	}
	return nil
}

func (s *ImportRunService) GetByID(runID uint) (*models.ImportRun, error) {
	var run models.ImportRun
	if err := s.db.Preload("TriggeredBy").First(&run, runID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImportRunNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (s *ImportRunService) List(limit int) ([]models.ImportRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var runs []models.ImportRun
	if err := s.db.Preload("TriggeredBy").Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
