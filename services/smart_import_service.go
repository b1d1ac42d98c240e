package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"

	"gorm.io/gorm"
)

// SmartImportService is the two-phase reconciliation engine behind the smart
// import workflow. Analyze classifies rows without touching anything;
// Execute re-derives the same classification and commits it row by row.
//
// Classification is never cached between the phases: the operator may have
// edited records while reviewing the analyze report, so execute always works
// from a fresh snapshot.
type SmartImportService struct {
	repo     CandidateRepository
	assets   *AssetResolver
	runs     *ImportRunService
	activity *ActivityService
}

func NewSmartImportService(db *gorm.DB) *SmartImportService {
	if db == nil {
		db = config.DB
	}
	return &SmartImportService{
		repo:     NewCandidateRepository(db),
		assets:   NewAssetResolver(),
		runs:     NewImportRunService(db),
		activity: NewActivityService(db),
	}
}

// Analyze classifies every row against the current records. Read-only and
// idempotent; no asset fetching, no writes.
func (s *SmartImportService) Analyze(ctx context.Context, rows []models.ImportRow) (*models.ImportReport, error) {
	existing, err := s.repo.ExistingCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing candidates: %w", err)
	}
	idx := NewCandidateIndex(existing)

	report := &models.ImportReport{}
	for _, row := range rows {
		fields := NormalizeRow(row.Cells)
		report.Add(Classify(fields, idx, row.RowNumber))
	}
	report.Summarize()
	return report, nil
}

// Execute re-classifies the rows and commits NEW/UPDATE outcomes in
// spreadsheet order. One row's commit failure is recorded and the batch
// continues; only a completely unreadable snapshot aborts the run. Rows are
// deliberately written outside any batch transaction so partial success
// stays representable.
//
// Two rows updating the same existing record both apply; last writer in
// file order wins.
func (s *SmartImportService) Execute(ctx context.Context, rows []models.ImportRow, fileName string, actorID uint) (*models.ImportResult, error) {
	run, err := s.runs.Start(fileName, actorID)
	if err != nil {
		return nil, fmt.Errorf("record import run: %w", err)
	}
	started := time.Now()

	result, execErr := s.executeRows(ctx, rows, run.ID, actorID)

	duration := time.Since(started).Seconds()
	if execErr != nil {
		if markErr := s.runs.MarkFailure(run.ID, result, execErr, duration); markErr != nil {
			log.Printf("smart import: mark run %d failed: %v", run.ID, markErr)
		}
		return nil, execErr
	}
	if markErr := s.runs.MarkSuccess(run.ID, result, duration); markErr != nil {
		log.Printf("smart import: mark run %d succeeded: %v", run.ID, markErr)
	}
	s.activity.Record(&models.ActivityLog{
		UserID:      actorID,
		Action:      models.ActionImportExecuted,
		Description: result.Summary,
		ImportRunID: &run.ID,
		TargetName:  fileName,
	})
	s.activity.Notify(actorID, "Import completed", fileName+": "+result.Summary, "info", nil)
	return result, nil
}

func (s *SmartImportService) executeRows(ctx context.Context, rows []models.ImportRow, runID, actorID uint) (*models.ImportResult, error) {
	existing, err := s.repo.ExistingCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing candidates: %w", err)
	}
	idx := NewCandidateIndex(existing)

	byID := make(map[uint]*models.CV, len(existing))
	for i := range existing {
		byID[existing[i].ID] = &existing[i]
	}

	result := &models.ImportResult{}
	for _, row := range rows {
		fields := NormalizeRow(row.Cells)
		outcome := Classify(fields, idx, row.RowNumber)

		switch outcome.Kind {
		case models.OutcomeNew:
			if err := s.commitNew(ctx, &outcome, runID, actorID); err != nil {
				result.TotalRows++
				result.ExecutionErrors = append(result.ExecutionErrors, models.ExecutionError{
					RowNumber: row.RowNumber,
					Message:   fmt.Sprintf("create failed: %v", err),
				})
				continue
			}
			result.Add(outcome)

		case models.OutcomeUpdate:
			target := byID[outcome.ExistingID]
			if err := s.commitUpdate(ctx, &outcome, target, runID, actorID); err != nil {
				result.TotalRows++
				result.ExecutionErrors = append(result.ExecutionErrors, models.ExecutionError{
					RowNumber: row.RowNumber,
					Message:   fmt.Sprintf("update failed: %v", err),
				})
				continue
			}
			result.Add(outcome)

		default:
			// SKIP and ERROR rows are never written.
			result.Add(outcome)
		}
	}
	result.Summarize()
	return result, nil
}

func (s *SmartImportService) commitNew(ctx context.Context, outcome *models.RowOutcome, runID, actorID uint) error {
	s.resolveMedia(&outcome.Fields)

	cv := &models.CV{Status: models.CVStatusNew, CreatedByID: &actorID, UpdatedByID: &actorID}
	outcome.Fields.ApplyTo(cv)

	if err := s.repo.CreateCandidate(ctx, cv); err != nil {
		return err
	}
	outcome.ExistingID = cv.ID
	s.activity.RecordImportCommit(actorID, cv.ID, runID, models.ActionCVCreated, cv.FullName, "")
	return nil
}

func (s *SmartImportService) commitUpdate(ctx context.Context, outcome *models.RowOutcome, target *models.CV, runID, actorID uint) error {
	if target == nil {
		return fmt.Errorf("matched record #%d no longer exists", outcome.ExistingID)
	}
	s.resolveMedia(&outcome.Fields)

	updated := *target
	outcome.Fields.ApplyTo(&updated)
	updated.UpdatedByID = &actorID

	if err := s.repo.UpdateCandidate(ctx, &updated); err != nil {
		return err
	}
	*target = updated
	s.activity.RecordImportCommit(actorID, updated.ID, runID, models.ActionCVUpdated, updated.FullName, outcome.MatchReason)
	return nil
}

// resolveMedia materializes raw media references. A failed resolution clears
// the field so the row still commits without it.
func (s *SmartImportService) resolveMedia(fields *models.CandidateFields) {
	if fields.ProfileImage != nil {
		fields.ProfileImage = s.assets.ResolveImage(*fields.ProfileImage)
	}
	if fields.VideoLink != nil {
		fields.VideoLink = s.assets.ResolveVideo(*fields.VideoLink)
	}
}
