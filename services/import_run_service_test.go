package services

import (
	"regexp"
	"testing"

	"recruitment-agency-api/models"
)

func TestImportRunStartAndFinish(t *testing.T) {
	steps := []*sqlStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `import_runs`"),
			result:  scriptResult{lastInsertID: 42, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `import_runs`"),
			result:  scriptResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := &ImportRunService{db: db}

	run, err := svc.Start("candidates.xlsx", 7)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if run.ID != 42 {
		t.Fatalf("run id: got %d, want 42", run.ID)
	}
	if run.Status != models.ImportRunStatusRunning {
		t.Fatalf("status: got %s, want running", run.Status)
	}

	result := &models.ImportResult{}
	result.TotalRows = 3
	result.NewRecords = 2
	result.UpdatedRecords = 1

	if err := svc.MarkSuccess(run.ID, result, 1.5); err != nil {
		t.Fatalf("mark success: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestImportRunFinishUnknownRun(t *testing.T) {
	steps := []*sqlStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `import_runs`"),
			result:  scriptResult{rowsAffected: 0},
		},
	}

	db, _, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := &ImportRunService{db: db}
	if err := svc.MarkFailure(999, nil, nil, 0); err != ErrImportRunNotFound {
		t.Fatalf("got %v, want ErrImportRunNotFound", err)
	}
}
