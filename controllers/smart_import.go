package controllers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"
	"recruitment-agency-api/services"
	"recruitment-agency-api/utils"

	"github.com/gin-gonic/gin"
)

const maxImportFileSize = 20 * 1024 * 1024

var allowedImportExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// AnalyzeImport runs the dry-run phase of the smart import: classify every
// row, mutate nothing, return the report for operator review. Safe to call
// repeatedly on the same file.
func AnalyzeImport(c *gin.Context) {
	fileName, data, ok := readImportUpload(c)
	if !ok {
		return
	}

	rows, ok := parseImportRows(c, fileName, data)
	if !ok {
		return
	}

	report, err := services.NewSmartImportService(config.DB).Analyze(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze import file"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExecuteImport re-parses and re-classifies the file, then commits row by
// row. The uploaded file is also kept on disk alongside the recorded run.
func ExecuteImport(c *gin.Context) {
	fileName, data, ok := readImportUpload(c)
	if !ok {
		return
	}

	rows, ok := parseImportRows(c, fileName, data)
	if !ok {
		return
	}

	uploadDir := filepath.Join("uploads", "import_runs")
	if err := os.MkdirAll(uploadDir, 0755); err == nil {
		safeName := utils.GenerateUniqueFilename(uploadDir, fileName)
		if err := os.WriteFile(filepath.Join(uploadDir, safeName), data, 0644); err == nil {
			fileName = safeName
		}
	}

	actorID := currentUserID(c)
	result, err := services.NewSmartImportService(config.DB).Execute(c.Request.Context(), rows, fileName, actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute import"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetImportRuns lists recent execute runs for the history view.
func GetImportRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	runs, err := services.NewImportRunService(config.DB).List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": runs, "count": len(runs)})
}

func readImportUpload(c *gin.Context) (string, []byte, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Import file is required"})
		return "", nil, false
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImportExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type; use .xlsx or .csv"})
		return "", nil, false
	}
	if header.Size > maxImportFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 20MB limit"})
		return "", nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return "", nil, false
	}
	return header.Filename, data, true
}

// parseImportRows is the only hard failure of the import flow: a file that
// cannot be parsed aborts the request with no partial report.
func parseImportRows(c *gin.Context, fileName string, data []byte) ([]models.ImportRow, bool) {
	rows, err := services.ParseSpreadsheet(fileName, data)
	if err != nil {
		status := http.StatusBadRequest
		msg := "Could not read any rows from the file"
		switch {
		case errors.Is(err, services.ErrUnsupportedFormat):
			msg = "Unsupported spreadsheet format"
		case errors.Is(err, services.ErrNoDataRows):
			msg = "The file has no data rows to import"
		}
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return nil, false
	}
	return rows, true
}
