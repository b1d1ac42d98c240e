package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Template columns in the order operators expect them. Headers use the
// English spellings; the importer accepts the Arabic variants as well.
var templateColumns = []string{
	"Full Name", "Arabic Name", "Email", "Phone", "Reference Code",
	"Position", "Nationality", "Religion", "Date of Birth", "Marital Status",
	"Number of Children", "Age", "Passport Number", "Passport Issue Date",
	"Passport Expiry Date", "Passport Issue Place", "English Level",
	"Arabic Level", "Education Level", "Baby Sitting", "Children Care",
	"Cleaning", "Washing", "Ironing", "Arabic Cooking", "Driving",
	"Elder Care", "Housekeeping", "Experience", "Monthly Salary",
	"Contract Period", "Notes", "Photo", "Video Link",
}

// DownloadImportTemplate streams a blank import workbook with the expected
// header row and one example row.
func DownloadImportTemplate(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range templateColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
			return
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
			return
		}
	}

	example := []string{
		"Maria Santos", "ماريا سانتوس", "maria@example.com", "+63 912 345 6789", "QSO-1001",
		"Housemaid", "Philippines", "", "1995-04-12", "Single",
		"0", "30", "P1234567A", "2022-01-15", "2032-01-14", "Manila",
		"Good", "No", "High School", "Yes", "Yes",
		"Yes", "Yes", "Yes", "Willing", "No",
		"Willing", "Yes", "2 years in UAE", "1500", "2 years",
		"", "https://example.com/photo.jpg", "https://youtu.be/dQw4w9WgXcQ",
	}
	for i, v := range example {
		if v == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="candidate_import_template.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
