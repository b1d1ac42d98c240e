package services

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", ref, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseSpreadsheetXLSX(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"Full Name", "Passport No.", "الجنسية", "Photo"},
		{"Maria Santos", "P1234567", "Filipino", "https://example.com/maria.jpg"},
		{"", "", "", ""},
		{"Amina Yusuf", "K7654321", "Kenyan", ""},
	})

	rows, err := ParseSpreadsheet("candidates.xlsx", data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}

	first := rows[0]
	if first.RowNumber != 2 {
		t.Fatalf("first row number: got %d, want 2", first.RowNumber)
	}
	if first.Cells["full_name"] != "Maria Santos" {
		t.Fatalf("full_name: got %q", first.Cells["full_name"])
	}
	if first.Cells["passport_number"] != "P1234567" {
		t.Fatalf("passport alias: got %q", first.Cells["passport_number"])
	}
	if first.Cells["nationality"] != "Filipino" {
		t.Fatalf("arabic header alias: got %q", first.Cells["nationality"])
	}
	if first.Cells["profile_image"] != "https://example.com/maria.jpg" {
		t.Fatalf("photo alias: got %q", first.Cells["profile_image"])
	}

	// The blank visual row 3 is dropped but numbering stays visual.
	if rows[1].RowNumber != 4 {
		t.Fatalf("second row number: got %d, want 4", rows[1].RowNumber)
	}
}

func TestParseSpreadsheetCSV(t *testing.T) {
	csvData := []byte("name,E-Mail,mobile\nGrace Mwangi,grace@example.com,+254 700 111222\n")

	rows, err := ParseSpreadsheet("upload.CSV", csvData)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	cells := rows[0].Cells
	if cells["full_name"] != "Grace Mwangi" || cells["email"] != "grace@example.com" || cells["phone"] != "+254 700 111222" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestParseSpreadsheetRaggedCSV(t *testing.T) {
	csvData := []byte("full_name,email,phone\nMaria Santos,maria@example.com\n")

	rows, err := ParseSpreadsheet("upload.csv", csvData)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := rows[0].Cells["full_name"]; got != "Maria Santos" {
		t.Fatalf("full_name: got %q", got)
	}
	if _, ok := rows[0].Cells["phone"]; ok {
		t.Fatal("short row should not map a phone cell")
	}
}

func TestParseSpreadsheetUnsupportedExtension(t *testing.T) {
	_, err := ParseSpreadsheet("resume.pdf", []byte("%PDF-1.4"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseSpreadsheetHeaderOnly(t *testing.T) {
	_, err := ParseSpreadsheet("upload.csv", []byte("full_name,email\n"))
	if !errors.Is(err, ErrNoDataRows) {
		t.Fatalf("got %v, want ErrNoDataRows", err)
	}
}

func TestParseSpreadsheetUnknownHeadersIgnored(t *testing.T) {
	csvData := []byte("full_name,internal notes column\nMaria Santos,keep out\n")

	rows, err := ParseSpreadsheet("upload.csv", csvData)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := rows[0].Cells["internal notes column"]; ok {
		t.Fatal("unknown header leaked into cells")
	}
	if rows[0].Cells["full_name"] != "Maria Santos" {
		t.Fatalf("full_name: got %q", rows[0].Cells["full_name"])
	}
}

func TestParseSpreadsheetNoRecognizableHeaders(t *testing.T) {
	_, err := ParseSpreadsheet("upload.csv", []byte("colA,colB\n1,2\n"))
	if err == nil {
		t.Fatal("expected an error for unrecognizable headers")
	}
}
