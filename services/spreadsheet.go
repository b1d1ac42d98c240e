package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"recruitment-agency-api/models"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoDataRows        = errors.New("spreadsheet has no data rows")
)

// canonicalFields is every column name the normalizer understands.
var canonicalFields = []string{
	"full_name", "full_name_arabic", "email", "phone", "reference_code",
	"position", "nationality", "religion", "date_of_birth", "place_of_birth",
	"living_town", "marital_status", "number_of_children", "weight", "height",
	"complexion", "age", "monthly_salary", "contract_period", "contract_type",
	"expected_salary", "working_hours", "passport_number", "passport_issue_date",
	"passport_expiry_date", "passport_issue_place", "english_level",
	"arabic_level", "education_level", "baby_sitting", "children_care",
	"tutoring", "disabled_care", "cleaning", "washing", "ironing",
	"arabic_cooking", "sewing", "driving", "elder_care", "housekeeping",
	"experience", "education", "skills", "summary", "priority", "notes",
	"previous_employment", "work_experience_years", "last_employer",
	"reason_for_leaving", "languages", "medical_condition", "hobbies",
	"personality_traits", "food_preferences", "special_needs",
	"current_location", "availability", "preferred_country", "visa_status",
	"work_permit", "certificates", "references", "emergency_contact",
	"profile_image", "video_link",
}

// headerAliases maps the column spellings agencies actually use, Arabic and
// English, onto canonical field names. Canonical names themselves (with
// spaces or underscores, any case) are always accepted.
var headerAliases = map[string]string{
	"name":              "full_name",
	"الاسم":             "full_name",
	"الاسم الكامل":      "full_name",
	"arabic name":       "full_name_arabic",
	"name in arabic":    "full_name_arabic",
	"الاسم بالعربية":    "full_name_arabic",
	"الاسم العربي":      "full_name_arabic",
	"e-mail":            "email",
	"البريد الإلكتروني": "email",
	"mobile":            "phone",
	"phone number":      "phone",
	"الهاتف":            "phone",
	"رقم الهاتف":        "phone",
	"الجوال":            "phone",
	"code":              "reference_code",
	"ref":               "reference_code",
	"الرقم المرجعي":     "reference_code",
	"الكود":             "reference_code",
	"job":               "position",
	"الوظيفة":           "position",
	"المهنة":            "position",
	"الجنسية":           "nationality",
	"الديانة":           "religion",
	"passport":          "passport_number",
	"passport no":       "passport_number",
	"passport no.":      "passport_number",
	"رقم الجواز":        "passport_number",
	"رقم جواز السفر":    "passport_number",
	"birth date":        "date_of_birth",
	"dob":               "date_of_birth",
	"تاريخ الميلاد":     "date_of_birth",
	"الحالة الاجتماعية": "marital_status",
	"children":          "number_of_children",
	"عدد الأطفال":       "number_of_children",
	"العمر":             "age",
	"السن":              "age",
	"salary":            "monthly_salary",
	"الراتب":            "monthly_salary",
	"الراتب الشهري":     "monthly_salary",
	"english":           "english_level",
	"اللغة الإنجليزية":  "english_level",
	"arabic":            "arabic_level",
	"اللغة العربية":     "arabic_level",
	"photo":             "profile_image",
	"image":             "profile_image",
	"picture":           "profile_image",
	"image url":         "profile_image",
	"الصورة":            "profile_image",
	"الصورة الشخصية":    "profile_image",
	"صورة":              "profile_image",
	"video":             "video_link",
	"video url":         "video_link",
	"youtube":           "video_link",
	"فيديو":             "video_link",
	"الفيديو":           "video_link",
	"رابط الفيديو":      "video_link",
	"رابط فيديو":        "video_link",
}

var canonicalSet = func() map[string]bool {
	m := make(map[string]bool, len(canonicalFields))
	for _, f := range canonicalFields {
		m[f] = true
	}
	return m
}()

// ParseSpreadsheet converts uploaded file bytes into import rows keyed by
// canonical field name. Row numbers are the spreadsheet's visible ones
// (header is row 1). An unreadable file is the only hard failure the import
// flow has; it aborts the whole request.
func ParseSpreadsheet(filename string, data []byte) ([]models.ImportRow, error) {
	var grid [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		grid, err = readExcelRows(data)
	case ".csv":
		grid, err = readCSVRows(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}
	if len(grid) < 2 {
		return nil, ErrNoDataRows
	}

	columns := mapHeaders(grid[0])
	if len(columns) == 0 {
		return nil, errors.New("no recognizable column headers in first row")
	}

	rows := make([]models.ImportRow, 0, len(grid)-1)
	for i := 1; i < len(grid); i++ {
		cells := make(map[string]string)
		empty := true
		for field, col := range columns {
			if col < len(grid[i]) {
				v := strings.TrimSpace(grid[i][col])
				cells[field] = v
				if v != "" {
					empty = false
				}
			}
		}
		if empty {
			continue
		}
		rows = append(rows, models.ImportRow{RowNumber: i + 1, Cells: cells})
	}
	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}
	return rows, nil
}

func readExcelRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readCSVRows(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// mapHeaders resolves each header cell to a canonical field name. Unknown
// headers are ignored rather than rejected; the matcher decides later
// whether enough identifying columns survived.
func mapHeaders(header []string) map[string]int {
	columns := make(map[string]int)
	for idx, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if canonical, ok := headerAliases[key]; ok {
			columns[canonical] = idx
			continue
		}
		underscored := strings.ReplaceAll(key, " ", "_")
		if canonicalSet[underscored] {
			columns[underscored] = idx
		}
	}
	return columns
}
