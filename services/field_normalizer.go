package services

import (
	"strconv"
	"strings"
	"time"

	"recruitment-agency-api/models"
)

// Canonical skill-level values stored on candidate records.
const (
	SkillYes     = "YES"
	SkillNo      = "NO"
	SkillWilling = "WILLING"
)

// skillSynonyms folds the spellings that show up in agency spreadsheets,
// English and Arabic, onto canonical skill levels.
var skillSynonyms = map[string]string{
	"yes":    SkillYes,
	"y":      SkillYes,
	"نعم":    SkillYes,
	"good":   SkillYes,
	"جيد":    SkillYes,
	"جيدة":   SkillYes,
	"no":     SkillNo,
	"n":      SkillNo,
	"لا":     SkillNo,
	"none":   SkillNo,
	"willing":  SkillWilling,
	"مستعد":  SkillWilling,
	"مستعدة": SkillWilling,
}

var maritalSynonyms = map[string]string{
	"single":   "SINGLE",
	"أعزب":     "SINGLE",
	"عزباء":    "SINGLE",
	"married":  "MARRIED",
	"متزوج":    "MARRIED",
	"متزوجة":   "MARRIED",
	"divorced": "DIVORCED",
	"مطلق":     "DIVORCED",
	"مطلقة":    "DIVORCED",
	"widowed":  "WIDOWED",
	"أرمل":     "WIDOWED",
	"أرملة":    "WIDOWED",
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006", "2/1/2006", "02-01-2006", "2006/01/02"}

// NormalizeRow canonicalizes one parsed row into typed candidate fields.
// It is a total function: empty or unparseable cells become absent fields,
// never an error. Unrecognized enum spellings pass through as free text so
// operator intent is preserved.
func NormalizeRow(cells map[string]string) models.CandidateFields {
	f := models.CandidateFields{
		FullName: strings.TrimSpace(cells["full_name"]),
	}

	f.FullNameArabic = optionalCell(cells, "full_name_arabic")
	f.Email = optionalCell(cells, "email")
	f.Phone = optionalCell(cells, "phone")
	f.ReferenceCode = optionalCell(cells, "reference_code")
	f.Position = optionalCell(cells, "position")
	f.Nationality = optionalCell(cells, "nationality")
	f.Religion = optionalCell(cells, "religion")
	f.DateOfBirth = dateCell(cells, "date_of_birth")
	f.PlaceOfBirth = optionalCell(cells, "place_of_birth")
	f.LivingTown = optionalCell(cells, "living_town")
	f.MaritalStatus = enumCell(cells, "marital_status", maritalSynonyms)
	f.NumberOfChildren = intCell(cells, "number_of_children")
	f.Weight = optionalCell(cells, "weight")
	f.Height = optionalCell(cells, "height")
	f.Complexion = optionalCell(cells, "complexion")
	f.Age = intCell(cells, "age")

	f.MonthlySalary = optionalCell(cells, "monthly_salary")
	f.ContractPeriod = optionalCell(cells, "contract_period")
	f.ContractType = optionalCell(cells, "contract_type")
	f.ExpectedSalary = optionalCell(cells, "expected_salary")
	f.WorkingHours = optionalCell(cells, "working_hours")

	f.PassportNumber = optionalCell(cells, "passport_number")
	f.PassportIssueDate = dateCell(cells, "passport_issue_date")
	f.PassportExpiryDate = dateCell(cells, "passport_expiry_date")
	f.PassportIssuePlace = optionalCell(cells, "passport_issue_place")

	f.EnglishLevel = optionalCell(cells, "english_level")
	f.ArabicLevel = optionalCell(cells, "arabic_level")
	f.EducationLevel = optionalCell(cells, "education_level")

	for key, dst := range map[string]**string{
		"baby_sitting":   &f.BabySitting,
		"children_care":  &f.ChildrenCare,
		"tutoring":       &f.Tutoring,
		"disabled_care":  &f.DisabledCare,
		"cleaning":       &f.Cleaning,
		"washing":        &f.Washing,
		"ironing":        &f.Ironing,
		"arabic_cooking": &f.ArabicCooking,
		"sewing":         &f.Sewing,
		"driving":        &f.Driving,
		"elder_care":     &f.ElderCare,
		"housekeeping":   &f.Housekeeping,
	} {
		*dst = enumCell(cells, key, skillSynonyms)
	}

	f.Experience = optionalCell(cells, "experience")
	f.Education = optionalCell(cells, "education")
	f.Skills = optionalCell(cells, "skills")
	f.Summary = optionalCell(cells, "summary")
	f.Priority = optionalCell(cells, "priority")
	f.Notes = optionalCell(cells, "notes")
	f.PreviousEmployment = optionalCell(cells, "previous_employment")
	f.WorkExperienceYears = intCell(cells, "work_experience_years")
	f.LastEmployer = optionalCell(cells, "last_employer")
	f.ReasonForLeaving = optionalCell(cells, "reason_for_leaving")
	f.Languages = optionalCell(cells, "languages")
	f.MedicalCondition = optionalCell(cells, "medical_condition")
	f.Hobbies = optionalCell(cells, "hobbies")
	f.PersonalityTraits = optionalCell(cells, "personality_traits")
	f.FoodPreferences = optionalCell(cells, "food_preferences")
	f.SpecialNeeds = optionalCell(cells, "special_needs")
	f.CurrentLocation = optionalCell(cells, "current_location")
	f.Availability = optionalCell(cells, "availability")
	f.PreferredCountry = optionalCell(cells, "preferred_country")
	f.VisaStatus = optionalCell(cells, "visa_status")
	f.WorkPermit = optionalCell(cells, "work_permit")
	f.Certificates = optionalCell(cells, "certificates")
	f.References = optionalCell(cells, "references")
	f.EmergencyContact = optionalCell(cells, "emergency_contact")

	f.ProfileImage = optionalCell(cells, "profile_image")
	f.VideoLink = optionalCell(cells, "video_link")

	return f
}

func optionalCell(cells map[string]string, key string) *string {
	v := strings.TrimSpace(cells[key])
	if v == "" {
		return nil
	}
	return &v
}

func enumCell(cells map[string]string, key string, synonyms map[string]string) *string {
	v := strings.TrimSpace(cells[key])
	if v == "" {
		return nil
	}
	if canonical, ok := synonyms[strings.ToLower(v)]; ok {
		return &canonical
	}
	// Unknown spelling: keep the operator's text.
	return &v
}

func intCell(cells map[string]string, key string) *int {
	v := strings.TrimSpace(cells[key])
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Excel sometimes stores integers as "3.0".
		fl, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || fl != float64(int(fl)) {
			return nil
		}
		n = int(fl)
	}
	return &n
}

// dateCell parses the layouts seen in agency spreadsheets and reformats to
// ISO. Malformed dates become absent rather than failing the row.
func dateCell(cells map[string]string, key string) *string {
	v := strings.TrimSpace(cells[key])
	if v == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		iso := t.Format("2006-01-02")
		return &iso
	}
	return nil
}
