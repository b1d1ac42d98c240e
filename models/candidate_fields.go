package models

// CandidateFields is the normalized output of one spreadsheet row. A nil
// pointer means the cell was absent or unparseable; absent fields never
// overwrite existing values on update.
type CandidateFields struct {
	FullName         string  `json:"full_name"`
	FullNameArabic   *string `json:"full_name_arabic,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	ReferenceCode    *string `json:"reference_code,omitempty"`
	Position         *string `json:"position,omitempty"`
	Nationality      *string `json:"nationality,omitempty"`
	Religion         *string `json:"religion,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	PlaceOfBirth     *string `json:"place_of_birth,omitempty"`
	LivingTown       *string `json:"living_town,omitempty"`
	MaritalStatus    *string `json:"marital_status,omitempty"`
	NumberOfChildren *int    `json:"number_of_children,omitempty"`
	Weight           *string `json:"weight,omitempty"`
	Height           *string `json:"height,omitempty"`
	Complexion       *string `json:"complexion,omitempty"`
	Age              *int    `json:"age,omitempty"`

	MonthlySalary  *string `json:"monthly_salary,omitempty"`
	ContractPeriod *string `json:"contract_period,omitempty"`
	ContractType   *string `json:"contract_type,omitempty"`
	ExpectedSalary *string `json:"expected_salary,omitempty"`
	WorkingHours   *string `json:"working_hours,omitempty"`

	PassportNumber     *string `json:"passport_number,omitempty"`
	PassportIssueDate  *string `json:"passport_issue_date,omitempty"`
	PassportExpiryDate *string `json:"passport_expiry_date,omitempty"`
	PassportIssuePlace *string `json:"passport_issue_place,omitempty"`

	EnglishLevel   *string `json:"english_level,omitempty"`
	ArabicLevel    *string `json:"arabic_level,omitempty"`
	EducationLevel *string `json:"education_level,omitempty"`

	BabySitting   *string `json:"baby_sitting,omitempty"`
	ChildrenCare  *string `json:"children_care,omitempty"`
	Tutoring      *string `json:"tutoring,omitempty"`
	DisabledCare  *string `json:"disabled_care,omitempty"`
	Cleaning      *string `json:"cleaning,omitempty"`
	Washing       *string `json:"washing,omitempty"`
	Ironing       *string `json:"ironing,omitempty"`
	ArabicCooking *string `json:"arabic_cooking,omitempty"`
	Sewing        *string `json:"sewing,omitempty"`
	Driving       *string `json:"driving,omitempty"`
	ElderCare     *string `json:"elder_care,omitempty"`
	Housekeeping  *string `json:"housekeeping,omitempty"`

	Experience          *string `json:"experience,omitempty"`
	Education           *string `json:"education,omitempty"`
	Skills              *string `json:"skills,omitempty"`
	Summary             *string `json:"summary,omitempty"`
	Priority            *string `json:"priority,omitempty"`
	Notes               *string `json:"notes,omitempty"`
	PreviousEmployment  *string `json:"previous_employment,omitempty"`
	WorkExperienceYears *int    `json:"work_experience_years,omitempty"`
	LastEmployer        *string `json:"last_employer,omitempty"`
	ReasonForLeaving    *string `json:"reason_for_leaving,omitempty"`
	Languages           *string `json:"languages,omitempty"`
	MedicalCondition    *string `json:"medical_condition,omitempty"`
	Hobbies             *string `json:"hobbies,omitempty"`
	PersonalityTraits   *string `json:"personality_traits,omitempty"`
	FoodPreferences     *string `json:"food_preferences,omitempty"`
	SpecialNeeds        *string `json:"special_needs,omitempty"`
	CurrentLocation     *string `json:"current_location,omitempty"`
	Availability        *string `json:"availability,omitempty"`
	PreferredCountry    *string `json:"preferred_country,omitempty"`
	VisaStatus          *string `json:"visa_status,omitempty"`
	WorkPermit          *string `json:"work_permit,omitempty"`
	Certificates        *string `json:"certificates,omitempty"`
	References          *string `json:"references,omitempty"`
	EmergencyContact    *string `json:"emergency_contact,omitempty"`

	// Raw media references. Resolved to stored references during the execute
	// phase only; analyze passes them through untouched.
	ProfileImage *string `json:"profile_image,omitempty"`
	VideoLink    *string `json:"video_link,omitempty"`
}

type stringField struct {
	src *string
	dst **string
}

type intField struct {
	src *int
	dst **int
}

// stringFields pairs every normalized text field with its CV column, media
// fields excluded (stored values are resolved references, not raw cells).
func (f *CandidateFields) stringFields(cv *CV) []stringField {
	return []stringField{
		{f.FullNameArabic, &cv.FullNameArabic},
		{f.Email, &cv.Email},
		{f.Phone, &cv.Phone},
		{f.ReferenceCode, &cv.ReferenceCode},
		{f.Position, &cv.Position},
		{f.Nationality, &cv.Nationality},
		{f.Religion, &cv.Religion},
		{f.DateOfBirth, &cv.DateOfBirth},
		{f.PlaceOfBirth, &cv.PlaceOfBirth},
		{f.LivingTown, &cv.LivingTown},
		{f.MaritalStatus, &cv.MaritalStatus},
		{f.Weight, &cv.Weight},
		{f.Height, &cv.Height},
		{f.Complexion, &cv.Complexion},
		{f.MonthlySalary, &cv.MonthlySalary},
		{f.ContractPeriod, &cv.ContractPeriod},
		{f.ContractType, &cv.ContractType},
		{f.ExpectedSalary, &cv.ExpectedSalary},
		{f.WorkingHours, &cv.WorkingHours},
		{f.PassportNumber, &cv.PassportNumber},
		{f.PassportIssueDate, &cv.PassportIssueDate},
		{f.PassportExpiryDate, &cv.PassportExpiryDate},
		{f.PassportIssuePlace, &cv.PassportIssuePlace},
		{f.EnglishLevel, &cv.EnglishLevel},
		{f.ArabicLevel, &cv.ArabicLevel},
		{f.EducationLevel, &cv.EducationLevel},
		{f.BabySitting, &cv.BabySitting},
		{f.ChildrenCare, &cv.ChildrenCare},
		{f.Tutoring, &cv.Tutoring},
		{f.DisabledCare, &cv.DisabledCare},
		{f.Cleaning, &cv.Cleaning},
		{f.Washing, &cv.Washing},
		{f.Ironing, &cv.Ironing},
		{f.ArabicCooking, &cv.ArabicCooking},
		{f.Sewing, &cv.Sewing},
		{f.Driving, &cv.Driving},
		{f.ElderCare, &cv.ElderCare},
		{f.Housekeeping, &cv.Housekeeping},
		{f.Experience, &cv.Experience},
		{f.Education, &cv.Education},
		{f.Skills, &cv.Skills},
		{f.Summary, &cv.Summary},
		{f.Priority, &cv.Priority},
		{f.Notes, &cv.Notes},
		{f.PreviousEmployment, &cv.PreviousEmployment},
		{f.LastEmployer, &cv.LastEmployer},
		{f.ReasonForLeaving, &cv.ReasonForLeaving},
		{f.Languages, &cv.Languages},
		{f.MedicalCondition, &cv.MedicalCondition},
		{f.Hobbies, &cv.Hobbies},
		{f.PersonalityTraits, &cv.PersonalityTraits},
		{f.FoodPreferences, &cv.FoodPreferences},
		{f.SpecialNeeds, &cv.SpecialNeeds},
		{f.CurrentLocation, &cv.CurrentLocation},
		{f.Availability, &cv.Availability},
		{f.PreferredCountry, &cv.PreferredCountry},
		{f.VisaStatus, &cv.VisaStatus},
		{f.WorkPermit, &cv.WorkPermit},
		{f.Certificates, &cv.Certificates},
		{f.References, &cv.References},
		{f.EmergencyContact, &cv.EmergencyContact},
	}
}

func (f *CandidateFields) intFields(cv *CV) []intField {
	return []intField{
		{f.NumberOfChildren, &cv.NumberOfChildren},
		{f.Age, &cv.Age},
		{f.WorkExperienceYears, &cv.WorkExperienceYears},
	}
}

// ApplyTo copies every present field onto the record. Absent fields leave
// the existing value alone. Media references are applied as-is; the caller
// is expected to have resolved them first.
func (f *CandidateFields) ApplyTo(cv *CV) {
	if f.FullName != "" {
		cv.FullName = f.FullName
	}
	for _, p := range f.stringFields(cv) {
		if p.src != nil {
			v := *p.src
			*p.dst = &v
		}
	}
	for _, p := range f.intFields(cv) {
		if p.src != nil {
			v := *p.src
			*p.dst = &v
		}
	}
	if f.ProfileImage != nil {
		v := *f.ProfileImage
		cv.ProfileImage = &v
	}
	if f.VideoLink != nil {
		v := *f.VideoLink
		cv.VideoLink = &v
	}
}

// ChangedFrom reports whether applying these fields would modify the record.
// Media values are not compared directly: the stored value is a resolved
// local reference and never equals the raw spreadsheet cell, so comparing
// them would re-import every photo on every run. A media cell does count as
// a change when the record has no stored reference at all, so a row that
// only adds a photo or video is not skipped.
func (f *CandidateFields) ChangedFrom(cv *CV) bool {
	if f.ProfileImage != nil && cv.ProfileImage == nil {
		return true
	}
	if f.VideoLink != nil && cv.VideoLink == nil {
		return true
	}
	if f.FullName != "" && f.FullName != cv.FullName {
		return true
	}
	tmp := *cv
	for _, p := range f.stringFields(&tmp) {
		if p.src == nil {
			continue
		}
		if *p.dst == nil || **p.dst != *p.src {
			return true
		}
	}
	for _, p := range f.intFields(&tmp) {
		if p.src == nil {
			continue
		}
		if *p.dst == nil || **p.dst != *p.src {
			return true
		}
	}
	return false
}
