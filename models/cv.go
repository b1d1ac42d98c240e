package models

import "time"

// CV status values. Status must mirror the record's associations:
// NEW has neither a booking nor a contract, BOOKED has a booking,
// HIRED has a contract, RETURNED is a terminated contract.
const (
	CVStatusNew      = "NEW"
	CVStatusBooked   = "BOOKED"
	CVStatusHired    = "HIRED"
	CVStatusReturned = "RETURNED"
)

// CV represents one candidate record.
type CV struct {
	ID             uint    `gorm:"primaryKey;column:cv_id" json:"id"`
	FullName       string  `gorm:"column:full_name" json:"full_name"`
	FullNameArabic *string `gorm:"column:full_name_arabic" json:"full_name_arabic,omitempty"`
	Email          *string `gorm:"column:email" json:"email,omitempty"`
	Phone          *string `gorm:"column:phone" json:"phone,omitempty"`
	ReferenceCode  *string `gorm:"column:reference_code" json:"reference_code,omitempty"`
	Position       *string `gorm:"column:position" json:"position,omitempty"`
	Nationality    *string `gorm:"column:nationality" json:"nationality,omitempty"`
	Religion       *string `gorm:"column:religion" json:"religion,omitempty"`
	DateOfBirth    *string `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	PlaceOfBirth   *string `gorm:"column:place_of_birth" json:"place_of_birth,omitempty"`
	LivingTown     *string `gorm:"column:living_town" json:"living_town,omitempty"`
	MaritalStatus  *string `gorm:"column:marital_status" json:"marital_status,omitempty"`
	NumberOfChildren *int  `gorm:"column:number_of_children" json:"number_of_children,omitempty"`
	Weight         *string `gorm:"column:weight" json:"weight,omitempty"`
	Height         *string `gorm:"column:height" json:"height,omitempty"`
	Complexion     *string `gorm:"column:complexion" json:"complexion,omitempty"`
	Age            *int    `gorm:"column:age" json:"age,omitempty"`

	MonthlySalary  *string `gorm:"column:monthly_salary" json:"monthly_salary,omitempty"`
	ContractPeriod *string `gorm:"column:contract_period" json:"contract_period,omitempty"`
	ContractType   *string `gorm:"column:contract_type" json:"contract_type,omitempty"`
	ExpectedSalary *string `gorm:"column:expected_salary" json:"expected_salary,omitempty"`
	WorkingHours   *string `gorm:"column:working_hours" json:"working_hours,omitempty"`

	PassportNumber     *string `gorm:"column:passport_number" json:"passport_number,omitempty"`
	PassportIssueDate  *string `gorm:"column:passport_issue_date" json:"passport_issue_date,omitempty"`
	PassportExpiryDate *string `gorm:"column:passport_expiry_date" json:"passport_expiry_date,omitempty"`
	PassportIssuePlace *string `gorm:"column:passport_issue_place" json:"passport_issue_place,omitempty"`

	EnglishLevel   *string `gorm:"column:english_level" json:"english_level,omitempty"`
	ArabicLevel    *string `gorm:"column:arabic_level" json:"arabic_level,omitempty"`
	EducationLevel *string `gorm:"column:education_level" json:"education_level,omitempty"`

	// Household skill levels. Canonical values are YES/NO/WILLING but
	// unrecognized free text imported from spreadsheets is preserved.
	BabySitting  *string `gorm:"column:baby_sitting" json:"baby_sitting,omitempty"`
	ChildrenCare *string `gorm:"column:children_care" json:"children_care,omitempty"`
	Tutoring     *string `gorm:"column:tutoring" json:"tutoring,omitempty"`
	DisabledCare *string `gorm:"column:disabled_care" json:"disabled_care,omitempty"`
	Cleaning     *string `gorm:"column:cleaning" json:"cleaning,omitempty"`
	Washing      *string `gorm:"column:washing" json:"washing,omitempty"`
	Ironing      *string `gorm:"column:ironing" json:"ironing,omitempty"`
	ArabicCooking *string `gorm:"column:arabic_cooking" json:"arabic_cooking,omitempty"`
	Sewing       *string `gorm:"column:sewing" json:"sewing,omitempty"`
	Driving      *string `gorm:"column:driving" json:"driving,omitempty"`
	ElderCare    *string `gorm:"column:elder_care" json:"elder_care,omitempty"`
	Housekeeping *string `gorm:"column:housekeeping" json:"housekeeping,omitempty"`

	Experience          *string `gorm:"column:experience" json:"experience,omitempty"`
	Education           *string `gorm:"column:education" json:"education,omitempty"`
	Skills              *string `gorm:"column:skills" json:"skills,omitempty"`
	Summary             *string `gorm:"column:summary" json:"summary,omitempty"`
	Priority            *string `gorm:"column:priority" json:"priority,omitempty"`
	Notes               *string `gorm:"column:notes" json:"notes,omitempty"`
	PreviousEmployment  *string `gorm:"column:previous_employment" json:"previous_employment,omitempty"`
	WorkExperienceYears *int    `gorm:"column:work_experience_years" json:"work_experience_years,omitempty"`
	LastEmployer        *string `gorm:"column:last_employer" json:"last_employer,omitempty"`
	ReasonForLeaving    *string `gorm:"column:reason_for_leaving" json:"reason_for_leaving,omitempty"`
	Languages           *string `gorm:"column:languages" json:"languages,omitempty"`
	MedicalCondition    *string `gorm:"column:medical_condition" json:"medical_condition,omitempty"`
	Hobbies             *string `gorm:"column:hobbies" json:"hobbies,omitempty"`
	PersonalityTraits   *string `gorm:"column:personality_traits" json:"personality_traits,omitempty"`
	FoodPreferences     *string `gorm:"column:food_preferences" json:"food_preferences,omitempty"`
	SpecialNeeds        *string `gorm:"column:special_needs" json:"special_needs,omitempty"`
	CurrentLocation     *string `gorm:"column:current_location" json:"current_location,omitempty"`
	Availability        *string `gorm:"column:availability" json:"availability,omitempty"`
	PreferredCountry    *string `gorm:"column:preferred_country" json:"preferred_country,omitempty"`
	VisaStatus          *string `gorm:"column:visa_status" json:"visa_status,omitempty"`
	WorkPermit          *string `gorm:"column:work_permit" json:"work_permit,omitempty"`
	Certificates        *string `gorm:"column:certificates" json:"certificates,omitempty"`
	References          *string `gorm:"column:references" json:"references,omitempty"`
	EmergencyContact    *string `gorm:"column:emergency_contact" json:"emergency_contact,omitempty"`

	ProfileImage *string `gorm:"column:profile_image" json:"profile_image,omitempty"`
	VideoLink    *string `gorm:"column:video_link" json:"video_link,omitempty"`

	Status      string     `gorm:"column:status;type:enum('NEW','BOOKED','HIRED','RETURNED');default:'NEW'" json:"status"`
	CreatedByID *uint      `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	UpdatedByID *uint      `gorm:"column:updated_by_id" json:"updated_by_id,omitempty"`
	CreateAt    time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt    time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations. At most one booking and one contract may reference a CV.
	Booking  *Booking  `gorm:"foreignKey:CVID" json:"booking,omitempty"`
	Contract *Contract `gorm:"foreignKey:CVID" json:"contract,omitempty"`
}

func (CV) TableName() string { return "cvs" }

// GalleryCV is the trimmed projection exposed on the public gallery.
type GalleryCV struct {
	ID            uint    `json:"id"`
	FullName      string  `json:"full_name"`
	ReferenceCode *string `json:"reference_code,omitempty"`
	Position      *string `json:"position,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	Age           *int    `json:"age,omitempty"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	VideoLink     *string `json:"video_link,omitempty"`
	Status        string  `json:"status"`
}

// ToGallery strips fields not meant for the public listing.
func (cv *CV) ToGallery() GalleryCV {
	return GalleryCV{
		ID:            cv.ID,
		FullName:      cv.FullName,
		ReferenceCode: cv.ReferenceCode,
		Position:      cv.Position,
		Nationality:   cv.Nationality,
		Age:           cv.Age,
		ProfileImage:  cv.ProfileImage,
		VideoLink:     cv.VideoLink,
		Status:        cv.Status,
	}
}
