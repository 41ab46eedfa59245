package models

import "time"

// Session values offered by the intake form.
var Sessions = []string{"2024-25", "2023-24", "2022-23"}

// Year/semester study-stage types.
const (
	YearSemesterTypeYear     = "year"
	YearSemesterTypeSemester = "semester"
)

// Study-stage values per type.
var (
	YearValues     = []string{"1st", "2nd"}
	SemesterValues = []string{"1st", "2nd", "3rd"}
)

// ValidSession reports whether s is one of the offered sessions.
func ValidSession(s string) bool {
	for _, v := range Sessions {
		if v == s {
			return true
		}
	}
	return false
}

// ValidYearSemester reports whether the type/value pair is a legal study
// stage.
func ValidYearSemester(ysType, value string) bool {
	var allowed []string
	switch ysType {
	case YearSemesterTypeYear:
		allowed = YearValues
	case YearSemesterTypeSemester:
		allowed = SemesterValues
	default:
		return false
	}
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Submission is one student's completed intake form record. StudentID is the
// primary business key and is unique system-wide via the duplicate index.
type Submission struct {
	StudentID         string    `json:"studentId"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Session           string    `json:"session"`
	Faculty           string    `json:"faculty"`      // display name
	FacultyAlias      string    `json:"facultyAlias"` // short code, derivable from Faculty
	Department        string    `json:"department"`
	PhoneNumber       string    `json:"phoneNumber"`
	Email             string    `json:"email"`
	AliasEmail        string    `json:"aliasEmail"`
	YearSemesterType  string    `json:"yearSemesterType"`
	YearSemesterValue string    `json:"yearSemesterValue"`
	AgreeToTerms      bool      `json:"agreeToTerms"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DuplicateEntry records "studentId X has submitted" in the flat duplicate
// index. One-to-one with a Submission by StudentID; written best-effort after
// the authoritative document.
type DuplicateEntry struct {
	StudentID   string    `json:"studentId"`
	Faculty     string    `json:"faculty"` // faculty alias
	Department  string    `json:"department"`
	SubmittedAt time.Time `json:"submittedAt"`
}
