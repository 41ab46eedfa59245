package dto

import "time"

// SubmissionRequest is the intake form payload. Field-level validation is
// performed by the submission service so every violation is reported
// per-field in one pass, not by binding tags.
type SubmissionRequest struct {
	StudentID         string `json:"studentId"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Session           string `json:"session"`
	Faculty           string `json:"faculty"`
	Department        string `json:"department"`
	PhoneNumber       string `json:"phoneNumber"`
	Email             string `json:"email"`
	AliasEmail        string `json:"aliasEmail"`
	YearSemesterType  string `json:"yearSemesterType"`
	YearSemesterValue string `json:"yearSemesterValue"`
	AgreeToTerms      bool   `json:"agreeToTerms"`
}

// SubmissionUpdateRequest is the administrator edit-dialog subset. Only the
// supplied fields are patched.
type SubmissionUpdateRequest struct {
	FirstName   *string `json:"firstName,omitempty" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName,omitempty" binding:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,phonedigits"`
	Session     *string `json:"session,omitempty" binding:"omitempty"`
}

// Fields returns the patch map of the supplied values.
func (r *SubmissionUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FirstName != nil {
		fields["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["lastName"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		fields["phoneNumber"] = *r.PhoneNumber
	}
	if r.Session != nil {
		fields["session"] = *r.Session
	}
	return fields
}

// SubmissionFilter narrows the admin submission listing. All filtering
// happens in memory after the bulk fetch.
type SubmissionFilter struct {
	Search     string `form:"search"`
	Faculty    string `form:"faculty"`
	Department string `form:"department"`
}

// DuplicateCheckResponse reports whether a student ID has already submitted.
type DuplicateCheckResponse struct {
	StudentID string `json:"studentId"`
	Exists    bool   `json:"exists"`
}

// AliasAvailableQuery is the alias-availability probe input.
type AliasAvailableQuery struct {
	Alias string `form:"alias" binding:"required,aliasemail"`
}

// AliasAvailableResponse reports whether an institutional alias is unused.
type AliasAvailableResponse struct {
	Alias     string `json:"alias"`
	Available bool   `json:"available"`
}

// StatsResponse is the admin dashboard aggregate view.
type StatsResponse struct {
	TotalSubmissions        int            `json:"totalSubmissions"`
	TotalFaculties          int            `json:"totalFaculties"`
	TotalDepartments        int            `json:"totalDepartments"`
	TotalSessions           int            `json:"totalSessions"`
	SubmissionsByFaculty    map[string]int `json:"submissionsByFaculty"`
	SubmissionsByDepartment map[string]int `json:"submissionsByDepartment"`
	GeneratedAt             time.Time      `json:"generatedAt"`
}
