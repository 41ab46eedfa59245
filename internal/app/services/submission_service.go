package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/export"
	"github.com/tanvir/intakeform/internal/pkg/logger"
	"github.com/tanvir/intakeform/internal/pkg/validation"
)

// SubmissionService handles the public intake flow and the admin-side
// submission management operations.
type SubmissionService struct {
	submissionRepo *repositories.SubmissionRepository
	catalogRepo    *repositories.CatalogRepository
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(submissionRepo *repositories.SubmissionRepository, catalogRepo *repositories.CatalogRepository) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		catalogRepo:    catalogRepo,
	}
}

// Submit runs the full intake protocol: duplicate guard first, then per-field
// validation, then the alias uniqueness check, then the write. The duplicate
// guard and the write are not atomic; two concurrent submissions for the same
// student ID can both pass the guard.
func (s *SubmissionService) Submit(ctx context.Context, req *dto.SubmissionRequest) (*models.Submission, error) {
	studentID := strings.TrimSpace(req.StudentID)

	if s.submissionRepo.CheckDuplicate(ctx, studentID) {
		return nil, apperrors.ErrDuplicateSubmission
	}

	catalog, err := s.catalogRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCatalogNotFound) {
			return nil, fmt.Errorf("failed to load faculty catalog: %w", err)
		}
		// Without a catalog the faculty/department membership checks are
		// skipped and the raw faculty name doubles as its alias.
		logger.Warn().Msg("Faculty catalog not configured, accepting submission without membership checks")
		catalog = nil
	}

	if err := s.validateSubmission(req, catalog); err != nil {
		return nil, err
	}

	available, err := s.submissionRepo.AliasEmailAvailable(ctx, req.AliasEmail)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.ErrAliasEmailTaken
	}

	now := time.Now()
	sub := &models.Submission{
		StudentID:         studentID,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Session:           req.Session,
		Faculty:           req.Faculty,
		FacultyAlias:      catalog.ResolveAlias(req.Faculty),
		Department:        req.Department,
		PhoneNumber:       validation.CleanPhoneNumber(req.PhoneNumber),
		Email:             strings.TrimSpace(req.Email),
		AliasEmail:        req.AliasEmail,
		YearSemesterType:  req.YearSemesterType,
		YearSemesterValue: req.YearSemesterValue,
		AgreeToTerms:      req.AgreeToTerms,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.submissionRepo.Save(ctx, sub); err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", sub.StudentID).
		Str("faculty", sub.FacultyAlias).
		Str("department", sub.Department).
		Msg("New submission stored")

	return sub, nil
}

// validateSubmission checks every field and reports all violations at once,
// so the form can highlight every problem in a single round trip.
func (s *SubmissionService) validateSubmission(req *dto.SubmissionRequest, catalog *models.Catalog) error {
	errs := dto.NewValidationErrors()

	if !validation.ValidateStudentID(strings.TrimSpace(req.StudentID)) {
		errs.AddError("studentId", "student ID must contain digits only")
	}
	if !validation.ValidateName(req.FirstName) {
		errs.AddError("firstName", "first name is required and must be at most 100 characters")
	}
	if !validation.ValidateName(req.LastName) {
		errs.AddError("lastName", "last name is required and must be at most 100 characters")
	}
	if !models.ValidSession(req.Session) {
		errs.AddError("session", "session is not offered")
	}
	if !validation.ValidatePhoneNumber(req.PhoneNumber) {
		errs.AddError("phoneNumber", "phone number must be 10 or 11 digits")
	}
	if !validation.ValidateEmail(strings.TrimSpace(req.Email)) {
		errs.AddError("email", "email address is not valid")
	}
	if !validation.ValidateAliasEmail(req.AliasEmail) {
		errs.AddError("aliasEmail", "alias must be 2-30 characters, contain no public mail provider names, and use only letters, digits, dots, hyphens and underscores")
	}
	if !models.ValidYearSemester(req.YearSemesterType, req.YearSemesterValue) {
		errs.AddError("yearSemesterValue", "year/semester selection is not valid")
	}
	if !req.AgreeToTerms {
		errs.AddError("agreeToTerms", "terms and conditions must be accepted")
	}

	if req.Faculty == "" {
		errs.AddError("faculty", "faculty is required")
	} else if catalog != nil {
		faculty, ok := catalog.FacultyByName(req.Faculty)
		if !ok {
			errs.AddError("faculty", "faculty is not in the catalog")
		} else if !faculty.HasDepartment(req.Department) {
			errs.AddError("department", "department does not belong to the selected faculty")
		}
	}
	if req.Department == "" {
		errs.AddError("department", "department is required")
	}

	if errs.HasErrors() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "submission validation failed").
			WithDetails(map[string]interface{}{"errors": errs.Errors})
	}
	return nil
}

// CheckDuplicate reports whether a submission already exists for the student
// ID. Backend failures surface as "no duplicate".
func (s *SubmissionService) CheckDuplicate(ctx context.Context, studentID string) (bool, error) {
	studentID = strings.TrimSpace(studentID)
	if !validation.ValidateStudentID(studentID) {
		return false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "student ID must contain digits only")
	}
	return s.submissionRepo.CheckDuplicate(ctx, studentID), nil
}

// AliasAvailable reports whether the institutional alias is unused.
func (s *SubmissionService) AliasAvailable(ctx context.Context, alias string) (bool, error) {
	if !validation.ValidateAliasEmail(alias) {
		return false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "alias is not in a valid format")
	}
	return s.submissionRepo.AliasEmailAvailable(ctx, alias)
}

// List returns submissions newest-first, narrowed by the optional filter.
// Filtering happens in memory over the full scan.
func (s *SubmissionService) List(ctx context.Context, filter dto.SubmissionFilter) ([]*models.Submission, error) {
	subs, err := s.submissionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterSubmissions(subs, filter), nil
}

func filterSubmissions(subs []*models.Submission, filter dto.SubmissionFilter) []*models.Submission {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if search == "" && filter.Faculty == "" && filter.Department == "" {
		return subs
	}

	filtered := make([]*models.Submission, 0, len(subs))
	for _, sub := range subs {
		if filter.Faculty != "" && sub.Faculty != filter.Faculty {
			continue
		}
		if filter.Department != "" && sub.Department != filter.Department {
			continue
		}
		if search != "" && !matchesSearch(sub, search) {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered
}

func matchesSearch(sub *models.Submission, search string) bool {
	for _, field := range []string{sub.StudentID, sub.FirstName, sub.LastName, sub.Email, sub.AliasEmail} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// GetByStudentID locates one submission by student ID alone.
func (s *SubmissionService) GetByStudentID(ctx context.Context, studentID string) (*models.Submission, error) {
	return s.submissionRepo.FindByStudentID(ctx, strings.TrimSpace(studentID))
}

// Update patches the supplied fields of the submission identified by student
// ID. Session changes are re-checked against the offered sessions.
func (s *SubmissionService) Update(ctx context.Context, studentID string, req *dto.SubmissionUpdateRequest) (*models.Submission, error) {
	sub, err := s.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return sub, nil
	}

	if session, ok := fields["session"].(string); ok && !models.ValidSession(session) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "session is not offered")
	}
	if phone, ok := fields["phoneNumber"].(string); ok {
		fields["phoneNumber"] = validation.CleanPhoneNumber(phone)
	}

	if err := s.submissionRepo.Update(ctx, sub.FacultyAlias, sub.Department, sub.StudentID, fields); err != nil {
		return nil, err
	}
	return s.submissionRepo.Get(ctx, sub.FacultyAlias, sub.Department, sub.StudentID)
}

// Delete removes the submission identified by student ID.
func (s *SubmissionService) Delete(ctx context.Context, studentID string) error {
	sub, err := s.GetByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	return s.submissionRepo.Delete(ctx, sub.FacultyAlias, sub.Department, sub.StudentID)
}

// ExportCSV renders the filtered submission listing as a CSV report.
func (s *SubmissionService) ExportCSV(ctx context.Context, filter dto.SubmissionFilter) (string, error) {
	subs, err := s.List(ctx, filter)
	if err != nil {
		return "", err
	}
	return export.SubmissionsCSV(subs), nil
}

// Stats builds the admin dashboard aggregates from a full scan plus the
// catalog counters.
func (s *SubmissionService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	subs, err := s.submissionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		TotalSubmissions:        len(subs),
		TotalSessions:           len(models.Sessions),
		SubmissionsByFaculty:    map[string]int{},
		SubmissionsByDepartment: map[string]int{},
		GeneratedAt:             time.Now(),
	}
	for _, sub := range subs {
		stats.SubmissionsByFaculty[sub.Faculty]++
		stats.SubmissionsByDepartment[sub.Department]++
	}

	catalog, err := s.catalogRepo.Get(ctx)
	if err == nil {
		stats.TotalFaculties = catalog.TotalFaculties
		stats.TotalDepartments = catalog.TotalDepartments
	} else if !errors.Is(err, apperrors.ErrCatalogNotFound) {
		return nil, err
	}

	return stats, nil
}
