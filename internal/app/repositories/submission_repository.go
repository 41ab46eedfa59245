package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/docpath"
	"github.com/tanvir/intakeform/internal/pkg/logger"
)

// SubmissionRepository handles the authoritative submission documents and the
// flat duplicate index.
type SubmissionRepository struct {
	store DocStore
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(store DocStore) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

// flexTime tolerates missing or unparsable timestamps: anything that is not
// an RFC 3339 string decodes to the zero time, which sorts after every real
// timestamp in the descending submission listing.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

// submissionRecord shadows the timestamp fields with tolerant decoding.
type submissionRecord struct {
	models.Submission
	CreatedAt flexTime `json:"createdAt"`
	UpdatedAt flexTime `json:"updatedAt"`
}

func decodeSubmission(doc Document) (*models.Submission, error) {
	var rec submissionRecord
	if err := json.Unmarshal(doc.Data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode submission %s: %w", doc.Path, err)
	}
	sub := rec.Submission
	sub.CreatedAt = rec.CreatedAt.Time
	sub.UpdatedAt = rec.UpdatedAt.Time
	return &sub, nil
}

// CheckDuplicate reports whether a submission already exists for the student
// ID. On any backend error it fails open: the intake must not be blocked by
// an unavailable index, at the cost of duplicate detection being advisory.
func (r *SubmissionRepository) CheckDuplicate(ctx context.Context, studentID string) bool {
	exists, err := r.store.Exists(ctx, docpath.DuplicateIndex(studentID))
	if err != nil {
		logger.Warn().Err(err).Str("studentId", studentID).Msg("Duplicate check failed, allowing submission to proceed")
		return false
	}
	return exists
}

// Save writes the authoritative submission document, then records the
// duplicate-index entry best-effort. The index write failing is logged and
// swallowed: the authoritative record already succeeded and is not rolled
// back, so the index can lag behind the truth.
func (r *SubmissionRepository) Save(ctx context.Context, sub *models.Submission) error {
	path := docpath.Submission(sub.FacultyAlias, sub.Department, sub.StudentID)
	if err := r.store.Set(ctx, path, sub, false); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error saving submission")
		return fmt.Errorf("error saving submission: %w", err)
	}

	entry := models.DuplicateEntry{
		StudentID:   sub.StudentID,
		Faculty:     sub.FacultyAlias,
		Department:  sub.Department,
		SubmittedAt: time.Now(),
	}
	if err := r.store.Set(ctx, docpath.DuplicateIndex(sub.StudentID), entry, true); err != nil {
		logger.Warn().Err(err).Str("studentId", sub.StudentID).Msg("Could not record submission in duplicate index")
	}

	return nil
}

// Get reads one submission by its hierarchical key.
func (r *SubmissionRepository) Get(ctx context.Context, facultyAlias, department, studentID string) (*models.Submission, error) {
	path := docpath.Submission(facultyAlias, department, studentID)
	var rec submissionRecord
	if err := r.store.Get(ctx, path, &rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error getting submission: %w", err)
	}
	sub := rec.Submission
	sub.CreatedAt = rec.CreatedAt.Time
	sub.UpdatedAt = rec.UpdatedAt.Time
	return &sub, nil
}

// FindByStudentID locates a submission anywhere in the faculty/department
// tree by its student ID field.
func (r *SubmissionRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Submission, error) {
	docs, err := r.store.FindInGroup(ctx, docpath.SubmissionsLeaf, docpath.FormValuesPrefix, "studentId", studentID)
	if err != nil {
		return nil, fmt.Errorf("error finding submission: %w", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrSubmissionNotFound
	}
	return decodeSubmission(docs[0])
}

// ListAll scans every faculty/department subtree for submission documents and
// returns them ordered by creation time descending. Submissions without a
// parsable createdAt sort last.
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]*models.Submission, error) {
	docs, err := r.store.Group(ctx, docpath.SubmissionsLeaf, docpath.FormValuesPrefix)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}

	subs := make([]*models.Submission, 0, len(docs))
	for _, doc := range docs {
		sub, err := decodeSubmission(doc)
		if err != nil {
			logger.Error().Err(err).Str("path", doc.Path).Msg("Skipping undecodable submission document")
			continue
		}
		subs = append(subs, sub)
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})

	return subs, nil
}

// Update patches only the supplied fields of a submission plus its
// updated-timestamp. The duplicate index is not touched.
func (r *SubmissionRepository) Update(ctx context.Context, facultyAlias, department, studentID string, fields map[string]interface{}) error {
	patch := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updatedAt"] = time.Now().Format(time.RFC3339)

	path := docpath.Submission(facultyAlias, department, studentID)
	if err := r.store.Patch(ctx, path, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		return fmt.Errorf("error updating submission: %w", err)
	}
	return nil
}

// Delete removes the authoritative submission document only. The
// duplicate-index entry is left in place, so CheckDuplicate keeps reporting
// true for this student ID until the index is cleared by hand.
func (r *SubmissionRepository) Delete(ctx context.Context, facultyAlias, department, studentID string) error {
	path := docpath.Submission(facultyAlias, department, studentID)
	if err := r.store.Delete(ctx, path); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		return fmt.Errorf("error deleting submission: %w", err)
	}
	return nil
}

// AliasEmailAvailable reports whether no submission anywhere claims the given
// institutional alias.
func (r *SubmissionRepository) AliasEmailAvailable(ctx context.Context, alias string) (bool, error) {
	docs, err := r.store.FindInGroup(ctx, docpath.SubmissionsLeaf, docpath.FormValuesPrefix, "aliasEmail", alias)
	if err != nil {
		return false, fmt.Errorf("error checking alias email availability: %w", err)
	}
	return len(docs) == 0, nil
}
