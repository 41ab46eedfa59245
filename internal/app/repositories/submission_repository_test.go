package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/docpath"
)

func newSubmission(studentID string, createdAt time.Time) *models.Submission {
	return &models.Submission{
		StudentID:         studentID,
		FirstName:         "Nadia",
		LastName:          "Islam",
		Session:           "2024-25",
		Faculty:           "Faculty of Science",
		FacultyAlias:      "fsc",
		Department:        "Physics",
		PhoneNumber:       "01712345678",
		Email:             "nadia@example.com",
		AliasEmail:        "nadia.islam",
		YearSemesterType:  models.YearSemesterTypeYear,
		YearSemesterValue: "1st",
		AgreeToTerms:      true,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func TestSaveThenCheckDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewSubmissionRepository(store)

	assert.False(t, repo.CheckDuplicate(ctx, "12345678"))

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now())))

	assert.True(t, repo.CheckDuplicate(ctx, "12345678"))
	assert.False(t, repo.CheckDuplicate(ctx, "99999999"))
}

func TestCheckDuplicateFailsOpen(t *testing.T) {
	store := NewMemoryDocStore()
	store.FailExists = errors.New("backend unavailable")
	repo := NewSubmissionRepository(store)

	assert.False(t, repo.CheckDuplicate(context.Background(), "12345678"),
		"an unreachable index must not block the intake")
}

func TestSaveSurvivesIndexWriteFailure(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	store.FailSet = errors.New("index write failed")
	store.FailSetPrefix = docpath.FormRoot + "/studentSubmissions"
	repo := NewSubmissionRepository(store)

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now())),
		"the authoritative write succeeded, the index failure is swallowed")

	// The record is readable but the index never saw it.
	_, err := repo.Get(ctx, "fsc", "Physics", "12345678")
	require.NoError(t, err)
	assert.False(t, repo.CheckDuplicate(ctx, "12345678"))
}

func TestDeleteKeepsDuplicateIndexEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewSubmissionRepository(store)

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now())))
	require.NoError(t, repo.Delete(ctx, "fsc", "Physics", "12345678"))

	_, err := repo.Get(ctx, "fsc", "Physics", "12345678")
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)

	assert.True(t, repo.CheckDuplicate(ctx, "12345678"),
		"deleting the record does not clear the index entry")
}

func TestListAllOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewSubmissionRepository(store)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, newSubmission("1001", base)))
	require.NoError(t, repo.Save(ctx, newSubmission("1003", base.Add(2*time.Hour))))
	require.NoError(t, repo.Save(ctx, newSubmission("1002", base.Add(time.Hour))))

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "1003", subs[0].StudentID)
	assert.Equal(t, "1002", subs[1].StudentID)
	assert.Equal(t, "1001", subs[2].StudentID)
}

func TestListAllMissingTimestampSortsLast(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewSubmissionRepository(store)

	require.NoError(t, repo.Save(ctx, newSubmission("1001", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))))

	// A record written without a createdAt field, as legacy imports were.
	require.NoError(t, store.Set(ctx, docpath.Submission("fsc", "Physics", "2002"), map[string]interface{}{
		"studentId": "2002",
		"firstName": "Legacy",
	}, false))

	// And one with garbage in the timestamp.
	require.NoError(t, store.Set(ctx, docpath.Submission("fsc", "Physics", "3003"), map[string]interface{}{
		"studentId": "3003",
		"createdAt": "not-a-date",
	}, false))

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "1001", subs[0].StudentID)
	assert.True(t, subs[1].CreatedAt.IsZero())
	assert.True(t, subs[2].CreatedAt.IsZero())
}

func TestListAllExcludesDuplicateIndexEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewSubmissionRepository(store)

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now())))

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1, "the flat index collection must not leak into the listing")
}

func TestUpdatePatchesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewSubmissionRepository(store)

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now().Add(-time.Hour))))

	err := repo.Update(ctx, "fsc", "Physics", "12345678", map[string]interface{}{
		"firstName": "Renamed",
	})
	require.NoError(t, err)

	sub, err := repo.Get(ctx, "fsc", "Physics", "12345678")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", sub.FirstName)
	assert.Equal(t, "Islam", sub.LastName)
	assert.Equal(t, "nadia.islam", sub.AliasEmail)
	assert.True(t, sub.UpdatedAt.After(sub.CreatedAt))
}

func TestUpdateMissingSubmission(t *testing.T) {
	repo := NewSubmissionRepository(NewMemoryDocStore())
	err := repo.Update(context.Background(), "fsc", "Physics", "404", map[string]interface{}{"firstName": "X"})
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

func TestFindByStudentID(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(NewMemoryDocStore())

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now())))

	sub, err := repo.FindByStudentID(ctx, "12345678")
	require.NoError(t, err)
	assert.Equal(t, "fsc", sub.FacultyAlias)
	assert.Equal(t, "Physics", sub.Department)

	_, err = repo.FindByStudentID(ctx, "0000")
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

func TestAliasEmailAvailable(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(NewMemoryDocStore())

	available, err := repo.AliasEmailAvailable(ctx, "nadia.islam")
	require.NoError(t, err)
	assert.True(t, available)

	require.NoError(t, repo.Save(ctx, newSubmission("12345678", time.Now())))

	available, err = repo.AliasEmailAvailable(ctx, "nadia.islam")
	require.NoError(t, err)
	assert.False(t, available)
}
