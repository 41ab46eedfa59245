package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

func TestComplaintLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewComplaintRepository(NewMemoryDocStore())

	complaint := &models.Complaint{
		StudentID:  "12345678",
		Email:      "nadia@example.com",
		Department: "Physics",
		Title:      "Library card not issued",
	}
	require.NoError(t, repo.Create(ctx, complaint, "I submitted the form three weeks ago."))
	require.NotEmpty(t, complaint.ID)

	got, err := repo.Get(ctx, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusOpen, got.Status)
	assert.Equal(t, "student", got.LastTextBy)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "I submitted the form three weeks ago.", got.Messages[0].Text)
	assert.False(t, got.Messages[0].IsAdmin)

	require.NoError(t, repo.AddMessage(ctx, complaint.ID, models.ComplaintMessage{
		Text:    "We are looking into it.",
		SentBy:  "admin",
		IsAdmin: true,
	}))

	got, err = repo.Get(ctx, complaint.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "admin", got.LastTextBy)
	assert.True(t, got.Messages[1].IsAdmin, "messages are ordered oldest first")

	require.NoError(t, repo.SetStatus(ctx, complaint.ID, models.ComplaintStatusResolved))
	got, err = repo.Get(ctx, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, got.Status)

	require.NoError(t, repo.Delete(ctx, complaint.ID))
	_, err = repo.Get(ctx, complaint.ID)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestComplaintListOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()
	repo := NewComplaintRepository(store)

	first := &models.Complaint{StudentID: "1", Title: "first"}
	require.NoError(t, repo.Create(ctx, first, "a"))

	time.Sleep(5 * time.Millisecond)

	second := &models.Complaint{StudentID: "2", Title: "second"}
	require.NoError(t, repo.Create(ctx, second, "b"))

	complaints, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, "second", complaints[0].Title)
	assert.Equal(t, "first", complaints[1].Title)
}

func TestComplaintStatusMissing(t *testing.T) {
	repo := NewComplaintRepository(NewMemoryDocStore())
	err := repo.SetStatus(context.Background(), "missing", models.ComplaintStatusClosed)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}
