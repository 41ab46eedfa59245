package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

func newTestComplaintService(t *testing.T) *ComplaintService {
	t.Helper()
	repos := repositories.NewRepositoriesWithStore(repositories.NewMemoryDocStore())
	return NewComplaintService(repos.ComplaintRepository)
}

func TestComplaintCreateAndReply(t *testing.T) {
	ctx := context.Background()
	svc := newTestComplaintService(t)

	complaint, err := svc.Create(ctx, &dto.ComplaintCreateRequest{
		StudentID:  "12345678",
		Email:      "nadia@example.com",
		Department: "Physics",
		Title:      "ID card not issued",
		Text:       "Three weeks and counting.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusOpen, complaint.Status)
	require.Len(t, complaint.Messages, 1)

	complaint, err = svc.Reply(ctx, complaint.ID, &dto.ComplaintReplyRequest{
		Text:    "Your card is ready for pickup.",
		SentBy:  "admin",
		IsAdmin: true,
	})
	require.NoError(t, err)
	require.Len(t, complaint.Messages, 2)
	assert.Equal(t, "admin", complaint.LastTextBy)

	complaint, err = svc.SetStatus(ctx, complaint.ID, models.ComplaintStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, complaint.Status)
}

func TestComplaintSetStatusValidation(t *testing.T) {
	svc := newTestComplaintService(t)
	_, err := svc.SetStatus(context.Background(), "any", "escalated")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestComplaintGetMissing(t *testing.T) {
	svc := newTestComplaintService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}
