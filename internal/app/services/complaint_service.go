package services

import (
	"context"
	"strings"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

// ComplaintService handles student complaint threads and their lifecycle.
type ComplaintService struct {
	complaintRepo *repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaintRepo *repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

// Create opens a complaint thread with the student's opening message.
func (s *ComplaintService) Create(ctx context.Context, req *dto.ComplaintCreateRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		StudentID:  strings.TrimSpace(req.StudentID),
		Email:      strings.TrimSpace(req.Email),
		Department: req.Department,
		Title:      strings.TrimSpace(req.Title),
	}
	if err := s.complaintRepo.Create(ctx, complaint, req.Text); err != nil {
		return nil, err
	}
	return s.complaintRepo.Get(ctx, complaint.ID)
}

// List returns every complaint with its message thread, newest first.
func (s *ComplaintService) List(ctx context.Context) ([]*models.Complaint, error) {
	return s.complaintRepo.ListAll(ctx)
}

// Get returns one complaint with its message thread.
func (s *ComplaintService) Get(ctx context.Context, id string) (*models.Complaint, error) {
	return s.complaintRepo.Get(ctx, id)
}

// SetStatus moves a complaint through its lifecycle.
func (s *ComplaintService) SetStatus(ctx context.Context, id, status string) (*models.Complaint, error) {
	if !models.ValidComplaintStatus(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown complaint status")
	}
	if err := s.complaintRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.complaintRepo.Get(ctx, id)
}

// Reply appends a message to the complaint thread.
func (s *ComplaintService) Reply(ctx context.Context, id string, req *dto.ComplaintReplyRequest) (*models.Complaint, error) {
	msg := models.ComplaintMessage{
		Text:    strings.TrimSpace(req.Text),
		SentBy:  req.SentBy,
		IsAdmin: req.IsAdmin,
	}
	if err := s.complaintRepo.AddMessage(ctx, id, msg); err != nil {
		return nil, err
	}
	return s.complaintRepo.Get(ctx, id)
}

// Delete removes a complaint.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	return s.complaintRepo.Delete(ctx, id)
}
