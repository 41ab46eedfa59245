package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/docpath"
	"github.com/tanvir/intakeform/internal/pkg/logger"
)

// ComplaintRepository handles complaint documents and their message
// subcollections.
type ComplaintRepository struct {
	store DocStore
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(store DocStore) *ComplaintRepository {
	return &ComplaintRepository{store: store}
}

// Create stores a new complaint and its opening message. A fresh ID is
// assigned when the complaint has none.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint, openingMessage string) error {
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	now := time.Now()
	complaint.Status = models.ComplaintStatusOpen
	complaint.OpenedAt = now
	complaint.LastUpdatedAt = now
	complaint.LastTextBy = "student"

	// The messages subcollection is stored separately.
	doc := *complaint
	doc.Messages = nil

	if err := r.store.Set(ctx, docpath.Complaint(complaint.ID), doc, false); err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}

	if openingMessage != "" {
		msg := models.ComplaintMessage{
			Text:      openingMessage,
			SentBy:    "student",
			IsAdmin:   false,
			Timestamp: now,
		}
		if err := r.AddMessage(ctx, complaint.ID, msg); err != nil {
			logger.Warn().Err(err).Str("complaintId", complaint.ID).Msg("Could not store opening complaint message")
		}
	}

	return nil
}

// Get reads one complaint with its message thread.
func (r *ComplaintRepository) Get(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.store.Get(ctx, docpath.Complaint(id), &complaint); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error getting complaint: %w", err)
	}
	complaint.ID = id

	messages, err := r.listMessages(ctx, id)
	if err != nil {
		// The complaint itself is intact; serve it with an empty thread.
		logger.Warn().Err(err).Str("complaintId", id).Msg("Could not load complaint messages")
		messages = []models.ComplaintMessage{}
	}
	complaint.Messages = messages

	return &complaint, nil
}

// ListAll returns every complaint with its messages, ordered by openedAt
// descending.
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	docs, err := r.store.List(ctx, docpath.ComplaintsCollection)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}

	complaints := make([]*models.Complaint, 0, len(docs))
	for _, doc := range docs {
		var complaint models.Complaint
		if err := json.Unmarshal(doc.Data, &complaint); err != nil {
			logger.Error().Err(err).Str("path", doc.Path).Msg("Skipping undecodable complaint document")
			continue
		}
		complaint.ID = doc.ID()

		messages, err := r.listMessages(ctx, complaint.ID)
		if err != nil {
			messages = []models.ComplaintMessage{}
		}
		complaint.Messages = messages
		complaints = append(complaints, &complaint)
	}

	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].OpenedAt.After(complaints[j].OpenedAt)
	})

	return complaints, nil
}

// SetStatus merge-writes a status change with the update metadata.
func (r *ComplaintRepository) SetStatus(ctx context.Context, id, status string) error {
	fields := map[string]interface{}{
		"status":        status,
		"lastUpdatedAt": time.Now().Format(time.RFC3339),
		"lastTextBy":    "admin",
	}
	if err := r.store.Patch(ctx, docpath.Complaint(id), fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrComplaintNotFound
		}
		return fmt.Errorf("error updating complaint status: %w", err)
	}
	return nil
}

// AddMessage appends a message to the complaint thread and refreshes the
// complaint's update metadata.
func (r *ComplaintRepository) AddMessage(ctx context.Context, id string, msg models.ComplaintMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	if err := r.store.Set(ctx, docpath.ComplaintMessage(id, msg.ID), msg, false); err != nil {
		return fmt.Errorf("error adding complaint message: %w", err)
	}

	meta := map[string]interface{}{
		"lastUpdatedAt": time.Now().Format(time.RFC3339),
		"lastTextBy":    msg.SentBy,
	}
	if err := r.store.Patch(ctx, docpath.Complaint(id), meta); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrComplaintNotFound
		}
		return fmt.Errorf("error updating complaint metadata: %w", err)
	}

	return nil
}

// Delete removes a complaint document. Its message documents are left in
// place; nothing lists them once the parent is gone.
func (r *ComplaintRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docpath.Complaint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrComplaintNotFound
		}
		return fmt.Errorf("error deleting complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) listMessages(ctx context.Context, id string) ([]models.ComplaintMessage, error) {
	docs, err := r.store.List(ctx, docpath.ComplaintMessages(id))
	if err != nil {
		return nil, fmt.Errorf("error listing complaint messages: %w", err)
	}

	messages := make([]models.ComplaintMessage, 0, len(docs))
	for _, doc := range docs {
		var msg models.ComplaintMessage
		if err := json.Unmarshal(doc.Data, &msg); err != nil {
			logger.Error().Err(err).Str("path", doc.Path).Msg("Skipping undecodable complaint message")
			continue
		}
		if msg.ID == "" {
			msg.ID = doc.ID()
		}
		messages = append(messages, msg)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages, nil
}
