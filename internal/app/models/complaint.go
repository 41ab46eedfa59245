package models

import "time"

// Complaint statuses.
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusClosed     = "closed"
)

// ComplaintStatuses lists the legal status values.
var ComplaintStatuses = []string{
	ComplaintStatusOpen,
	ComplaintStatusInProgress,
	ComplaintStatusResolved,
	ComplaintStatusClosed,
}

// ValidComplaintStatus reports whether s is a known complaint status.
func ValidComplaintStatus(s string) bool {
	for _, v := range ComplaintStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Complaint is a student-opened issue thread handled by the back office.
type Complaint struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"studentId"`
	Email         string    `json:"email"`
	Department    string    `json:"department"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	OpenedAt      time.Time `json:"openedAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastTextBy    string    `json:"lastTextBy"` // "student" or "admin"

	// Messages is populated on reads from the messages subcollection,
	// ordered by timestamp ascending. It is not stored on the complaint
	// document itself.
	Messages []ComplaintMessage `json:"messages,omitempty"`
}

// ComplaintMessage is one entry in a complaint's message thread.
type ComplaintMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	SentBy    string    `json:"sentBy"`
	IsAdmin   bool      `json:"isAdmin"`
	Timestamp time.Time `json:"timestamp"`
}
