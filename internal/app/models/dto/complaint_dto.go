package dto

// ComplaintCreateRequest opens a complaint thread from the public form.
type ComplaintCreateRequest struct {
	StudentID  string `json:"studentId" binding:"required,studentid"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,max=100"`
	Title      string `json:"title" binding:"required,max=200"`
	Text       string `json:"text" binding:"required,max=2000"`
}

// ComplaintStatusRequest moves a complaint through its lifecycle.
type ComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in-progress resolved closed"`
}

// ComplaintReplyRequest appends a message to a complaint thread.
type ComplaintReplyRequest struct {
	Text    string `json:"text" binding:"required,max=2000"`
	SentBy  string `json:"sentBy" binding:"required,max=100"`
	IsAdmin bool   `json:"isAdmin"`
}
