package dto

import "github.com/tanvir/intakeform/internal/app/models"

// LoginRequest carries administrator credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@university.edu"`
	Password string `json:"password" binding:"required" example:"S3cure-Pass"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginResponse returns the issued tokens together with the signed-in user.
type LoginResponse struct {
	Token        string                    `json:"token"`
	RefreshToken string                    `json:"refreshToken"`
	ExpiresIn    int                       `json:"expiresIn"`
	User         *models.AuthenticatedUser `json:"user"`
}
