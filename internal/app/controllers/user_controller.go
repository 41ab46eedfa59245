package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/services"
	"github.com/tanvir/intakeform/internal/middleware"
)

// UserController handles superadmin account-management endpoints.
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// List returns every back-office account
// @Summary List admin users
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AuthenticatedUser}
// @Failure 403 {object} dto.ErrorResponse "Superadmin role required"
// @Router /admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users, Timestamp: time.Now()})
}

// Create provisions a new admin account
// @Summary Create an admin user
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "New account"
// @Success 201 {object} dto.APIResponse{data=models.AuthenticatedUser}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create-user payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.userService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: user, Timestamp: time.Now()})
}

// Update patches an admin account
// @Summary Update an admin user
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.AuthenticatedUser}
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /admin/users/{email} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx.Request.Context(), ctx.Param("email"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: user, Timestamp: time.Now()})
}

// Delete removes an admin account
// @Summary Delete an admin user
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /admin/users/{email} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.userService.Delete(ctx.Request.Context(), ctx.Param("email")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Admin user deleted"},
		Timestamp: time.Now(),
	})
}

// GeneratePassword produces a random credential for a new account
// @Summary Generate a password
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GeneratedPasswordResponse}
// @Failure 403 {object} dto.ErrorResponse "Superadmin role required"
// @Router /admin/users/generate-password [get]
func (c *UserController) GeneratePassword(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.GeneratedPasswordResponse{Password: c.userService.GeneratePassword()},
		Timestamp: time.Now(),
	})
}
