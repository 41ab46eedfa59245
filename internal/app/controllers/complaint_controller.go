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

// ComplaintController handles complaint endpoints.
type ComplaintController struct {
	complaintService *services.ComplaintService
	logger           zerolog.Logger
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService, logger zerolog.Logger) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// Create opens a new complaint
// @Summary Open a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body dto.ComplaintCreateRequest true "Complaint details"
// @Success 201 {object} dto.APIResponse{data=models.Complaint}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /complaints [post]
func (c *ComplaintController) Create(ctx *gin.Context) {
	var req dto.ComplaintCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid complaint payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	complaint, err := c.complaintService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: complaint, Timestamp: time.Now()})
}

// List returns every complaint
// @Summary List complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /admin/complaints [get]
func (c *ComplaintController) List(ctx *gin.Context) {
	complaints, err := c.complaintService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: complaints, Timestamp: time.Now()})
}

// Get returns one complaint with its thread
// @Summary Get a complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=models.Complaint}
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /admin/complaints/{id} [get]
func (c *ComplaintController) Get(ctx *gin.Context) {
	complaint, err := c.complaintService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: complaint, Timestamp: time.Now()})
}

// SetStatus moves a complaint through its lifecycle
// @Summary Update complaint status
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body dto.ComplaintStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Complaint}
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /admin/complaints/{id}/status [put]
func (c *ComplaintController) SetStatus(ctx *gin.Context) {
	var req dto.ComplaintStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	complaint, err := c.complaintService.SetStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: complaint, Timestamp: time.Now()})
}

// Reply appends a message to a complaint thread
// @Summary Reply to a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body dto.ComplaintReplyRequest true "Message"
// @Success 200 {object} dto.APIResponse{data=models.Complaint}
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /admin/complaints/{id}/reply [post]
func (c *ComplaintController) Reply(ctx *gin.Context) {
	var req dto.ComplaintReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	complaint, err := c.complaintService.Reply(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: complaint, Timestamp: time.Now()})
}

// Delete removes a complaint
// @Summary Delete a complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /admin/complaints/{id} [delete]
func (c *ComplaintController) Delete(ctx *gin.Context) {
	if err := c.complaintService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Complaint deleted"},
		Timestamp: time.Now(),
	})
}
