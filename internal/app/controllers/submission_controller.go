// Package controllers handles HTTP request handling
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

// SubmissionController handles intake form and submission management
// endpoints.
type SubmissionController struct {
	submissionService *services.SubmissionService
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService *services.SubmissionService, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		logger:            logger,
	}
}

// Submit handles a new intake form submission
// @Summary Submit the intake form
// @Description Validates and stores a student's intake form. Duplicate student IDs are rejected before field validation runs.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.SubmissionRequest true "Intake form values"
// @Success 201 {object} dto.APIResponse{data=models.Submission} "Submission stored"
// @Failure 400 {object} dto.ErrorResponse "Field validation failed"
// @Failure 409 {object} dto.ErrorResponse "Duplicate student ID or alias already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req dto.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid submission payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	sub, err := c.submissionService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: sub, Timestamp: time.Now()})
}

// CheckDuplicate reports whether a student ID has already submitted
// @Summary Check for a duplicate submission
// @Tags submissions
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.DuplicateCheckResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed student ID"
// @Router /submissions/check/{studentId} [get]
func (c *SubmissionController) CheckDuplicate(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	exists, err := c.submissionService.CheckDuplicate(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.DuplicateCheckResponse{StudentID: studentID, Exists: exists},
		Timestamp: time.Now(),
	})
}

// AliasAvailable reports whether an institutional alias is unused
// @Summary Check alias email availability
// @Tags submissions
// @Produce json
// @Param alias query string true "Requested alias local part"
// @Success 200 {object} dto.APIResponse{data=dto.AliasAvailableResponse}
// @Failure 400 {object} dto.ErrorResponse "Alias format not valid"
// @Router /submissions/alias-available [get]
func (c *SubmissionController) AliasAvailable(ctx *gin.Context) {
	var query dto.AliasAvailableQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	available, err := c.submissionService.AliasAvailable(ctx.Request.Context(), query.Alias)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.AliasAvailableResponse{Alias: query.Alias, Available: available},
		Timestamp: time.Now(),
	})
}

// List returns all submissions newest-first
// @Summary List submissions
// @Description Returns every submission ordered by creation time descending, optionally narrowed by search text, faculty or department.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive match on student ID, name, email or alias"
// @Param faculty query string false "Faculty display name"
// @Param department query string false "Department name"
// @Success 200 {object} dto.APIResponse{data=[]models.Submission}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /admin/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	var filter dto.SubmissionFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	subs, err := c.submissionService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: subs, Timestamp: time.Now()})
}

// Get returns one submission by student ID
// @Summary Get a submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Submission}
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{studentId} [get]
func (c *SubmissionController) Get(ctx *gin.Context) {
	sub, err := c.submissionService.GetByStudentID(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sub, Timestamp: time.Now()})
}

// Update patches a submission's editable fields
// @Summary Update a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.SubmissionUpdateRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Submission}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{studentId} [put]
func (c *SubmissionController) Update(ctx *gin.Context) {
	var req dto.SubmissionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sub, err := c.submissionService.Update(ctx.Request.Context(), ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sub, Timestamp: time.Now()})
}

// Delete removes a submission
// @Summary Delete a submission
// @Description Removes the submission record. The duplicate-index entry for the student ID is kept, so the student cannot submit again.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{studentId} [delete]
func (c *SubmissionController) Delete(ctx *gin.Context) {
	if err := c.submissionService.Delete(ctx.Request.Context(), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Submission deleted"},
		Timestamp: time.Now(),
	})
}

// Export downloads the submission listing as CSV
// @Summary Export submissions as CSV
// @Tags submissions
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Case-insensitive match on student ID, name, email or alias"
// @Param faculty query string false "Faculty display name"
// @Param department query string false "Department name"
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /admin/submissions/export [get]
func (c *SubmissionController) Export(ctx *gin.Context) {
	var filter dto.SubmissionFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	csv, err := c.submissionService.ExportCSV(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := "submissions-" + time.Now().Format("2006-01-02") + ".csv"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// Stats returns dashboard aggregates
// @Summary Submission statistics
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /admin/stats [get]
func (c *SubmissionController) Stats(ctx *gin.Context) {
	stats, err := c.submissionService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}
