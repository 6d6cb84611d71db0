package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnav/teamforge/internal/app/models/dto"
	"github.com/arnav/teamforge/internal/app/services"
	"github.com/arnav/teamforge/internal/middleware"
)

// StudentController handles the student-facing routes: own profile, batch
// roster, preference submission, and team status. The acting student's
// identity always comes from the validated token, never from the payload.
type StudentController struct {
	preferenceService *services.PreferenceService
	reportService     *services.ReportService
}

// NewStudentController creates a new StudentController
func NewStudentController(preferenceService *services.PreferenceService, reportService *services.ReportService) *StudentController {
	return &StudentController{
		preferenceService: preferenceService,
		reportService:     reportService,
	}
}

// GetProfile returns the authenticated student's own record
// @Summary Get own profile
// @Description Returns the authenticated student's record including current choices
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	profile, err := c.reportService.Profile(ctx, middleware.RollNoFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// GetStudents returns the authenticated student's batch roster
// @Summary List batch roster
// @Description Returns every student in the caller's batch with selectability flags
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RosterResponse} "Roster retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	batch := middleware.BatchFromContext(ctx)

	roster, err := c.reportService.StudentsByBatch(ctx, batch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RosterResponse{
		Batch:    batch,
		Students: roster,
	}))
}

// SaveSelection records the student's two-teammate nomination
// @Summary Submit teammate selection
// @Description Validates and saves the caller's two choices, then checks for a mutual 3-cycle
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectionRequest true "Exactly two distinct roll numbers"
// @Success 200 {object} dto.APIResponse{data=dto.SelectionResponse} "Selection saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid choices or no attempts left"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Selection phase closed"
// @Failure 409 {object} dto.ErrorResponse "A referenced student is already teamed"
// @Router /team/selection [post]
func (c *StudentController) SaveSelection(ctx *gin.Context) {
	var req dto.SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.preferenceService.Save(ctx, middleware.RollNoFromContext(ctx), req.Choices)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SelectionResponse{
		Saved:            result.Saved,
		EditAttemptsLeft: result.EditAttemptsLeft,
		TeamFormed:       result.TeamFormed,
	}))
}

// GetTeamStatus returns the caller's team state
// @Summary Get own team status
// @Description Returns "formed" with members once teamed, otherwise a bare "pending"
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TeamStatusResponse} "Status retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /team/status [get]
func (c *StudentController) GetTeamStatus(ctx *gin.Context) {
	status, err := c.reportService.TeamStatus(ctx, middleware.RollNoFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(status))
}
