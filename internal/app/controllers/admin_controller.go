package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/app/models/dto"
	"github.com/arnav/teamforge/internal/app/services"
	"github.com/arnav/teamforge/internal/middleware"
)

// AdminController handles the admin routes: gate toggling, finalization,
// manual team override, dissolution, export rows, and the dashboard.
type AdminController struct {
	selectionService *services.SelectionService
	teamService      *services.TeamService
	reportService    *services.ReportService
}

// NewAdminController creates a new AdminController
func NewAdminController(selectionService *services.SelectionService, teamService *services.TeamService, reportService *services.ReportService) *AdminController {
	return &AdminController{
		selectionService: selectionService,
		teamService:      teamService,
		reportService:    reportService,
	}
}

func bindBatch(ctx *gin.Context) (models.Batch, bool) {
	var req dto.BatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !req.Batch.Valid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Valid batch (A or B) required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return req.Batch, true
}

func queryBatch(ctx *gin.Context) (models.Batch, bool) {
	batch := models.Batch(ctx.Query("batch"))
	if !batch.Valid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Valid batch (A or B) required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return batch, true
}

// Finalize groups every remaining unassigned student in the batch
// @Summary Finalize a batch
// @Description Closes the selection gate and groups all unassigned students into teams
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Target batch"
// @Success 200 {object} dto.APIResponse{data=dto.FinalizeResponse} "Batch finalized"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch"
// @Failure 401 {object} dto.ErrorResponse "Admin key missing"
// @Failure 403 {object} dto.ErrorResponse "Invalid admin key"
// @Router /admin/finalize [post]
func (c *AdminController) Finalize(ctx *gin.Context) {
	batch, ok := bindBatch(ctx)
	if !ok {
		return
	}

	created, err := c.teamService.Finalize(ctx, batch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FinalizeResponse{
		Finalized:    true,
		TeamsCreated: created,
	}))
}

// OpenSelection opens the batch's selection gate
// @Summary Open selection
// @Description Allows preference submission for the batch
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Target batch"
// @Success 200 {object} dto.APIResponse{data=dto.SelectionState} "Gate opened"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch"
// @Router /admin/selection/open [post]
func (c *AdminController) OpenSelection(ctx *gin.Context) {
	c.toggleSelection(ctx, true)
}

// CloseSelection closes the batch's selection gate
// @Summary Close selection
// @Description Blocks preference submission for the batch
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Target batch"
// @Success 200 {object} dto.APIResponse{data=dto.SelectionState} "Gate closed"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch"
// @Router /admin/selection/close [post]
func (c *AdminController) CloseSelection(ctx *gin.Context) {
	c.toggleSelection(ctx, false)
}

func (c *AdminController) toggleSelection(ctx *gin.Context, open bool) {
	batch, ok := bindBatch(ctx)
	if !ok {
		return
	}

	var err error
	if open {
		err = c.selectionService.Open(ctx, batch)
	} else {
		err = c.selectionService.Close(ctx, batch)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SelectionState{SelectionOpen: open}))
}

// SelectionStatus reports the gate state of every batch
// @Summary Selection gate status
// @Description Returns the open/closed state of both batches
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse "Gate states keyed by batch"
// @Router /admin/selection/status [get]
func (c *AdminController) SelectionStatus(ctx *gin.Context) {
	status, err := c.selectionService.Status(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make(map[models.Batch]dto.SelectionState, len(status))
	for batch, open := range status {
		resp[batch] = dto.SelectionState{SelectionOpen: open}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// CreateTeam creates a team by admin override
// @Summary Create a team manually
// @Description Commits a team of 1-3 students directly, bypassing consensus
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ManualTeamRequest true "Batch and members in desired order"
// @Success 201 {object} dto.APIResponse{data=models.Team} "Team created"
// @Failure 400 {object} dto.ErrorResponse "Invalid size or cross-batch member"
// @Failure 404 {object} dto.ErrorResponse "A member does not exist"
// @Failure 409 {object} dto.ErrorResponse "A member is already teamed"
// @Router /admin/teams [post]
func (c *AdminController) CreateTeam(ctx *gin.Context) {
	var req dto.ManualTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid team payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	team, err := c.teamService.ManualCreate(ctx, req.Batch, req.Members)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(team))
}

// DissolveTeam deletes a team and unassigns its members
// @Summary Dissolve a team
// @Description Clears team membership for every member and deletes the team
// @Tags admin
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.DissolveResponse} "Team dissolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid team ID"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /admin/teams/{id} [delete]
func (c *AdminController) DissolveTeam(ctx *gin.Context) {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Team ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.teamService.Dissolve(ctx, teamID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DissolveResponse{Success: true}))
}

// ExportTeams returns the spreadsheet rows for a batch
// @Summary Export team rows
// @Description Returns one row per team with up to three member roll/name pairs
// @Tags admin
// @Produce json
// @Param batch query string true "Target batch" Enums(A, B)
// @Success 200 {object} dto.APIResponse{data=[]dto.ExportRow} "Rows retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch"
// @Router /admin/export/teams [get]
func (c *AdminController) ExportTeams(ctx *gin.Context) {
	batch, ok := queryBatch(ctx)
	if !ok {
		return
	}

	rows, err := c.reportService.ExportRows(ctx, batch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// Dashboard returns the admin aggregate for a batch
// @Summary Admin dashboard
// @Description Returns every student with live choices plus all committed teams
// @Tags admin
// @Produce json
// @Param batch query string true "Target batch" Enums(A, B)
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	batch, ok := queryBatch(ctx)
	if !ok {
		return
	}

	dashboard, err := c.reportService.Dashboard(ctx, batch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}
