package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/dto"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/middleware"
)

// scenarioHandler handles HTTP requests for saved scenarios.
type scenarioHandler struct {
	scenarioService portssvc.ScenarioSvcFacade
}

func newScenarioHandler(ss portssvc.ScenarioSvcFacade) *scenarioHandler {
	return &scenarioHandler{scenarioService: ss}
}

// registerScenarioRoutes registers routes related to saved scenarios.
func registerScenarioRoutes(rg *gin.RouterGroup, ss portssvc.ScenarioSvcFacade) {
	h := newScenarioHandler(ss)

	scenarios := rg.Group("/scenarios")
	{
		scenarios.POST("", h.createScenario)
		scenarios.GET("", h.listScenarios)
		scenarios.GET("/:scenarioID", h.getScenario)
		scenarios.PUT("/:scenarioID", h.updateScenario)
		scenarios.DELETE("/:scenarioID", h.deleteScenario)
		scenarios.GET("/:scenarioID/projection", h.runScenario)
		scenarios.GET("/:scenarioID/export", h.exportScenario)
	}
}

// requireUser returns the authenticated user or writes 401.
func requireUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// scenarioIDParam returns the path ID or writes 400 when it is not a UUID.
func scenarioIDParam(c *gin.Context) (string, bool) {
	scenarioID := c.Param("scenarioID")
	if _, err := uuid.Parse(scenarioID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid scenario ID format"})
		return "", false
	}
	return scenarioID, true
}

// createScenario godoc
// @Summary Save a scenario
// @Description Validates and stores a named assumption set for the current user.
// @Tags scenarios
// @Accept  json
// @Produce  json
// @Param   scenario body dto.CreateScenarioRequest true "Scenario details"
// @Success 201 {object} dto.ScenarioResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create scenario"
// @Security BearerAuth
// @Router /scenarios [post]
func (h *scenarioHandler) createScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	scenario, err := h.scenarioService.CreateScenario(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create scenario")
		return
	}

	c.JSON(http.StatusCreated, dto.ToScenarioResponse(scenario))
}

// listScenarios godoc
// @Summary List scenarios
// @Description Lists the current user's scenarios, newest first.
// @Tags scenarios
// @Produce  json
// @Param   limit query int false "Page size (max 100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListScenariosResponse
// @Failure 400 {object} ErrorResponse "Invalid query or token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list scenarios"
// @Security BearerAuth
// @Router /scenarios [get]
func (h *scenarioHandler) listScenarios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListScenariosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	resp, err := h.scenarioService.ListScenarios(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list scenarios")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getScenario godoc
// @Summary Get a scenario
// @Tags scenarios
// @Produce  json
// @Param   scenarioID path string true "Scenario ID"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 400 {object} ErrorResponse "Invalid scenario ID"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve scenario"
// @Security BearerAuth
// @Router /scenarios/{scenarioID} [get]
func (h *scenarioHandler) getScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scenarioID, ok := scenarioIDParam(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	scenario, err := h.scenarioService.GetScenario(c.Request.Context(), scenarioID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("scenario_id", scenarioID)), err, "Failed to retrieve scenario")
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioResponse(scenario))
}

// updateScenario godoc
// @Summary Update a scenario
// @Description Renames a scenario and/or replaces its assumptions. The kind cannot change.
// @Tags scenarios
// @Accept  json
// @Produce  json
// @Param   scenarioID path string true "Scenario ID"
// @Param   scenario body dto.UpdateScenarioRequest true "Fields to change"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Failure 409 {object} ErrorResponse "Concurrent modification"
// @Failure 500 {object} ErrorResponse "Failed to update scenario"
// @Security BearerAuth
// @Router /scenarios/{scenarioID} [put]
func (h *scenarioHandler) updateScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scenarioID, ok := scenarioIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(c.Request.Context(), scenarioID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("scenario_id", scenarioID)), err, "Failed to update scenario")
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioResponse(scenario))
}

// deleteScenario godoc
// @Summary Delete a scenario
// @Tags scenarios
// @Param   scenarioID path string true "Scenario ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid scenario ID"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Failure 500 {object} ErrorResponse "Failed to delete scenario"
// @Security BearerAuth
// @Router /scenarios/{scenarioID} [delete]
func (h *scenarioHandler) deleteScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scenarioID, ok := scenarioIDParam(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	if err := h.scenarioService.DeleteScenario(c.Request.Context(), scenarioID, userID); err != nil {
		respondError(c, logger.With(slog.String("scenario_id", scenarioID)), err, "Failed to delete scenario")
		return
	}

	c.Status(http.StatusNoContent)
}

// runScenario godoc
// @Summary Run a scenario
// @Description Recomputes the projection of a saved scenario.
// @Tags scenarios
// @Produce  json
// @Param   scenarioID path string true "Scenario ID"
// @Success 200 {object} dto.ScenarioRunResponse
// @Failure 400 {object} ErrorResponse "Invalid scenario ID"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Failure 500 {object} ErrorResponse "Projection failed"
// @Security BearerAuth
// @Router /scenarios/{scenarioID}/projection [get]
func (h *scenarioHandler) runScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scenarioID, ok := scenarioIDParam(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	run, err := h.scenarioService.RunScenario(c.Request.Context(), scenarioID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("scenario_id", scenarioID)), err, "Failed to run scenario")
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioRunResponse(run))
}

// exportScenario godoc
// @Summary Export a scenario
// @Description Recomputes a saved scenario and returns it as a CSV attachment.
// @Tags scenarios
// @Produce  text/csv
// @Param   scenarioID path string true "Scenario ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid scenario ID"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Failure 500 {object} ErrorResponse "Export failed"
// @Security BearerAuth
// @Router /scenarios/{scenarioID}/export [get]
func (h *scenarioHandler) exportScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scenarioID, ok := scenarioIDParam(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var buf bytes.Buffer
	fileName, err := h.scenarioService.ExportScenario(c.Request.Context(), &buf, scenarioID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("scenario_id", scenarioID)), err, "Failed to export scenario")
		return
	}

	writeCSV(c, fileName, &buf)
}
