package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/dto"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/export"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/middleware"
)

// projectionHandler handles the stateless calculator endpoints.
type projectionHandler struct {
	projectionService portssvc.ProjectionSvcFacade
}

func newProjectionHandler(ps portssvc.ProjectionSvcFacade) *projectionHandler {
	return &projectionHandler{projectionService: ps}
}

// registerProjectionRoutes registers the calculator routes. Extra handlers, such as a rate
// limiter, run before each of them.
func registerProjectionRoutes(rg *gin.RouterGroup, ps portssvc.ProjectionSvcFacade, handlers ...gin.HandlerFunc) {
	h := newProjectionHandler(ps)

	projections := rg.Group("/projections", handlers...)
	{
		projections.POST("/cash-flow", h.calculateCashFlow)
		projections.POST("/cash-flow/export", h.exportCashFlow)
		projections.POST("/financial-model", h.calculateFinancialModel)
		projections.POST("/financial-model/export", h.exportFinancialModel)
		projections.POST("/sensitivity", h.sensitivity)
	}
}

// writeCSV sends a finished export as an attachment.
func writeCSV(c *gin.Context, fileName string, body *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, export.ContentType, body.Bytes())
}

// calculateCashFlow godoc
// @Summary Project 12 months of cash flow
// @Description Runs the cash-timing model: revenue collected after DSO days, costs paid after DPO days.
// @Tags projections
// @Accept  json
// @Produce  json
// @Param   assumptions body dto.CashFlowRequest true "Cash flow assumptions"
// @Success 200 {object} dto.CashFlowProjectionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Projection failed"
// @Router /projections/cash-flow [post]
func (h *projectionHandler) calculateCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	assumptions, err := req.ToAssumptions()
	if err != nil {
		respondError(c, logger, err, "Failed to project cash flow")
		return
	}

	p, err := h.projectionService.CalculateCashFlow(c.Request.Context(), assumptions)
	if err != nil {
		respondError(c, logger, err, "Failed to project cash flow")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowProjectionResponse(p))
}

// exportCashFlow godoc
// @Summary Export a 12-month cash flow projection
// @Description Runs the cash-timing model and returns it as a CSV attachment.
// @Tags projections
// @Accept  json
// @Produce  text/csv
// @Param   assumptions body dto.CashFlowRequest true "Cash flow assumptions"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Export failed"
// @Router /projections/cash-flow/export [post]
func (h *projectionHandler) exportCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	assumptions, err := req.ToAssumptions()
	if err != nil {
		respondError(c, logger, err, "Failed to export cash flow")
		return
	}

	var buf bytes.Buffer
	if err := h.projectionService.ExportCashFlow(c.Request.Context(), &buf, assumptions); err != nil {
		respondError(c, logger, err, "Failed to export cash flow")
		return
	}

	writeCSV(c, h.projectionService.ExportFileName(domain.CashFlowScenario), &buf)
}

// calculateFinancialModel godoc
// @Summary Project a 36-month financial model
// @Description Runs the integrated income statement, balance sheet and cash flow model.
// @Tags projections
// @Accept  json
// @Produce  json
// @Param   assumptions body dto.FinancialModelRequest true "Model assumptions"
// @Success 200 {object} dto.FinancialModelResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Projection failed"
// @Router /projections/financial-model [post]
func (h *projectionHandler) calculateFinancialModel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FinancialModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	fm, err := h.projectionService.CalculateFinancialModel(c.Request.Context(), req.ToAssumptions())
	if err != nil {
		respondError(c, logger, err, "Failed to project financial model")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialModelResponse(fm))
}

// exportFinancialModel godoc
// @Summary Export a 36-month financial model
// @Description Runs the integrated model and returns it as a CSV attachment.
// @Tags projections
// @Accept  json
// @Produce  text/csv
// @Param   assumptions body dto.FinancialModelRequest true "Model assumptions"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Export failed"
// @Router /projections/financial-model/export [post]
func (h *projectionHandler) exportFinancialModel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FinancialModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	var buf bytes.Buffer
	if err := h.projectionService.ExportFinancialModel(c.Request.Context(), &buf, req.ToAssumptions()); err != nil {
		respondError(c, logger, err, "Failed to export financial model")
		return
	}

	writeCSV(c, h.projectionService.ExportFileName(domain.FinancialModelScenario), &buf)
}

// sensitivity godoc
// @Summary Compare what-if variants
// @Description Re-runs one model with revenue and cost inputs scaled per variant. The base case is always the first result.
// @Tags projections
// @Accept  json
// @Produce  json
// @Param   request body dto.SensitivityRequest true "Base assumptions and variants"
// @Success 200 {object} dto.SensitivityResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Sensitivity run failed"
// @Router /projections/sensitivity [post]
func (h *projectionHandler) sensitivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("kind", string(req.Kind)), slog.Int("variants", len(req.Variants)))

	var (
		results []domain.SensitivityResult
		err     error
	)
	switch req.Kind {
	case domain.CashFlowScenario:
		if req.CashFlow == nil {
			err = fmt.Errorf("%w: cashFlow assumptions are required", apperrors.ErrValidation)
			break
		}
		var assumptions domain.CashFlowAssumptions
		if assumptions, err = req.CashFlow.ToAssumptions(); err == nil {
			results, err = h.projectionService.CashFlowSensitivity(c.Request.Context(), assumptions, req.ToVariants())
		}
	case domain.FinancialModelScenario:
		if req.Model == nil {
			err = fmt.Errorf("%w: model assumptions are required", apperrors.ErrValidation)
			break
		}
		results, err = h.projectionService.ModelSensitivity(c.Request.Context(), req.Model.ToAssumptions(), req.ToVariants())
	default:
		err = fmt.Errorf("%w: unknown kind %q", apperrors.ErrValidation, req.Kind)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to run sensitivity analysis")
		return
	}

	for i := range results {
		results[i].Summary = dto.RoundSummary(results[i].Summary)
	}
	c.JSON(http.StatusOK, dto.SensitivityResponse{Kind: req.Kind, Results: results})
}
