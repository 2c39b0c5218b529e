package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/usecase/projection"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// MaxWindowMonths caps the requested projection window length.
const MaxWindowMonths = 120

// ProjectionController handles projection endpoints.
type ProjectionController struct {
	getUseCase        *projection.GetProjectionUseCase
	affordableUseCase *projection.EarliestAffordableUseCase
}

// NewProjectionController creates a new projection controller instance.
func NewProjectionController(
	getUseCase *projection.GetProjectionUseCase,
	affordableUseCase *projection.EarliestAffordableUseCase,
) *ProjectionController {
	return &ProjectionController{
		getUseCase:        getUseCase,
		affordableUseCase: affordableUseCase,
	}
}

// Get handles GET /projection requests. The window defaults to the current
// month and the default length when start_month or months are omitted.
func (c *ProjectionController) Get(ctx *gin.Context) {
	months, ok := c.parseMonths(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), projection.GetProjectionInput{
		StartMonth: ctx.Query("start_month"),
		Months:     months,
	})
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	summaries := make([]dto.MonthSummaryResponse, len(output.Summaries))
	for i := range output.Summaries {
		summaries[i] = dto.ToMonthSummaryResponse(&output.Summaries[i])
	}

	ctx.JSON(http.StatusOK, dto.ProjectionResponse{
		StartMonth:      output.StartMonth,
		Months:          output.Months,
		StartingBalance: output.StartingBalance.String(),
		Summaries:       summaries,
	})
}

// Affordable handles GET /projection/affordable requests.
func (c *ProjectionController) Affordable(ctx *gin.Context) {
	amountStr := ctx.Query("amount")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil || amount.IsNegative() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount must be a non-negative decimal",
		})
		return
	}

	months, ok := c.parseMonths(ctx)
	if !ok {
		return
	}

	output, err := c.affordableUseCase.Execute(ctx.Request.Context(), projection.EarliestAffordableInput{
		Amount:     amount,
		StartMonth: ctx.Query("start_month"),
		Months:     months,
	})
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AffordabilityResponse{
		Amount:      amount.String(),
		Affordable:  output.Found,
		MonthKey:    output.MonthKey,
		DisplayName: output.DisplayName,
	})
}

// parseMonths reads the months query parameter, writing the error response
// itself when the value is unusable.
func (c *ProjectionController) parseMonths(ctx *gin.Context) (int, bool) {
	monthsStr := ctx.Query("months")
	if monthsStr == "" {
		return 0, true
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil || months < 1 || months > MaxWindowMonths {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "months must be an integer between 1 and 120",
			Code:  string(domainerror.ErrCodeInvalidMonthCount),
		})
		return 0, false
	}
	return months, true
}

// handleProjectionError handles projection errors and returns appropriate
// HTTP responses.
func (c *ProjectionController) handleProjectionError(ctx *gin.Context, err error) {
	var monthErr *domainerror.MonthError
	if errors.As(err, &monthErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: monthErr.Message,
			Code:  string(monthErr.Code),
		})
		return
	}

	var projErr *domainerror.ProjectionError
	if errors.As(err, &projErr) {
		// Referential breakage between stored records is a server-side
		// data problem, not a caller mistake.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: projErr.Message,
			Code:  string(projErr.Code),
		})
		return
	}

	var settingErr *domainerror.SettingError
	if errors.As(err, &settingErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: settingErr.Message,
			Code:  string(settingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
