package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/usecase/plan"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// PlanController handles plan endpoints.
type PlanController struct {
	listUseCase   *plan.ListPlansUseCase
	getUseCase    *plan.GetPlanUseCase
	createUseCase *plan.CreatePlanUseCase
	updateUseCase *plan.UpdatePlanUseCase
	deleteUseCase *plan.DeletePlanUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	listUseCase *plan.ListPlansUseCase,
	getUseCase *plan.GetPlanUseCase,
	createUseCase *plan.CreatePlanUseCase,
	updateUseCase *plan.UpdatePlanUseCase,
	deleteUseCase *plan.DeletePlanUseCase,
) *PlanController {
	return &PlanController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /plans requests.
func (c *PlanController) List(ctx *gin.Context) {
	input := plan.ListPlansInput{}
	if status := ctx.Query("status"); status != "" {
		planStatus := entity.PlanStatus(status)
		input.Status = &planStatus
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve plans",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanListResponse(output.Plans))
}

// Get handles GET /plans/:id requests.
func (c *PlanController) Get(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), plan.GetPlanInput{ID: planID})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanResponse(output.Plan))
}

// Create handles POST /plans requests.
func (c *PlanController) Create(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	amount, err := decimal.NewFromString(req.ExpectedAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expected amount",
			Code:  string(domainerror.ErrCodeInvalidPlanAmount),
		})
		return
	}

	input := plan.CreatePlanInput{
		CategoryID:     categoryID,
		Name:           req.Name,
		ExpectedAmount: amount,
		Frequency:      entity.PlanFrequency(req.Frequency),
		StartMonth:     req.StartMonth,
		EndMonth:       req.EndMonth,
		DayOfMonth:     req.DayOfMonth,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlanResponse(output.Plan))
}

// Update handles PATCH /plans/:id requests.
func (c *PlanController) Update(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	var req dto.UpdatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := plan.UpdatePlanInput{
		ID:            planID,
		Name:          req.Name,
		StartMonth:    req.StartMonth,
		EndMonth:      req.EndMonth,
		ClearEndMonth: req.ClearEndMonth,
		DayOfMonth:    req.DayOfMonth,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.ExpectedAmount != nil {
		amount, err := decimal.NewFromString(*req.ExpectedAmount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid expected amount",
				Code:  string(domainerror.ErrCodeInvalidPlanAmount),
			})
			return
		}
		input.ExpectedAmount = &amount
	}
	if req.Frequency != nil {
		frequency := entity.PlanFrequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.Status != nil {
		status := entity.PlanStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanResponse(output.Plan))
}

// Delete handles DELETE /plans/:id requests.
func (c *PlanController) Delete(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), plan.DeletePlanInput{ID: planID}); err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePlanError handles plan errors and returns appropriate HTTP responses.
func (c *PlanController) handlePlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		statusCode := c.getStatusCodeForPlanError(planErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	var monthErr *domainerror.MonthError
	if errors.As(err, &monthErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: monthErr.Message,
			Code:  string(monthErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPlanError maps plan error codes to HTTP status codes.
func (c *PlanController) getStatusCodeForPlanError(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPlanFrequency,
		domainerror.ErrCodeInvalidPlanAmount,
		domainerror.ErrCodePlanNameRequired,
		domainerror.ErrCodeInvalidPlanMonthOrder,
		domainerror.ErrCodePlanCategoryMissing,
		domainerror.ErrCodeInvalidDayOfMonth,
		domainerror.ErrCodeMissingPlanFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
