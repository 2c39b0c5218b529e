package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/usecase/entry"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// EntryController handles entry endpoints.
type EntryController struct {
	listUseCase   *entry.ListEntriesUseCase
	getUseCase    *entry.GetEntryUseCase
	recordUseCase *entry.RecordEntryUseCase
	updateUseCase *entry.UpdateEntryUseCase
	moveUseCase   *entry.MoveEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	recordUseCase *entry.RecordEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	moveUseCase *entry.MoveEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		recordUseCase: recordUseCase,
		updateUseCase: updateUseCase,
		moveUseCase:   moveUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), entry.GetEntryInput{ID: id})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	input := entry.ListEntriesInput{
		FromMonth: ctx.Query("from_month"),
		ToMonth:   ctx.Query("to_month"),
	}
	if planIDStr := ctx.Query("plan_id"); planIDStr != "" {
		planID, err := uuid.Parse(planIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid plan ID format",
			})
			return
		}
		input.PlanID = &planID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidEntryAmount),
		})
		return
	}

	input := entry.RecordEntryInput{
		PlanID:   planID,
		MonthKey: req.MonthKey,
		Amount:   amount,
		Date:     req.Date,
		Notes:    req.Notes,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := entry.UpdateEntryInput{
		ID:        entryID,
		Date:      req.Date,
		ClearDate: req.ClearDate,
		Notes:     req.Notes,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount",
				Code:  string(domainerror.ErrCodeInvalidEntryAmount),
			})
			return
		}
		input.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Move handles PATCH /entries/:id/move requests.
func (c *EntryController) Move(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.MoveEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.moveUseCase.Execute(ctx.Request.Context(), entry.MoveEntryInput{
		ID:       entryID,
		MonthKey: req.MonthKey,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{ID: entryID}); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleEntryError handles entry errors and returns appropriate HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		statusCode := c.getStatusCodeForEntryError(entryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
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

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEntryPlanMissing,
		domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeEntryNotesTooLong,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
