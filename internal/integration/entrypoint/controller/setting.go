package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/application/usecase/setting"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingController handles setting endpoints.
type SettingController struct {
	listUseCase   *setting.ListSettingsUseCase
	getUseCase    *setting.GetSettingUseCase
	updateUseCase *setting.UpdateSettingUseCase
}

// NewSettingController creates a new setting controller instance.
func NewSettingController(
	listUseCase *setting.ListSettingsUseCase,
	getUseCase *setting.GetSettingUseCase,
	updateUseCase *setting.UpdateSettingUseCase,
) *SettingController {
	return &SettingController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /settings requests.
func (c *SettingController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingListResponse(output.Settings))
}

// Get handles GET /settings/:key requests.
func (c *SettingController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), setting.GetSettingInput{
		Key: ctx.Param("key"),
	})
	if err != nil {
		c.handleSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponse(output.Setting))
}

// Update handles PUT /settings/:key requests.
func (c *SettingController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), setting.UpdateSettingInput{
		Key:   ctx.Param("key"),
		Value: req.Value,
	})
	if err != nil {
		c.handleSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponse(output.Setting))
}

// handleSettingError handles setting errors and returns appropriate HTTP responses.
func (c *SettingController) handleSettingError(ctx *gin.Context, err error) {
	var settingErr *domainerror.SettingError
	if errors.As(err, &settingErr) {
		statusCode := http.StatusBadRequest
		if settingErr.Code == domainerror.ErrCodeSettingNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: settingErr.Message,
			Code:  string(settingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
