// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase      *dashboard.GetDashboardUseCase
	getDashboardStateUseCase *dashboard.GetDashboardStateUseCase
	exportDashboardUseCase   *dashboard.ExportDashboardUseCase
	getDataRangeUseCase      *dashboard.GetDataRangeUseCase
	defaultTopN              int
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getDashboardStateUseCase *dashboard.GetDashboardStateUseCase,
	exportDashboardUseCase *dashboard.ExportDashboardUseCase,
	getDataRangeUseCase *dashboard.GetDataRangeUseCase,
	defaultTopN int,
) *DashboardController {
	if defaultTopN <= 0 || defaultTopN > dashboard.MaxTopN {
		defaultTopN = dashboard.DefaultTopN
	}
	return &DashboardController{
		getDashboardUseCase:      getDashboardUseCase,
		getDashboardStateUseCase: getDashboardStateUseCase,
		exportDashboardUseCase:   exportDashboardUseCase,
		getDataRangeUseCase:      getDataRangeUseCase,
		defaultTopN:              defaultTopN,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	input, ok := c.parseDashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetDashboardState handles GET /dashboard/state requests.
func (c *DashboardController) GetDashboardState(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getDashboardStateUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardStateInput{
		UserID: userID,
		ViewID: ctx.Query("view_id"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStateResponse(output))
}

// Export handles GET /dashboard/export requests.
func (c *DashboardController) Export(ctx *gin.Context) {
	input, ok := c.parseDashboardInput(ctx)
	if !ok {
		return
	}
	if ctx.Query("view_id") == "" {
		input.ViewID = ""
	}

	output, err := c.exportDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getDataRangeUseCase.Execute(ctx.Request.Context(), dashboard.GetDataRangeInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}

// parseDashboardInput reads the filter query parameters. It writes the error
// response itself and returns false when the request is rejected.
func (c *DashboardController) parseDashboardInput(ctx *gin.Context) (dashboard.GetDashboardInput, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return dashboard.GetDashboardInput{}, false
	}

	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return dashboard.GetDashboardInput{}, false
	}

	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return dashboard.GetDashboardInput{}, false
	}

	startDate, err := time.Parse(valueobject.DateLayout, startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return dashboard.GetDashboardInput{}, false
	}

	endDate, err := time.Parse(valueobject.DateLayout, endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return dashboard.GetDashboardInput{}, false
	}

	topN := c.defaultTopN
	if topStr := ctx.Query("top"); topStr != "" {
		topN, err = strconv.Atoi(topStr)
		if err != nil || topN < 1 || topN > dashboard.MaxTopN {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "top must be an integer between 1 and " + strconv.Itoa(dashboard.MaxTopN),
				Code:  string(domainerror.ErrCodeInvalidTopLimit),
			})
			return dashboard.GetDashboardInput{}, false
		}
	}

	var productIDs []string
	if raw := ctx.Query("product_ids"); raw != "" {
		productIDs = strings.Split(raw, ",")
	}

	return dashboard.GetDashboardInput{
		UserID: userID,
		ViewID: ctx.DefaultQuery("view_id", valueobject.DefaultViewID),
		Filter: valueobject.NewDashboardFilter(
			valueobject.NewDateRange(startDate, endDate),
			productIDs,
		),
		TopN: topN,
	}, true
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidTopLimit,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuperseded:
		return http.StatusConflict
	case domainerror.ErrCodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
