package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/usecase/sale"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	listUseCase   *sale.ListSalesUseCase
	createUseCase *sale.CreateSaleUseCase
	updateUseCase *sale.UpdateSaleUseCase
	deleteUseCase *sale.DeleteSaleUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	listUseCase *sale.ListSalesUseCase,
	createUseCase *sale.CreateSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
) *SaleController {
	return &SaleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	input := sale.ListSalesInput{
		UserID:     userID,
		StartDate:  optionalDateQuery(ctx, "start_date"),
		EndDate:    optionalDateQuery(ctx, "end_date"),
		PlatformID: ctx.Query("platform_id"),
	}
	if raw := ctx.Query("product_ids"); raw != "" {
		input.ProductIDs = strings.Split(raw, ",")
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	date, err := time.Parse(valueobject.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidSaleDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		UserID:     userID,
		Date:       date,
		Time:       req.Time,
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		Quantity:   req.Quantity,
		NetAmount:  decimal.NewFromFloat(req.NetAmount),
		Currency:   req.Currency,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// Update handles PATCH /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	saleID, ok := pathID(ctx, "sale")
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := sale.UpdateSaleInput{
		SaleID:     saleID,
		UserID:     userID,
		Time:       req.Time,
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		Quantity:   req.Quantity,
	}

	if req.Date != nil {
		date, err := time.Parse(valueobject.DateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidSaleDate),
			})
			return
		}
		input.Date = &date
	}

	if req.NetAmount != nil {
		amount := decimal.NewFromFloat(*req.NetAmount)
		input.NetAmount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	saleID, ok := pathID(ctx, "sale")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{
		SaleID: saleID,
		UserID: userID,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(c.getStatusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeSaleInternalError),
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSaleQuantity,
		domainerror.ErrCodeNegativeSaleAmount,
		domainerror.ErrCodeInvalidSaleTime,
		domainerror.ErrCodeMissingSaleFields,
		domainerror.ErrCodeInvalidSaleDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
