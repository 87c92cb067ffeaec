package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/usecase/refund"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
)

// RefundController handles refund endpoints.
type RefundController struct {
	listUseCase   *refund.ListRefundsUseCase
	createUseCase *refund.CreateRefundUseCase
}

// NewRefundController creates a new refund controller instance.
func NewRefundController(
	listUseCase *refund.ListRefundsUseCase,
	createUseCase *refund.CreateRefundUseCase,
) *RefundController {
	return &RefundController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /refunds requests.
func (c *RefundController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), refund.ListRefundsInput{
		UserID:    userID,
		StartDate: optionalDateQuery(ctx, "start_date"),
		EndDate:   optionalDateQuery(ctx, "end_date"),
	})
	if err != nil {
		c.handleRefundError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRefundListResponse(output.Refunds))
}

// Create handles POST /refunds requests.
func (c *RefundController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRefundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRefundFields),
		})
		return
	}

	date, err := time.Parse(valueobject.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRefundDate),
		})
		return
	}

	saleID, err := optionalUUID(req.SaleID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
			Code:  string(domainerror.ErrCodeMissingRefundFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), refund.CreateRefundInput{
		UserID:     userID,
		Date:       date,
		SaleID:     saleID,
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		Quantity:   req.Quantity,
		Amount:     decimal.NewFromFloat(req.Amount),
		Reason:     req.Reason,
	})
	if err != nil {
		c.handleRefundError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRefundResponse(output.Refund))
}

// handleRefundError handles refund errors and returns appropriate HTTP responses.
func (c *RefundController) handleRefundError(ctx *gin.Context, err error) {
	var refundErr *domainerror.RefundError
	if errors.As(err, &refundErr) {
		status := http.StatusBadRequest
		if refundErr.Code == domainerror.ErrCodeRefundInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: refundErr.Message,
			Code:  string(refundErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeRefundInternalError),
	})
}
