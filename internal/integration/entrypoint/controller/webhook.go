package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/usecase/webhook"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
)

// WebhookController receives sale and refund notifications from sales platforms.
type WebhookController struct {
	ingestSaleUseCase   *webhook.IngestSaleUseCase
	ingestRefundUseCase *webhook.IngestRefundUseCase
}

// NewWebhookController creates a new webhook controller instance.
func NewWebhookController(
	ingestSaleUseCase *webhook.IngestSaleUseCase,
	ingestRefundUseCase *webhook.IngestRefundUseCase,
) *WebhookController {
	return &WebhookController{
		ingestSaleUseCase:   ingestSaleUseCase,
		ingestRefundUseCase: ingestRefundUseCase,
	}
}

// Sale handles POST /webhooks/sale requests.
func (c *WebhookController) Sale(ctx *gin.Context) {
	var req dto.SaleWebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid webhook payload",
			Code:  string(domainerror.ErrCodeWebhookInvalidPayload),
		})
		return
	}

	output, err := c.ingestSaleUseCase.Execute(ctx.Request.Context(), webhook.IngestSaleInput{
		UserID:     req.UserID,
		Date:       req.Date,
		Time:       req.Time,
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		Quantity:   req.Quantity,
		NetAmount:  decimal.NewFromFloat(req.NetAmount),
		Currency:   req.Currency,
	})
	if err != nil {
		c.handleWebhookError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.WebhookResponse{
		Success: true,
		Message: "Sale recorded",
		SaleID:  output.SaleID.String(),
	})
}

// Refund handles POST /webhooks/refund requests.
func (c *WebhookController) Refund(ctx *gin.Context) {
	var req dto.RefundWebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid webhook payload",
			Code:  string(domainerror.ErrCodeWebhookInvalidPayload),
		})
		return
	}

	output, err := c.ingestRefundUseCase.Execute(ctx.Request.Context(), webhook.IngestRefundInput{
		UserID:       req.UserID,
		Date:         req.Date,
		SaleID:       req.SaleID,
		ProductID:    req.ProductID,
		PlatformID:   req.PlatformID,
		Quantity:     req.Quantity,
		RefundAmount: decimal.NewFromFloat(req.RefundAmount),
		Reason:       req.Reason,
	})
	if err != nil {
		c.handleWebhookError(ctx, err)
		return
	}

	message := "Refund recorded"
	if !output.Linked {
		message = "Refund recorded without a matching sale"
	}

	ctx.JSON(http.StatusCreated, dto.WebhookResponse{
		Success:  true,
		Message:  message,
		RefundID: output.RefundID.String(),
	})
}

// handleWebhookError handles webhook errors and returns appropriate HTTP responses.
func (c *WebhookController) handleWebhookError(ctx *gin.Context, err error) {
	var whErr *domainerror.WebhookError
	if errors.As(err, &whErr) {
		status := http.StatusBadRequest
		if whErr.Code == domainerror.ErrCodeWebhookInternalError {
			status = http.StatusInternalServerError
			slog.Error("Failed to ingest webhook", "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: whErr.Message,
			Code:  string(whErr.Code),
		})
		return
	}

	slog.Error("Failed to ingest webhook", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeWebhookInternalError),
	})
}
