// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
)

// WebhookSecretHeader carries the shared secret on webhook calls.
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecret rejects requests whose secret header does not match.
// An empty configured secret rejects every request.
func WebhookSecret(secret string) gin.HandlerFunc {
	expected := []byte(secret)

	return func(c *gin.Context) {
		provided := []byte(c.GetHeader(WebhookSecretHeader))

		if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid webhook secret",
				Code:  string(domainerror.ErrCodeInvalidWebhookSecret),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
