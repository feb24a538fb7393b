package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/knowgrow/agency-backend/errors"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/services"
	"github.com/knowgrow/agency-backend/types"
)

// IdempotencyKeyHeader optionally identifies a logical submission across retries.
const IdempotencyKeyHeader = "Idempotency-Key"

type ContactHandler struct {
	contactService ContactSubmitter
	maxBodyBytes   int64
}

func NewContactHandler(contactService ContactSubmitter, maxBodyBytes int64) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		maxBodyBytes:   maxBodyBytes,
	}
}

// SubmitInquiry godoc
// @Summary Submit a project inquiry
// @Description Validates a contact-form inquiry and relays it to the studio inbox as an email
// @Tags contact
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional key identifying a logical submission"
// @Param request body types.ContactInquiry true "Inquiry details"
// @Success 200 {object} types.ContactSuccessResponse "Inquiry relayed"
// @Failure 400 {object} types.ContactErrorResponse "Missing required fields or invalid email address"
// @Failure 409 {object} types.ContactErrorResponse "Duplicate submission"
// @Failure 429 {object} types.ContactErrorResponse "Too many requests"
// @Failure 500 {object} types.ContactErrorResponse "Failed to send message"
// @Router /api/contact [post]
func (h *ContactHandler) SubmitInquiry(c *gin.Context) {
	requestID := c.GetString(logger.RequestIDKey)

	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var inquiry types.ContactInquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		logger.GetLogger().Warnw("Failed to decode contact inquiry",
			"error", err,
			"request_id", requestID)
		_ = c.Error(apperrors.RequestParseFailed(err))
		return
	}

	result, err := h.contactService.Submit(c.Request.Context(), inquiry, services.SubmitOptions{
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
		RequestID:      requestID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ContactSuccessResponse{
		Success: true,
		Data:    result,
	})
}
