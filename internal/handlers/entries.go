package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodtrackr/backend/internal/apierror"
	"github.com/moodtrackr/backend/internal/logger"
	"github.com/moodtrackr/backend/internal/models"
	"github.com/moodtrackr/backend/internal/service"
)

type EntriesHandler struct {
	entriesService service.EntriesService
}

// NewEntriesHandler creates a new entries handler
func NewEntriesHandler(entriesService service.EntriesService) *EntriesHandler {
	return &EntriesHandler{
		entriesService: entriesService,
	}
}

// parseTelegramID extracts and validates the telegramId query parameter.
// Writes a problem details response and returns false when invalid.
func parseTelegramID(c *gin.Context) (int64, bool) {
	raw := c.Query("telegramId")
	if raw == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "telegramId", Message: "is required", Code: "required"},
		}))
		return 0, false
	}

	telegramID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "telegramId", Message: "must be a number", Code: "invalid_number"},
		}))
		return 0, false
	}

	return telegramID, true
}

// GetEntries handles GET /entries
func (h *EntriesHandler) GetEntries(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}

	entries, userFound, err := h.entriesService.GetEntries(c.Request.Context(), telegramID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to fetch entries",
			logger.Int64("telegram_id", telegramID),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, models.EntriesResponse{
		Entries:   entries,
		UserFound: userFound,
		Count:     len(entries),
	})
}
