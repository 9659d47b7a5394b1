package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moodtrackr/backend/internal/apierror"
	"github.com/moodtrackr/backend/internal/logger"
	"github.com/moodtrackr/backend/internal/service"
	"github.com/moodtrackr/backend/internal/stats"
)

type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// parsePeriod extracts and validates the period query parameter.
// Writes a problem details response and returns false when invalid.
func parsePeriod(c *gin.Context) (stats.Period, bool) {
	period, err := stats.ParsePeriod(c.Query("period"))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "period", Message: "must be 7, 14, 30 or all", Code: "invalid_period"},
		}))
		return 0, false
	}
	return period, true
}

func (h *StatsHandler) writeInternal(c *gin.Context, view string, telegramID int64, err error) {
	requestID := apierror.GetRequestID(c)
	logger.Ctx(c.Request.Context()).Error("failed to build stats view",
		logger.String("view", view),
		logger.Int64("telegram_id", telegramID),
		logger.Err(err),
	)
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// GetPhysical handles GET /api/v1/stats/physical
func (h *StatsHandler) GetPhysical(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	resp, err := h.statsService.GetPhysicalStats(c.Request.Context(), telegramID, period)
	if err != nil {
		h.writeInternal(c, "physical", telegramID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStress handles GET /api/v1/stats/stress
func (h *StatsHandler) GetStress(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	resp, err := h.statsService.GetStressStats(c.Request.Context(), telegramID, period)
	if err != nil {
		h.writeInternal(c, "stress", telegramID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEmotions handles GET /api/v1/stats/emotions
func (h *StatsHandler) GetEmotions(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	resp, err := h.statsService.GetEmotionStats(c.Request.Context(), telegramID, period)
	if err != nil {
		h.writeInternal(c, "emotions", telegramID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSleep handles GET /api/v1/stats/sleep
func (h *StatsHandler) GetSleep(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	resp, err := h.statsService.GetSleepStats(c.Request.Context(), telegramID, period)
	if err != nil {
		h.writeInternal(c, "sleep", telegramID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getFacetDetails is the shared drill-down path for named facet values
func (h *StatsHandler) getFacetDetails(c *gin.Context, facet stats.Facet) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if name == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "name", Message: "is required", Code: "required"},
		}))
		return
	}

	resp, err := h.statsService.GetFacetDetails(c.Request.Context(), telegramID, facet, name, period)
	if err != nil {
		h.writeInternal(c, string(facet)+"_details", telegramID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSymptomDetails handles GET /api/v1/stats/symptoms/:name
func (h *StatsHandler) GetSymptomDetails(c *gin.Context) {
	h.getFacetDetails(c, stats.FacetSymptom)
}

// GetTriggerDetails handles GET /api/v1/stats/triggers/:name
func (h *StatsHandler) GetTriggerDetails(c *gin.Context) {
	h.getFacetDetails(c, stats.FacetTrigger)
}

// GetEmotionDetails handles GET /api/v1/stats/emotions/:name
func (h *StatsHandler) GetEmotionDetails(c *gin.Context) {
	h.getFacetDetails(c, stats.FacetEmotion)
}
