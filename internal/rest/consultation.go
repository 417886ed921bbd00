package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"glowAdvisor/domain"
	"glowAdvisor/pkg/logger"
	"glowAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ConsultationHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
		timeout          time.Duration
	}

	RecommendService interface {
		CreateConsultation(ctx context.Context, userID uint, responses domain.RawResponses) (domain.Consultation, domain.RecommendationResult, error)
		GetConsultation(ctx context.Context, id string) (domain.Consultation, domain.RecommendationResult, error)
		GetUserConsultations(ctx context.Context, userID uint) ([]domain.Consultation, error)
	}

	CreateConsultationRequest struct {
		Responses map[string]any `json:"responses" validate:"required,min=1"`
	}

	ConsultationResponse struct {
		ID        string                      `json:"id"`
		CreatedAt time.Time                   `json:"created_at"`
		Result    domain.RecommendationResult `json:"result"`
	}
)

func NewConsultationHandler(svc RecommendService) *ConsultationHandler {
	return &ConsultationHandler{
		validate:         validator.New(),
		recommendService: svc,
		timeout:          15 * time.Second,
	}
}

// CreateConsultation runs the questionnaire through the engine and returns
// the stored snapshot.
func (h *ConsultationHandler) CreateConsultation(c echo.Context) error {
	start := time.Now()

	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateConsultationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	consultation, result, err := h.recommendService.CreateConsultation(ctx, userID, domain.RawResponses(req.Responses))
	if err != nil {
		logger.Error("Failed to create consultation", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.ConsultRequests.Inc()
	metrics.ConsultLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(ConsultationResponse{
		ID:        consultation.ID,
		CreatedAt: consultation.CreatedAt,
		Result:    result,
	}))
}

// GetConsultation replays a stored consultation snapshot.
func (h *ConsultationHandler) GetConsultation(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	consultation, result, err := h.recommendService.GetConsultation(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get consultation", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	// users may only read their own consultations, admins may read any
	if userID, ok := c.Get("user_id").(uint); ok {
		role, _ := c.Get("role").(string)
		if consultation.UserID != userID && strings.ToUpper(role) != "ADMIN" {
			return c.JSON(http.StatusForbidden, ResponseError{Message: "forbidden"})
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ConsultationResponse{
		ID:        consultation.ID,
		CreatedAt: consultation.CreatedAt,
		Result:    result,
	}))
}

// GetMyConsultations lists the caller's consultations, newest first.
func (h *ConsultationHandler) GetMyConsultations(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	consultations, err := h.recommendService.GetUserConsultations(ctx, userID)
	if err != nil {
		logger.Error("Failed to list consultations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(consultations))
}
