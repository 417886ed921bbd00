package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"glowAdvisor/domain"
	"glowAdvisor/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

// CatalogProvider supplies the candidate items to score. The catalog
// service implements it with a cache in front of the database.
type CatalogProvider interface {
	InStockItems(ctx context.Context) ([]domain.RawItem, error)
}

// ConsultationRepository persists submitted questionnaires and their
// recommendation snapshots.
type ConsultationRepository interface {
	Save(ctx context.Context, consultation *domain.Consultation) error
	FindByID(ctx context.Context, id string) (domain.Consultation, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Consultation, error)
}

// ---- Usecase / Service ----

type RecommendService struct {
	catalog     CatalogProvider
	consultRepo ConsultationRepository
	opts        Options
}

func NewRecommendService(catalog CatalogProvider, consultRepo ConsultationRepository, opts Options) *RecommendService {
	return &RecommendService{
		catalog:     catalog,
		consultRepo: consultRepo,
		opts:        opts,
	}
}

// CreateConsultation runs the engine for one submitted questionnaire against
// the live catalog and stores the resulting snapshot.
func (s *RecommendService) CreateConsultation(ctx context.Context, userID uint, responses domain.RawResponses) (domain.Consultation, domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}
	if len(responses) == 0 {
		return domain.Consultation{}, domain.RecommendationResult{}, errors.New("responses are required")
	}

	rawItems, err := s.catalog.InStockItems(ctx)
	if err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, fmt.Errorf("load catalog: %w", err)
	}

	result := BuildRecommendationsWith(responses, rawItems, s.opts)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommendation_built",
		"trace_id", tid,
		"user_id", userID,
		"candidate_count", len(rawItems),
		"categories_filled", len(result.Recommendations),
		"notices", len(result.Notices),
	)

	snapshot, err := json.Marshal(result)
	if err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, fmt.Errorf("marshal result snapshot: %w", err)
	}

	consultation := domain.Consultation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Responses: datatypes.JSONMap(responses),
		Result:    snapshot,
	}

	if err := s.consultRepo.Save(ctx, &consultation); err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, fmt.Errorf("save consultation: %w", err)
	}

	ConsultationsTotal.Inc()

	return consultation, result, nil
}

// GetConsultation replays a stored snapshot.
func (s *RecommendService) GetConsultation(ctx context.Context, id string) (domain.Consultation, domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	consultation, err := s.consultRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, err
	}

	var result domain.RecommendationResult
	if err := json.Unmarshal(consultation.Result, &result); err != nil {
		return domain.Consultation{}, domain.RecommendationResult{}, fmt.Errorf("unmarshal result snapshot: %w", err)
	}

	return consultation, result, nil
}

// GetUserConsultations lists a user's stored consultations, newest first.
func (s *RecommendService) GetUserConsultations(ctx context.Context, userID uint) ([]domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.consultRepo.FindByUser(ctx, userID)
}
