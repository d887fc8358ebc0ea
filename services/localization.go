package services

import (
	"context"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/model"
	"github.com/lac-hong-legacy/name_api/services/repositories"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type LocalizationService struct {
	appContext.DefaultService

	dbSvc     DatabaseService
	generator VariantGenerator
	cache     LocalizationCache
	group     singleflight.Group

	pageSize int
}

const (
	LOCALIZATION_SVC = "localization_svc"

	DefaultFeedPageSize = 10
	MaxFeedPageSize     = 50
)

var errNoVariants = errors.New("generator returned no variants")

// NewLocalizationService wires the service directly, bypassing the container.
// A nil cache disables caching.
func NewLocalizationService(dbSvc DatabaseService, generator VariantGenerator, cache LocalizationCache) *LocalizationService {
	return &LocalizationService{
		dbSvc:     dbSvc,
		generator: generator,
		cache:     cache,
		pageSize:  DefaultFeedPageSize,
	}
}

func (svc LocalizationService) Id() string {
	return LOCALIZATION_SVC
}

func (svc *LocalizationService) Configure(ctx *appContext.Context) error {
	svc.pageSize = DefaultFeedPageSize
	if sizeStr := os.Getenv("FEED_PAGE_SIZE"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			svc.pageSize = min(size, MaxFeedPageSize)
		}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *LocalizationService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(DatabaseService)
	svc.cache = svc.Service(CACHE_SVC).(*CacheService)
	if svc.generator == nil {
		svc.generator = NewTemplateGenerator()
	}
	return nil
}

// Create persists the request and its generated variants atomically.
func (svc *LocalizationService) Create(ctx context.Context, req dto.CreateLocalizationRequest) (*dto.LocalizationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err, "Invalid localization request", dto.FormatValidationErrors(err))
	}

	if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
		req.UserID = nil
	}

	request := &model.LocalizationRequest{
		OriginalName:     req.OriginalName,
		TargetLanguage:   req.TargetLanguage,
		GenderPreference: req.GenderPreference,
		OutputFormat:     req.OutputFormat,
		Tone:             req.Tone,
		UserID:           req.UserID,
	}

	err := svc.dbSvc.Db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewLocalizationRepository(tx)
		if err := repo.CreateRequest(ctx, request); err != nil {
			return err
		}

		drafts, err := svc.generator.Generate(ctx, dto.GenerationInput{
			OriginalName:     req.OriginalName,
			TargetLanguage:   req.TargetLanguage,
			GenderPreference: req.GenderPreference,
			Tone:             req.Tone,
		})
		if err != nil {
			return shared.NewInternalError(err, "Failed to generate name variants")
		}
		if len(drafts) == 0 {
			return shared.NewInternalError(errNoVariants, "Failed to generate name variants")
		}

		variants := make([]model.NameVariant, 0, len(drafts))
		for _, draft := range drafts {
			if err := draft.Validate(); err != nil {
				return shared.NewInternalError(err, "Generated variant failed validation")
			}
			variants = append(variants, model.NameVariant{
				RequestID:       request.ID,
				VariantType:     draft.VariantType,
				NativeScript:    draft.NativeScript,
				Romanization:    draft.Romanization,
				Meaning:         draft.Meaning,
				Pronunciation:   draft.Pronunciation,
				CulturalNotes:   draft.CulturalNotes,
				ConfidenceScore: roundScore(draft.ConfidenceScore),
			})
		}

		if err := repo.CreateVariants(ctx, variants); err != nil {
			return err
		}
		request.Variants = variants
		return nil
	})
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	response := dto.NewLocalizationResponse(request)
	if svc.cache != nil {
		svc.cache.Set(ctx, response)
	}
	localizationsCreatedTotal.WithLabelValues(request.TargetLanguage).Inc()

	log.Debug().
		Str("id", request.ID).
		Str("target_language", request.TargetLanguage).
		Int("variants", len(request.Variants)).
		Msg("localization created")

	return &response, nil
}

// GetByID returns nil without error when the request does not exist.
func (svc *LocalizationService) GetByID(ctx context.Context, id string) (*dto.LocalizationResponse, error) {
	if svc.cache != nil {
		if cached, ok := svc.cache.Get(ctx, id); ok {
			localizationCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		localizationCacheTotal.WithLabelValues("miss").Inc()
	}

	// the lookup is shared, so one caller cancelling must not fail the others
	lookupCtx := context.WithoutCancel(ctx)
	result, err, _ := svc.group.Do(id, func() (interface{}, error) {
		request, err := repositories.NewLocalizationRepository(svc.dbSvc.Db()).GetRequest(lookupCtx, id)
		if err != nil {
			if repositories.IsRecordNotFound(err) {
				return nil, nil
			}
			return nil, svc.dbSvc.HandleError(err)
		}

		response := dto.NewLocalizationResponse(request)
		if svc.cache != nil {
			svc.cache.Set(lookupCtx, response)
		}
		return &response, nil
	})
	if err != nil {
		return nil, err
	}

	response, _ := result.(*dto.LocalizationResponse)
	if response == nil {
		return nil, nil
	}
	// callers sharing the flight must not alias each other's response
	clone := *response
	return &clone, nil
}

// ListRecent returns the newest requests first with user ids redacted. A
// non-positive limit uses the configured page size.
func (svc *LocalizationService) ListRecent(ctx context.Context, limit int) ([]dto.LocalizationResponse, error) {
	if limit <= 0 {
		limit = svc.pageSize
	}
	limit = min(limit, MaxFeedPageSize)

	requests, err := repositories.NewLocalizationRepository(svc.dbSvc.Db()).ListRecent(ctx, limit)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	responses := make([]dto.LocalizationResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, dto.NewLocalizationResponse(&requests[i]).Redacted())
	}
	return responses, nil
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
