package services

import (
	"context"
	"errors"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/model"
	"github.com/lac-hong-legacy/name_api/services/repositories"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/rs/zerolog/log"
)

type FavoriteService struct {
	appContext.DefaultService

	dbSvc DatabaseService
}

const FAVORITE_SVC = "favorite_svc"

var (
	errRequestNotFound = errors.New("localization request not found")
	errVariantNotFound = errors.New("variant not found for request")
	errDuplicateFav    = errors.New("variant already in favorites")
)

func NewFavoriteService(dbSvc DatabaseService) *FavoriteService {
	return &FavoriteService{dbSvc: dbSvc}
}

func (svc FavoriteService) Id() string {
	return FAVORITE_SVC
}

func (svc *FavoriteService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(DatabaseService)
	return nil
}

// Add favorites a variant for a user. The variant must belong to the given
// request. The unique index on (user_id, request_id, variant_id) is the
// authoritative duplicate guard; the pre-check only gives a cheaper answer.
func (svc *FavoriteService) Add(ctx context.Context, req dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err, "Invalid favorite request", dto.FormatValidationErrors(err))
	}

	db := svc.dbSvc.Db()
	localizations := repositories.NewLocalizationRepository(db)
	favorites := repositories.NewFavoriteRepository(db)

	exists, err := localizations.RequestExists(ctx, req.RequestID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	if !exists {
		return nil, shared.NewNotFoundError(errRequestNotFound, "Localization request not found")
	}

	variant, err := localizations.GetVariant(ctx, req.VariantID)
	if err != nil {
		if repositories.IsRecordNotFound(err) {
			return nil, shared.NewNotFoundError(errVariantNotFound, "Variant not found for this request")
		}
		return nil, svc.dbSvc.HandleError(err)
	}
	if variant.RequestID != req.RequestID {
		return nil, shared.NewNotFoundError(errVariantNotFound, "Variant not found for this request")
	}

	duplicate, err := favorites.Exists(ctx, req.UserID, req.RequestID, req.VariantID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	if duplicate {
		return nil, shared.NewConflictError(errDuplicateFav, "Variant is already in favorites")
	}

	favorite := &model.UserFavorite{
		UserID:    req.UserID,
		RequestID: req.RequestID,
		VariantID: req.VariantID,
	}
	if err := favorites.Create(ctx, favorite); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, shared.NewConflictError(err, "Variant is already in favorites")
		}
		return nil, svc.dbSvc.HandleError(err)
	}

	favoritesAddedTotal.Inc()
	log.Debug().Str("user_id", favorite.UserID).Str("variant_id", favorite.VariantID).Msg("favorite added")

	return &dto.FavoriteResponse{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		RequestID: favorite.RequestID,
		VariantID: favorite.VariantID,
		CreatedAt: favorite.CreatedAt,
	}, nil
}

// Remove reports false both when the favorite does not exist and when it
// belongs to another user.
func (svc *FavoriteService) Remove(ctx context.Context, req dto.RemoveFavoriteRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, shared.NewValidationError(err, "Invalid favorite request", dto.FormatValidationErrors(err))
	}

	removed, err := repositories.NewFavoriteRepository(svc.dbSvc.Db()).DeleteForUser(ctx, req.UserID, req.FavoriteID)
	if err != nil {
		return false, svc.dbSvc.HandleError(err)
	}
	return removed, nil
}

// ListForUser returns each favorited request once, with all of its
// variants, in the order the user favorited them (newest first).
func (svc *FavoriteService) ListForUser(ctx context.Context, userID string) ([]dto.LocalizationResponse, error) {
	if userID == "" {
		return nil, shared.NewValidationError(nil, "user_id is required", nil)
	}

	db := svc.dbSvc.Db()
	favorites, err := repositories.NewFavoriteRepository(db).ListByUser(ctx, userID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	seen := make(map[string]struct{}, len(favorites))
	requestIDs := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		if _, ok := seen[favorite.RequestID]; ok {
			continue
		}
		seen[favorite.RequestID] = struct{}{}
		requestIDs = append(requestIDs, favorite.RequestID)
	}

	requests, err := repositories.NewLocalizationRepository(db).GetRequestsByIDs(ctx, requestIDs)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	responses := make([]dto.LocalizationResponse, 0, len(requestIDs))
	for _, id := range requestIDs {
		request, ok := requests[id]
		if !ok {
			continue
		}
		responses = append(responses, dto.NewLocalizationResponse(&request))
	}
	return responses, nil
}
