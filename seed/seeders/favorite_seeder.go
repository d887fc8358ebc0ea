package seeders

import (
	"context"
	"log"

	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/services"
	"github.com/lac-hong-legacy/name_api/shared"
)

type FavoriteSeeder struct {
	localizationSvc *services.LocalizationService
	favoriteSvc     *services.FavoriteService
	userID          string
}

func NewFavoriteSeeder(localizationSvc *services.LocalizationService, favoriteSvc *services.FavoriteService, userID string) *FavoriteSeeder {
	return &FavoriteSeeder{
		localizationSvc: localizationSvc,
		favoriteSvc:     favoriteSvc,
		userID:          userID,
	}
}

func (s *FavoriteSeeder) RecentLocalizations() ([]dto.LocalizationResponse, error) {
	return s.localizationSvc.ListRecent(context.Background(), 0)
}

// SeedFavorites favorites the short variant of every given localization.
// Existing favorites are skipped so the seeder can be rerun.
func (s *FavoriteSeeder) SeedFavorites(localizations []dto.LocalizationResponse) error {
	log.Printf("Seeding favorites for user %s...", s.userID)

	ctx := context.Background()
	added := 0
	for _, localization := range localizations {
		if len(localization.Variants) == 0 {
			continue
		}

		_, err := s.favoriteSvc.Add(ctx, dto.AddFavoriteRequest{
			UserID:    s.userID,
			RequestID: localization.ID,
			VariantID: localization.Variants[0].ID,
		})
		if shared.IsConflict(err) {
			log.Printf("Favorite for %s already exists, skipping", localization.ID)
			continue
		}
		if err != nil {
			return err
		}
		added++
	}

	log.Printf("Seeded %d favorites", added)
	return nil
}
