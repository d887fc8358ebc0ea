package seeders

import (
	"log"

	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/services"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	localizations *LocalizationSeeder
	favorites     *FavoriteSeeder
}

func NewMainSeeder(db services.DatabaseService, userID string) *MainSeeder {
	localizationSvc := services.NewLocalizationService(db, services.NewTemplateGenerator(), nil)
	favoriteSvc := services.NewFavoriteService(db)

	return &MainSeeder{
		localizations: NewLocalizationSeeder(localizationSvc, userID),
		favorites:     NewFavoriteSeeder(localizationSvc, favoriteSvc, userID),
	}
}

// SeedAll seeds localizations first since favorites reference them.
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	created, err := s.localizations.SeedLocalizations()
	if err != nil {
		log.Printf("Localization seeding failed: %v", err)
		return err
	}

	if err := s.favorites.SeedFavorites(created); err != nil {
		log.Printf("Favorite seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedLocalizationsOnly() ([]dto.LocalizationResponse, error) {
	return s.localizations.SeedLocalizations()
}

func (s *MainSeeder) SeedFavoritesOnly() error {
	recent, err := s.favorites.RecentLocalizations()
	if err != nil {
		return err
	}
	return s.favorites.SeedFavorites(recent)
}
