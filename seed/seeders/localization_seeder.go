package seeders

import (
	"context"
	"log"

	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/services"
	"github.com/lac-hong-legacy/name_api/shared"
)

type LocalizationSeeder struct {
	localizationSvc *services.LocalizationService
	userID          string
}

func NewLocalizationSeeder(localizationSvc *services.LocalizationService, userID string) *LocalizationSeeder {
	return &LocalizationSeeder{localizationSvc: localizationSvc, userID: userID}
}

func (s *LocalizationSeeder) SeedLocalizations() ([]dto.LocalizationResponse, error) {
	log.Println("Seeding localizations...")

	ctx := context.Background()
	created := make([]dto.LocalizationResponse, 0, len(demoRequests))
	for _, demo := range demoRequests {
		req := demo.request
		if demo.owned {
			owner := s.userID
			req.UserID = &owner
		}

		res, err := s.localizationSvc.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		created = append(created, *res)
		log.Printf("Created localization %s for %q (%s)", res.ID, res.OriginalName, res.TargetLanguage)
	}

	log.Printf("Seeded %d localizations", len(created))
	return created, nil
}

type demoRequest struct {
	request dto.CreateLocalizationRequest
	owned   bool
}

// Unowned entries are guest requests.
var demoRequests = []demoRequest{
	{
		request: dto.CreateLocalizationRequest{
			OriginalName:     "Emma",
			TargetLanguage:   shared.LanguageChinese,
			GenderPreference: shared.GenderFemale,
			OutputFormat:     shared.FormatBoth,
			Tone:             shared.ToneModern,
		},
		owned: true,
	},
	{
		request: dto.CreateLocalizationRequest{
			OriginalName:     "Liam",
			TargetLanguage:   shared.LanguageJapanese,
			GenderPreference: shared.GenderMale,
			OutputFormat:     shared.FormatBoth,
			Tone:             shared.ToneTraditional,
		},
		owned: true,
	},
	{
		request: dto.CreateLocalizationRequest{
			OriginalName:     "Alex",
			TargetLanguage:   shared.LanguageChinese,
			GenderPreference: shared.GenderAny,
			OutputFormat:     shared.FormatNative,
			Tone:             shared.ToneCasual,
		},
	},
	{
		request: dto.CreateLocalizationRequest{
			OriginalName:     "Sofia",
			TargetLanguage:   shared.LanguageJapanese,
			GenderPreference: shared.GenderFemale,
			OutputFormat:     shared.FormatRomanization,
			Tone:             shared.ToneFormal,
		},
	},
}
