package services

import (
	"github.com/Zephyls/CW7-S27970/internal/domain"
	"github.com/Zephyls/CW7-S27970/internal/domain/models"
	"github.com/Zephyls/CW7-S27970/internal/repositories"
)

// CatalogService serves the read-only trip catalog.
type CatalogService struct {
	TripRepo repositories.TripRepository
}

// ListTrips returns all trips with their country names. Countries for all
// trips come from one grouped query instead of one query per trip.
func (s CatalogService) ListTrips() ([]models.TripSummary, error) {
	trips, err := s.TripRepo.ListAll()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list trips", Err: err}
	}

	ids := make([]int64, 0, len(trips))
	for _, t := range trips {
		ids = append(ids, t.IDTrip)
	}

	countries, err := s.TripRepo.CountriesByTrips(ids)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to resolve countries", Err: err}
	}

	out := make([]models.TripSummary, 0, len(trips))
	for _, t := range trips {
		names := countries[t.IDTrip]
		if names == nil {
			names = []string{}
		}
		out = append(out, models.TripSummary{Trip: t, Countries: names})
	}
	return out, nil
}
