package services

import (
	"strings"

	"backoffice/internal/costing"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
	"backoffice/internal/wizard"
)

// TripService layers cost aggregation and number assignment over the
// repository. Function fields exist so tests can stub collaborators.
type TripService struct {
	Repo repositories.TripRepository

	// GenerateNumber defaults to the repository sequence.
	GenerateNumber func() (string, error)
}

// TripWithTotals is the read model for trip detail views: the stored
// aggregate plus freshly recomputed figures.
type TripWithTotals struct {
	Trip    models.Trip     `json:"trip"`
	Totals  costing.Totals  `json:"totals"`
	Pricing costing.Pricing `json:"pricing"`
}

func (s TripService) generateNumber() (string, error) {
	if s.GenerateNumber != nil {
		return s.GenerateNumber()
	}
	return s.Repo.GenerateTripNumber()
}

// GetTripWithTotals loads a trip with details and recomputes its totals
// and pricing from the stored line items. Stored derived fields are not
// trusted for display.
func (s TripService) GetTripWithTotals(id int64) (TripWithTotals, error) {
	trip, err := s.Repo.GetByID(id, true)
	if err != nil {
		return TripWithTotals{}, err
	}
	totals := costing.AggregateTrip(&trip)
	return TripWithTotals{
		Trip:    trip,
		Totals:  totals,
		Pricing: costing.PriceTrip(totals.GrandTotal, trip.TotalCapacity, trip.ProfitMarginPercent),
	}, nil
}

// SaveFromWizard assigns a trip number to first-time saves and hands the
// session to the repository.
func (s TripService) SaveFromWizard(sess *wizard.Session) (wizard.Summary, error) {
	trip := sess.Trip()
	if trip.ID == 0 && strings.TrimSpace(trip.TripNumber) == "" {
		number, err := s.generateNumber()
		if err != nil {
			return wizard.Summary{}, err
		}
		trip.TripNumber = number
	}

	summary, err := sess.Save(s.Repo)
	if err != nil {
		return wizard.Summary{}, err
	}
	utils.LogEvent("", "trips", "saved", "trip_number="+trip.TripNumber)
	return summary, nil
}

// List returns the trip listing rows.
func (s TripService) List() ([]repositories.TripSummary, error) {
	return s.Repo.List()
}

// Delete removes a trip; the repository refuses locked trips.
func (s TripService) Delete(id int64) error {
	return s.Repo.Delete(id)
}
