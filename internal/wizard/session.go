package wizard

import (
	"strconv"

	"backoffice/internal/costing"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// TripStore is the persistence collaborator the wizard hands the
// aggregate to on final save.
type TripStore interface {
	GetByID(id int64, includeDetails bool) (models.Trip, error)
	Create(t *models.Trip) error
	Update(t *models.Trip) error
}

// Session owns one in-memory trip aggregate for its whole lifetime.
// Nothing is shared across sessions; cancelling simply drops the
// session and the aggregate with it.
type Session struct {
	trip      *models.Trip
	step      Step
	requestID string

	basic         BasicInfoForm
	program       ProgramForm
	transport     TransportForm
	accommodation AccommodationForm
	guide         GuideForm
	expenses      ExpenseForm
	optional      OptionalTourForm

	// Exchange rates the user typed this session, by accommodation row
	// position. The aggregate does not carry the distinction, so it must
	// survive flush/restore here or a currency switch after navigating
	// away would clobber an explicit rate with the default table.
	ratesEdited []bool
}

// NewSession starts a wizard over a loaded trip, or over a fresh
// aggregate when trip is nil. A trip locked by the booking subsystem is
// rejected up front.
func NewSession(trip *models.Trip, requestID string) (*Session, error) {
	if trip == nil {
		trip = &models.Trip{ProfitMarginPercent: 20}
	}
	if trip.IsLockedForTrips {
		return nil, domain.ConflictError{Resource: "trip", Msg: "locked by the booking subsystem"}
	}
	if trip.ProfitMarginPercent == 0 {
		trip.ProfitMarginPercent = 20
	}

	// Legacy fallback: trips saved before per-class counts existed carry
	// only a total capacity. Split 70/30 so the basic-info page has
	// something to show; the user's entry wins from then on.
	if trip.TotalCapacity > 0 && trip.AdultCount == 0 && trip.ChildCount == 0 {
		trip.AdultCount = int(float64(trip.TotalCapacity) * 0.7)
		trip.ChildCount = trip.TotalCapacity - trip.AdultCount
	}

	s := &Session{trip: trip, requestID: requestID}
	s.restoreAll()
	utils.LogEvent(requestID, "wizard", "session_start", "trip_id="+strconv.FormatInt(trip.ID, 10))
	return s, nil
}

func (s *Session) Step() Step { return s.step }

// Trip exposes the aggregate for read-side collaborators (summary
// labels, persistence). Mutation goes through the step forms.
func (s *Session) Trip() *models.Trip { return s.trip }

func (s *Session) BasicInfo() *BasicInfoForm         { return &s.basic }
func (s *Session) Program() *ProgramForm             { return &s.program }
func (s *Session) Transport() *TransportForm         { return &s.transport }
func (s *Session) Accommodation() *AccommodationForm { return &s.accommodation }
func (s *Session) Guide() *GuideForm                 { return &s.guide }
func (s *Session) Expenses() *ExpenseForm            { return &s.expenses }
func (s *Session) OptionalTours() *OptionalTourForm  { return &s.optional }

// Next validates the current step, flushes it into the aggregate and
// advances. On validation failure the step does not move.
func (s *Session) Next() error {
	if s.step.IsLast() {
		return domain.ValidationError{Msg: "review is the last step; use save"}
	}
	if err := s.validateStep(s.step); err != nil {
		utils.LogEvent(s.requestID, "wizard", "next_blocked", "step="+s.step.String()+" err="+err.Error())
		return err
	}
	s.flushStep(s.step)
	s.step++
	s.enterStep()
	return nil
}

// Previous flushes the current step so nothing is lost, then moves
// back. It never validates.
func (s *Session) Previous() error {
	if s.step == StepBasicInfo {
		return domain.ValidationError{Msg: "already at the first step"}
	}
	s.flushStep(s.step)
	s.step--
	s.enterStep()
	return nil
}

// enterStep repopulates the new step's form from the aggregate so
// previously entered values reappear unchanged. Transportation has a
// first-entry special case: an empty collection is seeded from the
// daily program's visit list.
func (s *Session) enterStep() {
	if s.step == StepTransportation && len(s.trip.TransportLegs) == 0 {
		s.ImportTransportLegs()
		return
	}
	s.restoreStep(s.step)
}

// Summary recomputes every category total and the derived pricing for
// the review labels. Pure read; repeated calls yield identical figures.
type Summary struct {
	Totals  costing.Totals  `json:"totals"`
	Pricing costing.Pricing `json:"pricing"`
}

func (s *Session) Summary() Summary {
	totals := costing.AggregateTrip(s.trip)
	return Summary{
		Totals:  totals,
		Pricing: costing.PriceTrip(totals.GrandTotal, s.trip.TotalCapacity, s.trip.ProfitMarginPercent),
	}
}

// Save flushes the active step, re-checks the lock flag against the
// store, recomputes totals and pricing, writes the derived fields onto
// the aggregate and persists it. Persistence failure leaves the
// aggregate intact so the user may retry.
func (s *Session) Save(store TripStore) (Summary, error) {
	s.flushStep(s.step)

	if s.trip.ID != 0 {
		current, err := store.GetByID(s.trip.ID, false)
		if err != nil {
			return Summary{}, err
		}
		if current.IsLockedForTrips {
			utils.LogEvent(s.requestID, "wizard", "save_conflict", "trip_id="+strconv.FormatInt(s.trip.ID, 10))
			return Summary{}, domain.ConflictError{Resource: "trip", Msg: "locked by the booking subsystem since it was loaded"}
		}
	}

	summary := s.Summary()
	s.trip.SellingPricePerPerson = summary.Pricing.FinalSellingPricePerPerson
	s.trip.ExpectedRevenue = summary.Pricing.ExpectedRevenue
	s.trip.ExpectedProfit = summary.Pricing.ExpectedProfit
	s.trip.ActualProfitMarginPercent = summary.Pricing.ActualProfitMarginPercent
	s.trip.UpdatedAt = utils.NowUTC()

	var err error
	if s.trip.ID == 0 {
		if s.trip.CreatedAt.IsZero() {
			s.trip.CreatedAt = s.trip.UpdatedAt
		}
		err = store.Create(s.trip)
	} else {
		err = store.Update(s.trip)
	}
	if err != nil {
		return Summary{}, err
	}

	utils.LogEvent(s.requestID, "wizard", "save", "trip_id="+strconv.FormatInt(s.trip.ID, 10)+" grand_total="+utils.FormatMoney(summary.Totals.GrandTotal))
	return summary, nil
}
