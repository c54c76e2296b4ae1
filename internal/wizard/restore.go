package wizard

import (
	"strconv"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// restoreAll seeds every form from the aggregate when a session opens,
// so an edited trip shows all its saved data immediately.
func (s *Session) restoreAll() {
	for step := StepBasicInfo; step < StepReview; step++ {
		s.restoreStep(step)
	}
}

// restoreStep populates one form from the aggregate. Formatting is the
// inverse of the flush parsing, so flushing and restoring a step
// reproduces the entered values.
func (s *Session) restoreStep(step Step) {
	switch step {
	case StepBasicInfo:
		s.restoreBasicInfo()
	case StepDailyProgram:
		s.restoreProgram()
	case StepTransportation:
		s.restoreTransport()
	case StepAccommodation:
		s.restoreAccommodation()
	case StepGuide:
		s.restoreGuide()
	case StepExpenses:
		s.restoreExpenses()
	case StepOptionalTours:
		s.restoreOptionalTours()
	}
}

func (s *Session) restoreBasicInfo() {
	t := s.trip

	startDate, endDate := "", ""
	if !t.StartDate.IsZero() {
		startDate = utils.FormatDate(t.StartDate)
	}
	if !t.EndDate.IsZero() {
		endDate = utils.FormatDate(t.EndDate)
	}

	s.basic = BasicInfoForm{
		TripNumber:          t.TripNumber,
		TripName:            t.TripName,
		StartDestination:    t.StartDestination,
		EndDestination:      t.EndDestination,
		TripType:            string(t.TripType),
		Description:         t.Description,
		StartDate:           startDate,
		EndDate:             endDate,
		AdultCount:          strconv.Itoa(t.AdultCount),
		ChildCount:          strconv.Itoa(t.ChildCount),
		ProfitMarginPercent: utils.FormatMoney(t.ProfitMarginPercent),
	}
}

func (s *Session) restoreProgram() {
	s.program = ProgramForm{}
	for _, d := range s.trip.Programs {
		row := ProgramRow{
			DayNumber:        strconv.Itoa(d.DayNumber),
			Visits:           d.Visits,
			VisitsCost:       utils.FormatMoney(d.VisitsCost),
			GuideCost:        utils.FormatMoney(d.GuideCost),
			ParticipantCount: strconv.Itoa(d.ParticipantCount),
		}
		if !d.DayDate.IsZero() {
			row.DayDate = utils.FormatDate(d.DayDate)
		}
		if d.PassengerClass == models.PassengerChild {
			s.program.Child = append(s.program.Child, row)
		} else {
			s.program.Adult = append(s.program.Adult, row)
		}
	}
}

func (s *Session) restoreTransport() {
	s.transport = TransportForm{}
	for _, l := range s.trip.TransportLegs {
		row := TransportRow{
			VisitName:        l.VisitName,
			Type:             string(l.Type),
			Route:            l.Route,
			SeatsPerVehicle:  strconv.Itoa(l.SeatsPerVehicle),
			VehicleCount:     strconv.Itoa(l.VehicleCount),
			ParticipantCount: strconv.Itoa(l.ParticipantCount),
			CostPerVehicle:   utils.FormatMoney(l.CostPerVehicle),
			TourLeaderTip:    utils.FormatMoney(l.TourLeaderTip),
			DriverTip:        utils.FormatMoney(l.DriverTip),
		}
		if l.ProgramDayNumber > 0 {
			row.DayNumber = strconv.Itoa(l.ProgramDayNumber)
		}
		if !l.TransportDate.IsZero() {
			row.TransportDate = utils.FormatDate(l.TransportDate)
		}
		s.transport.Rows = append(s.transport.Rows, row)
	}
}

func (s *Session) restoreAccommodation() {
	s.accommodation = AccommodationForm{}
	for i, a := range s.trip.Accommodations {
		row := AccommodationRow{
			Type:             string(a.Type),
			Name:             a.Name,
			RoomType:         string(a.RoomType),
			RoomCount:        strconv.Itoa(a.RoomCount),
			NightCount:       strconv.Itoa(a.NightCount),
			ParticipantCount: strconv.Itoa(a.ParticipantCount),
			MealPlan:         a.MealPlan,
			Currency:         a.Currency,
			ExchangeRate:     utils.FormatMoney(a.ExchangeRate),
			PricePerNight:    utils.FormatMoney(a.PricePerNight),
			GuideCost:        utils.FormatMoney(a.GuideCost),
		}
		if a.Type == models.AccommodationCruise {
			row.CruiseLevel = string(a.CruiseLevel)
		} else if a.Rating > 0 {
			row.Rating = strconv.Itoa(a.Rating)
		}
		// Re-mark rates the user typed this session; the stored line
		// carries no such flag.
		if i < len(s.ratesEdited) {
			row.RateEdited = s.ratesEdited[i]
		}
		s.accommodation.Rows = append(s.accommodation.Rows, row)
	}
}

func (s *Session) restoreGuide() {
	s.guide = GuideForm{}
	if len(s.trip.Guides) == 0 {
		return
	}
	g := s.trip.Guides[0]
	s.guide = GuideForm{
		GuideName:        g.GuideName,
		Phone:            g.Phone,
		Email:            g.Email,
		Languages:        g.Languages,
		BaseFee:          utils.FormatMoney(g.BaseFee),
		CommissionAmount: utils.FormatMoney(g.CommissionAmount),
		DriverTip:        utils.FormatMoney(g.DriverTip),
		Notes:            g.Notes,
	}
}

func (s *Session) restoreExpenses() {
	s.expenses = ExpenseForm{}
	for _, e := range s.trip.Expenses {
		s.expenses.Rows = append(s.expenses.Rows, ExpenseRow{
			Category:    e.Category,
			Description: e.Description,
			Amount:      utils.FormatMoney(e.Amount),
			Notes:       e.Notes,
		})
	}
}

func (s *Session) restoreOptionalTours() {
	s.optional = OptionalTourForm{}
	for _, o := range s.trip.OptionalTours {
		s.optional.Rows = append(s.optional.Rows, OptionalTourRow{
			TourName:           o.TourName,
			SellingPrice:       utils.FormatMoney(o.SellingPrice),
			PurchasePrice:      utils.FormatMoney(o.PurchasePrice),
			GuideCommission:    utils.FormatMoney(o.GuideCommission),
			SalesRepCommission: utils.FormatMoney(o.SalesRepCommission),
			ParticipantCount:   strconv.Itoa(o.ParticipantCount),
		})
	}
}
