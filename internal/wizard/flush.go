package wizard

import (
	"strings"

	"backoffice/internal/costing"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// flushStep commits the step's form into the aggregate. Parsing is
// lenient throughout: amounts default to 0, counts to 0, and the
// divisor floor is applied only where division happens. Collections are
// cleared and rebuilt, never patched row by row.
func (s *Session) flushStep(step Step) {
	switch step {
	case StepBasicInfo:
		s.flushBasicInfo()
	case StepDailyProgram:
		s.flushProgram()
	case StepTransportation:
		s.flushTransport()
	case StepAccommodation:
		s.flushAccommodation()
	case StepGuide:
		s.flushGuide()
	case StepExpenses:
		s.flushExpenses()
	case StepOptionalTours:
		s.flushOptionalTours()
	case StepReview:
		// Review labels are derived and never persisted.
	}
}

func (s *Session) flushBasicInfo() {
	f := &s.basic
	t := s.trip

	t.TripNumber = strings.TrimSpace(f.TripNumber)
	t.TripName = strings.TrimSpace(f.TripName)
	t.StartDestination = strings.TrimSpace(f.StartDestination)
	t.EndDestination = strings.TrimSpace(f.EndDestination)
	t.TripType = parseTripType(f.TripType)
	t.Description = strings.TrimSpace(f.Description)

	if d, err := utils.ParseDate(f.StartDate); err == nil {
		t.StartDate = d
	}
	if d, err := utils.ParseDate(f.EndDate); err == nil {
		t.EndDate = d
	}

	t.AdultCount = utils.ParseCount(f.AdultCount)
	t.ChildCount = utils.ParseCount(f.ChildCount)
	t.TotalCapacity = t.AdultCount + t.ChildCount

	if strings.TrimSpace(f.ProfitMarginPercent) == "" {
		t.ProfitMarginPercent = 20
	} else {
		margin := utils.ParseAmount(f.ProfitMarginPercent)
		if margin < 0 {
			margin = 0
		}
		if margin > 100 {
			margin = 100
		}
		t.ProfitMarginPercent = margin
	}
}

func (s *Session) flushProgram() {
	t := s.trip
	t.Programs = t.Programs[:0]
	s.appendProgramRows(s.program.Adult, models.PassengerAdult)
	s.appendProgramRows(s.program.Child, models.PassengerChild)
}

func (s *Session) appendProgramRows(rows []ProgramRow, class models.PassengerClass) {
	t := s.trip
	for i, row := range rows {
		if programRowBlank(row) {
			continue
		}
		dayNumber := utils.ParseCount(row.DayNumber)
		if dayNumber == 0 {
			dayNumber = i + 1
		}
		day := models.ProgramDay{
			TripID:           t.ID,
			DayNumber:        dayNumber,
			Visits:           strings.TrimSpace(row.Visits),
			VisitsCost:       utils.ParseAmount(row.VisitsCost),
			GuideCost:        utils.ParseAmount(row.GuideCost),
			ParticipantCount: utils.ParseCount(row.ParticipantCount),
			PassengerClass:   class,
		}
		if d, err := utils.ParseDate(row.DayDate); err == nil {
			day.DayDate = d
		} else {
			day.DayDate = utils.AddDays(t.StartDate, dayNumber-1)
		}
		t.Programs = append(t.Programs, day)
	}
}

func programRowBlank(r ProgramRow) bool {
	return strings.TrimSpace(r.Visits) == "" &&
		strings.TrimSpace(r.VisitsCost) == "" &&
		strings.TrimSpace(r.GuideCost) == "" &&
		strings.TrimSpace(r.ParticipantCount) == ""
}

func (s *Session) flushTransport() {
	t := s.trip
	t.TransportLegs = t.TransportLegs[:0]
	for _, row := range s.transport.Rows {
		typ := parseTransportType(row.Type)

		route := strings.TrimSpace(row.Route)
		visit := strings.TrimSpace(row.VisitName)
		if route == "" && visit != "" {
			route = "Transfer to " + visit
		}

		vehicles := utils.ParseCount(row.VehicleCount)
		if vehicles == 0 {
			vehicles = 1
		}
		seats := utils.ParseCount(row.SeatsPerVehicle)
		if seats == 0 {
			seats = typ.SeatCapacityHint()
		}

		leg := models.TransportLeg{
			TripID:           t.ID,
			Type:             typ,
			Route:            route,
			VehicleCount:     vehicles,
			SeatsPerVehicle:  seats,
			ParticipantCount: utils.ParseCount(row.ParticipantCount),
			CostPerVehicle:   utils.ParseAmount(row.CostPerVehicle),
			TourLeaderTip:    utils.ParseAmount(row.TourLeaderTip),
			DriverTip:        utils.ParseAmount(row.DriverTip),
			VisitName:        visit,
			ProgramDayNumber: utils.ParseCount(row.DayNumber),
		}
		if d, err := utils.ParseDate(row.TransportDate); err == nil {
			leg.TransportDate = d
		} else if leg.ProgramDayNumber > 0 {
			leg.TransportDate = utils.AddDays(t.StartDate, leg.ProgramDayNumber-1)
		}
		t.TransportLegs = append(t.TransportLegs, leg)
	}
}

func (s *Session) flushAccommodation() {
	t := s.trip
	t.Accommodations = t.Accommodations[:0]
	s.ratesEdited = s.ratesEdited[:0]
	for _, row := range s.accommodation.Rows {
		s.ratesEdited = append(s.ratesEdited, row.RateEdited)
		typ := parseAccommodationType(row.Type)

		currency := strings.ToUpper(strings.TrimSpace(row.Currency))
		if currency == "" {
			currency = costing.BaseCurrency
		}
		rate := utils.ParseAmount(row.ExchangeRate)
		if rate <= 0 {
			rate = costing.DefaultExchangeRate(currency)
		}

		rooms := utils.ParseCount(row.RoomCount)
		if rooms == 0 {
			rooms = 1
		}
		nights := utils.ParseCount(row.NightCount)
		if nights == 0 {
			nights = 1
		}

		line := models.AccommodationLine{
			TripID:           t.ID,
			Type:             typ,
			Name:             strings.TrimSpace(row.Name),
			RoomType:         parseRoomType(row.RoomType),
			RoomCount:        rooms,
			NightCount:       nights,
			ParticipantCount: utils.ParseCount(row.ParticipantCount),
			MealPlan:         strings.TrimSpace(row.MealPlan),
			Currency:         currency,
			ExchangeRate:     rate,
			PricePerNight:    utils.ParseAmount(row.PricePerNight),
			GuideCost:        utils.ParseAmount(row.GuideCost),
			CheckInDate:      t.StartDate,
			CheckOutDate:     t.EndDate,
		}

		// Star rating and cruise tier are mutually exclusive in storage.
		if typ == models.AccommodationCruise {
			line.CruiseLevel = parseCruiseLevel(row.CruiseLevel)
		} else {
			rating := utils.ParseCount(row.Rating)
			if rating > 5 {
				rating = 5
			}
			line.Rating = rating
		}

		t.Accommodations = append(t.Accommodations, line)
	}
}

func (s *Session) flushGuide() {
	t := s.trip
	t.Guides = t.Guides[:0]
	f := &s.guide
	if strings.TrimSpace(f.GuideName) == "" {
		return
	}
	t.Guides = append(t.Guides, models.GuideAssignment{
		TripID:           t.ID,
		GuideName:        strings.TrimSpace(f.GuideName),
		Phone:            strings.TrimSpace(f.Phone),
		Email:            strings.TrimSpace(f.Email),
		Languages:        strings.TrimSpace(f.Languages),
		BaseFee:          utils.ParseAmount(f.BaseFee),
		CommissionAmount: utils.ParseAmount(f.CommissionAmount),
		DriverTip:        utils.ParseAmount(f.DriverTip),
		Notes:            strings.TrimSpace(f.Notes),
	})
}

func (s *Session) flushExpenses() {
	t := s.trip
	t.Expenses = t.Expenses[:0]
	for _, row := range s.expenses.Rows {
		if strings.TrimSpace(row.Description) == "" && strings.TrimSpace(row.Amount) == "" {
			continue
		}
		category := strings.TrimSpace(row.Category)
		if category == "" {
			category = "other"
		}
		t.Expenses = append(t.Expenses, models.Expense{
			TripID:      t.ID,
			Category:    category,
			Description: strings.TrimSpace(row.Description),
			Amount:      utils.ParseAmount(row.Amount),
			Notes:       strings.TrimSpace(row.Notes),
		})
	}
}

func (s *Session) flushOptionalTours() {
	t := s.trip
	t.OptionalTours = t.OptionalTours[:0]
	for _, row := range s.optional.Rows {
		if strings.TrimSpace(row.TourName) == "" {
			continue
		}
		t.OptionalTours = append(t.OptionalTours, models.OptionalTour{
			TripID:             t.ID,
			TourName:           strings.TrimSpace(row.TourName),
			SellingPrice:       utils.ParseAmount(row.SellingPrice),
			PurchasePrice:      utils.ParseAmount(row.PurchasePrice),
			GuideCommission:    utils.ParseAmount(row.GuideCommission),
			SalesRepCommission: utils.ParseAmount(row.SalesRepCommission),
			ParticipantCount:   utils.ParseCount(row.ParticipantCount),
		})
	}
}
