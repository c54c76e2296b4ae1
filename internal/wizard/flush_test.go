package wizard

import (
	"testing"

	"backoffice/internal/domain/models"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(nil, "")
	if err != nil {
		t.Fatalf("new session error: %v", err)
	}
	return s
}

func TestFlushAccommodationDefaults(t *testing.T) {
	s := newTestSession(t)
	s.accommodation.Rows = []AccommodationRow{
		{Name: "Nile Palace", PricePerNight: "100"},
	}
	s.flushStep(StepAccommodation)

	a := s.Trip().Accommodations[0]
	if a.Currency != "EGP" || a.ExchangeRate != 1.0 {
		t.Fatalf("currency defaults wrong: %s %v", a.Currency, a.ExchangeRate)
	}
	if a.RoomCount != 1 || a.NightCount != 1 {
		t.Fatalf("room/night floors wrong: %d/%d", a.RoomCount, a.NightCount)
	}
	if a.Type != models.AccommodationHotel || a.RoomType != models.RoomDouble {
		t.Fatalf("type fallbacks wrong: %s %s", a.Type, a.RoomType)
	}
}

func TestFlushAccommodationCurrencyFallbackRate(t *testing.T) {
	s := newTestSession(t)
	s.accommodation.Rows = []AccommodationRow{
		{Name: "Marina Bay", Currency: "usd", PricePerNight: "100"},
	}
	s.flushStep(StepAccommodation)

	a := s.Trip().Accommodations[0]
	if a.Currency != "USD" || a.ExchangeRate != 50.0 {
		t.Fatalf("usd default rate wrong: %s %v", a.Currency, a.ExchangeRate)
	}
}

func TestFlushAccommodationCruiseExcludesRating(t *testing.T) {
	s := newTestSession(t)
	s.accommodation.Rows = []AccommodationRow{
		{Name: "Nile Star", Type: "cruise", CruiseLevel: "five_star", Rating: "4"},
		{Name: "Plaza", Type: "hotel", Rating: "9"},
	}
	s.flushStep(StepAccommodation)

	cruise := s.Trip().Accommodations[0]
	if cruise.CruiseLevel != models.CruiseFiveStar || cruise.Rating != 0 {
		t.Fatalf("cruise line = %+v", cruise)
	}
	hotel := s.Trip().Accommodations[1]
	if hotel.Rating != 5 || hotel.CruiseLevel != "" {
		t.Fatalf("hotel rating cap = %+v", hotel)
	}

	s.restoreStep(StepAccommodation)
	rows := s.Accommodation().Rows
	if rows[0].CruiseLevel != "five_star" || rows[0].Rating != "" {
		t.Fatalf("cruise row restore = %+v", rows[0])
	}
	if rows[1].Rating != "5" {
		t.Fatalf("hotel row restore = %+v", rows[1])
	}
}

func TestSetCurrencyRespectsEditedRate(t *testing.T) {
	s := newTestSession(t)
	s.accommodation.Rows = []AccommodationRow{{Name: "A"}, {Name: "B"}}

	f := s.Accommodation()
	f.SetCurrency(0, "USD")
	if f.Rows[0].ExchangeRate != "50.00" {
		t.Fatalf("rate = %q, want 50.00", f.Rows[0].ExchangeRate)
	}

	f.SetExchangeRate(1, "57.25")
	f.SetCurrency(1, "GBP")
	if f.Rows[1].ExchangeRate != "57.25" {
		t.Fatalf("edited rate overwritten: %q", f.Rows[1].ExchangeRate)
	}
}

func TestEditedRateSurvivesNavigation(t *testing.T) {
	s := newTestSession(t)
	*s.BasicInfo() = validBasicInfo()
	for s.Step() != StepAccommodation {
		if err := s.Next(); err != nil {
			t.Fatalf("next from %v error: %v", s.Step(), err)
		}
	}

	s.Accommodation().Rows = []AccommodationRow{
		{Name: "Nile Palace", Currency: "USD", PricePerNight: "100"},
	}
	s.Accommodation().SetExchangeRate(0, "57.25")

	if err := s.Next(); err != nil {
		t.Fatalf("next to guide error: %v", err)
	}
	if err := s.Previous(); err != nil {
		t.Fatalf("previous error: %v", err)
	}

	// The typed rate must still count as edited after the round trip.
	f := s.Accommodation()
	if !f.Rows[0].RateEdited {
		t.Fatalf("rate edit flag lost: %+v", f.Rows[0])
	}
	f.SetCurrency(0, "GBP")
	if f.Rows[0].ExchangeRate != "57.25" {
		t.Fatalf("edited rate overwritten after navigation: got %q, want 57.25", f.Rows[0].ExchangeRate)
	}
}

func TestFlushGuideRoundTrip(t *testing.T) {
	s := newTestSession(t)
	s.guide = GuideForm{
		GuideName:        "Ahmed Hassan",
		Phone:            "0100000000",
		Languages:        "Arabic, English",
		BaseFee:          "3000",
		CommissionAmount: "500",
		DriverTip:        "200",
	}
	s.flushStep(StepGuide)

	if len(s.Trip().Guides) != 1 {
		t.Fatalf("guides = %d, want 1", len(s.Trip().Guides))
	}
	g := s.Trip().Guides[0]
	if g.BaseFee != 3000 || g.CommissionAmount != 500 || g.DriverTip != 200 {
		t.Fatalf("guide fees = %+v", g)
	}

	s.guide = GuideForm{}
	s.restoreStep(StepGuide)
	if s.guide.GuideName != "Ahmed Hassan" || s.guide.BaseFee != "3000.00" {
		t.Fatalf("guide restore = %+v", s.guide)
	}
}

func TestFlushGuideBlankNameClears(t *testing.T) {
	s := newTestSession(t)
	s.Trip().Guides = []models.GuideAssignment{{GuideName: "Old"}}
	s.guide = GuideForm{GuideName: "  "}
	s.flushStep(StepGuide)
	if len(s.Trip().Guides) != 0 {
		t.Fatalf("guides = %d, want 0", len(s.Trip().Guides))
	}
}

func TestFlushExpensesSkipsBlankRows(t *testing.T) {
	s := newTestSession(t)
	s.expenses.Rows = []ExpenseRow{
		{Description: "Permits", Amount: "300"},
		{},
		{Category: "", Description: "Water", Amount: "bad"},
	}
	s.flushStep(StepExpenses)

	got := s.Trip().Expenses
	if len(got) != 2 {
		t.Fatalf("expenses = %d, want 2", len(got))
	}
	if got[0].Category != "other" || got[0].Amount != 300 {
		t.Fatalf("first expense = %+v", got[0])
	}
	// Unparsable amount coerces to zero, the row itself survives.
	if got[1].Description != "Water" || got[1].Amount != 0 {
		t.Fatalf("second expense = %+v", got[1])
	}

	s.expenses = ExpenseForm{}
	s.restoreStep(StepExpenses)
	if len(s.expenses.Rows) != 2 || s.expenses.Rows[0].Amount != "300.00" {
		t.Fatalf("expense restore = %+v", s.expenses.Rows)
	}
}

func TestFlushOptionalToursRoundTrip(t *testing.T) {
	s := newTestSession(t)
	s.optional.Rows = []OptionalTourRow{
		{TourName: "Sound and Light", SellingPrice: "80", PurchasePrice: "40",
			GuideCommission: "5", SalesRepCommission: "5", ParticipantCount: "20"},
		{TourName: "   "},
	}
	s.flushStep(StepOptionalTours)

	got := s.Trip().OptionalTours
	if len(got) != 1 {
		t.Fatalf("tours = %d, want 1", len(got))
	}
	if got[0].SellingPrice != 80 || got[0].ParticipantCount != 20 {
		t.Fatalf("tour = %+v", got[0])
	}

	s.optional = OptionalTourForm{}
	s.restoreStep(StepOptionalTours)
	rows := s.OptionalTours().Rows
	if len(rows) != 1 || rows[0].SellingPrice != "80.00" || rows[0].ParticipantCount != "20" {
		t.Fatalf("tour restore = %+v", rows)
	}
}

func TestFlushBasicInfoMarginClamp(t *testing.T) {
	s := newTestSession(t)
	s.basic = validBasicInfo()
	s.basic.ProfitMarginPercent = "250"
	s.flushStep(StepBasicInfo)
	if s.Trip().ProfitMarginPercent != 100 {
		t.Fatalf("margin = %v, want 100", s.Trip().ProfitMarginPercent)
	}

	s.basic.ProfitMarginPercent = ""
	s.flushStep(StepBasicInfo)
	if s.Trip().ProfitMarginPercent != 20 {
		t.Fatalf("blank margin = %v, want 20", s.Trip().ProfitMarginPercent)
	}
}

func TestFlushProgramDerivesDayDates(t *testing.T) {
	s := newTestSession(t)
	s.basic = validBasicInfo()
	s.flushStep(StepBasicInfo)

	s.program.Adult = []ProgramRow{
		{Visits: "Pyramids"},
		{Visits: "Museum"},
	}
	s.flushStep(StepDailyProgram)

	days := s.Trip().Programs
	if days[0].DayNumber != 1 || days[1].DayNumber != 2 {
		t.Fatalf("day numbers = %d/%d", days[0].DayNumber, days[1].DayNumber)
	}
	if !days[1].DayDate.Equal(s.Trip().StartDate.AddDate(0, 0, 1)) {
		t.Fatalf("day 2 date = %v", days[1].DayDate)
	}
}
