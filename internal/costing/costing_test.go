package costing

import (
	"testing"

	"backoffice/internal/domain/models"
)

func TestProgramDayCost(t *testing.T) {
	day := models.ProgramDay{
		VisitsCost:       50,
		GuideCost:        200,
		ParticipantCount: 10,
	}
	got := ProgramDayCost(day)
	if got.GuideCostPerPerson != 20.00 {
		t.Fatalf("guide per person = %v, want 20.00", got.GuideCostPerPerson)
	}
	if got.CostPerPerson != 70.00 {
		t.Fatalf("cost per person = %v, want 70.00", got.CostPerPerson)
	}
	if got.DayTotal != 700.00 {
		t.Fatalf("day total = %v, want 700.00", got.DayTotal)
	}
}

func TestProgramDayCostZeroParticipants(t *testing.T) {
	day := models.ProgramDay{VisitsCost: 50, GuideCost: 200, ParticipantCount: 0}
	got := ProgramDayCost(day)
	// Division falls back to 1; the stored count stays zero.
	if got.GuideCostPerPerson != 200.00 {
		t.Fatalf("guide per person = %v, want 200.00", got.GuideCostPerPerson)
	}
	if got.DayTotal != 200.00 {
		t.Fatalf("day total = %v, want 200.00", got.DayTotal)
	}
}

func TestTransportLegCost(t *testing.T) {
	leg := models.TransportLeg{
		CostPerVehicle:   1500,
		VehicleCount:     2,
		TourLeaderTip:    100,
		DriverTip:        50,
		ParticipantCount: 30,
	}
	got := TransportLegCost(leg)
	if got.LegTotal != 3150.00 {
		t.Fatalf("leg total = %v, want 3150.00", got.LegTotal)
	}
	if got.CostPerPerson != 105.00 {
		t.Fatalf("cost per person = %v, want 105.00", got.CostPerPerson)
	}
}

func TestAccommodationLineCost(t *testing.T) {
	line := models.AccommodationLine{
		PricePerNight:    100,
		ExchangeRate:     50,
		RoomCount:        2,
		NightCount:       3,
		ParticipantCount: 4,
		GuideCost:        0,
	}
	got := AccommodationLineCost(line)
	if got.PriceInBaseCurrency != 5000.00 {
		t.Fatalf("price in base = %v, want 5000.00", got.PriceInBaseCurrency)
	}
	if got.LineTotal != 30000.00 {
		t.Fatalf("line total = %v, want 30000.00", got.LineTotal)
	}
}

func TestOptionalTourProfit(t *testing.T) {
	tour := models.OptionalTour{
		SellingPrice:       80,
		PurchasePrice:      40,
		GuideCommission:    5,
		SalesRepCommission: 5,
		ParticipantCount:   20,
	}
	got := OptionalTourProfit(tour)
	if got.TotalRevenue != 1600.00 {
		t.Fatalf("revenue = %v, want 1600.00", got.TotalRevenue)
	}
	if got.TotalCost != 1000.00 {
		t.Fatalf("cost = %v, want 1000.00", got.TotalCost)
	}
	if got.NetProfit != 600.00 {
		t.Fatalf("net profit = %v, want 600.00", got.NetProfit)
	}
}

func TestAggregateTripSumsEveryCategory(t *testing.T) {
	trip := models.Trip{
		Programs: []models.ProgramDay{
			{VisitsCost: 50, GuideCost: 200, ParticipantCount: 10, PassengerClass: models.PassengerAdult},
			{VisitsCost: 30, GuideCost: 100, ParticipantCount: 5, PassengerClass: models.PassengerChild},
		},
		TransportLegs: []models.TransportLeg{
			{CostPerVehicle: 1000, VehicleCount: 1, TourLeaderTip: 50, DriverTip: 50, ParticipantCount: 15},
		},
		Accommodations: []models.AccommodationLine{
			{PricePerNight: 100, ExchangeRate: 1, RoomCount: 5, NightCount: 2, GuideCost: 100, ParticipantCount: 15},
		},
		Guides: []models.GuideAssignment{
			{BaseFee: 500, CommissionAmount: 100, DriverTip: 50},
		},
		Expenses: []models.Expense{
			{Amount: 250}, {Amount: 150},
		},
		OptionalTours: []models.OptionalTour{
			{SellingPrice: 80, PurchasePrice: 40, GuideCommission: 5, SalesRepCommission: 5, ParticipantCount: 10},
		},
	}

	got := AggregateTrip(&trip)
	if got.ProgramCostAdult != 700.00 {
		t.Fatalf("program adult = %v, want 700.00", got.ProgramCostAdult)
	}
	if got.ProgramCostChild != 250.00 {
		t.Fatalf("program child = %v, want 250.00", got.ProgramCostChild)
	}
	if got.ProgramGuideCost != 300.00 {
		t.Fatalf("program guide = %v, want 300.00", got.ProgramGuideCost)
	}
	if got.TransportCost != 1100.00 {
		t.Fatalf("transport = %v, want 1100.00", got.TransportCost)
	}
	if got.AccommodationCost != 1100.00 {
		t.Fatalf("accommodation = %v, want 1100.00", got.AccommodationCost)
	}
	if got.AccommodationGuideCost != 100.00 {
		t.Fatalf("accommodation guide = %v, want 100.00", got.AccommodationGuideCost)
	}
	if got.GuideCost != 650.00 {
		t.Fatalf("guide = %v, want 650.00", got.GuideCost)
	}
	if got.ExpenseCost != 400.00 {
		t.Fatalf("expenses = %v, want 400.00", got.ExpenseCost)
	}
	if got.OptionalTourCost != 500.00 {
		t.Fatalf("optional tours = %v, want 500.00", got.OptionalTourCost)
	}
	if want := 700.0 + 250 + 1100 + 1100 + 650 + 400 + 500; got.GrandTotal != want {
		t.Fatalf("grand total = %v, want %v", got.GrandTotal, want)
	}
}

func TestAggregateTripIdempotent(t *testing.T) {
	trip := models.Trip{
		Programs: []models.ProgramDay{
			{VisitsCost: 33.335, GuideCost: 99.995, ParticipantCount: 3, PassengerClass: models.PassengerAdult},
		},
		Expenses: []models.Expense{{Amount: 10.005}},
	}
	first := AggregateTrip(&trip)
	second := AggregateTrip(&trip)
	if first != second {
		t.Fatalf("totals drifted between runs: %+v vs %+v", first, second)
	}
}
