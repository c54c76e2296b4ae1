package costing

import (
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// Line calculators are pure functions over the trip aggregate. They are
// re-run wholesale after every mutation; a zero participant count only
// affects the per-person division, never the stored count.

// ProgramDayResult carries the derived figures for one itinerary day.
type ProgramDayResult struct {
	GuideCostPerPerson float64 `json:"guideCostPerPerson"`
	CostPerPerson      float64 `json:"costPerPerson"`
	DayTotal           float64 `json:"dayTotal"`
}

func ProgramDayCost(d models.ProgramDay) ProgramDayResult {
	guidePerPerson := d.GuideCost / float64(utils.DivisorCount(d.ParticipantCount))
	return ProgramDayResult{
		GuideCostPerPerson: utils.Round2(guidePerPerson),
		CostPerPerson:      utils.Round2(guidePerPerson + d.VisitsCost),
		DayTotal:           utils.Round2(d.VisitsCost*float64(d.ParticipantCount) + d.GuideCost),
	}
}

type TransportLegResult struct {
	LegTotal      float64 `json:"legTotal"`
	CostPerPerson float64 `json:"costPerPerson"`
}

func TransportLegCost(l models.TransportLeg) TransportLegResult {
	total := l.CostPerVehicle*float64(l.VehicleCount) + l.TourLeaderTip + l.DriverTip
	return TransportLegResult{
		LegTotal:      utils.Round2(total),
		CostPerPerson: utils.Round2(total / float64(utils.DivisorCount(l.ParticipantCount))),
	}
}

type AccommodationLineResult struct {
	PriceInBaseCurrency float64 `json:"priceInBaseCurrency"` // per night, converted
	LineTotal           float64 `json:"lineTotal"`
	GuideCostPerPerson  float64 `json:"guideCostPerPerson"`
}

func AccommodationLineCost(a models.AccommodationLine) AccommodationLineResult {
	priceInBase := a.PricePerNight * a.ExchangeRate
	total := float64(a.RoomCount)*float64(a.NightCount)*priceInBase + a.GuideCost
	return AccommodationLineResult{
		PriceInBaseCurrency: utils.Round2(priceInBase),
		LineTotal:           utils.Round2(total),
		GuideCostPerPerson:  utils.Round2(a.GuideCost / float64(utils.DivisorCount(a.ParticipantCount))),
	}
}

// GuideAssignmentCost totals the main guide engagement.
func GuideAssignmentCost(g models.GuideAssignment) float64 {
	return utils.Round2(g.BaseFee + g.CommissionAmount + g.DriverTip)
}

type OptionalTourResult struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	NetProfit    float64 `json:"netProfit"`
}

func OptionalTourProfit(o models.OptionalTour) OptionalTourResult {
	n := float64(o.ParticipantCount)
	revenue := o.SellingPrice * n
	cost := (o.PurchasePrice + o.GuideCommission + o.SalesRepCommission) * n
	return OptionalTourResult{
		TotalRevenue: utils.Round2(revenue),
		TotalCost:    utils.Round2(cost),
		NetProfit:    utils.Round2(revenue - cost),
	}
}

// Totals groups the category sums shown on the review screen. The
// categories are exposed separately because the UI renders each of them
// on its own label.
type Totals struct {
	ProgramCostAdult       float64 `json:"programCostAdult"`
	ProgramCostChild       float64 `json:"programCostChild"`
	ProgramGuideCost       float64 `json:"programGuideCost"`
	TransportCost          float64 `json:"transportCost"`
	AccommodationCost      float64 `json:"accommodationCost"`
	AccommodationGuideCost float64 `json:"accommodationGuideCost"`
	GuideCost              float64 `json:"guideCost"` // main guide assignments
	ExpenseCost            float64 `json:"expenseCost"`
	OptionalTourCost       float64 `json:"optionalTourCost"`
	GrandTotal             float64 `json:"grandTotal"`
}

// AggregateTrip recomputes every category total from scratch. No
// incremental caching; identical inputs always produce identical output
// because rounding happens once per exposed figure.
func AggregateTrip(t *models.Trip) Totals {
	var out Totals
	var grand float64

	var programAdult, programChild, programGuide float64
	for _, d := range t.Programs {
		dayTotal := d.VisitsCost*float64(d.ParticipantCount) + d.GuideCost
		if d.PassengerClass == models.PassengerChild {
			programChild += dayTotal
		} else {
			programAdult += dayTotal
		}
		programGuide += d.GuideCost
		grand += dayTotal
	}

	var transport float64
	for _, l := range t.TransportLegs {
		transport += l.CostPerVehicle*float64(l.VehicleCount) + l.TourLeaderTip + l.DriverTip
	}
	grand += transport

	var accommodation, accommodationGuide float64
	for _, a := range t.Accommodations {
		lineTotal := float64(a.RoomCount)*float64(a.NightCount)*a.PricePerNight*a.ExchangeRate + a.GuideCost
		accommodation += lineTotal
		accommodationGuide += a.GuideCost
		grand += lineTotal
	}

	var guide float64
	for _, g := range t.Guides {
		guide += g.BaseFee + g.CommissionAmount + g.DriverTip
	}
	grand += guide

	var expenses float64
	for _, e := range t.Expenses {
		expenses += e.Amount
	}
	grand += expenses

	var optional float64
	for _, o := range t.OptionalTours {
		optional += (o.PurchasePrice + o.GuideCommission + o.SalesRepCommission) * float64(o.ParticipantCount)
	}
	grand += optional

	out.ProgramCostAdult = utils.Round2(programAdult)
	out.ProgramCostChild = utils.Round2(programChild)
	out.ProgramGuideCost = utils.Round2(programGuide)
	out.TransportCost = utils.Round2(transport)
	out.AccommodationCost = utils.Round2(accommodation)
	out.AccommodationGuideCost = utils.Round2(accommodationGuide)
	out.GuideCost = utils.Round2(guide)
	out.ExpenseCost = utils.Round2(expenses)
	out.OptionalTourCost = utils.Round2(optional)
	out.GrandTotal = utils.Round2(grand)
	return out
}
