package wizard

import (
	"backoffice/internal/costing"
	"backoffice/internal/utils"
)

// Step forms mirror the entry grids cell for cell. Every numeric cell is
// a string; the flush pass is the single place text is coerced into the
// typed aggregate, and restore is the single place it is formatted back.

type BasicInfoForm struct {
	TripNumber          string `json:"tripNumber"`
	TripName            string `json:"tripName"`
	StartDestination    string `json:"startDestination"`
	EndDestination      string `json:"endDestination"`
	TripType            string `json:"tripType"`
	Description         string `json:"description"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	AdultCount          string `json:"adultCount"`
	ChildCount          string `json:"childCount"`
	ProfitMarginPercent string `json:"profitMarginPercent"`
}

// ProgramRow is one day row in the adult or child itinerary grid.
type ProgramRow struct {
	DayNumber        string `json:"dayNumber"`
	DayDate          string `json:"dayDate"` // blank derives from trip start date
	Visits           string `json:"visits"`
	VisitsCost       string `json:"visitsCost"`
	GuideCost        string `json:"guideCost"`
	ParticipantCount string `json:"participantCount"`
}

type ProgramForm struct {
	Adult []ProgramRow `json:"adult"`
	Child []ProgramRow `json:"child"`
}

type TransportRow struct {
	VisitName        string `json:"visitName"`
	DayNumber        string `json:"dayNumber"`
	Type             string `json:"type"`
	TransportDate    string `json:"transportDate"`
	Route            string `json:"route"`
	SeatsPerVehicle  string `json:"seatsPerVehicle"`
	VehicleCount     string `json:"vehicleCount"`
	ParticipantCount string `json:"participantCount"`
	CostPerVehicle   string `json:"costPerVehicle"`
	TourLeaderTip    string `json:"tourLeaderTip"`
	DriverTip        string `json:"driverTip"`
}

type TransportForm struct {
	Rows []TransportRow `json:"rows"`
}

type AccommodationRow struct {
	Type             string `json:"type"`
	Name             string `json:"name"`
	Rating           string `json:"rating"`      // stars, ignored for cruise lines
	CruiseLevel      string `json:"cruiseLevel"` // cruise lines only
	RoomType         string `json:"roomType"`
	RoomCount        string `json:"roomCount"`
	NightCount       string `json:"nightCount"`
	ParticipantCount string `json:"participantCount"`
	MealPlan         string `json:"mealPlan"`
	Currency         string `json:"currency"`
	ExchangeRate     string `json:"exchangeRate"`
	PricePerNight    string `json:"pricePerNight"` // in the line currency
	GuideCost        string `json:"guideCost"`     // base currency

	// RateEdited marks a rate the user typed during this session;
	// switching currency must not overwrite it with the default.
	RateEdited bool `json:"rateEdited"`
}

type AccommodationForm struct {
	Rows []AccommodationRow `json:"rows"`
}

// SetCurrency switches a row currency and applies the default exchange
// rate unless the user already entered one in this session.
func (f *AccommodationForm) SetCurrency(i int, code string) {
	if i < 0 || i >= len(f.Rows) {
		return
	}
	f.Rows[i].Currency = code
	if !f.Rows[i].RateEdited {
		f.Rows[i].ExchangeRate = utils.FormatMoney(costing.DefaultExchangeRate(code))
	}
}

// SetExchangeRate records an explicit rate entry.
func (f *AccommodationForm) SetExchangeRate(i int, value string) {
	if i < 0 || i >= len(f.Rows) {
		return
	}
	f.Rows[i].ExchangeRate = value
	f.Rows[i].RateEdited = true
}

type GuideForm struct {
	GuideName        string `json:"guideName"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Languages        string `json:"languages"`
	BaseFee          string `json:"baseFee"`
	CommissionAmount string `json:"commissionAmount"`
	DriverTip        string `json:"driverTip"`
	Notes            string `json:"notes"`
}

type ExpenseRow struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Notes       string `json:"notes"`
}

type ExpenseForm struct {
	Rows []ExpenseRow `json:"rows"`
}

type OptionalTourRow struct {
	TourName           string `json:"tourName"`
	SellingPrice       string `json:"sellingPrice"`
	PurchasePrice      string `json:"purchasePrice"`
	GuideCommission    string `json:"guideCommission"`
	SalesRepCommission string `json:"salesRepCommission"`
	ParticipantCount   string `json:"participantCount"`
}

type OptionalTourForm struct {
	Rows []OptionalTourRow `json:"rows"`
}
