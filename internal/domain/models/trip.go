package models

import "time"

// Trip is the aggregate root edited by the wizard. Child collections are
// mutated only through the aggregate and replaced wholesale on save.
type Trip struct {
	ID               int64    `json:"id"`
	TripNumber       string   `json:"tripNumber"`
	TripName         string   `json:"tripName"`
	StartDestination string   `json:"startDestination"`
	EndDestination   string   `json:"endDestination"`
	TripType         TripType `json:"tripType"`
	Description      string   `json:"description,omitempty"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	AdultCount    int `json:"adultCount"`
	ChildCount    int `json:"childCount"`
	TotalCapacity int `json:"totalCapacity"` // adultCount + childCount

	ProfitMarginPercent float64 `json:"profitMarginPercent"`

	// Derived at save time; everything else on the review screen is
	// presentation-only and never persisted.
	SellingPricePerPerson     float64 `json:"sellingPricePerPerson"`
	ExpectedRevenue           float64 `json:"expectedRevenue"`
	ExpectedProfit            float64 `json:"expectedProfit"`
	ActualProfitMarginPercent float64 `json:"actualProfitMarginPercent"`

	// Set by the booking subsystem; freezes all cost/itinerary edits.
	IsLockedForTrips bool `json:"isLockedForTrips"`

	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedBy int64     `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`

	Programs       []ProgramDay        `json:"programs"`
	TransportLegs  []TransportLeg      `json:"transportLegs"`
	Accommodations []AccommodationLine `json:"accommodations"`
	Guides         []GuideAssignment   `json:"guides"`
	Expenses       []Expense           `json:"expenses"`
	OptionalTours  []OptionalTour      `json:"optionalTours"`
}

// TotalDays counts calendar days of the trip, inclusive.
func (t Trip) TotalDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// ProgramDay is one itinerary day for one passenger class. DayDate
// defaults to startDate + dayNumber - 1 unless explicitly overridden.
type ProgramDay struct {
	ID               int64          `json:"id"`
	TripID           int64          `json:"tripId"`
	DayNumber        int            `json:"dayNumber"`
	DayDate          time.Time      `json:"dayDate"`
	Visits           string         `json:"visits"`
	VisitsCost       float64        `json:"visitsCost"` // per person
	GuideCost        float64        `json:"guideCost"`  // shared across the day
	ParticipantCount int            `json:"participantCount"`
	PassengerClass   PassengerClass `json:"passengerClass"`
	Notes            string         `json:"notes,omitempty"`
}

type TransportLeg struct {
	ID               int64         `json:"id"`
	TripID           int64         `json:"tripId"`
	Type             TransportType `json:"type"`
	TransportDate    time.Time     `json:"transportDate"`
	Route            string        `json:"route"`
	VehicleCount     int           `json:"vehicleCount"`
	SeatsPerVehicle  int           `json:"seatsPerVehicle"` // UI hint only
	ParticipantCount int           `json:"participantCount"`
	CostPerVehicle   float64       `json:"costPerVehicle"`
	TourLeaderTip    float64       `json:"tourLeaderTip"`
	DriverTip        float64       `json:"driverTip"`

	// Linkage back to the program day whose visit spawned this leg.
	// ProgramDayNumber 0 means the leg was entered by hand.
	VisitName        string `json:"visitName,omitempty"`
	ProgramDayNumber int    `json:"programDayNumber,omitempty"`
}

type AccommodationLine struct {
	ID               int64             `json:"id"`
	TripID           int64             `json:"tripId"`
	Type             AccommodationType `json:"type"`
	Name             string            `json:"name"`
	Rating           int               `json:"rating,omitempty"` // 1..5 stars, 0 when cruise
	CruiseLevel      CruiseLevel       `json:"cruiseLevel,omitempty"`
	RoomType         RoomType          `json:"roomType"`
	RoomCount        int               `json:"roomCount"`
	NightCount       int               `json:"nightCount"`
	ParticipantCount int               `json:"participantCount"`
	MealPlan         string            `json:"mealPlan,omitempty"`
	Currency         string            `json:"currency"`
	ExchangeRate     float64           `json:"exchangeRate"`
	PricePerNight    float64           `json:"pricePerNight"` // original currency
	GuideCost        float64           `json:"guideCost"`     // base currency
	CheckInDate      time.Time         `json:"checkInDate"`
	CheckOutDate     time.Time         `json:"checkOutDate"`
}

// GuideAssignment is the main tour guide engaged for the whole trip,
// separate from the per-day guide costs on the program.
type GuideAssignment struct {
	ID               int64   `json:"id"`
	TripID           int64   `json:"tripId"`
	GuideName        string  `json:"guideName"`
	Phone            string  `json:"phone,omitempty"`
	Email            string  `json:"email,omitempty"`
	Languages        string  `json:"languages,omitempty"`
	BaseFee          float64 `json:"baseFee"`
	CommissionAmount float64 `json:"commissionAmount"`
	DriverTip        float64 `json:"driverTip"`
	Notes            string  `json:"notes,omitempty"`
}

type Expense struct {
	ID          int64   `json:"id"`
	TripID      int64   `json:"tripId"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // base currency
	Notes       string  `json:"notes,omitempty"`
}

type OptionalTour struct {
	ID                 int64   `json:"id"`
	TripID             int64   `json:"tripId"`
	TourName           string  `json:"tourName"`
	SellingPrice       float64 `json:"sellingPrice"`       // per person
	PurchasePrice      float64 `json:"purchasePrice"`      // per person
	GuideCommission    float64 `json:"guideCommission"`    // per person
	SalesRepCommission float64 `json:"salesRepCommission"` // per person
	ParticipantCount   int     `json:"participantCount"`
}
