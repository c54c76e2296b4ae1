package models

// PassengerClass tags a program day as belonging to the adult or child
// itinerary. The two run as separate day sequences.
type PassengerClass string

const (
	PassengerAdult PassengerClass = "Adult"
	PassengerChild PassengerClass = "Child"
)

type TripType string

const (
	TripUmrah         TripType = "umrah"
	TripDomestic      TripType = "domestic"
	TripInternational TripType = "international"
	TripHajj          TripType = "hajj"
	TripReligious     TripType = "religious"
	TripEducational   TripType = "educational"
)

type TransportType string

const (
	TransportBus     TransportType = "bus"
	TransportMiniBus TransportType = "minibus"
	TransportCoaster TransportType = "coaster"
	TransportVan     TransportType = "van"
	TransportCar     TransportType = "car"
	TransportPlane   TransportType = "plane"
	TransportTrain   TransportType = "train"
)

// SeatCapacityHint returns the default seats-per-vehicle shown when the
// type changes. Display hint only; cost math never reads it.
func (t TransportType) SeatCapacityHint() int {
	switch t {
	case TransportBus:
		return 50
	case TransportMiniBus:
		return 14
	case TransportCoaster:
		return 26
	case TransportVan:
		return 14
	case TransportCar:
		return 4
	case TransportPlane:
		return 180
	case TransportTrain:
		return 200
	default:
		return 50
	}
}

type AccommodationType string

const (
	AccommodationHotel     AccommodationType = "hotel"
	AccommodationCruise    AccommodationType = "cruise"
	AccommodationResort    AccommodationType = "resort"
	AccommodationApartment AccommodationType = "apartment"
	AccommodationHostel    AccommodationType = "hostel"
)

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTriple RoomType = "triple"
	RoomQuad   RoomType = "quad"
	RoomQuint  RoomType = "quint"
	RoomSuite  RoomType = "suite"
)

// CruiseLevel replaces the star rating on cruise lines; the two are
// mutually exclusive in storage.
type CruiseLevel string

const (
	CruiseStandard CruiseLevel = "standard"
	CruiseFourStar CruiseLevel = "four_star"
	CruiseFiveStar CruiseLevel = "five_star"
	CruiseLuxury   CruiseLevel = "luxury"
	CruiseDeluxe   CruiseLevel = "deluxe"
)
