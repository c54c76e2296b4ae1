package wizard

import (
	"strings"

	"backoffice/internal/domain/models"
)

// Selector cells arrive as plain text; unknown values fall back to the
// most common choice rather than failing, same leniency as the numeric
// cells.

func parseTripType(s string) models.TripType {
	switch models.TripType(strings.ToLower(strings.TrimSpace(s))) {
	case models.TripUmrah:
		return models.TripUmrah
	case models.TripInternational:
		return models.TripInternational
	case models.TripHajj:
		return models.TripHajj
	case models.TripReligious:
		return models.TripReligious
	case models.TripEducational:
		return models.TripEducational
	default:
		return models.TripDomestic
	}
}

func parseTransportType(s string) models.TransportType {
	switch models.TransportType(strings.ToLower(strings.TrimSpace(s))) {
	case models.TransportMiniBus:
		return models.TransportMiniBus
	case models.TransportCoaster:
		return models.TransportCoaster
	case models.TransportVan:
		return models.TransportVan
	case models.TransportCar:
		return models.TransportCar
	case models.TransportPlane:
		return models.TransportPlane
	case models.TransportTrain:
		return models.TransportTrain
	default:
		return models.TransportBus
	}
}

func parseAccommodationType(s string) models.AccommodationType {
	switch models.AccommodationType(strings.ToLower(strings.TrimSpace(s))) {
	case models.AccommodationCruise:
		return models.AccommodationCruise
	case models.AccommodationResort:
		return models.AccommodationResort
	case models.AccommodationApartment:
		return models.AccommodationApartment
	case models.AccommodationHostel:
		return models.AccommodationHostel
	default:
		return models.AccommodationHotel
	}
}

func parseRoomType(s string) models.RoomType {
	switch models.RoomType(strings.ToLower(strings.TrimSpace(s))) {
	case models.RoomSingle:
		return models.RoomSingle
	case models.RoomTriple:
		return models.RoomTriple
	case models.RoomQuad:
		return models.RoomQuad
	case models.RoomQuint:
		return models.RoomQuint
	case models.RoomSuite:
		return models.RoomSuite
	default:
		return models.RoomDouble
	}
}

func parseCruiseLevel(s string) models.CruiseLevel {
	switch models.CruiseLevel(strings.ToLower(strings.TrimSpace(s))) {
	case models.CruiseFourStar:
		return models.CruiseFourStar
	case models.CruiseFiveStar:
		return models.CruiseFiveStar
	case models.CruiseLuxury:
		return models.CruiseLuxury
	case models.CruiseDeluxe:
		return models.CruiseDeluxe
	default:
		return models.CruiseStandard
	}
}
