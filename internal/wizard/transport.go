package wizard

import (
	"sort"
	"strconv"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// ImportTransportLegs seeds the transportation grid from the saved
// daily program: one bus-leg stub per distinct (day, visit) pair,
// splitting multi-visit cells on the usual separators. Rows the user
// already filled for a key keep their values; rows without any program
// linkage are kept at the end. Running the import twice without edits
// produces the same grid.
func (s *Session) ImportTransportLegs() int {
	// The current grid state wins over the aggregate for preservation.
	existing := map[string]TransportRow{}
	unlinked := []TransportRow{}
	for _, row := range s.transport.Rows {
		key := transportKey(row.DayNumber, row.VisitName)
		if key == "" {
			unlinked = append(unlinked, row)
			continue
		}
		existing[key] = row
	}

	programs := make([]models.ProgramDay, len(s.trip.Programs))
	copy(programs, s.trip.Programs)
	sort.SliceStable(programs, func(i, j int) bool {
		return programs[i].DayNumber < programs[j].DayNumber
	})

	rows := []TransportRow{}
	seen := map[string]bool{}
	for _, p := range programs {
		day := strconv.Itoa(p.DayNumber)
		for _, visit := range utils.SplitVisits(p.Visits) {
			key := transportKey(day, visit)
			if seen[key] {
				continue
			}
			seen[key] = true

			if row, ok := existing[key]; ok {
				rows = append(rows, row)
				continue
			}
			rows = append(rows, TransportRow{
				VisitName:        visit,
				DayNumber:        day,
				Type:             string(models.TransportBus),
				TransportDate:    utils.FormatDate(p.DayDate),
				Route:            "Transfer to " + visit,
				SeatsPerVehicle:  strconv.Itoa(models.TransportBus.SeatCapacityHint()),
				VehicleCount:     "1",
				ParticipantCount: strconv.Itoa(p.ParticipantCount),
				CostPerVehicle:   "0.00",
				TourLeaderTip:    "0.00",
				DriverTip:        "0.00",
			})
		}
	}

	s.transport.Rows = append(rows, unlinked...)
	utils.LogEvent(s.requestID, "wizard", "transport_import", "rows="+strconv.Itoa(len(s.transport.Rows)))
	return len(s.transport.Rows)
}

func transportKey(day, visit string) string {
	if day == "" || visit == "" {
		return ""
	}
	return day + ":" + visit
}
