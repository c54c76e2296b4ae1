package wizard

import (
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/utils"
)

// validateStep gates the Next transition. Only the basic-info page has
// hard requirements; later grids tolerate partial entry because the
// cost math is lenient by design.
func (s *Session) validateStep(step Step) error {
	if step != StepBasicInfo {
		return nil
	}

	f := &s.basic
	if strings.TrimSpace(f.TripName) == "" {
		return domain.ValidationError{Field: "tripName", Msg: "trip name is required"}
	}
	if strings.TrimSpace(f.StartDestination) == "" {
		return domain.ValidationError{Field: "startDestination", Msg: "start destination is required"}
	}
	if strings.TrimSpace(f.EndDestination) == "" {
		return domain.ValidationError{Field: "endDestination", Msg: "end destination is required"}
	}
	if strings.TrimSpace(f.TripType) == "" {
		return domain.ValidationError{Field: "tripType", Msg: "trip type is required"}
	}

	start, err := utils.ParseDate(f.StartDate)
	if err != nil {
		return domain.ValidationError{Field: "startDate", Msg: "start date must be YYYY-MM-DD"}
	}
	end, err := utils.ParseDate(f.EndDate)
	if err != nil {
		return domain.ValidationError{Field: "endDate", Msg: "end date must be YYYY-MM-DD"}
	}
	if !start.Before(end) {
		return domain.ValidationError{Field: "endDate", Msg: "end date must be after start date"}
	}
	return nil
}
