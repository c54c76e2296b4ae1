package wizard

// Step identifies one page of the trip editor. The flow is strictly
// linear; Next and Previous are the only transitions.
type Step int

const (
	StepBasicInfo Step = iota
	StepDailyProgram
	StepTransportation
	StepAccommodation
	StepGuide
	StepExpenses
	StepOptionalTours
	StepReview
)

const stepCount = 8

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepDailyProgram:
		return "daily_program"
	case StepTransportation:
		return "transportation"
	case StepAccommodation:
		return "accommodation"
	case StepGuide:
		return "guide"
	case StepExpenses:
		return "expenses"
	case StepOptionalTours:
		return "optional_tours"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// IsLast reports whether the step is the terminal review page, which
// offers Save instead of Next.
func (s Step) IsLast() bool {
	return s == StepReview
}
