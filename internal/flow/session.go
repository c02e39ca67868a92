package flow

import "time"

// Step is the current stage of one user's order-capture conversation.
type Step int

const (
	StepIdle Step = iota
	StepPhone
	StepOriginCity
	StepOriginDistrict
	StepDestinationCity
	StepDestinationDistrict
	StepPassengers
	StepNote
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepPhone:
		return "awaiting_phone"
	case StepOriginCity:
		return "awaiting_origin_city"
	case StepOriginDistrict:
		return "awaiting_origin_district"
	case StepDestinationCity:
		return "awaiting_destination_city"
	case StepDestinationDistrict:
		return "awaiting_destination_district"
	case StepPassengers:
		return "awaiting_passengers"
	case StepNote:
		return "awaiting_note"
	}
	return "unknown"
}

// User identifies the person the conversation belongs to.
type User struct {
	ID          int64
	DisplayName string
	Handle      string
}

// Draft is the partial order accumulated while the conversation runs.
type Draft struct {
	Phone               string
	OriginCity          string
	OriginDistrict      string
	DestinationCity     string
	DestinationDistrict string
	Passengers          int
	Cargo               bool
	Note                *string
}

// Session is the per-user conversation state. It is created on start,
// mutated only by the Machine one input at a time, and cleared on
// finalize or cancellation.
type Session struct {
	Step  Step
	Order Draft

	// Page cursors for the two district lists, tracked independently
	// and reset to 1 whenever the corresponding city changes.
	OriginPage      int
	DestinationPage int

	// Remembered values from the user's most recent order, used only
	// for shortcuts: district per city (starred button) and the phone
	// pre-fill offer.
	LastDistricts map[string]string
	LastPhone     string
}

// Reset returns the session to idle and drops everything captured.
func (s *Session) Reset() {
	*s = Session{}
}

// Order is a completed, immutable taxi order.
type Order struct {
	RefCode             string
	UserID              int64
	DisplayName         string
	Handle              string
	Phone               string
	OriginCity          string
	OriginDistrict      string
	DestinationCity     string
	DestinationDistrict string
	Passengers          int
	Cargo               bool
	Note                *string
	CreatedAt           time.Time
}
