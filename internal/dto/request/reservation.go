package request

type SelectedOptionRequest struct {
	OptionID string `json:"option_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	RoomID    string `json:"room_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	PartySize int    `json:"party_size" validate:"required,min=1"`

	// Contact fields. Required for guests; for logged-in users they
	// default to the account details.
	Name  string  `json:"name" validate:"omitempty,max=100"`
	Email string  `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`

	Options []SelectedOptionRequest `json:"options" validate:"omitempty,dive"`
}

// CheckReservationRequest is the guest lookup: reservation code plus the
// email given at booking time.
type CheckReservationRequest struct {
	Code  string `json:"code" validate:"required,len=8"`
	Email string `json:"email" validate:"required,email"`
}

// CancelReservationRequest carries the guest credentials for an
// unauthenticated cancel. Empty for owner cancels.
type CancelReservationRequest struct {
	Code  string `json:"code" validate:"omitempty,len=8"`
	Email string `json:"email" validate:"omitempty,email"`
}
