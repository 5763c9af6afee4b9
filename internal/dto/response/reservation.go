package response

import (
	"time"

	"pokerroom-booking/internal/data/entity"
)

type ReservationOptionResponse struct {
	OptionID  string  `json:"option_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
	Quantity  int     `json:"quantity"`
}

type ReservationResponse struct {
	ID           string                      `json:"id"`
	Code         string                      `json:"code"`
	RoomID       string                      `json:"room_id"`
	RoomName     string                      `json:"room_name,omitempty"`
	Date         string                      `json:"date"`
	StartTime    string                      `json:"start_time"`
	EndTime      string                      `json:"end_time"`
	PartySize    int                         `json:"party_size"`
	ContactName  string                      `json:"contact_name"`
	ContactEmail string                      `json:"contact_email"`
	TotalPrice   float64                     `json:"total_price"`
	Status       entity.ReservationStatus    `json:"status"`
	Options      []ReservationOptionResponse `json:"options,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation, roomName string, options []*entity.ReservationOption) ReservationResponse {
	optionResponses := make([]ReservationOptionResponse, len(options))
	for i, option := range options {
		optionResponses[i] = ReservationOptionResponse{
			OptionID:  option.OptionID.String(),
			Name:      option.OptionName,
			UnitPrice: option.UnitPrice,
			Unit:      string(option.Unit),
			Quantity:  option.Quantity,
		}
	}

	return ReservationResponse{
		ID:           reservation.ID.String(),
		Code:         reservation.Code,
		RoomID:       reservation.RoomID.String(),
		RoomName:     roomName,
		Date:         reservation.Date.Format("2006-01-02"),
		StartTime:    reservation.StartTime,
		EndTime:      reservation.EndTime,
		PartySize:    reservation.PartySize,
		ContactName:  reservation.ContactName,
		ContactEmail: reservation.ContactEmail,
		TotalPrice:   reservation.TotalPrice,
		Status:       reservation.Status,
		Options:      optionResponses,
		CreatedAt:    reservation.CreatedAt,
	}
}
