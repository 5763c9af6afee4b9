package response

import (
	"pokerroom-booking/internal/data/entity"
)

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"price_per_hour"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type OptionResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

type RoomPriceResponse struct {
	Hour         int     `json:"hour"`
	WeekendPrice float64 `json:"weekend_price"`
}

type RoomDetailResponse struct {
	RoomResponse
	Options       []OptionResponse    `json:"options"`
	WeekendPrices []RoomPriceResponse `json:"weekend_prices"`
}

// DateAvailability is one calendar cell: is any capacity left on this day.
type DateAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	RoomID string             `json:"room_id"`
	Dates  []DateAvailability `json:"dates"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:           room.ID.String(),
		Name:         room.Name,
		Description:  room.Description,
		Capacity:     room.Capacity,
		PricePerHour: room.PricePerHour,
		Address:      room.Address,
		City:         room.City,
		Latitude:     room.Latitude,
		Longitude:    room.Longitude,
	}
}

func OptionToResponse(option *entity.Option) OptionResponse {
	return OptionResponse{
		ID:    option.ID.String(),
		Name:  option.Name,
		Price: option.Price,
		Unit:  string(option.Unit),
	}
}
