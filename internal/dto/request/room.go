package request

type CreateRoomRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=2000"`
	Capacity     int      `json:"capacity" validate:"required,min=1"`
	PricePerHour float64  `json:"price_per_hour" validate:"required,min=0"`
	Address      string   `json:"address" validate:"required,max=255"`
	City         string   `json:"city" validate:"required,max=100"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type UpdateRoomRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=2000"`
	Capacity     int      `json:"capacity" validate:"required,min=1"`
	PricePerHour float64  `json:"price_per_hour" validate:"required,min=0"`
	Address      string   `json:"address" validate:"required,max=255"`
	City         string   `json:"city" validate:"required,max=100"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	IsActive     bool     `json:"is_active"`
}

type CreateOptionRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Price float64 `json:"price" validate:"required,min=0"`
	Unit  string  `json:"unit" validate:"required,oneof=booking per_hour per_half_hour per_hour_person"`
}
