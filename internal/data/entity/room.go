package entity

type Room struct {
	Base
	Name         string   `db:"name"`
	Description  string   `db:"description"`
	Capacity     int      `db:"capacity"`
	PricePerHour float64  `db:"price_per_hour"`
	Address      string   `db:"address"`
	City         string   `db:"city"`
	Latitude     *float64 `db:"latitude"`
	Longitude    *float64 `db:"longitude"`
	IsActive     bool     `db:"is_active"`
}
