package entity

import "github.com/google/uuid"

// ReservationOption snapshots a selected option at booking time.
// Name/price/unit are copied from the option row so later admin edits
// cannot rewrite the pricing basis of an existing reservation.
type ReservationOption struct {
	BaseSimple
	ReservationID uuid.UUID  `db:"reservation_id"`
	OptionID      uuid.UUID  `db:"option_id"`
	OptionName    string     `db:"option_name"`
	UnitPrice     float64    `db:"unit_price"`
	Unit          OptionUnit `db:"unit"`
	Quantity      int        `db:"quantity"`
}
