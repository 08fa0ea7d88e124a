package models

import "time"

type Unit struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"-" db:"user_id"`
	UnitName     string    `json:"unitName" db:"unit_name"`
	UnitType     string    `json:"unitType" db:"unit_type"`
	RentalAmount int       `json:"rentalAmount" db:"rental_amount"`
	BuildingName string    `json:"buildingName" db:"building_name"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
