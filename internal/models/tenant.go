package models

import "time"

// Tenant is a person renting a unit, not to be confused with the
// account owner (User) the row belongs to.
type Tenant struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"-" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	PhoneNo      string    `json:"phoneNo" db:"phone_no"`
	BuildingName string    `json:"buildingName" db:"building_name"`
	UnitType     string    `json:"unitType" db:"unit_type"`
	RentalAmount int       `json:"rentalAmount" db:"rental_amount"`
	UnitName     string    `json:"unitName" db:"unit_name"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
