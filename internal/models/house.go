package models

import "time"

type House struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"-" db:"user_id"`
	HouseName    string    `json:"houseName" db:"house_name"`
	RentalAmount int       `json:"rentalAmount" db:"rental_amount"`
	PhoneNo      string    `json:"phoneNo" db:"phone_no"`
	UnitType     string    `json:"unitType" db:"unit_type"`
	BuildingName string    `json:"buildingName" db:"building_name"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
