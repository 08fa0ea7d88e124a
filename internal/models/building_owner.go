package models

import "time"

// BuildingOwner references its building by name only; there is no
// foreign key to the buildings table.
type BuildingOwner struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"-" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	BuildingName string    `json:"buildingName" db:"building_name"`
	PhoneNo      string    `json:"phoneNo" db:"phone_no"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
