package models

import "time"

type Building struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"-" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Floors        int       `json:"floors" db:"floors"`
	OwnersName    string    `json:"ownersName" db:"owners_name"`
	OwnersPhoneNo string    `json:"ownersPhoneNo" db:"owners_phone_no"`
	Location      string    `json:"location" db:"location"`
	BuildingUnits int       `json:"buildingUnits" db:"building_units"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
	UpdatedAt     time.Time `json:"-" db:"updated_at"`
}
