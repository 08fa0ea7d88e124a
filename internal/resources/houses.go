package resources

import (
	"github.com/jackc/pgx/v5"

	"nyumbani/internal/models"
	"nyumbani/internal/resource"
)

type HousePayload struct {
	HouseName    *string `json:"houseName"`
	RentalAmount *int    `json:"rentalAmount"`
	PhoneNo      *string `json:"phoneNo"`
	UnitType     *string `json:"unitType"`
	BuildingName *string `json:"buildingName"`
}

var Houses = &resource.Definition[models.House, HousePayload]{
	Singular: "house",
	Table:    "houses",
	Columns:  []string{"house_name", "rental_amount", "phone_no", "unit_type", "building_name"},
	Scan: func(row pgx.Row) (*models.House, error) {
		h := &models.House{}
		err := row.Scan(&h.ID, &h.UserID, &h.HouseName, &h.RentalAmount, &h.PhoneNo,
			&h.UnitType, &h.BuildingName, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return h, nil
	},
	InsertArgs: func(p *HousePayload) []any {
		return []any{strVal(p.HouseName), intVal(p.RentalAmount), strVal(p.PhoneNo),
			strVal(p.UnitType), strVal(p.BuildingName)}
	},
	PatchArgs: func(p *HousePayload) ([]string, []any) {
		var cols []string
		var args []any
		if p.HouseName != nil {
			cols, args = append(cols, "house_name"), append(args, *p.HouseName)
		}
		if p.RentalAmount != nil {
			cols, args = append(cols, "rental_amount"), append(args, *p.RentalAmount)
		}
		if p.PhoneNo != nil {
			cols, args = append(cols, "phone_no"), append(args, *p.PhoneNo)
		}
		if p.UnitType != nil {
			cols, args = append(cols, "unit_type"), append(args, *p.UnitType)
		}
		if p.BuildingName != nil {
			cols, args = append(cols, "building_name"), append(args, *p.BuildingName)
		}
		return cols, args
	},
	Validate: func(p *HousePayload) error {
		ve := newFieldErrors()
		requireString(ve, "houseName", p.HouseName)
		requirePositive(ve, "rentalAmount", p.RentalAmount)
		requireString(ve, "phoneNo", p.PhoneNo)
		requireString(ve, "unitType", p.UnitType)
		requireString(ve, "buildingName", p.BuildingName)
		return errOrNil(ve)
	},
	ValidatePatch: func(p *HousePayload) error {
		ve := newFieldErrors()
		optionalString(ve, "houseName", p.HouseName)
		optionalPositive(ve, "rentalAmount", p.RentalAmount)
		optionalString(ve, "phoneNo", p.PhoneNo)
		optionalString(ve, "unitType", p.UnitType)
		optionalString(ve, "buildingName", p.BuildingName)
		return errOrNil(ve)
	},
}
