package resources

import (
	"github.com/jackc/pgx/v5"

	"nyumbani/internal/models"
	"nyumbani/internal/resource"
)

type UnitPayload struct {
	UnitName     *string `json:"unitName"`
	UnitType     *string `json:"unitType"`
	RentalAmount *int    `json:"rentalAmount"`
	BuildingName *string `json:"buildingName"`
}

var Units = &resource.Definition[models.Unit, UnitPayload]{
	Singular: "unit",
	Table:    "units",
	Columns:  []string{"unit_name", "unit_type", "rental_amount", "building_name"},
	Scan: func(row pgx.Row) (*models.Unit, error) {
		u := &models.Unit{}
		err := row.Scan(&u.ID, &u.UserID, &u.UnitName, &u.UnitType, &u.RentalAmount,
			&u.BuildingName, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return u, nil
	},
	InsertArgs: func(p *UnitPayload) []any {
		return []any{strVal(p.UnitName), strVal(p.UnitType), intVal(p.RentalAmount), strVal(p.BuildingName)}
	},
	PatchArgs: func(p *UnitPayload) ([]string, []any) {
		var cols []string
		var args []any
		if p.UnitName != nil {
			cols, args = append(cols, "unit_name"), append(args, *p.UnitName)
		}
		if p.UnitType != nil {
			cols, args = append(cols, "unit_type"), append(args, *p.UnitType)
		}
		if p.RentalAmount != nil {
			cols, args = append(cols, "rental_amount"), append(args, *p.RentalAmount)
		}
		if p.BuildingName != nil {
			cols, args = append(cols, "building_name"), append(args, *p.BuildingName)
		}
		return cols, args
	},
	Validate: func(p *UnitPayload) error {
		ve := newFieldErrors()
		requireString(ve, "unitName", p.UnitName)
		requireString(ve, "unitType", p.UnitType)
		requirePositive(ve, "rentalAmount", p.RentalAmount)
		requireString(ve, "buildingName", p.BuildingName)
		return errOrNil(ve)
	},
	ValidatePatch: func(p *UnitPayload) error {
		ve := newFieldErrors()
		optionalString(ve, "unitName", p.UnitName)
		optionalString(ve, "unitType", p.UnitType)
		optionalPositive(ve, "rentalAmount", p.RentalAmount)
		optionalString(ve, "buildingName", p.BuildingName)
		return errOrNil(ve)
	},
}
