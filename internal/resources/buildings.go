package resources

import (
	"github.com/jackc/pgx/v5"

	"nyumbani/internal/models"
	"nyumbani/internal/resource"
)

type BuildingPayload struct {
	Name          *string `json:"name"`
	Floors        *int    `json:"floors"`
	OwnersName    *string `json:"ownersName"`
	OwnersPhoneNo *string `json:"ownersPhoneNo"`
	Location      *string `json:"location"`
	BuildingUnits *int    `json:"buildingUnits"`
}

var Buildings = &resource.Definition[models.Building, BuildingPayload]{
	Singular: "building",
	Table:    "buildings",
	Columns:  []string{"name", "floors", "owners_name", "owners_phone_no", "location", "building_units"},
	Scan: func(row pgx.Row) (*models.Building, error) {
		b := &models.Building{}
		err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Floors, &b.OwnersName, &b.OwnersPhoneNo,
			&b.Location, &b.BuildingUnits, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return b, nil
	},
	InsertArgs: func(p *BuildingPayload) []any {
		return []any{strVal(p.Name), intVal(p.Floors), strVal(p.OwnersName),
			strVal(p.OwnersPhoneNo), strVal(p.Location), intVal(p.BuildingUnits)}
	},
	PatchArgs: func(p *BuildingPayload) ([]string, []any) {
		var cols []string
		var args []any
		if p.Name != nil {
			cols, args = append(cols, "name"), append(args, *p.Name)
		}
		if p.Floors != nil {
			cols, args = append(cols, "floors"), append(args, *p.Floors)
		}
		if p.OwnersName != nil {
			cols, args = append(cols, "owners_name"), append(args, *p.OwnersName)
		}
		if p.OwnersPhoneNo != nil {
			cols, args = append(cols, "owners_phone_no"), append(args, *p.OwnersPhoneNo)
		}
		if p.Location != nil {
			cols, args = append(cols, "location"), append(args, *p.Location)
		}
		if p.BuildingUnits != nil {
			cols, args = append(cols, "building_units"), append(args, *p.BuildingUnits)
		}
		return cols, args
	},
	Validate: func(p *BuildingPayload) error {
		ve := newFieldErrors()
		requireString(ve, "name", p.Name)
		requirePositive(ve, "floors", p.Floors)
		requireString(ve, "ownersName", p.OwnersName)
		requireString(ve, "ownersPhoneNo", p.OwnersPhoneNo)
		requireString(ve, "location", p.Location)
		requirePositive(ve, "buildingUnits", p.BuildingUnits)
		return errOrNil(ve)
	},
	ValidatePatch: func(p *BuildingPayload) error {
		ve := newFieldErrors()
		optionalString(ve, "name", p.Name)
		optionalPositive(ve, "floors", p.Floors)
		optionalString(ve, "ownersName", p.OwnersName)
		optionalString(ve, "ownersPhoneNo", p.OwnersPhoneNo)
		optionalString(ve, "location", p.Location)
		optionalPositive(ve, "buildingUnits", p.BuildingUnits)
		return errOrNil(ve)
	},
}
