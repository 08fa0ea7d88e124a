package resources

import (
	"github.com/jackc/pgx/v5"

	"nyumbani/internal/models"
	"nyumbani/internal/resource"
)

type BuildingOwnerPayload struct {
	Name         *string `json:"name"`
	BuildingName *string `json:"buildingName"`
	PhoneNo      *string `json:"phoneNo"`
}

var BuildingOwners = &resource.Definition[models.BuildingOwner, BuildingOwnerPayload]{
	Singular: "building owner",
	Table:    "building_owners",
	Columns:  []string{"name", "building_name", "phone_no"},
	Scan: func(row pgx.Row) (*models.BuildingOwner, error) {
		o := &models.BuildingOwner{}
		err := row.Scan(&o.ID, &o.UserID, &o.Name, &o.BuildingName, &o.PhoneNo,
			&o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return o, nil
	},
	InsertArgs: func(p *BuildingOwnerPayload) []any {
		return []any{strVal(p.Name), strVal(p.BuildingName), strVal(p.PhoneNo)}
	},
	PatchArgs: func(p *BuildingOwnerPayload) ([]string, []any) {
		var cols []string
		var args []any
		if p.Name != nil {
			cols, args = append(cols, "name"), append(args, *p.Name)
		}
		if p.BuildingName != nil {
			cols, args = append(cols, "building_name"), append(args, *p.BuildingName)
		}
		if p.PhoneNo != nil {
			cols, args = append(cols, "phone_no"), append(args, *p.PhoneNo)
		}
		return cols, args
	},
	Validate: func(p *BuildingOwnerPayload) error {
		ve := newFieldErrors()
		requireString(ve, "name", p.Name)
		requireString(ve, "buildingName", p.BuildingName)
		requireString(ve, "phoneNo", p.PhoneNo)
		return errOrNil(ve)
	},
	ValidatePatch: func(p *BuildingOwnerPayload) error {
		ve := newFieldErrors()
		optionalString(ve, "name", p.Name)
		optionalString(ve, "buildingName", p.BuildingName)
		optionalString(ve, "phoneNo", p.PhoneNo)
		return errOrNil(ve)
	},
}
