package resources

import (
	"github.com/jackc/pgx/v5"

	"nyumbani/internal/models"
	"nyumbani/internal/resource"
)

// TenantPayload carries the mutable fields of a tenant row. Ids and
// the owning user are server-assigned and deliberately absent.
type TenantPayload struct {
	Name         *string `json:"name"`
	PhoneNo      *string `json:"phoneNo"`
	BuildingName *string `json:"buildingName"`
	UnitType     *string `json:"unitType"`
	RentalAmount *int    `json:"rentalAmount"`
	UnitName     *string `json:"unitName"`
}

var Tenants = &resource.Definition[models.Tenant, TenantPayload]{
	Singular: "tenant",
	Table:    "tenants",
	Columns:  []string{"name", "phone_no", "building_name", "unit_type", "rental_amount", "unit_name"},
	Scan: func(row pgx.Row) (*models.Tenant, error) {
		t := &models.Tenant{}
		err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.PhoneNo, &t.BuildingName, &t.UnitType,
			&t.RentalAmount, &t.UnitName, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return t, nil
	},
	InsertArgs: func(p *TenantPayload) []any {
		return []any{strVal(p.Name), strVal(p.PhoneNo), strVal(p.BuildingName),
			strVal(p.UnitType), intVal(p.RentalAmount), strVal(p.UnitName)}
	},
	PatchArgs: func(p *TenantPayload) ([]string, []any) {
		var cols []string
		var args []any
		if p.Name != nil {
			cols, args = append(cols, "name"), append(args, *p.Name)
		}
		if p.PhoneNo != nil {
			cols, args = append(cols, "phone_no"), append(args, *p.PhoneNo)
		}
		if p.BuildingName != nil {
			cols, args = append(cols, "building_name"), append(args, *p.BuildingName)
		}
		if p.UnitType != nil {
			cols, args = append(cols, "unit_type"), append(args, *p.UnitType)
		}
		if p.RentalAmount != nil {
			cols, args = append(cols, "rental_amount"), append(args, *p.RentalAmount)
		}
		if p.UnitName != nil {
			cols, args = append(cols, "unit_name"), append(args, *p.UnitName)
		}
		return cols, args
	},
	Validate: func(p *TenantPayload) error {
		ve := newFieldErrors()
		requireString(ve, "name", p.Name)
		requireString(ve, "phoneNo", p.PhoneNo)
		requireString(ve, "buildingName", p.BuildingName)
		requireString(ve, "unitType", p.UnitType)
		requirePositive(ve, "rentalAmount", p.RentalAmount)
		requireString(ve, "unitName", p.UnitName)
		return errOrNil(ve)
	},
	ValidatePatch: func(p *TenantPayload) error {
		ve := newFieldErrors()
		optionalString(ve, "name", p.Name)
		optionalString(ve, "phoneNo", p.PhoneNo)
		optionalString(ve, "buildingName", p.BuildingName)
		optionalString(ve, "unitType", p.UnitType)
		optionalPositive(ve, "rentalAmount", p.RentalAmount)
		optionalString(ve, "unitName", p.UnitName)
		return errOrNil(ve)
	},
}
