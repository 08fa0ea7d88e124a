// Package dashboard declares the table columns shown for each
// resource. Row selection and the delete confirmation flow come from
// pkg/table; these are just the data columns.
package dashboard

import (
	"strconv"

	"nyumbani/internal/models"
	"nyumbani/pkg/table"
)

var TenantColumns = []table.Column[*models.Tenant]{
	{Title: "Name", Sortable: true, Value: func(t *models.Tenant) string { return t.Name }},
	{Title: "PhoneNo", Sortable: true, Value: func(t *models.Tenant) string { return t.PhoneNo }},
	{Title: "BuildingName", Sortable: true, Value: func(t *models.Tenant) string { return t.BuildingName }},
	{Title: "UnitType", Sortable: true, Value: func(t *models.Tenant) string { return t.UnitType }},
	{Title: "RentalAmount", Sortable: true, Value: func(t *models.Tenant) string { return strconv.Itoa(t.RentalAmount) }},
	{Title: "UnitName", Sortable: false, Value: func(t *models.Tenant) string { return t.UnitName }},
}

var BuildingColumns = []table.Column[*models.Building]{
	{Title: "Name", Sortable: true, Value: func(b *models.Building) string { return b.Name }},
	{Title: "OwnersName", Sortable: true, Value: func(b *models.Building) string { return b.OwnersName }},
	{Title: "Location", Sortable: true, Value: func(b *models.Building) string { return b.Location }},
	{Title: "Floors", Sortable: true, Value: func(b *models.Building) string { return strconv.Itoa(b.Floors) }},
}

var BuildingOwnerColumns = []table.Column[*models.BuildingOwner]{
	{Title: "Name", Sortable: true, Value: func(o *models.BuildingOwner) string { return o.Name }},
	{Title: "BuildingName", Sortable: true, Value: func(o *models.BuildingOwner) string { return o.BuildingName }},
	{Title: "PhoneNo", Sortable: true, Value: func(o *models.BuildingOwner) string { return o.PhoneNo }},
}

var HouseColumns = []table.Column[*models.House]{
	{Title: "HouseName", Sortable: true, Value: func(h *models.House) string { return h.HouseName }},
	{Title: "RentalAmount", Sortable: true, Value: func(h *models.House) string { return strconv.Itoa(h.RentalAmount) }},
	{Title: "PhoneNo", Sortable: true, Value: func(h *models.House) string { return h.PhoneNo }},
	{Title: "UnitType", Sortable: true, Value: func(h *models.House) string { return h.UnitType }},
	{Title: "BuildingName", Sortable: true, Value: func(h *models.House) string { return h.BuildingName }},
}

var UnitColumns = []table.Column[*models.Unit]{
	{Title: "UnitName", Sortable: true, Value: func(u *models.Unit) string { return u.UnitName }},
	{Title: "UnitType", Sortable: true, Value: func(u *models.Unit) string { return u.UnitType }},
	{Title: "RentalAmount", Sortable: true, Value: func(u *models.Unit) string { return strconv.Itoa(u.RentalAmount) }},
	{Title: "BuildingName", Sortable: true, Value: func(u *models.Unit) string { return u.BuildingName }},
}
