package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyumbani/internal/common"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func validTenant() *TenantPayload {
	return &TenantPayload{
		Name:         strPtr("Alice"),
		PhoneNo:      strPtr("0712345678"),
		BuildingName: strPtr("Oak Hall"),
		UnitType:     strPtr("1BR"),
		RentalAmount: intPtr(500),
		UnitName:     strPtr("U12"),
	}
}

func TestTenantValidate(t *testing.T) {
	assert.NoError(t, Tenants.Validate(validTenant()))

	p := validTenant()
	p.Name = nil
	p.RentalAmount = intPtr(0)
	err := Tenants.Validate(p)
	require.Error(t, err)

	ve, ok := err.(*common.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "rentalAmount")
	assert.NotContains(t, ve.Fields, "phoneNo")
}

func TestTenantInsertArgsMatchColumns(t *testing.T) {
	args := Tenants.InsertArgs(validTenant())
	assert.Len(t, args, len(Tenants.Columns))
	assert.Equal(t, []any{"Alice", "0712345678", "Oak Hall", "1BR", 500, "U12"}, args)
}

func TestTenantPatchArgsPartial(t *testing.T) {
	cols, args := Tenants.PatchArgs(&TenantPayload{
		PhoneNo:      strPtr("0700000000"),
		RentalAmount: intPtr(650),
	})
	assert.Equal(t, []string{"phone_no", "rental_amount"}, cols)
	assert.Equal(t, []any{"0700000000", 650}, args)

	cols, args = Tenants.PatchArgs(&TenantPayload{})
	assert.Empty(t, cols)
	assert.Empty(t, args)
}

func TestTenantValidatePatch(t *testing.T) {
	// absent fields pass, present fields follow the create rules
	assert.NoError(t, Tenants.ValidatePatch(&TenantPayload{}))
	assert.NoError(t, Tenants.ValidatePatch(&TenantPayload{Name: strPtr("Asha")}))

	err := Tenants.ValidatePatch(&TenantPayload{
		Name:         strPtr(""),
		RentalAmount: intPtr(-5),
	})
	require.Error(t, err)
	ve := err.(*common.ValidationError)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "rentalAmount")
	assert.NotContains(t, ve.Fields, "phoneNo")
}

func TestEveryDefinitionValidatesPatchValues(t *testing.T) {
	assert.Error(t, Buildings.ValidatePatch(&BuildingPayload{Floors: intPtr(0)}))
	assert.Error(t, BuildingOwners.ValidatePatch(&BuildingOwnerPayload{Name: strPtr("")}))
	assert.Error(t, Houses.ValidatePatch(&HousePayload{RentalAmount: intPtr(-1)}))
	assert.Error(t, Units.ValidatePatch(&UnitPayload{UnitName: strPtr("")}))

	assert.NoError(t, Buildings.ValidatePatch(&BuildingPayload{Floors: intPtr(3)}))
	assert.NoError(t, BuildingOwners.ValidatePatch(&BuildingOwnerPayload{}))
	assert.NoError(t, Houses.ValidatePatch(&HousePayload{RentalAmount: intPtr(800)}))
	assert.NoError(t, Units.ValidatePatch(&UnitPayload{UnitName: strPtr("U9")}))
}

func TestBuildingValidate(t *testing.T) {
	p := &BuildingPayload{
		Name:          strPtr("Oak Hall"),
		Floors:        intPtr(4),
		OwnersName:    strPtr("Wanjiku"),
		OwnersPhoneNo: strPtr("0722000000"),
		Location:      strPtr("Nairobi"),
		BuildingUnits: intPtr(16),
	}
	assert.NoError(t, Buildings.Validate(p))

	p.Floors = nil
	p.Location = strPtr("")
	err := Buildings.Validate(p)
	require.Error(t, err)
	ve := err.(*common.ValidationError)
	assert.Contains(t, ve.Fields, "floors")
	assert.Contains(t, ve.Fields, "location")
}

func TestBuildingOwnerValidate(t *testing.T) {
	assert.NoError(t, BuildingOwners.Validate(&BuildingOwnerPayload{
		Name:         strPtr("Wanjiku"),
		BuildingName: strPtr("Oak Hall"),
		PhoneNo:      strPtr("0722000000"),
	}))

	err := BuildingOwners.Validate(&BuildingOwnerPayload{})
	require.Error(t, err)
	assert.Len(t, err.(*common.ValidationError).Fields, 3)
}

func TestHouseAndUnitColumnCounts(t *testing.T) {
	houseArgs := Houses.InsertArgs(&HousePayload{
		HouseName:    strPtr("Mango Court"),
		RentalAmount: intPtr(800),
		PhoneNo:      strPtr("0733000000"),
		UnitType:     strPtr("2BR"),
		BuildingName: strPtr("Oak Hall"),
	})
	assert.Len(t, houseArgs, len(Houses.Columns))

	unitArgs := Units.InsertArgs(&UnitPayload{
		UnitName:     strPtr("U12"),
		UnitType:     strPtr("1BR"),
		RentalAmount: intPtr(500),
		BuildingName: strPtr("Oak Hall"),
	})
	assert.Len(t, unitArgs, len(Units.Columns))
}
