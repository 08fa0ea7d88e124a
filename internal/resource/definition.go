package resource

import (
	"github.com/jackc/pgx/v5"
)

// Definition declares the field schema of one managed entity. The
// five dashboard resources share one repository/service/handler
// implementation and differ only in their Definition.
//
// T is the row model, P the mutable-field payload bound from request
// bodies. Id and owning user id are never part of P; the server
// assigns both.
type Definition[T any, P any] struct {
	// Singular entity name, used in error text.
	Singular string

	// Table is the backing table name.
	Table string

	// Columns lists the mutable columns in a fixed order. InsertArgs
	// must produce values in the same order.
	Columns []string

	// Scan reads a full row in the order
	// id, user_id, Columns..., created_at, updated_at.
	Scan func(row pgx.Row) (*T, error)

	// InsertArgs extracts the column values from a validated create
	// payload, in Columns order.
	InsertArgs func(p *P) []any

	// PatchArgs extracts only the columns present in a patch payload,
	// with their values.
	PatchArgs func(p *P) ([]string, []any)

	// Validate enforces the create-time field schema. It returns a
	// *common.ValidationError naming every offending field.
	Validate func(p *P) error

	// ValidatePatch enforces the same per-field value rules on the
	// subset of fields present in a patch payload. Absent fields pass.
	ValidatePatch func(p *P) error
}
