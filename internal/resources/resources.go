// Package resources declares the field schemas of the five dashboard
// entities. Each definition instantiates the generic CRUD group in
// internal/resource.
package resources

import "nyumbani/internal/common"

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func requireString(ve *common.ValidationError, field string, p *string) {
	if p == nil || *p == "" {
		ve.Fields[field] = field + " is required"
	}
}

func requirePositive(ve *common.ValidationError, field string, p *int) {
	if p == nil {
		ve.Fields[field] = field + " is required"
		return
	}
	if *p <= 0 {
		ve.Fields[field] = field + " must be positive"
	}
}

func optionalString(ve *common.ValidationError, field string, p *string) {
	if p != nil && *p == "" {
		ve.Fields[field] = field + " must not be empty"
	}
}

func optionalPositive(ve *common.ValidationError, field string, p *int) {
	if p != nil && *p <= 0 {
		ve.Fields[field] = field + " must be positive"
	}
}

func newFieldErrors() *common.ValidationError {
	return &common.ValidationError{Fields: map[string]string{}}
}

func errOrNil(ve *common.ValidationError) error {
	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}
