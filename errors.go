package modely

import "errors"

var (
	//ErrTypeMismatch is returned when a value cannot be interpreted by a field
	//under either the forward (raw to canonical) or fallback (canonical validation) pass.
	ErrTypeMismatch = errors.New("type mismatch")

	//ErrUnknownField is returned by typed accessors for names outside the schema.
	ErrUnknownField = errors.New("unknown field")

	//ErrSchemaMismatch is returned when an instance of one schema is supplied
	//where another schema is required.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
