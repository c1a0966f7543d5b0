package schema

import "errors"

// Sentinel errors for schema package operations.
var (
	// ErrEmptyName indicates a dimension was declared with an empty name.
	ErrEmptyName = errors.New("schema: dimension name is empty")

	// ErrDuplicateName indicates the same name was declared twice in one Schema.
	ErrDuplicateName = errors.New("schema: duplicate dimension name")

	// ErrUnknownDim indicates a name was looked up that is not in the Schema.
	ErrUnknownDim = errors.New("schema: unknown dimension")

	// ErrKindConflict indicates a name is declared as Global in one schema and
	// Local in another; harmonizing the two is a SchemaError at the coordinator
	// level, reported here as the underlying cause.
	ErrKindConflict = errors.New("schema: dimension declared with conflicting kinds")

	// ErrVectorLength indicates a vector's length does not match its Schema's
	// dimension count.
	ErrVectorLength = errors.New("schema: vector length does not match schema")
)
