package validator

// Validator checks a struct against its validation tags.
type Validator interface {
	// Validate returns nil when data is valid, otherwise an error describing
	// the failing fields.
	Validate(data any) error
}
