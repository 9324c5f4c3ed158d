package commands

// ValidateRecord exports validateRecord for testing.
var ValidateRecord = validateRecord //nolint:gochecknoglobals // test export
