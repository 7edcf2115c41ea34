package usecase

import "slices"

// Per-resource allowlists for partial updates. A request naming any field
// outside the resource's list is rejected as a whole; there is no partial
// application of the valid subset.
var (
	// UserUpdatableFields are the user fields a PATCH may touch.
	UserUpdatableFields = []string{"name", "surname", "email", "password"}

	// ApartmentUpdatableFields are the listing fields a PATCH may touch.
	ApartmentUpdatableFields = []string{"name", "address", "rent", "bedrooms", "bathrooms", "contact", "available"}
)

// FieldsAllowed reports whether every requested field is in the allowlist.
// An empty request trivially passes.
func FieldsAllowed(requested []string, allowlist []string) bool {
	for _, field := range requested {
		if !slices.Contains(allowlist, field) {
			return false
		}
	}

	return true
}

// FieldNames extracts the key set of a partial-update body.
func FieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	return names
}
