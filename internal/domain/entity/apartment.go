package entity

import (
	"time"

	"github.com/google/uuid"
)

// Apartment is a rental listing. Listings have no owner; any authenticated
// user may create, update or delete any of them.
type Apartment struct {
	ID        uuid.UUID // The unique identifier for the listing.
	Name      string    // Short title of the listing.
	Address   string    // Street address.
	Rent      float64   // Monthly rent.
	Bedrooms  int       // Number of bedrooms.
	Bathrooms float64   // Number of bathrooms; halves are common.
	Contact   string    // Optional contact phone or email.
	Available string    // Optional free-text availability, e.g. "December".
	CreatedAt time.Time // Timestamp of when this listing was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
