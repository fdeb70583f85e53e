package models

// Address is a structured postal address. The gateway encodes the street
// portion as a flexible union of optional variants; only the variants
// actually set here appear on the wire, and decoding recovers exactly the
// variants present.
type Address struct {
	FirstName string
	LastName  string

	// Street-level union. Any combination may be set; none is mandatory.
	Street               string
	HouseName            string
	HouseNumber          string
	HouseNumberExtension string
	Address1             string
	Address2             string
	Address3             string

	City            string
	State           string
	PostalCode      string
	CountryCode     string
	TelephoneNumber string
}
