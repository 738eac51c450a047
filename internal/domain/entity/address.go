package entity

import "strings"

// AddressStatus tells whether a shipping address has been configured.
type AddressStatus int

const (
	// AddressUnset is the state of a freshly registered account.
	AddressUnset AddressStatus = iota
	// AddressSet means the user saved a shipping address.
	AddressSet
)

// String returns the wire name of the status.
func (s AddressStatus) String() string {
	if s == AddressSet {
		return "SET"
	}

	return "UNSET"
}

// Address is the user's shipping address.
type Address struct {
	Line   string        // The full, human-readable address. Empty while unset.
	Status AddressStatus // Whether Line holds a configured address.
}

// NewAddress builds a set address from user input. Blank input yields an unset address.
func NewAddress(line string) Address {
	line = strings.TrimSpace(line)
	if line == "" {
		return Address{Status: AddressUnset}
	}

	return Address{Line: line, Status: AddressSet}
}

// IsSet reports whether the address has been configured.
func (a Address) IsSet() bool {
	return a.Status == AddressSet && a.Line != ""
}
