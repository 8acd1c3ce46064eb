package entity

import "github.com/google/uuid"

// Scope narrows every list/detail query to the rows the caller may see:
// staff callers see all rows, everyone else only their own. Filtering
// happens before lookup, so foreign rows read as not-found.
type Scope struct {
	UserID uuid.UUID
	Staff  bool
}

// OwnerScope builds a scope for a regular (non-staff) caller.
func OwnerScope(userID uuid.UUID) Scope {
	return Scope{UserID: userID}
}

// StaffScope builds an all-rows scope for a staff caller.
func StaffScope(userID uuid.UUID) Scope {
	return Scope{UserID: userID, Staff: true}
}

// Ordering is a client-requested sort over an allow-listed column set.
// Repository implementations ignore columns outside their allow list and
// fall back to the resource default.
type Ordering struct {
	Field string // column name, e.g. "appointment_date"
	Desc  bool
}

// MedicineFilter is a domain-level filter for catalog queries.
// Used by repository layer to avoid coupling with delivery DTOs.
type MedicineFilter struct {
	Category string // case-insensitive exact match
	MinPrice string // decimal string, inclusive
	MaxPrice string // decimal string, inclusive
	InStock  bool   // stock > 0
	Search   string // free text over name/description/category
	Ordering Ordering
}
