package model

// Branch represents a row in the `branches` table.  Cars live at a
// branch and reservations reference a pickup and a return branch.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – display name of the branch.
//  Phone   – contact phone number.
//  Address – street address.
type Branch struct {
	ID      uint64 // branches.id
	Name    string // branches.name
	Phone   string // branches.phone
	Address string // branches.address
}
