package model

import "time"

// Customer represents a row in the `customers` table.  It carries the
// login identity, the rental profile and the payment instrument captured
// at registration.  The json tags are omitted; handlers define separate
// response types so the password hash and card data never leak by
// accident through a generic marshal.
//
// Fields:
//  ID              – primary key identifier.
//  Username        – unique login name (unique across admins too).
//  PasswordHash    – bcrypt hashed password.
//  FirstName       – given name.
//  LastName        – family name.
//  Email           – contact email address.
//  Phone           – contact phone number.
//  DriverLicenseNo – driver license number required for rental.
//  CardNumber      – payment card number.
//  CardExpiry      – payment card expiry (MM/YY).
//  CardCVV         – payment card verification value.
//  CreatedAt       – timestamp of registration.
type Customer struct {
	ID              uint64    // customers.id
	Username        string    // customers.username
	PasswordHash    string    // customers.password_hash
	FirstName       string    // customers.first_name
	LastName        string    // customers.last_name
	Email           string    // customers.email
	Phone           string    // customers.phone
	DriverLicenseNo string    // customers.driver_license_no
	CardNumber      string    // customers.card_number
	CardExpiry      string    // customers.card_expiry
	CardCVV         string    // customers.card_cvv
	CreatedAt       time.Time // customers.created_at
}
