package model

import "time"

// Admin represents a row in the `admins` table.  Administrators have no
// profile beyond their login identity; there is a single admin role with
// no hierarchy.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login name (unique across customers too).
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of registration.
type Admin struct {
	ID           uint64    // admins.id
	Username     string    // admins.username
	PasswordHash string    // admins.password_hash
	CreatedAt    time.Time // admins.created_at
}
