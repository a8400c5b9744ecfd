package model

// InsurancePackage represents a row in the `insurance_packages` table.
// Customers pick exactly one package per reservation; its daily cost is
// added to the car's daily rate when the total is computed.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the package.
//  Description – what the package covers.
//  DailyCost   – insurance price per day.
type InsurancePackage struct {
	ID          uint64  // insurance_packages.id
	Name        string  // insurance_packages.name
	Description string  // insurance_packages.description
	DailyCost   float64 // insurance_packages.daily_cost
}
