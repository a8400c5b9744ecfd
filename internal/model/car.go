package model

// Car represents a row in the `cars` table.  Status is one of the
// CarStatus* constants; every transition goes through CanTransition so
// the rules live in one place instead of being re-checked per handler.
//
// Fields:
//  ID           – primary key identifier.
//  Brand        – manufacturer name.
//  Model        – model name.
//  Year         – model year.
//  Transmission – gearbox type (e.g. manual, automatic).
//  Fuel         – fuel type (e.g. petrol, diesel, electric).
//  Passengers   – passenger capacity.
//  DailyRate    – rental price per day.
//  Status       – availability status (see car_status.go).
//  BranchID     – branch where the car is stationed.
type Car struct {
	ID           uint64  // cars.id
	Brand        string  // cars.brand
	Model        string  // cars.model
	Year         uint16  // cars.year
	Transmission string  // cars.transmission
	Fuel         string  // cars.fuel
	Passengers   uint8   // cars.passengers
	DailyRate    float64 // cars.daily_rate
	Status       string  // cars.status
	BranchID     uint64  // cars.branch_id
}
