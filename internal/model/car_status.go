package model

// Car status values.  The first three are administrator-settable; a car
// becomes reserved only through the reservation flow and returns to
// available only through cancellation or return.
const (
	CarStatusAvailable    = "available"
	CarStatusMaintenance  = "maintenance"
	CarStatusNotAvailable = "not_available"
	CarStatusReserved     = "reserved"
)

// AdminSettableStatus reports whether s is one of the values an
// administrator may assign directly through the status endpoint.
func AdminSettableStatus(s string) bool {
	switch s {
	case CarStatusAvailable, CarStatusMaintenance, CarStatusNotAvailable:
		return true
	}
	return false
}

// CanTransition reports whether a car may move from one status to the
// other.  byAdmin distinguishes an administrator's direct status update
// from the system's own booking/cancellation transitions:
//
//	available  -> reserved                     system only
//	reserved   -> available                    system only
//	available <-> maintenance | not_available  admin only
//	maintenance <-> not_available              admin only
//
// A reserved car is never touchable by an admin status update; the
// reservation flow has exclusive control over it.
func CanTransition(from, to string, byAdmin bool) bool {
	if from == to {
		return false
	}
	if byAdmin {
		if from == CarStatusReserved || !AdminSettableStatus(to) {
			return false
		}
		return AdminSettableStatus(from)
	}
	// System transitions, driven by the reservation lifecycle only.
	switch {
	case from == CarStatusAvailable && to == CarStatusReserved:
		return true
	case from == CarStatusReserved && to == CarStatusAvailable:
		return true
	}
	return false
}
