package errs

import "errors"

// Sentinel errors shared across usecase layers. Domain-level rejections of a
// candidate slot (out of hours, too short, conflict, ...) are NOT errors;
// they are negative decisions returned as values by the availability engine.
var (
	// Reservation unit errors
	ErrUnitNotFound = errors.New("reservation unit not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")

	// Calendar query errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDateRangeTooWide = errors.New("date range too wide")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
