package models

import "time"

// EnrollmentDetail joins a Client_Trip row with the descriptive fields of
// its trip for the per-client listing. RegisteredAt is always set;
// PaymentDate stays nil until an external payment step fills it in.
type EnrollmentDetail struct {
	Trip
	RegisteredAt time.Time
	PaymentDate  *time.Time
}
