package models

import "time"

// Trip mirrors the Trip table. Trips are provisioned outside this service
// and read-only here.
type Trip struct {
	IDTrip      int64
	Name        string
	Description string
	DateFrom    time.Time
	DateTo      time.Time
	MaxPeople   int
}

// TripSummary is a trip joined with the names of its countries, as served
// by the catalog listing.
type TripSummary struct {
	Trip
	Countries []string
}
