package repositories

import (
	"database/sql"

	intdb "github.com/Zephyls/CW7-S27970/internal/db"
	"github.com/Zephyls/CW7-S27970/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

// MaxPeopleLocked returns the capacity of a trip, or sql.ErrNoRows when
// the trip does not exist. It locks the trip row so a concurrent
// registration on the same trip waits until this transaction commits or
// rolls back.
func (r TripRepository) MaxPeopleLocked(ex intdb.Execer, tripID int64) (int, error) {
	var maxPeople int
	err := ex.QueryRow(`SELECT MaxPeople FROM Trip WHERE IdTrip=? FOR UPDATE`, tripID).Scan(&maxPeople)
	return maxPeople, err
}

// ListAll returns every trip, newest departures first.
func (r TripRepository) ListAll() ([]models.Trip, error) {
	rows, err := r.DB.Query(`
		SELECT IdTrip, Name, Description, DateFrom, DateTo, MaxPeople
		FROM Trip
		ORDER BY DateFrom DESC, IdTrip DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		var desc sql.NullString
		if err := rows.Scan(&t.IDTrip, &t.Name, &desc, &t.DateFrom, &t.DateTo, &t.MaxPeople); err != nil {
			return nil, err
		}
		t.Description = intdb.NullString(desc)
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountriesByTrips resolves country names for all given trips in a single
// IN query, grouped by trip id. This replaces a per-trip lookup loop.
func (r TripRepository) CountriesByTrips(tripIDs []int64) (map[int64][]string, error) {
	out := map[int64][]string{}
	if len(tripIDs) == 0 {
		return out, nil
	}

	args := make([]any, 0, len(tripIDs))
	for _, id := range tripIDs {
		args = append(args, id)
	}

	rows, err := r.DB.Query(`
		SELECT ct.IdTrip, c.Name
		FROM Country c
		JOIN Country_Trip ct ON c.IdCountry = ct.IdCountry
		WHERE ct.IdTrip IN (`+intdb.Placeholders(len(tripIDs))+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tripID int64
		var name string
		if err := rows.Scan(&tripID, &name); err != nil {
			return nil, err
		}
		out[tripID] = append(out[tripID], name)
	}
	return out, rows.Err()
}
