package repositories

import (
	"database/sql"
	"time"

	intdb "github.com/Zephyls/CW7-S27970/internal/db"
	"github.com/Zephyls/CW7-S27970/internal/domain/models"
	"github.com/Zephyls/CW7-S27970/internal/utils"
)

type EnrollmentRepository struct {
	DB *sql.DB
}

const enrollmentDetailSelect = `
	SELECT t.IdTrip, t.Name, t.Description, t.DateFrom, t.DateTo, t.MaxPeople,
	       ct.RegisteredAt, ct.PaymentDate
	FROM Client_Trip ct
	JOIN Trip t ON ct.IdTrip = t.IdTrip`

// ListByClient returns every trip the client is enrolled in, joined with
// registration metadata. Row order is whatever the store returns.
func (r EnrollmentRepository) ListByClient(clientID int64) ([]models.EnrollmentDetail, error) {
	rows, err := r.DB.Query(enrollmentDetailSelect+` WHERE ct.IdClient=?`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.EnrollmentDetail{}
	for rows.Next() {
		det, err := scanEnrollmentDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, det)
	}
	return out, rows.Err()
}

// GetDetail loads a single (client, trip) enrollment, or sql.ErrNoRows.
func (r EnrollmentRepository) GetDetail(clientID, tripID int64) (models.EnrollmentDetail, error) {
	row := r.DB.QueryRow(enrollmentDetailSelect+` WHERE ct.IdClient=? AND ct.IdTrip=?`, clientID, tripID)
	return scanEnrollmentDetail(row)
}

// CountByTrip counts current registrations for a trip. Run it on the same
// transaction that locked the trip row so the count cannot go stale before
// the insert.
func (r EnrollmentRepository) CountByTrip(ex intdb.Execer, tripID int64) (int, error) {
	var count int
	err := ex.QueryRow(`SELECT COUNT(*) FROM Client_Trip WHERE IdTrip=?`, tripID).Scan(&count)
	return count, err
}

// Insert creates the enrollment row with the legacy YYYYMMDD integer date
// and no payment date. A duplicate-key error from the composite primary
// key surfaces unchanged for the caller to classify.
func (r EnrollmentRepository) Insert(ex intdb.Execer, clientID, tripID int64, registeredAt time.Time) error {
	_, err := ex.Exec(`
		INSERT INTO Client_Trip (IdClient, IdTrip, RegisteredAt)
		VALUES (?, ?, ?)`,
		clientID, tripID, utils.EncodeDateCode(registeredAt),
	)
	return err
}

// Delete removes the enrollment row and reports how many rows went away,
// so the caller can distinguish a missing registration.
func (r EnrollmentRepository) Delete(clientID, tripID int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM Client_Trip WHERE IdClient=? AND IdTrip=?`, clientID, tripID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnrollmentDetail(row rowScanner) (models.EnrollmentDetail, error) {
	var det models.EnrollmentDetail
	var desc sql.NullString
	var regCode int
	var payCode sql.NullInt64

	if err := row.Scan(
		&det.IDTrip, &det.Name, &desc, &det.DateFrom, &det.DateTo, &det.MaxPeople,
		&regCode, &payCode,
	); err != nil {
		return models.EnrollmentDetail{}, err
	}

	det.Description = intdb.NullString(desc)

	reg, err := utils.DecodeDateCode(regCode)
	if err != nil {
		return models.EnrollmentDetail{}, err
	}
	det.RegisteredAt = reg

	if payCode.Valid {
		pay, err := utils.DecodeDateCode(int(payCode.Int64))
		if err != nil {
			return models.EnrollmentDetail{}, err
		}
		det.PaymentDate = &pay
	}
	return det, nil
}
