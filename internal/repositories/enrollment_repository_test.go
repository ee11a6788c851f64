package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Zephyls/CW7-S27970/internal/utils"
)

func TestGetDetailDecodesDateCodes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("FROM Client_Trip ct").
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"IdTrip", "Name", "Description", "DateFrom", "DateTo", "MaxPeople", "RegisteredAt", "PaymentDate",
		}).AddRow(3, "Italy Tour", "Ten days", from, to, 20, 20240315, 20240401))

	det, err := EnrollmentRepository{DB: db}.GetDetail(7, 3)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if utils.EncodeDateCode(det.RegisteredAt) != 20240315 {
		t.Fatalf("registered date decoded wrong: %v", det.RegisteredAt)
	}
	if det.PaymentDate == nil || utils.EncodeDateCode(*det.PaymentDate) != 20240401 {
		t.Fatalf("payment date decoded wrong: %v", det.PaymentDate)
	}
}

func TestGetDetailMissingRegistration(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM Client_Trip ct").
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"IdTrip", "Name", "Description", "DateFrom", "DateTo", "MaxPeople", "RegisteredAt", "PaymentDate",
		}))

	_, err = EnrollmentRepository{DB: db}.GetDetail(7, 3)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestListByClientRejectsCorruptDateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("FROM Client_Trip ct").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"IdTrip", "Name", "Description", "DateFrom", "DateTo", "MaxPeople", "RegisteredAt", "PaymentDate",
		}).AddRow(3, "Italy Tour", nil, from, to, 20, 20241399, nil))

	if _, err := (EnrollmentRepository{DB: db}).ListByClient(7); err == nil {
		t.Fatalf("corrupt date code should surface an error")
	}
}

func TestInsertWritesEncodedDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO Client_Trip").
		WithArgs(int64(7), int64(3), 20240315).
		WillReturnResult(sqlmock.NewResult(0, 1))

	day := time.Date(2024, 3, 15, 18, 30, 0, 0, time.Local)
	if err := (EnrollmentRepository{DB: db}).Insert(db, 7, 3, day); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountriesByTripsEmptyInput(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	out, err := TripRepository{DB: db}.CountriesByTrips(nil)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty map, got %v", out)
	}
}
