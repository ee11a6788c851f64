package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	intdb "github.com/Zephyls/CW7-S27970/internal/db"
	"github.com/Zephyls/CW7-S27970/internal/domain"
	"github.com/Zephyls/CW7-S27970/internal/domain/models"
	"github.com/Zephyls/CW7-S27970/internal/repositories"
	"github.com/Zephyls/CW7-S27970/internal/utils"
)

// EnrollmentService owns the registration rules: existence checks, the
// capacity limit and duplicate handling. All state lives in the store.
type EnrollmentService struct {
	ClientRepo     repositories.ClientRepository
	TripRepo       repositories.TripRepository
	EnrollmentRepo repositories.EnrollmentRepository
	DB             *sql.DB
	RequestID      string
	Now            func() time.Time
}

func (s EnrollmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListEnrollments returns every trip the client is registered for. A client
// with no registrations yields an empty list, not an error.
func (s EnrollmentService) ListEnrollments(clientID int64) ([]models.EnrollmentDetail, error) {
	ok, err := s.ClientRepo.Exists(clientID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to check client", Err: err}
	}
	if !ok {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("client with ID %d", clientID)}
	}

	out, err := s.EnrollmentRepo.ListByClient(clientID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list enrollments", Err: err}
	}
	return out, nil
}

// CreateClient validates required fields and inserts the client. Duplicate
// emails and pesel numbers are allowed on purpose.
func (s EnrollmentService) CreateClient(in models.ClientInput) (int64, error) {
	c := models.Client{
		FirstName: utils.NormalizeSpace(in.FirstName),
		LastName:  utils.NormalizeSpace(in.LastName),
		Email:     utils.TrimOrEmpty(in.Email),
		Telephone: utils.TrimOrEmpty(in.Telephone),
		Pesel:     utils.TrimOrEmpty(in.Pesel),
	}

	switch {
	case c.FirstName == "":
		return 0, domain.ValidationError{Field: "firstName", Msg: "is required"}
	case c.LastName == "":
		return 0, domain.ValidationError{Field: "lastName", Msg: "is required"}
	case c.Email == "":
		return 0, domain.ValidationError{Field: "email", Msg: "is required"}
	case !utils.IsEmail(c.Email):
		return 0, domain.ValidationError{Field: "email", Msg: "has an invalid format"}
	}

	id, err := s.ClientRepo.Insert(c)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to create client", Err: err}
	}

	utils.LogEvent(s.RequestID, "enrollment", "create_client", fmt.Sprintf("id_client=%d", id))
	return id, nil
}

// RegisterClient enrolls a client on a trip. Checks run in order: client
// exists, trip exists, trip has room, pair not yet registered. The trip
// lookup locks the trip row and shares a transaction with the count and
// the insert, so two concurrent registrations cannot both pass the
// capacity check.
func (s EnrollmentService) RegisterClient(clientID, tripID int64) error {
	ok, err := s.ClientRepo.Exists(clientID)
	if err != nil {
		return domain.InternalError{Msg: "failed to check client", Err: err}
	}
	if !ok {
		return domain.NotFoundError{Resource: fmt.Sprintf("client with ID %d", clientID)}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return domain.InternalError{Msg: "failed to start transaction", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	maxPeople, err := s.TripRepo.MaxPeopleLocked(tx, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: fmt.Sprintf("trip with ID %d", tripID)}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to check trip", Err: err}
	}

	count, err := s.EnrollmentRepo.CountByTrip(tx, tripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to count registrations", Err: err}
	}
	if count >= maxPeople {
		return domain.CapacityError{TripID: tripID, MaxPeople: maxPeople}
	}

	if err := s.EnrollmentRepo.Insert(tx, clientID, tripID, s.now()); err != nil {
		if intdb.IsDuplicateEntry(err) {
			return domain.ConflictError{
				Resource: "registration",
				Msg:      fmt.Sprintf("client %d is already registered for trip %d", clientID, tripID),
				Err:      err,
			}
		}
		return domain.InternalError{Msg: "failed to insert registration", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "failed to commit registration", Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "enrollment", "register",
		fmt.Sprintf("id_client=%d id_trip=%d", clientID, tripID))
	return nil
}

// UnregisterClient deletes the enrollment. A repeat call after success
// fails with not found; the absence is reported, never swallowed.
func (s EnrollmentService) UnregisterClient(clientID, tripID int64) error {
	affected, err := s.EnrollmentRepo.Delete(clientID, tripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete registration", Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{
			Resource: fmt.Sprintf("registration for client %d and trip %d", clientID, tripID),
		}
	}

	utils.LogEvent(s.RequestID, "enrollment", "unregister",
		fmt.Sprintf("id_client=%d id_trip=%d", clientID, tripID))
	return nil
}
