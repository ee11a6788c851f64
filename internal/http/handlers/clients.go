package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zephyls/CW7-S27970/internal/domain/models"
	"github.com/Zephyls/CW7-S27970/internal/http/middleware"
	"github.com/Zephyls/CW7-S27970/internal/repositories"
	"github.com/Zephyls/CW7-S27970/internal/services"
	"github.com/Zephyls/CW7-S27970/internal/utils"
)

// ClientTripDTO keeps the legacy wire format: registration and payment
// dates travel as YYYYMMDD integers, trip dates as YYYY-MM-DD strings.
type ClientTripDTO struct {
	IDTrip       int64  `json:"idTrip"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
	MaxPeople    int    `json:"maxPeople"`
	RegisteredAt int    `json:"registeredAt"`
	PaymentDate  *int   `json:"paymentDate"`
}

type ClientHandler struct {
	DB *sql.DB
}

func NewClientHandler(db *sql.DB) ClientHandler {
	return ClientHandler{DB: db}
}

func (h ClientHandler) service(c *gin.Context) services.EnrollmentService {
	return services.EnrollmentService{
		ClientRepo:     repositories.ClientRepository{DB: h.DB},
		TripRepo:       repositories.TripRepository{DB: h.DB},
		EnrollmentRepo: repositories.EnrollmentRepository{DB: h.DB},
		DB:             h.DB,
		RequestID:      middleware.GetRequestID(c),
	}
}

// GET /api/clients/:id/trips
func (h ClientHandler) ListClientTrips(c *gin.Context) {
	clientID, ok := PathID(c, "id")
	if !ok {
		return
	}

	enrollments, err := h.service(c).ListEnrollments(clientID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]ClientTripDTO, 0, len(enrollments))
	for _, det := range enrollments {
		out = append(out, enrollmentToDTO(det))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/clients
func (h ClientHandler) CreateClient(c *gin.Context) {
	var in models.ClientInput
	if !BindJSONOrError(c, &in) {
		return
	}

	id, err := h.service(c).CreateClient(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"idClient": id})
}

// PUT /api/clients/:id/trips/:tripId
func (h ClientHandler) RegisterClientToTrip(c *gin.Context) {
	clientID, ok := PathID(c, "id")
	if !ok {
		return
	}
	tripID, ok := PathID(c, "tripId")
	if !ok {
		return
	}

	if err := h.service(c).RegisterClient(clientID, tripID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client successfully registered for the trip"})
}

// DELETE /api/clients/:id/trips/:tripId
func (h ClientHandler) UnregisterClientFromTrip(c *gin.Context) {
	clientID, ok := PathID(c, "id")
	if !ok {
		return
	}
	tripID, ok := PathID(c, "tripId")
	if !ok {
		return
	}

	if err := h.service(c).UnregisterClient(clientID, tripID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func enrollmentToDTO(det models.EnrollmentDetail) ClientTripDTO {
	dto := ClientTripDTO{
		IDTrip:       det.IDTrip,
		Name:         det.Name,
		Description:  det.Description,
		DateFrom:     utils.FormatDate(det.DateFrom),
		DateTo:       utils.FormatDate(det.DateTo),
		MaxPeople:    det.MaxPeople,
		RegisteredAt: utils.EncodeDateCode(det.RegisteredAt),
	}
	if det.PaymentDate != nil {
		code := utils.EncodeDateCode(*det.PaymentDate)
		dto.PaymentDate = &code
	}
	return dto
}
