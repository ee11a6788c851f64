package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zephyls/CW7-S27970/internal/http/middleware"
	"github.com/Zephyls/CW7-S27970/internal/repositories"
	"github.com/Zephyls/CW7-S27970/internal/services"
)

type DocsHandler struct {
	DB *sql.DB
}

func NewDocsHandler(db *sql.DB) DocsHandler {
	return DocsHandler{DB: db}
}

// GET /api/clients/:id/trips/:tripId/confirmation
// Returns the registration confirmation PDF (inline).
func (h DocsHandler) GetConfirmationPDF(c *gin.Context) {
	clientID, ok := PathID(c, "id")
	if !ok {
		return
	}
	tripID, ok := PathID(c, "tripId")
	if !ok {
		return
	}

	svc := services.DocsService{
		ClientRepo:     repositories.ClientRepository{DB: h.DB},
		EnrollmentRepo: repositories.EnrollmentRepository{DB: h.DB},
		TripRepo:       repositories.TripRepository{DB: h.DB},
		RequestID:      middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.GenerateConfirmation(clientID, tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
