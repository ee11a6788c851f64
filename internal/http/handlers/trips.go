package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zephyls/CW7-S27970/internal/repositories"
	"github.com/Zephyls/CW7-S27970/internal/services"
	"github.com/Zephyls/CW7-S27970/internal/utils"
)

type TripDTO struct {
	IDTrip      int64    `json:"idTrip"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DateFrom    string   `json:"dateFrom"`
	DateTo      string   `json:"dateTo"`
	MaxPeople   int      `json:"maxPeople"`
	Countries   []string `json:"countries"`
}

type TripHandler struct {
	DB *sql.DB
}

func NewTripHandler(db *sql.DB) TripHandler {
	return TripHandler{DB: db}
}

// GET /api/trips
func (h TripHandler) ListTrips(c *gin.Context) {
	svc := services.CatalogService{TripRepo: repositories.TripRepository{DB: h.DB}}

	trips, err := svc.ListTrips()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		out = append(out, TripDTO{
			IDTrip:      t.IDTrip,
			Name:        t.Name,
			Description: t.Description,
			DateFrom:    utils.FormatDate(t.DateFrom),
			DateTo:      utils.FormatDate(t.DateTo),
			MaxPeople:   t.MaxPeople,
			Countries:   t.Countries,
		})
	}
	c.JSON(http.StatusOK, out)
}
