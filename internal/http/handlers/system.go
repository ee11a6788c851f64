package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	DB *sql.DB
}

func NewSystemHandler(db *sql.DB) SystemHandler {
	return SystemHandler{DB: db}
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database is not connected")
		return
	}
	var count int
	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM Trip`).Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_check_failed", "database query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "trips_in_db": count})
}
