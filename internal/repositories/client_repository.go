package repositories

import (
	"database/sql"

	intdb "github.com/Zephyls/CW7-S27970/internal/db"
	"github.com/Zephyls/CW7-S27970/internal/domain/models"
)

type ClientRepository struct {
	DB *sql.DB
}

// Exists checks the Client table by primary key.
func (r ClientRepository) Exists(id int64) (bool, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM Client WHERE IdClient=?`, id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID loads one client row.
func (r ClientRepository) GetByID(id int64) (models.Client, error) {
	var c models.Client
	var telephone, pesel sql.NullString
	err := r.DB.QueryRow(`
		SELECT IdClient, FirstName, LastName, Email, Telephone, Pesel
		FROM Client
		WHERE IdClient=?`, id).Scan(
		&c.IDClient, &c.FirstName, &c.LastName, &c.Email, &telephone, &pesel,
	)
	if err != nil {
		return models.Client{}, err
	}
	c.Telephone = intdb.NullString(telephone)
	c.Pesel = intdb.NullString(pesel)
	return c, nil
}

// Insert creates a client and returns the auto-increment id. Telephone and
// Pesel go in as NULL when blank. No uniqueness is enforced on Email or
// Pesel; duplicates are allowed.
func (r ClientRepository) Insert(c models.Client) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO Client (FirstName, LastName, Email, Telephone, Pesel)
		VALUES (?, ?, ?, ?, ?)`,
		c.FirstName, c.LastName, c.Email,
		intdb.NullIfEmpty(c.Telephone), intdb.NullIfEmpty(c.Pesel),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
