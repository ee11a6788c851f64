package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"

	intconfig "github.com/Zephyls/CW7-S27970/internal/config"
	api "github.com/Zephyls/CW7-S27970/internal/http"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	r := api.NewRouter(intconfig.Env{}, db)
	return r, mock, func() { db.Close() }
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterUnknownClientReturns404(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectQuery("FROM Client WHERE IdClient").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := doRequest(r, http.MethodPut, "/api/clients/99/trips/3", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRegisterFullTripReturns400(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectQuery("FROM Client WHERE IdClient").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT MaxPeople FROM Trip").
		WillReturnRows(sqlmock.NewRows([]string{"MaxPeople"}).AddRow(1))
	mock.ExpectQuery("FROM Client_Trip WHERE IdTrip").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	w := doRequest(r, http.MethodPut, "/api/clients/8/trips/3", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "capacity_exceeded") {
		t.Fatalf("expected capacity_exceeded code, body=%s", w.Body.String())
	}
}

func TestRegisterDuplicateReturns409(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectQuery("FROM Client WHERE IdClient").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT MaxPeople FROM Trip").
		WillReturnRows(sqlmock.NewRows([]string{"MaxPeople"}).AddRow(10))
	mock.ExpectQuery("FROM Client_Trip WHERE IdTrip").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec("INSERT INTO Client_Trip").
		WillReturnError(&mysql.MySQLError{Number: 1062})
	mock.ExpectRollback()

	w := doRequest(r, http.MethodPut, "/api/clients/7/trips/3", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCreateClientInvalidPayloadReturns400(t *testing.T) {
	r, _, done := newTestRouter(t)
	defer done()

	w := doRequest(r, http.MethodPost, "/api/clients", `{"firstName":"Ana"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCreateClientReturns201WithID(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectExec("INSERT INTO Client ").
		WillReturnResult(sqlmock.NewResult(7, 1))

	body := `{"firstName":"Ana","lastName":"Nowak","email":"ana@x.com"}`
	w := doRequest(r, http.MethodPost, "/api/clients", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"idClient":7`) {
		t.Fatalf("expected new client id in body, got %s", w.Body.String())
	}
}

func TestUnregisterMissingReturns404(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectExec("DELETE FROM Client_Trip").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doRequest(r, http.MethodDelete, "/api/clients/7/trips/3", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestUnregisterReturns204(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectExec("DELETE FROM Client_Trip").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doRequest(r, http.MethodDelete, "/api/clients/7/trips/3", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestBadPathParamReturns400(t *testing.T) {
	r, _, done := newTestRouter(t)
	defer done()

	w := doRequest(r, http.MethodGet, "/api/clients/abc/trips", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}
