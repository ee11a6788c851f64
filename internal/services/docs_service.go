package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/Zephyls/CW7-S27970/internal/domain"
	"github.com/Zephyls/CW7-S27970/internal/repositories"
	"github.com/Zephyls/CW7-S27970/internal/utils"
)

// DocsService renders the registration confirmation PDF for one
// client/trip enrollment.
type DocsService struct {
	ClientRepo     repositories.ClientRepository
	EnrollmentRepo repositories.EnrollmentRepository
	TripRepo       repositories.TripRepository
	RequestID      string
	Loader         func(clientID, tripID int64) (confirmationData, error)
}

type confirmationData struct {
	ClientID     int64
	TripID       int64
	ClientName   string
	TripName     string
	Description  string
	DateFrom     string
	DateTo       string
	Countries    []string
	RegisteredAt int
	PaymentDate  *int
}

// GenerateConfirmation returns the PDF bytes and a download filename.
func (s DocsService) GenerateConfirmation(clientID, tripID int64) ([]byte, string, error) {
	data, err := s.loadConfirmationData(clientID, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation",
		fmt.Sprintf("id_client=%d id_trip=%d", clientID, tripID))
	return buildConfirmationPDF(data)
}

func (s DocsService) loadConfirmationData(clientID, tripID int64) (confirmationData, error) {
	if s.Loader != nil {
		return s.Loader(clientID, tripID)
	}

	det, err := s.EnrollmentRepo.GetDetail(clientID, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return confirmationData{}, domain.NotFoundError{
			Resource: fmt.Sprintf("registration for client %d and trip %d", clientID, tripID),
		}
	}
	if err != nil {
		return confirmationData{}, domain.InternalError{Msg: "failed to load registration", Err: err}
	}

	client, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return confirmationData{}, domain.InternalError{Msg: "failed to load client", Err: err}
	}

	countries, err := s.TripRepo.CountriesByTrips([]int64{tripID})
	if err != nil {
		return confirmationData{}, domain.InternalError{Msg: "failed to resolve countries", Err: err}
	}

	data := confirmationData{
		ClientID:     clientID,
		TripID:       tripID,
		ClientName:   strings.TrimSpace(client.FirstName + " " + client.LastName),
		TripName:     det.Name,
		Description:  det.Description,
		DateFrom:     utils.FormatDate(det.DateFrom),
		DateTo:       utils.FormatDate(det.DateTo),
		Countries:    countries[tripID],
		RegisteredAt: utils.EncodeDateCode(det.RegisteredAt),
	}
	if det.PaymentDate != nil {
		code := utils.EncodeDateCode(*det.PaymentDate)
		data.PaymentDate = &code
	}
	return data, nil
}

func buildConfirmationPDF(d confirmationData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Registration Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP REGISTRATION CONFIRMATION")
	pdf.Ln(12)

	payment := "not paid"
	if d.PaymentDate != nil {
		payment = fmt.Sprintf("paid on %d", *d.PaymentDate)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Client        : %s (#%d)", safe(d.ClientName, "-"), d.ClientID),
		fmt.Sprintf("Trip          : %s (#%d)", safe(d.TripName, "-"), d.TripID),
		fmt.Sprintf("Dates         : %s - %s", safe(d.DateFrom, "-"), safe(d.DateTo, "-")),
		fmt.Sprintf("Countries     : %s", safe(strings.Join(d.Countries, ", "), "-")),
		fmt.Sprintf("Registered on : %d", d.RegisteredAt),
		fmt.Sprintf("Payment       : %s", payment),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(d.Description) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, d.Description, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("confirmation-%d-%d.pdf", d.ClientID, d.TripID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
