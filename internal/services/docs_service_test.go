package services

import (
	"bytes"
	"testing"
)

func TestDocsServiceGenerateConfirmation(t *testing.T) {
	loader := func(clientID, tripID int64) (confirmationData, error) {
		return confirmationData{
			ClientID:     clientID,
			TripID:       tripID,
			ClientName:   "Ana Nowak",
			TripName:     "Italy Tour",
			Description:  "Rome, Florence and Venice in ten days.",
			DateFrom:     "2024-06-01",
			DateTo:       "2024-06-10",
			Countries:    []string{"Italy"},
			RegisteredAt: 20240315,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateConfirmation(7, 3)
	if err != nil {
		t.Fatalf("GenerateConfirmation returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateConfirmation returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if filename != "confirmation-7-3.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
