package utils

import (
	"testing"
	"time"
)

func TestDateCodeRoundTrip(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	code := EncodeDateCode(day)
	if code != 20240315 {
		t.Fatalf("expected 20240315, got %d", code)
	}

	back, err := DecodeDateCode(code)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !back.Equal(day) {
		t.Fatalf("round trip mismatch: %v != %v", back, day)
	}
}

func TestDecodeDateCodeRejectsInvalid(t *testing.T) {
	for _, code := range []int{0, -1, 123, 20241301, 20240230, 20240001} {
		if _, err := DecodeDateCode(code); err == nil {
			t.Fatalf("code %d should not decode", code)
		}
	}
}

func TestEncodeDateCodeIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)
	if EncodeDateCode(late) != 20241231 {
		t.Fatalf("got %d", EncodeDateCode(late))
	}
}
