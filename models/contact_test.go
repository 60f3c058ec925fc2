package models_test

import (
	"testing"
	"time"

	"contactportal/models"

	"github.com/google/uuid"
)

func TestNewContactResponse(t *testing.T) {
	id := uuid.MustParse("3f6c1e9a-0b6d-4f2e-9a0f-2d9c8b7a6e5d")
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	c := models.Contact{
		ID:                 id,
		UserID:             uuid.New(),
		Mobile:             "555-0100",
		Email:              "contact@example.com",
		Address:            "1 Main Rd",
		RegistrationNumber: "REG1",
		CreatedAt:          created,
	}

	got := models.NewContactResponse(c)

	if got.ID != "3f6c1e9a-0b6d-4f2e-9a0f-2d9c8b7a6e5d" {
		t.Errorf("ID = %q, want stringified uuid", got.ID)
	}
	if got.CreatedAt != "2026-03-14 09:26:53" {
		t.Errorf("CreatedAt = %q, want %q", got.CreatedAt, "2026-03-14 09:26:53")
	}
	if got.Mobile != c.Mobile || got.Email != c.Email || got.Address != c.Address || got.RegistrationNumber != c.RegistrationNumber {
		t.Errorf("field mismatch: %+v", got)
	}
}
