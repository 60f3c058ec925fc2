package models

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID                 uuid.UUID `db:"id"`
	UserID             uuid.UUID `db:"user_id"`
	Mobile             string    `db:"mobile"`
	Email              string    `db:"email"`
	Address            string    `db:"address"`
	RegistrationNumber string    `db:"registration_number"`
	CreatedAt          time.Time `db:"created_at"`
}

// ContactResponse is the JSON shape returned by the search endpoint.
type ContactResponse struct {
	ID                 string `json:"id"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	RegistrationNumber string `json:"registration_number"`
	CreatedAt          string `json:"created_at"`
}

func NewContactResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:                 c.ID.String(),
		Mobile:             c.Mobile,
		Email:              c.Email,
		Address:            c.Address,
		RegistrationNumber: c.RegistrationNumber,
		CreatedAt:          c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
