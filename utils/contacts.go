package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"contactportal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationNumberTaken reports whether the owner already filed a contact
// under this registration number. Scoping is per owner; two different users
// may reuse the same number.
func RegistrationNumberTaken(ownerID string, registrationNumber string, db *pgxpool.Pool) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM contacts WHERE user_id = $1 AND registration_number = $2)"

	var exists bool
	err := db.QueryRow(ctx, stmt, ownerID, registrationNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database error checking registration number: %w", err)
	}

	return exists, nil
}

// AddContact inserts a contact for the owner. Duplicate pre-check then insert,
// without a transaction, so concurrent duplicates can still race.
func AddContact(ownerID string, mobile string, email string, address string, registrationNumber string, db *pgxpool.Pool) error {
	taken, err := RegistrationNumberTaken(ownerID, registrationNumber, db)
	if err != nil {
		log.Println("error checking registration number: ", err)
		return err
	}
	if taken {
		return ErrDuplicateRegistration
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "INSERT INTO contacts (id, user_id, mobile, email, address, registration_number) VALUES ($1, $2, $3, $4, $5, $6);"
	_, err = db.Exec(ctx, stmt, uuid.New(), ownerID, mobile, email, address, registrationNumber)
	if err != nil {
		log.Println("Error inserting contact:", err)
		return fmt.Errorf("failed to save contact: %w", err)
	}

	return nil
}

// FindContact returns the owner's contact with the exact registration number.
func FindContact(ownerID string, registrationNumber string, db *pgxpool.Pool) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &models.Contact{}
	stmt := "SELECT id, user_id, mobile, email, address, registration_number, created_at FROM contacts WHERE user_id = $1 AND registration_number = $2;"
	row := db.QueryRow(ctx, stmt, ownerID, registrationNumber)
	err := row.Scan(&c.ID, &c.UserID, &c.Mobile, &c.Email, &c.Address, &c.RegistrationNumber, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("error querying contact: %w", err)
	}

	return c, nil
}

// DeleteContact removes the contact only when the requester owns it. A
// malformed id, a missing record, and someone else's record all report
// ErrContactNotFound.
func DeleteContact(ownerID string, contactID string, db *pgxpool.Pool) error {
	id, err := uuid.Parse(contactID)
	if err != nil {
		log.Println("delete requested with malformed contact id: ", contactID)
		return ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "DELETE FROM contacts WHERE id = $1 AND user_id = $2;"
	tag, err := db.Exec(ctx, stmt, id, ownerID)
	if err != nil {
		log.Println("Failed to delete contact:", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}

	return nil
}

// GetContacts lists the owner's contacts in creation order for the dashboard.
func GetContacts(ownerID string, db *pgxpool.Pool) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, user_id, mobile, email, address, registration_number, created_at FROM contacts WHERE user_id = $1 ORDER BY created_at;"
	rows, err := db.Query(ctx, stmt, ownerID)
	if err != nil {
		log.Println(err)
		return nil, errors.New("error querying contacts")
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c := models.Contact{}
		err := rows.Scan(&c.ID, &c.UserID, &c.Mobile, &c.Email, &c.Address, &c.RegistrationNumber, &c.CreatedAt)
		if err != nil {
			log.Println("Error scanning contact row:", err)
			return nil, errors.New("error processing contacts")
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		log.Println("Error after scanning all rows:", err)
		return nil, errors.New("error processing contacts")
	}

	return contacts, nil
}
