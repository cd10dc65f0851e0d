package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

func (s *Storage) Contacts() ([]domain.Contact, error) {
	rows, err := s.db.Query(`SELECT id, full_name, organization_type, city_country, contact, message, status, created_at
		FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.Id, &c.FullName, &c.OrganizationType, &c.CityCountry, &c.Contact, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

func (s *Storage) Contact(id int64) (domain.Contact, error) {
	var c domain.Contact
	err := s.db.QueryRow(`SELECT id, full_name, organization_type, city_country, contact, message, status, created_at
		FROM contacts WHERE id = $1`, id).
		Scan(&c.Id, &c.FullName, &c.OrganizationType, &c.CityCountry, &c.Contact, &c.Message, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, internal_errors.NewNotFound("Contact not found")
		}
		return domain.Contact{}, fmt.Errorf("failed to query contact: %w", err)
	}
	return c, nil
}

func (s *Storage) SaveContact(c domain.Contact) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRow(`INSERT INTO contacts(full_name, organization_type, city_country, contact, message, status, created_at)
			VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			c.FullName, c.OrganizationType, c.CityCountry, c.Contact, c.Message, c.Status, c.CreatedAt).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("failed to insert contact: %w", err)
	}
	return id, nil
}

func (s *Storage) UpdateContact(c domain.Contact) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE contacts SET full_name = $1, organization_type = $2, city_country = $3, contact = $4, message = $5, status = $6
			WHERE id = $7`,
			c.FullName, c.OrganizationType, c.CityCountry, c.Contact, c.Message, c.Status, c.Id)
		if err != nil {
			return fmt.Errorf("failed to update contact: %w", err)
		}
		return checkFound(result, "Contact not found")
	})
}

func (s *Storage) DeleteContact(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM contacts WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return checkFound(result, "Contact not found")
	})
}

// Reset wipes all aggregate tables. Used only by the one-shot seeding
// utility.
func (s *Storage) Reset(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"contacts", "instructors", "courses", "users"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("failed to reset %s: %w", table, err)
			}
		}
		return nil
	})
}
