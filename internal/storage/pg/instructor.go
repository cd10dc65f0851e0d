package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

func (s *Storage) Instructors() ([]domain.Instructor, error) {
	rows, err := s.db.Query(`SELECT id, name, title, description, expertise, experience, created_at
		FROM instructors ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query instructors: %w", err)
	}
	defer rows.Close()

	instructors := []domain.Instructor{}
	for rows.Next() {
		var i domain.Instructor
		if err := rows.Scan(&i.Id, &i.Name, &i.Title, &i.Description, &i.Expertise, &i.Experience, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan instructor: %w", err)
		}
		instructors = append(instructors, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate instructors: %w", err)
	}
	return instructors, nil
}

func (s *Storage) Instructor(id int64) (domain.Instructor, error) {
	var i domain.Instructor
	err := s.db.QueryRow(`SELECT id, name, title, description, expertise, experience, created_at
		FROM instructors WHERE id = $1`, id).
		Scan(&i.Id, &i.Name, &i.Title, &i.Description, &i.Expertise, &i.Experience, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Instructor{}, internal_errors.NewNotFound("Instructor not found")
		}
		return domain.Instructor{}, fmt.Errorf("failed to query instructor: %w", err)
	}
	return i, nil
}

func (s *Storage) SaveInstructor(i domain.Instructor) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRow(`INSERT INTO instructors(name, title, description, expertise, experience, created_at)
			VALUES($1, $2, $3, $4, $5, $6) RETURNING id`,
			i.Name, i.Title, i.Description, i.Expertise, i.Experience, i.CreatedAt).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("failed to insert instructor: %w", err)
	}
	return id, nil
}

func (s *Storage) UpdateInstructor(i domain.Instructor) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE instructors SET name = $1, title = $2, description = $3, expertise = $4, experience = $5
			WHERE id = $6`,
			i.Name, i.Title, i.Description, i.Expertise, i.Experience, i.Id)
		if err != nil {
			return fmt.Errorf("failed to update instructor: %w", err)
		}
		return checkFound(result, "Instructor not found")
	})
}

func (s *Storage) DeleteInstructor(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM instructors WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete instructor: %w", err)
		}
		return checkFound(result, "Instructor not found")
	})
}
