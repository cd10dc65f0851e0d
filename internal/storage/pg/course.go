package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

// Courses returns all courses, most recently created first.
func (s *Storage) Courses() ([]domain.Course, error) {
	rows, err := s.db.Query(`SELECT id, title, description, courses, icon, image, created_at
		FROM courses ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.Id, &c.Title, &c.Description, &c.Courses, &c.Icon, &c.Image, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

func (s *Storage) Course(id int64) (domain.Course, error) {
	var c domain.Course
	err := s.db.QueryRow(`SELECT id, title, description, courses, icon, image, created_at
		FROM courses WHERE id = $1`, id).
		Scan(&c.Id, &c.Title, &c.Description, &c.Courses, &c.Icon, &c.Image, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Course{}, internal_errors.NewNotFound("Course not found")
		}
		return domain.Course{}, fmt.Errorf("failed to query course: %w", err)
	}
	return c, nil
}

func (s *Storage) SaveCourse(c domain.Course) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRow(`INSERT INTO courses(title, description, courses, icon, image, created_at)
			VALUES($1, $2, $3, $4, $5, $6) RETURNING id`,
			c.Title, c.Description, c.Courses, c.Icon, c.Image, c.CreatedAt).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("failed to insert course: %w", err)
	}
	return id, nil
}

// UpdateCourse writes the full post-merge record; the service layer owns
// the partial merge.
func (s *Storage) UpdateCourse(c domain.Course) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE courses SET title = $1, description = $2, courses = $3, icon = $4, image = $5
			WHERE id = $6`,
			c.Title, c.Description, c.Courses, c.Icon, c.Image, c.Id)
		if err != nil {
			return fmt.Errorf("failed to update course: %w", err)
		}
		return checkFound(result, "Course not found")
	})
}

func (s *Storage) DeleteCourse(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM courses WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete course: %w", err)
		}
		return checkFound(result, "Course not found")
	})
}

// checkFound converts a zero-row write into the entity's 404.
func checkFound(result sql.Result, notFoundMessage string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NewNotFound(notFoundMessage)
	}
	return nil
}
