package service

import (
	"time"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/domain"
)

type InstructorService interface {
	All() ([]domain.Instructor, error)
	Get(id int64) (domain.Instructor, error)
	Create(req api.CreateInstructorRequest) (domain.Instructor, error)
	Update(id int64, req api.UpdateInstructorRequest) (domain.Instructor, error)
	Delete(id int64) error
}

type InstructorStorage interface {
	Instructors() ([]domain.Instructor, error)
	Instructor(id int64) (domain.Instructor, error)
	SaveInstructor(i domain.Instructor) (int64, error)
	UpdateInstructor(i domain.Instructor) error
	DeleteInstructor(id int64) error
}

type Instructor struct {
	storage InstructorStorage
}

var _ InstructorService = (*Instructor)(nil)

func NewInstructor(storage InstructorStorage) *Instructor {
	return &Instructor{storage: storage}
}

func (s *Instructor) All() ([]domain.Instructor, error) {
	return s.storage.Instructors()
}

func (s *Instructor) Get(id int64) (domain.Instructor, error) {
	return s.storage.Instructor(id)
}

func (s *Instructor) Create(req api.CreateInstructorRequest) (domain.Instructor, error) {
	instructor := domain.Instructor{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Expertise:   req.Expertise,
		Experience:  req.Experience,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.storage.SaveInstructor(instructor)
	if err != nil {
		return domain.Instructor{}, err
	}
	instructor.Id = id
	return instructor, nil
}

func (s *Instructor) Update(id int64, req api.UpdateInstructorRequest) (domain.Instructor, error) {
	instructor, err := s.storage.Instructor(id)
	if err != nil {
		return domain.Instructor{}, err
	}

	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Title != nil {
		instructor.Title = *req.Title
	}
	if req.Description != nil {
		instructor.Description = *req.Description
	}
	if req.Expertise != nil {
		instructor.Expertise = *req.Expertise
	}
	if req.Experience != nil {
		instructor.Experience = *req.Experience
	}

	if err := s.storage.UpdateInstructor(instructor); err != nil {
		return domain.Instructor{}, err
	}
	return instructor, nil
}

func (s *Instructor) Delete(id int64) error {
	return s.storage.DeleteInstructor(id)
}
