package service

import (
	"time"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/domain"
)

type CourseService interface {
	All() ([]domain.Course, error)
	Get(id int64) (domain.Course, error)
	Create(req api.CreateCourseRequest) (domain.Course, error)
	Update(id int64, req api.UpdateCourseRequest) (domain.Course, error)
	Delete(id int64) error
}

type CourseStorage interface {
	Courses() ([]domain.Course, error)
	Course(id int64) (domain.Course, error)
	SaveCourse(c domain.Course) (int64, error)
	UpdateCourse(c domain.Course) error
	DeleteCourse(id int64) error
}

type Course struct {
	storage CourseStorage
}

var _ CourseService = (*Course)(nil)

func NewCourse(storage CourseStorage) *Course {
	return &Course{storage: storage}
}

func (s *Course) All() ([]domain.Course, error) {
	return s.storage.Courses()
}

func (s *Course) Get(id int64) (domain.Course, error) {
	return s.storage.Course(id)
}

func (s *Course) Create(req api.CreateCourseRequest) (domain.Course, error) {
	course := domain.Course{
		Title:       req.Title,
		Description: req.Description,
		Courses:     req.Courses,
		Icon:        req.Icon,
		Image:       req.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if course.Courses == "" {
		course.Courses = domain.DefaultCourseCount
	}
	if course.Icon == "" {
		course.Icon = domain.DefaultCourseIcon
	}

	id, err := s.storage.SaveCourse(course)
	if err != nil {
		return domain.Course{}, err
	}
	course.Id = id
	return course, nil
}

// Update applies a partial merge over the stored record and returns the
// post-update state.
func (s *Course) Update(id int64, req api.UpdateCourseRequest) (domain.Course, error) {
	course, err := s.storage.Course(id)
	if err != nil {
		return domain.Course{}, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Courses != nil {
		course.Courses = *req.Courses
	}
	if req.Icon != nil {
		course.Icon = *req.Icon
	}
	if req.Image != nil {
		course.Image = *req.Image
	}

	if err := s.storage.UpdateCourse(course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (s *Course) Delete(id int64) error {
	return s.storage.DeleteCourse(id)
}
