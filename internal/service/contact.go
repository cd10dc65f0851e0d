package service

import (
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/domain"
)

type ContactService interface {
	All() ([]domain.Contact, error)
	Get(id int64) (domain.Contact, error)
	Create(req api.CreateContactRequest) (domain.Contact, error)
	Update(id int64, req api.UpdateContactRequest) (domain.Contact, error)
	Delete(id int64) error
}

type ContactStorage interface {
	Contacts() ([]domain.Contact, error)
	Contact(id int64) (domain.Contact, error)
	SaveContact(c domain.Contact) (int64, error)
	UpdateContact(c domain.Contact) error
	DeleteContact(id int64) error
}

// Contact submissions come straight off the public site, so free-text
// fields are stripped of HTML before they are stored.
var sanitizer = bluemonday.StrictPolicy()

type Contact struct {
	storage ContactStorage
}

var _ ContactService = (*Contact)(nil)

func NewContact(storage ContactStorage) *Contact {
	return &Contact{storage: storage}
}

func (s *Contact) All() ([]domain.Contact, error) {
	return s.storage.Contacts()
}

func (s *Contact) Get(id int64) (domain.Contact, error) {
	return s.storage.Contact(id)
}

func (s *Contact) Create(req api.CreateContactRequest) (domain.Contact, error) {
	contact := domain.Contact{
		FullName:         sanitizer.Sanitize(req.FullName),
		OrganizationType: sanitizer.Sanitize(req.OrganizationType),
		CityCountry:      sanitizer.Sanitize(req.CityCountry),
		Contact:          sanitizer.Sanitize(req.Contact),
		Message:          sanitizer.Sanitize(req.Message),
		Status:           domain.ContactStatusNew,
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.storage.SaveContact(contact)
	if err != nil {
		return domain.Contact{}, err
	}
	contact.Id = id
	return contact, nil
}

func (s *Contact) Update(id int64, req api.UpdateContactRequest) (domain.Contact, error) {
	contact, err := s.storage.Contact(id)
	if err != nil {
		return domain.Contact{}, err
	}

	if req.FullName != nil {
		contact.FullName = sanitizer.Sanitize(*req.FullName)
	}
	if req.OrganizationType != nil {
		contact.OrganizationType = sanitizer.Sanitize(*req.OrganizationType)
	}
	if req.CityCountry != nil {
		contact.CityCountry = sanitizer.Sanitize(*req.CityCountry)
	}
	if req.Contact != nil {
		contact.Contact = sanitizer.Sanitize(*req.Contact)
	}
	if req.Message != nil {
		contact.Message = sanitizer.Sanitize(*req.Message)
	}
	if req.Status != nil {
		// Value already constrained by the request validator; no
		// transition order is enforced.
		contact.Status = domain.ContactStatus(*req.Status)
	}

	if err := s.storage.UpdateContact(contact); err != nil {
		return domain.Contact{}, err
	}
	return contact, nil
}

func (s *Contact) Delete(id int64) error {
	return s.storage.DeleteContact(id)
}
