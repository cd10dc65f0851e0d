package domain

import "time"

// ContactStatus tracks how far along a contact-form submission is.
// Any value may be set by any authorized update; no transition order
// is enforced.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusResolved  ContactStatus = "resolved"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusResolved:
		return true
	}
	return false
}

type Contact struct {
	Id               int64         `json:"id"`
	FullName         string        `json:"fullName"`
	OrganizationType string        `json:"organizationType"`
	CityCountry      string        `json:"cityCountry"`
	Contact          string        `json:"contact"`
	Message          string        `json:"message"`
	Status           ContactStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}
