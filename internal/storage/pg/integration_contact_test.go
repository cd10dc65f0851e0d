package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

func newTestContact(name string) domain.Contact {
	return domain.Contact{
		FullName:         name,
		OrganizationType: "University",
		CityCountry:      "Pune, India",
		Contact:          "jane@example.com",
		Message:          "Test message",
		Status:           domain.ContactStatusNew,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestSaveContact(t *testing.T) {
	id, err := storage.SaveContact(newTestContact("Jane Roe"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.DeleteContact(id)) })

	got, err := storage.Contact(id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", got.FullName)
	assert.Equal(t, domain.ContactStatusNew, got.Status)
}

func TestUpdateContact_StatusTransition(t *testing.T) {
	id, err := storage.SaveContact(newTestContact("Status Case"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.DeleteContact(id)) })

	updated := newTestContact("Status Case")
	updated.Id = id
	updated.Status = domain.ContactStatusResolved
	require.NoError(t, storage.UpdateContact(updated))

	got, err := storage.Contact(id)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusResolved, got.Status)
}

func TestContact_NotFound(t *testing.T) {
	_, err := storage.Contact(999999)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
	assert.Equal(t, "Contact not found", err.Error())

	err = storage.DeleteContact(999999)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestReset(t *testing.T) {
	courseId, err := storage.SaveCourse(newTestCourse("Reset Course"))
	require.NoError(t, err)
	contactId, err := storage.SaveContact(newTestContact("Reset Contact"))
	require.NoError(t, err)

	require.NoError(t, storage.Reset(context.Background()))

	_, err = storage.Course(courseId)
	assert.True(t, internal_errors.IsNotFound(err))
	_, err = storage.Contact(contactId)
	assert.True(t, internal_errors.IsNotFound(err))

	courses, err := storage.Courses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}
