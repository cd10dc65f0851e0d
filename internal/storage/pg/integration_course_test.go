package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

func newTestCourse(title string) domain.Course {
	return domain.Course{
		Title:       title,
		Description: "Test description",
		Courses:     "5 Courses",
		Icon:        "📚",
		Image:       "",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestSaveCourse(t *testing.T) {
	id, err := storage.SaveCourse(newTestCourse("Save Course"))
	require.NoError(t, err)
	assert.Positive(t, id)
	t.Cleanup(func() { require.NoError(t, storage.DeleteCourse(id)) })

	got, err := storage.Course(id)
	require.NoError(t, err)
	assert.Equal(t, "Save Course", got.Title)
	assert.Equal(t, "5 Courses", got.Courses)
	assert.Equal(t, "📚", got.Icon)
}

func TestCourses_Ordering(t *testing.T) {
	older := newTestCourse("Older Course")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	olderId, err := storage.SaveCourse(older)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.DeleteCourse(olderId)) })

	newerId, err := storage.SaveCourse(newTestCourse("Newer Course"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.DeleteCourse(newerId)) })

	courses, err := storage.Courses()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(courses), 2)

	var newerIdx, olderIdx = -1, -1
	for i, c := range courses {
		switch c.Id {
		case newerId:
			newerIdx = i
		case olderId:
			olderIdx = i
		}
	}
	require.NotEqual(t, -1, newerIdx)
	require.NotEqual(t, -1, olderIdx)
	assert.Less(t, newerIdx, olderIdx, "newest course should come first")
}

func TestUpdateCourse(t *testing.T) {
	id, err := storage.SaveCourse(newTestCourse("Before Update"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.DeleteCourse(id)) })

	updated := newTestCourse("After Update")
	updated.Id = id
	updated.Icon = "☁️"
	require.NoError(t, storage.UpdateCourse(updated))

	got, err := storage.Course(id)
	require.NoError(t, err)
	assert.Equal(t, "After Update", got.Title)
	assert.Equal(t, "☁️", got.Icon)
}

func TestCourse_NotFound(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		_, err := storage.Course(999999)
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.Equal(t, "Course not found", err.Error())
	})

	t.Run("update", func(t *testing.T) {
		missing := newTestCourse("Ghost")
		missing.Id = 999999
		err := storage.UpdateCourse(missing)
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		err := storage.DeleteCourse(999999)
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
