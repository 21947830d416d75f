package storage

import (
	"io"
	"testing"

	"gradeboard/internal/logger"
	"gradeboard/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	log := logger.NewZerolog(io.Discard, zerolog.Disabled)
	store, err := Open(":memory:", log)
	require.NoError(t, err)
	t.Cleanup(store.Shutdown)

	return store
}

func seed(t *testing.T, store *Store, students ...models.Student) []models.Student {
	t.Helper()

	out := make([]models.Student, 0, len(students))
	for _, student := range students {
		require.NoError(t, store.CreateStudent(&student))
		out = append(out, student)
	}
	return out
}

func TestCreateAndList(t *testing.T) {
	store := setupTestStore(t)

	created := seed(t, store,
		models.Student{Name: "Alice", Roll: "R-01", Marks: 87},
		models.Student{Name: "Bob", Roll: "R-02", Marks: 55},
	)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, created[1].ID)

	students, err := store.ListStudents()
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Alice", students[0].Name)
	assert.Equal(t, "Bob", students[1].Name)
	assert.Less(t, students[0].ID, students[1].ID)

	count, err := store.CountStudents()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCreateDuplicateRoll(t *testing.T) {
	store := setupTestStore(t)
	seed(t, store, models.Student{Name: "Alice", Roll: "R-01", Marks: 87})

	err := store.CreateStudent(&models.Student{Name: "Impostor", Roll: "R-01", Marks: 10})
	assert.ErrorIs(t, err, ErrDuplicateRoll)
}

func TestUpdateStudent(t *testing.T) {
	store := setupTestStore(t)
	created := seed(t, store, models.Student{Name: "Alice", Roll: "R-01", Marks: 87})

	updated := models.Student{ID: created[0].ID, Name: "Alicia", Roll: "R-10", Marks: 0}
	require.NoError(t, store.UpdateStudent(updated))

	students, err := store.ListStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Alicia", students[0].Name)
	assert.Equal(t, "R-10", students[0].Roll)
	assert.Equal(t, 0, students[0].Marks)
}

func TestUpdateUnknownID(t *testing.T) {
	store := setupTestStore(t)

	err := store.UpdateStudent(models.Student{ID: 999, Name: "Ghost", Roll: "R-99", Marks: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateToDuplicateRoll(t *testing.T) {
	store := setupTestStore(t)
	created := seed(t, store,
		models.Student{Name: "Alice", Roll: "R-01", Marks: 87},
		models.Student{Name: "Bob", Roll: "R-02", Marks: 55},
	)

	err := store.UpdateStudent(models.Student{ID: created[1].ID, Name: "Bob", Roll: "R-01", Marks: 55})
	assert.ErrorIs(t, err, ErrDuplicateRoll)
}

func TestDeleteStudent(t *testing.T) {
	store := setupTestStore(t)
	created := seed(t, store, models.Student{Name: "Alice", Roll: "R-01", Marks: 87})

	require.NoError(t, store.DeleteStudent(created[0].ID))

	students, err := store.ListStudents()
	require.NoError(t, err)
	assert.Empty(t, students)

	assert.ErrorIs(t, store.DeleteStudent(created[0].ID), ErrNotFound)
}
