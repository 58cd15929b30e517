package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"busline/shared/repository"
)

func TestIsFkViolation(t *testing.T) {
	t.Run("foreign key violation", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Message: "update or delete on table violates foreign key constraint"}

		assert.True(t, repository.IsFkViolation(err))
		assert.False(t, repository.IsUniqueViolation(err))
	})

	t.Run("wrapped foreign key violation", func(t *testing.T) {
		err := fmt.Errorf("failed to delete data (Bus): %w", &pq.Error{Code: "23503"})

		assert.True(t, repository.IsFkViolation(err))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, repository.IsFkViolation(errors.New("connection refused")))
		assert.False(t, repository.IsFkViolation(nil))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

		assert.True(t, repository.IsUniqueViolation(err))
		assert.False(t, repository.IsFkViolation(err))
	})

	t.Run("wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("failed to insert data (Route): %w", &pq.Error{Code: "23505"})

		assert.True(t, repository.IsUniqueViolation(err))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, repository.IsUniqueViolation(errors.New("connection refused")))
		assert.False(t, repository.IsUniqueViolation(nil))
	})
}
