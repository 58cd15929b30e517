package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"busline/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "bad request",
			err:  failure.BadRequestFromString("seat list cannot be empty"),
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  failure.NotFound("trip not found"),
			want: http.StatusNotFound,
		},
		{
			name: "conflict",
			err:  failure.Conflict("seats no longer available: L3"),
			want: http.StatusConflict,
		},
		{
			name: "transient",
			err:  failure.Transient(errors.New("commit failed")),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "wrapped failure keeps its code",
			err:  fmt.Errorf("reserving seats: %w", failure.Conflict("seats no longer available: L3")),
			want: http.StatusConflict,
		},
		{
			name: "plain error defaults to internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, failure.IsTransient(failure.Transient(errors.New("connection reset"))))
	assert.False(t, failure.IsTransient(failure.Conflict("seat taken")))
	assert.False(t, failure.IsTransient(errors.New("boom")))
}

func TestNilErrorsProduceNilFailures(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.NoError(t, failure.Transient(nil))
}
