package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"busline/shared/failure"
	"busline/shared/validator"
)

type reserveBody struct {
	TripID        string   `json:"trip_id"        validate:"required"`
	CustomerName  string   `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string   `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string   `json:"customer_phone" validate:"required,max=20"`
	Seats         []string `json:"seats"          validate:"required,min=1,unique"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"trip_id":"t1","customer_name":"Ravi","customer_phone":"9876543210","seats":["L1","L2"]}`,
			wantErr: false,
		},
		{
			name:    "missing phone",
			body:    `{"trip_id":"t1","customer_name":"Ravi","seats":["L1"]}`,
			wantErr: true,
		},
		{
			name:    "empty seats",
			body:    `{"trip_id":"t1","customer_name":"Ravi","customer_phone":"9876543210","seats":[]}`,
			wantErr: true,
		},
		{
			name:    "duplicate seats",
			body:    `{"trip_id":"t1","customer_name":"Ravi","customer_phone":"9876543210","seats":["L1","L1"]}`,
			wantErr: true,
		},
		{
			name:    "bad email",
			body:    `{"trip_id":"t1","customer_name":"Ravi","customer_email":"nope","customer_phone":"9876543210","seats":["L1"]}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"trip_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reserveBody{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("ops@busline.dev", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
