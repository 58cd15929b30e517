package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"busline/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("operator-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "operator-secret", hash)

	assert.NoError(t, password.Verify("operator-secret", hash))
	assert.ErrorIs(t, password.Verify("wrong-secret", hash), password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("secret", ""), password.ErrInvalidPassword)
}
