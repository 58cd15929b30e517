package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"busline/infras/jwt"
	"busline/internal/domains/auth/model/dto"
	"busline/shared/constant"
	"busline/shared/timezone"
)

func TestRegisterRequest_ToOperatorModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "operator@busline.id",
		FullName: "Siti Rahma",
	}

	operator := req.ToOperatorModel("admin-1", "hashed-password")

	assert.NotEmpty(t, operator.ID)
	assert.Equal(t, req.Email, operator.Email)
	assert.Equal(t, "hashed-password", operator.Password)
	assert.Equal(t, constant.RoleOperator, operator.Role)
	assert.True(t, operator.Active)
	assert.Equal(t, "admin-1", operator.CreatedBy)
}

func TestRegisterRequest_ToOperatorModelKeepsRole(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "admin@busline.id",
		FullName: "Budi Santoso",
		Role:     constant.RoleAdmin,
	}

	operator := req.ToOperatorModel("admin-1", "hashed-password")

	assert.Equal(t, constant.RoleAdmin, operator.Role)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}
