package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/jwt"
	jwtMocks "busline/infras/jwt/mocks"
	"busline/infras/otel/mocks"
	"busline/internal/domains/auth/model/dto"
	"busline/internal/domains/auth/service"
	userMocks "busline/internal/domains/user/mocks"
	userModel "busline/internal/domains/user/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"busline/shared/password"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockOperator(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	req := dto.RegisterRequest{
		Email:    "operator@busline.id",
		Password: "s3cret-password",
		FullName: "Siti Rahma",
	}

	t.Run("registers operator with default role", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, operator userModel.Operator) error {
				assert.Equal(t, req.Email, operator.Email)
				assert.Equal(t, constant.RoleOperator, operator.Role)
				assert.True(t, operator.Active)
				assert.NoError(t, password.Verify(req.Password, operator.Password))

				return nil
			})

		err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockOperator(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	hashed, err := password.Hash("correct-password")
	assert.NoError(t, err)

	operator := userModel.Operator{
		ID:       "op-1",
		Email:    "operator@busline.id",
		Password: hashed,
		FullName: "Siti Rahma",
		Role:     constant.RoleOperator,
		Active:   true,
	}

	t.Run("returns token pair", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(operator, nil)
		mockJWT.EXPECT().
			GenerateTokenPair(operator.ID, operator.Email, operator.Role).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, userModel.FieldLastLogin)

				return nil
			})

		res, err := svc.Login(context.Background(), dto.LoginRequest{Email: operator.Email, Password: "correct-password"})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("unknown email gets the same message as wrong password", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.Operator{}, nil)

		_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@busline.id", Password: "whatever"})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(operator, nil)

		_, errWrong := svc.Login(context.Background(), dto.LoginRequest{Email: operator.Email, Password: "wrong-password"})

		assert.Error(t, errUnknown)
		assert.Error(t, errWrong)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(errUnknown))
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := operator
		inactive.Active = false

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: operator.Email, Password: "correct-password"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockOperator(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("rotates the pair", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("garbage").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "garbage"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockOperator(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	hashed, err := password.Hash("current-password")
	assert.NoError(t, err)

	operator := userModel.Operator{ID: "op-1", Email: "operator@busline.id", Password: hashed, Active: true}

	t.Run("rehashes and stores the new password", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(operator, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				stored, ok := fields[userModel.FieldPassword].(string)
				assert.True(t, ok)
				assert.NoError(t, password.Verify("brand-new-password", stored))

				return nil
			})

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "current-password",
			NewPassword:     "brand-new-password",
		}, "op-1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(operator, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "brand-new-password",
		}, "op-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("operator not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.Operator{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "current-password",
			NewPassword:     "brand-new-password",
		}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
