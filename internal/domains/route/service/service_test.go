package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/otel/mocks"
	auditModel "busline/internal/domains/audit/model"
	routeMocks "busline/internal/domains/route/mocks"
	"busline/internal/domains/route/model"
	"busline/internal/domains/route/model/dto"
	"busline/internal/domains/route/service"
	cacheMocks "busline/shared/cache/mocks"
	gDto "busline/shared/dto"
	"busline/shared/failure"
)

func TestRouteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	req := dto.CreateRouteRequest{
		Origin:      "Jakarta",
		Destination: "Surabaya",
		DistanceKM:  780,
		DurationMin: 720,
	}

	t.Run("creates an active route", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, route model.Route) error {
				assert.Equal(t, "Jakarta", route.Origin)
				assert.Equal(t, "Surabaya", route.Destination)
				assert.True(t, route.Active)

				return nil
			})
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestRouteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("returns route detail", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Route{ID: "route-1", Origin: "Jakarta", Destination: "Bandung", DistanceKM: 150}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "route-1")

		assert.NoError(t, err)
		assert.Equal(t, "Bandung", res.Destination)
		assert.Equal(t, 150, res.DistanceKM)
	})

	t.Run("route not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Route{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRouteService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("updates duration", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldDurationMin)

				return nil
			})
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateRouteRequest{DurationMin: 660}, "route-1")

		assert.NoError(t, err)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateRouteRequest{}, "route-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("route not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateRouteRequest{Origin: "Semarang"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRouteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("archives the route before deleting", func(t *testing.T) {
		route := model.Route{ID: "route-1", Origin: "Jakarta", Destination: "Surabaya"}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(route, nil)
		mockRepo.EXPECT().
			DeleteArchive(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, audit auditModel.Audit, _ gDto.FilterGroup) error {
				assert.Equal(t, model.TableName, audit.Table)
				assert.Equal(t, route.ID, audit.DataID)
				assert.Contains(t, string(audit.Payload), "Surabaya")

				return nil
			})
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "route-1")

		assert.NoError(t, err)
	})

	t.Run("route with trips cannot be deleted", func(t *testing.T) {
		route := model.Route{ID: "route-1", Origin: "Jakarta", Destination: "Surabaya"}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(route, nil)
		mockRepo.EXPECT().
			DeleteArchive(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.BadRequestFromString("cannot delete route: it has trips associated with it"))

		err := svc.Delete(context.Background(), "route-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "trips associated")
	})

	t.Run("route not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Route{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
