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
	fleetMocks "busline/internal/domains/fleet/mocks"
	"busline/internal/domains/fleet/model"
	"busline/internal/domains/fleet/model/dto"
	"busline/internal/domains/fleet/service"
	cacheMocks "busline/shared/cache/mocks"
	gDto "busline/shared/dto"
	"busline/shared/failure"
)

func TestFleetService_CreateBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockTypeRepo := fleetMocks.NewMockBusType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBusRepo, mockTypeRepo, cfg, mockCache, mockOtel)

	req := dto.CreateBusRequest{
		RegNumber: "B 7412 KQT",
		BusTypeID: "6f9f1b2a-0b3c-4d5e-8f90-123456789abc",
	}

	t.Run("registers a bus", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockBusRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bus model.Bus) error {
				assert.Equal(t, req.RegNumber, bus.RegNumber)
				assert.True(t, bus.Active)

				return nil
			})
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.CreateBus(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("bus type does not exist", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.CreateBus(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("duplicate registration number", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.CreateBus(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		err := svc.CreateBus(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestFleetService_UpdateBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockTypeRepo := fleetMocks.NewMockBusType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBusRepo, mockTypeRepo, cfg, mockCache, mockOtel)

	t.Run("deactivates a bus", func(t *testing.T) {
		active := false

		mockBusRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldActive)

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

		err := svc.UpdateBus(context.Background(), dto.UpdateBusRequest{Active: &active}, "bus-1")

		assert.NoError(t, err)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		err := svc.UpdateBus(context.Background(), dto.UpdateBusRequest{}, "bus-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("bus not found", func(t *testing.T) {
		mockBusRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.UpdateBus(context.Background(), dto.UpdateBusRequest{RegNumber: "B 1 A"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("new bus type does not exist", func(t *testing.T) {
		mockBusRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.UpdateBus(context.Background(), dto.UpdateBusRequest{BusTypeID: "7a1f0c3e-9d8b-4a2c-b1e0-555566667777"}, "bus-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestFleetService_DeleteBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockTypeRepo := fleetMocks.NewMockBusType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBusRepo, mockTypeRepo, cfg, mockCache, mockOtel)

	t.Run("archives the bus before deleting", func(t *testing.T) {
		bus := model.Bus{ID: "bus-1", RegNumber: "B 7412 KQT", Active: true}

		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bus, nil)
		mockBusRepo.EXPECT().
			DeleteArchive(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, audit auditModel.Audit, _ gDto.FilterGroup) error {
				assert.Equal(t, model.BusTableName, audit.Table)
				assert.Equal(t, bus.ID, audit.DataID)
				assert.Contains(t, string(audit.Payload), bus.RegNumber)

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

		err := svc.DeleteBus(context.Background(), "bus-1")

		assert.NoError(t, err)
	})

	t.Run("bus with trips or bookings cannot be deleted", func(t *testing.T) {
		bus := model.Bus{ID: "bus-1", RegNumber: "B 7412 KQT", Active: true}

		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bus, nil)
		mockBusRepo.EXPECT().
			DeleteArchive(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.BadRequestFromString("cannot delete bus: it has trips or bookings associated with it"))

		err := svc.DeleteBus(context.Background(), "bus-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "trips or bookings associated")
	})

	t.Run("bus not found", func(t *testing.T) {
		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Bus{}, nil)

		err := svc.DeleteBus(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFleetService_GetBusTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockTypeRepo := fleetMocks.NewMockBusType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBusRepo, mockTypeRepo, cfg, mockCache, mockOtel)

	t.Run("lists layouts sorted by name", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BusType{
				{ID: "bt-1", Name: "Double Decker", LowerSeats: 24, UpperSeats: 35},
				{ID: "bt-2", Name: "Single Decker", LowerSeats: 40},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetBusTypes(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.BusTypes, 2)
		assert.Equal(t, "Double Decker", res.BusTypes[0].Name)
		assert.Equal(t, 35, res.BusTypes[0].UpperSeats)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetBusTypes(context.Background())

		assert.Error(t, err)
	})
}
