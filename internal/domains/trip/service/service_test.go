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
	fleetMocks "busline/internal/domains/fleet/mocks"
	fleetModel "busline/internal/domains/fleet/model"
	invModel "busline/internal/domains/inventory/model"
	routeMocks "busline/internal/domains/route/mocks"
	tripMocks "busline/internal/domains/trip/mocks"
	"busline/internal/domains/trip/model"
	"busline/internal/domains/trip/model/dto"
	"busline/internal/domains/trip/service"
	cacheMocks "busline/shared/cache/mocks"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
)

func TestTripService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tripMocks.NewMockTrip(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRouteRepo, mockBusRepo, cfg, mockCache, mockOtel)

	activeBus := fleetModel.Bus{
		ID:         "bus-1",
		RegNumber:  "B 7001 XYZ",
		Active:     true,
		LowerSeats: 2,
		UpperSeats: 3,
	}

	req := dto.CreateTripRequest{
		RouteID:     "0d1f4c7e-1111-4f9a-b222-333344445555",
		BusID:       "bus-1",
		DepartureAt: "2026-10-01T08:00:00Z",
		ArrivalAt:   "2026-10-01T16:00:00Z",
		BasePrice:   150000,
	}

	t.Run("creates trip with full seat inventory at base price", func(t *testing.T) {
		mockRouteRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBus, nil)
		mockRepo.EXPECT().
			CreateWithSeats(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, trip model.Trip, seats []invModel.TripSeat) error {
				assert.Equal(t, constant.TripStatusScheduled, trip.Status)
				assert.Len(t, seats, 5)

				labels := make(map[string]bool, len(seats))
				for _, seat := range seats {
					labels[seat.SeatNumber] = true

					assert.Equal(t, trip.ID, seat.TripID)
					assert.Equal(t, constant.SeatStatusAvailable, seat.Status)
					assert.Equal(t, int64(150000), seat.Price)
				}

				for _, expected := range []string{"L1", "L2", "U1", "U2", "U3"} {
					assert.True(t, labels[expected], "missing seat %s", expected)
				}

				return nil
			})
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("route does not exist", func(t *testing.T) {
		mockRouteRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("bus does not exist", func(t *testing.T) {
		mockRouteRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(fleetModel.Bus{}, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("bus is inactive", func(t *testing.T) {
		inactive := activeBus
		inactive.Active = false

		mockRouteRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("arrival before departure", func(t *testing.T) {
		bad := req
		bad.ArrivalAt = "2026-10-01T07:00:00Z"

		mockRouteRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBus, nil)

		err := svc.Create(context.Background(), bad)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("invalid departure format", func(t *testing.T) {
		bad := req
		bad.DepartureAt = "01-10-2026 08:00"

		mockRouteRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBusRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBus, nil)

		err := svc.Create(context.Background(), bad)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTripService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tripMocks.NewMockTrip(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRouteRepo, mockBusRepo, cfg, mockCache, mockOtel)

	t.Run("reschedules departure", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldDepartureAt)

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

		err := svc.Update(context.Background(), dto.UpdateTripRequest{DepartureAt: "2026-10-02T08:00:00Z"}, "trip-1")

		assert.NoError(t, err)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateTripRequest{}, "trip-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("trip not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateTripRequest{Status: constant.TripStatusCancelled}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTripService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tripMocks.NewMockTrip(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRouteRepo, mockBusRepo, cfg, mockCache, mockOtel)

	t.Run("deletes existing trip with its seats", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			DeleteWithSeats(gomock.Any(), "trip-1").
			Return(nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "trip-1")

		assert.NoError(t, err)
	})

	t.Run("trip with bookings cannot be deleted", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			DeleteWithSeats(gomock.Any(), "trip-1").
			Return(failure.BadRequestFromString("cannot delete trip: it has bookings associated with it"))

		err := svc.Delete(context.Background(), "trip-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "bookings associated")
	})

	t.Run("trip not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		err := svc.Delete(context.Background(), "trip-1")

		assert.Error(t, err)
	})
}
