package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/otel/mocks"
	bookingMocks "busline/internal/domains/booking/mocks"
	"busline/internal/domains/dashboard/model/dto"
	"busline/internal/domains/dashboard/service"
	fleetMocks "busline/internal/domains/fleet/mocks"
	routeMocks "busline/internal/domains/route/mocks"
	tripMocks "busline/internal/domains/trip/mocks"
	cacheMocks "busline/shared/cache/mocks"
	gDto "busline/shared/dto"
)

func TestDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusRepo := fleetMocks.NewMockBus(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockTripRepo := tripMocks.NewMockTrip(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockBusRepo, mockRouteRepo, mockTripRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	t.Run("aggregates counts across domains", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockBusRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 1)

				return 12, nil
			})
		mockRouteRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(8, nil)
		mockTripRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 2)
				assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)

				return 5, nil
			})
		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(23, nil)
		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(451, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 12, res.ActiveBuses)
		assert.Equal(t, 8, res.TotalRoutes)
		assert.Equal(t, 5, res.UpcomingTrips)
		assert.Equal(t, 23, res.BookingsToday)
		assert.Equal(t, 451, res.TotalBookings)
	})

	t.Run("serves from cache when warm", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				stats, ok := value.(*dto.StatsResponse)
				assert.True(t, ok)

				stats.TotalBookings = 451

				return nil
			})

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 451, res.TotalBookings)
	})

	t.Run("count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockBusRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.Stats(context.Background())

		assert.Error(t, err)
	})
}
