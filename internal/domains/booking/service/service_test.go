package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/kafka"
	kafkaMocks "busline/infras/kafka/mocks"
	"busline/infras/otel/mocks"
	bookingMocks "busline/internal/domains/booking/mocks"
	"busline/internal/domains/booking/model"
	"busline/internal/domains/booking/model/dto"
	"busline/internal/domains/booking/service"
	cacheMocks "busline/shared/cache/mocks"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	gModel "busline/shared/model"
	"busline/shared/timezone"
)

func TestBookingService_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockKafka, cfg, mockCache, mockOtel)

	req := dto.ReserveRequest{
		TripID:        "f0b4f9ab-42f9-4b7a-8c2e-6a2d3f5e0001",
		CustomerName:  "Jane Smith",
		CustomerPhone: "+6281234567890",
		Seats:         []string{"L1", "L2"},
	}

	t.Run("successful reservation", func(t *testing.T) {
		confirmed := model.Booking{
			ID:         "booking-1",
			TripID:     req.TripID,
			Status:     constant.BookingStatusConfirmed,
			Source:     constant.BookingSourceWeb,
			TotalPrice: 300000,
		}
		lines := []model.BookingSeat{
			{ID: "line-1", BookingID: "booking-1", TripSeatID: "ts-1", SeatNumber: "L1", PassengerName: req.CustomerName, Price: 150000},
			{ID: "line-2", BookingID: "booking-1", TripSeatID: "ts-2", SeatNumber: "L2", PassengerName: req.CustomerName, Price: 150000},
		}

		mockRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), req.Seats).
			Return(confirmed, lines, nil)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicBookingConfirmed, gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Reserve(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
		assert.Equal(t, int64(300000), res.TotalPrice)
		assert.Len(t, res.Seats, 2)
		assert.Equal(t, "L1", res.Seats[0].SeatNumber)
	})

	t.Run("seats already taken", func(t *testing.T) {
		conflict := failure.Conflict("seats unavailable: L2")

		mockRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), req.Seats).
			Return(model.Booking{}, nil, conflict)

		_, err := svc.Reserve(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), "L2")
	})

	t.Run("unknown trip", func(t *testing.T) {
		mockRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), req.Seats).
			Return(model.Booking{}, nil, failure.NotFound("trip not found"))

		_, err := svc.Reserve(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("trip not open for booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), req.Seats).
			Return(model.Booking{}, nil, failure.BadRequestFromString("trip is not open for booking"))

		_, err := svc.Reserve(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("infrastructure failure is transient", func(t *testing.T) {
		mockRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), req.Seats).
			Return(model.Booking{}, nil, failure.Transient(errors.New("connection reset")))

		_, err := svc.Reserve(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
		assert.True(t, failure.IsTransient(err))
	})
}

// noopKafka and noopCache absorb the asynchronous publish and invalidation
// calls the service fires after a successful reservation.
type noopKafka struct{}

func (noopKafka) SendMessages(context.Context, string, ...kafka.Message) error { return nil }

func (noopKafka) Consume(context.Context, string, string, func(message kafkaGo.Message)) {}

func (noopKafka) Reader(string, string) *kafkaGo.Reader { return nil }

type noopCache struct{}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(context.Context, string, any) error { return errors.New("cache miss") }

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Clear(context.Context, string) error { return nil }

// fakeReservingRepo arbitrates seat claims in memory under a mutex, honoring
// the same all-or-nothing contract as the database implementation. Winning
// claims are recorded as booking seat lines so tests can inspect what would
// have been persisted.
type fakeReservingRepo struct {
	mu    sync.Mutex
	seats map[string]int64
	taken map[string]string
	lines []model.BookingSeat
}

func newFakeReservingRepo(seats map[string]int64) *fakeReservingRepo {
	return &fakeReservingRepo{
		seats: seats,
		taken: map[string]string{},
	}
}

func (f *fakeReservingRepo) Reserve(_ context.Context, booking model.Booking, seats []string) (model.Booking, []model.BookingSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var missing []string

	for _, seat := range seats {
		if _, exists := f.seats[seat]; !exists {
			missing = append(missing, seat)

			continue
		}

		if _, claimed := f.taken[seat]; claimed {
			missing = append(missing, seat)
		}
	}

	if len(missing) > 0 {
		return model.Booking{}, nil, failure.Conflict("seats unavailable: " + strings.Join(missing, ", "))
	}

	lines := make([]model.BookingSeat, len(seats))

	var total int64

	for i, seat := range seats {
		f.taken[seat] = booking.ID
		total += f.seats[seat]

		lines[i] = model.BookingSeat{
			BookingID:     booking.ID,
			TripSeatID:    "ts-" + seat,
			SeatNumber:    seat,
			PassengerName: booking.CustomerName,
			Price:         f.seats[seat],
		}
	}

	f.lines = append(f.lines, lines...)

	booking.Status = constant.BookingStatusConfirmed
	booking.TotalPrice = total

	return booking, lines, nil
}

func (f *fakeReservingRepo) Get(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
	return model.Booking{}, nil
}

func (f *fakeReservingRepo) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
	return nil, nil
}

func (f *fakeReservingRepo) Count(context.Context, gDto.FilterGroup) (int, error) {
	return 0, nil
}

func TestBookingService_Reserve_ConcurrentClaims(t *testing.T) {
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := newFakeReservingRepo(map[string]int64{
		"L1": 150000,
		"L2": 150000,
		"L3": 175000,
	})

	svc := service.New(repo, noopKafka{}, cfg, noopCache{}, mockOtel)

	const contenders = 16

	var (
		wg        sync.WaitGroup
		successMu sync.Mutex
		successes []dto.ReserveResponse
	)

	for i := 0; i < contenders; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := svc.Reserve(context.Background(), dto.ReserveRequest{
				TripID:        "f0b4f9ab-42f9-4b7a-8c2e-6a2d3f5e0001",
				CustomerName:  "Contender",
				CustomerPhone: "+628000000000",
				Seats:         []string{"L1", "L2"},
			})
			if err != nil {
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))

				return
			}

			successMu.Lock()
			successes = append(successes, res)
			successMu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, successes, 1, "exactly one contender should win the seats")
	assert.Equal(t, int64(300000), successes[0].TotalPrice)
	assert.Len(t, repo.taken, 2, "only the contested seats are claimed")
}

func TestBookingService_Reserve_PartialOverlapLeavesNothingBehind(t *testing.T) {
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := newFakeReservingRepo(map[string]int64{
		"U1": 200000,
		"U2": 200000,
		"U3": 200000,
	})

	svc := service.New(repo, noopKafka{}, cfg, noopCache{}, mockOtel)

	first, err := svc.Reserve(context.Background(), dto.ReserveRequest{
		TripID:        "f0b4f9ab-42f9-4b7a-8c2e-6a2d3f5e0001",
		CustomerName:  "First Buyer",
		CustomerPhone: "+628000000001",
		Seats:         []string{"U2"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(200000), first.TotalPrice)
	assert.Len(t, repo.lines, 1)
	assert.Equal(t, "ts-U2", repo.lines[0].TripSeatID, "seat line must point at the claimed seat record")
	assert.Equal(t, "First Buyer", repo.lines[0].PassengerName)

	_, err = svc.Reserve(context.Background(), dto.ReserveRequest{
		TripID:        "f0b4f9ab-42f9-4b7a-8c2e-6a2d3f5e0001",
		CustomerName:  "Second Buyer",
		CustomerPhone: "+628000000002",
		Seats:         []string{"U1", "U2", "U3"},
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Contains(t, err.Error(), "U2")

	_, u1Taken := repo.taken["U1"]
	_, u3Taken := repo.taken["U3"]
	assert.False(t, u1Taken, "losing request must not keep any seat")
	assert.False(t, u3Taken, "losing request must not keep any seat")
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockKafka, cfg, mockCache, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	t.Run("cache miss fetches from repository", func(t *testing.T) {
		bookings := []model.Booking{
			{
				ID:         "booking-1",
				TripID:     "trip-1",
				Status:     constant.BookingStatusConfirmed,
				TotalPrice: 150000,
				Metadata:   gModel.Metadata{CreatedAt: timezone.Now(), ModifiedAt: timezone.Now()},
			},
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), filter).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, filter).
			Return(bookings, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), cfg.Cache.TTL).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), params, filter)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), filter).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, filter)

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockKafka, cfg, mockCache, mockOtel)

	t.Run("booking found", func(t *testing.T) {
		booking := model.Booking{
			ID:          "booking-1",
			TripID:      "trip-1",
			Status:      constant.BookingStatusConfirmed,
			Origin:      "Jakarta",
			Destination: "Surabaya",
			Metadata:    gModel.Metadata{CreatedAt: timezone.Now(), ModifiedAt: timezone.Now()},
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), cfg.Cache.TTL).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "Jakarta", res.Origin)
	})

	t.Run("booking not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
