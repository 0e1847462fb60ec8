package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
	"go.uber.org/mock/gomock"

	"syncguard/config"
	"syncguard/infras/otel/mocks"
	pdfMocks "syncguard/infras/pdf/mocks"
	s3Mocks "syncguard/infras/s3/mocks"
	bookingMocks "syncguard/internal/domains/booking/mocks"
	"syncguard/internal/domains/booking/model"
	"syncguard/internal/domains/booking/model/dto"
	"syncguard/internal/domains/booking/service"
	guestSvcMocks "syncguard/internal/domains/guest/service/mocks"
	notifSvcMocks "syncguard/internal/domains/notification/service/mocks"
	rtMocks "syncguard/internal/domains/roomtype/mocks"
	settingsRepoMocks "syncguard/internal/domains/settings/mocks"
	settingsSvcMocks "syncguard/internal/domains/settings/service/mocks"
	cacheMocks "syncguard/shared/cache/mocks"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
)

type bookingServiceMocks struct {
	repo         *bookingMocks.MockBooking
	roomTypeRepo *rtMocks.MockRoomType
	settingsRepo *settingsRepoMocks.MockSettings
	guests       *guestSvcMocks.MockGuest
	notifier     *notifSvcMocks.MockNotification
	settings     *settingsSvcMocks.MockSettings
	publisher    *bookingMocks.MockPublisher
	pdf          *pdfMocks.MockGenerator
	storage      *s3Mocks.MockS3
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, *bookingServiceMocks) {
	m := &bookingServiceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomTypeRepo: rtMocks.NewMockRoomType(ctrl),
		settingsRepo: settingsRepoMocks.NewMockSettings(ctrl),
		guests:       guestSvcMocks.NewMockGuest(ctrl),
		notifier:     notifSvcMocks.NewMockNotification(ctrl),
		settings:     settingsSvcMocks.NewMockSettings(ctrl),
		publisher:    bookingMocks.NewMockPublisher(ctrl),
		pdf:          pdfMocks.NewMockGenerator(ctrl),
		storage:      s3Mocks.NewMockS3(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Kafka events and cache invalidation run on detached goroutines.
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		m.repo,
		m.roomTypeRepo,
		m.settingsRepo,
		m.guests,
		m.notifier,
		m.settings,
		m.publisher,
		m.pdf,
		m.storage,
		cfg,
		m.cache,
		mocks.NewOtel(),
	)

	return svc, m
}

func actorContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateBookingRequest{
				RoomTypeID: "rt-1",
				RoomNumber: "101",
				GuestName:  "Asha Rao",
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-12",
				Amount:     5000,
			},
			setupMock: func() {
				m.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.notifier.EXPECT().
					Emit(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "guest details resolve to a profile",
			req: dto.CreateBookingRequest{
				RoomTypeID:   "rt-1",
				RoomNumber:   "102",
				GuestName:    "Asha Rao",
				CheckIn:      "2025-03-10",
				CheckOut:     "2025-03-12",
				GuestDetails: &model.GuestDetails{Name: "Asha Rao", PhoneNumber: "9876543210"},
			},
			setupMock: func() {
				m.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.guests.EXPECT().
					Sync(gomock.Any(), gomock.Any(), "2025-03-10").
					Return("profile-1", nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "profile-1", booking.GuestProfileID)

						return nil
					})

				m.notifier.EXPECT().
					Emit(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "profile sync failure does not block",
			req: dto.CreateBookingRequest{
				RoomTypeID:   "rt-1",
				RoomNumber:   "102",
				GuestName:    "Asha Rao",
				CheckIn:      "2025-03-10",
				CheckOut:     "2025-03-12",
				GuestDetails: &model.GuestDetails{PhoneNumber: "9876543210"},
			},
			setupMock: func() {
				m.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.guests.EXPECT().
					Sync(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("registry down"))

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Empty(t, booking.GuestProfileID)

						return nil
					})

				m.notifier.EXPECT().
					Emit(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "unknown room type",
			req: dto.CreateBookingRequest{
				RoomTypeID: "missing",
				GuestName:  "Asha Rao",
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-12",
			},
			setupMock: func() {
				m.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "inverted dates",
			req: dto.CreateBookingRequest{
				RoomTypeID: "rt-1",
				GuestName:  "Asha Rao",
				CheckIn:    "2025-03-12",
				CheckOut:   "2025-03-10",
			},
			setupMock: func() {
				m.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				RoomTypeID: "rt-1",
				GuestName:  "Asha Rao",
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-12",
			},
			setupMock: func() {
				m.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(actorContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.req.GuestName, res.GuestName)
		})
	}
}

func TestBookingService_CreateBulk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	item := func(room string) dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			RoomTypeID: "rt-1",
			RoomNumber: room,
			GuestName:  "Asha Rao",
			CheckIn:    "2025-03-10",
			CheckOut:   "2025-03-12",
			Amount:     5000,
		}
	}

	t.Run("atomic insert of two rooms", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		m.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil).
			Times(2)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(2)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.repo.EXPECT().
			InsertBulkTx(gomock.Any(), tx, gomock.Len(2)).
			Return(nil)

		// Per-room notifications plus the group summary.
		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any()).
			Times(3)

		res, err := svc.CreateBulk(actorContext(), dto.BulkCreateRequest{
			Bookings: []dto.CreateBookingRequest{item("101"), item("102")},
		})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("conflict with existing stay rejects the batch", func(t *testing.T) {
		m.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), "101").
			Return([]model.Booking{{
				ID:       "existing",
				CheckIn:  "2025-03-11",
				CheckOut: "2025-03-14",
			}}, nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		_, err := svc.CreateBulk(actorContext(), dto.BulkCreateRequest{
			Bookings: []dto.CreateBookingRequest{item("101")},
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("intra batch overlap rejects the batch", func(t *testing.T) {
		m.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil).
			Times(2)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), "101").
			Return(nil, nil).
			Times(2)

		_, err := svc.CreateBulk(actorContext(), dto.BulkCreateRequest{
			Bookings: []dto.CreateBookingRequest{item("101"), item("101")},
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unassigned rooms are never conflict checked", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		m.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil).
			Times(2)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.repo.EXPECT().
			InsertBulkTx(gomock.Any(), tx, gomock.Len(2)).
			Return(nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any()).
			Times(3)

		res, err := svc.CreateBulk(actorContext(), dto.BulkCreateRequest{
			Bookings: []dto.CreateBookingRequest{item(constant.RoomUnassigned), item(constant.RoomUnassigned)},
		})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name          string
		roomNumber    string
		checkIn       string
		checkOut      string
		excludeID     string
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name:       "free room",
			roomNumber: "101",
			checkIn:    "2025-03-10",
			checkOut:   "2025-03-12",
			setupMock: func() {
				m.repo.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return(nil, nil)
			},
			wantAvailable: true,
		},
		{
			name:       "occupied room",
			roomNumber: "101",
			checkIn:    "2025-03-10",
			checkOut:   "2025-03-12",
			setupMock: func() {
				m.repo.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]model.Booking{{
						ID:       "other",
						CheckIn:  "2025-03-11",
						CheckOut: "2025-03-13",
					}}, nil)
			},
			wantAvailable: false,
		},
		{
			name:       "own booking is excluded",
			roomNumber: "101",
			checkIn:    "2025-03-10",
			checkOut:   "2025-03-12",
			excludeID:  "mine",
			setupMock: func() {
				m.repo.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]model.Booking{{
						ID:       "mine",
						CheckIn:  "2025-03-10",
						CheckOut: "2025-03-12",
					}}, nil)
			},
			wantAvailable: true,
		},
		{
			name:          "unassigned is always available",
			roomNumber:    constant.RoomUnassigned,
			checkIn:       "2025-03-10",
			checkOut:      "2025-03-12",
			setupMock:     func() {},
			wantAvailable: true,
		},
		{
			name:       "malformed dates",
			roomNumber: "101",
			checkIn:    "10-03-2025",
			checkOut:   "2025-03-12",
			setupMock:  func() {},
			wantErr:    true,
		},
		{
			name:       "inverted dates",
			roomNumber: "101",
			checkIn:    "2025-03-12",
			checkOut:   "2025-03-10",
			setupMock:  func() {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckAvailability(context.Background(), tt.roomNumber, tt.checkIn, tt.checkOut, tt.excludeID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	existing := model.Booking{
		ID:         "bk-1",
		RoomTypeID: "rt-1",
		RoomNumber: "101",
		GuestName:  "Asha Rao",
		Status:     constant.BookingStatusConfirmed,
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-12",
		Amount:     5000,
	}

	req := dto.UpdateBookingRequest{
		RoomTypeID: "rt-1",
		RoomNumber: "101",
		GuestName:  "Asha Rao",
		Status:     constant.BookingStatusCheckedIn,
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-12",
		Amount:     5000,
		Folio: []dto.FolioItemPayload{{
			Description: "Dinner",
			Amount:      650,
			Category:    constant.FolioCategoryFnB,
		}},
	}

	t.Run("status change and folio growth notify", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.BookingStatusCheckedIn, fields[model.FieldStatus])

				return nil
			})

		// One for the folio charge, one for the status change.
		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any()).
			Times(2)

		err := svc.Update(actorContext(), req, "bk-1")

		assert.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.Update(actorContext(), req, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("clearing guest details unlinks the profile", func(t *testing.T) {
		linked := existing
		linked.GuestProfileID = "profile-1"

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(linked, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.Empty, fields[model.FieldProfileID])

				return nil
			})

		cleared := req
		cleared.Status = existing.Status
		cleared.Folio = nil
		cleared.GuestDetails = nil

		err := svc.Update(actorContext(), cleared, "bk-1")

		assert.NoError(t, err)
	})
}
