package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/infras/gateway"
	gatewayMocks "syncguard/infras/gateway/mocks"
	"syncguard/infras/otel/mocks"
	bookingMocks "syncguard/internal/domains/booking/mocks"
	bookingModel "syncguard/internal/domains/booking/model"
	notifSvcMocks "syncguard/internal/domains/notification/service/mocks"
	"syncguard/internal/domains/payment/model/dto"
	"syncguard/internal/domains/payment/service"
	cacheMocks "syncguard/shared/cache/mocks"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
)

type paymentServiceMocks struct {
	gateway  *gatewayMocks.MockGateway
	bookings *bookingMocks.MockBooking
	notifier *notifSvcMocks.MockNotification
	cache    *cacheMocks.MockRedisCache
}

func newPaymentService(ctrl *gomock.Controller) (service.Payment, *paymentServiceMocks) {
	m := &paymentServiceMocks{
		gateway:  gatewayMocks.NewMockGateway(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		notifier: notifSvcMocks.NewMockNotification(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.gateway, m.bookings, m.notifier, m.cache, mocks.NewOtel())

	return svc, m
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPaymentService(ctrl)

	booking := bookingModel.Booking{ID: "bk-1", GuestName: "Asha Rao", RoomNumber: "101"}

	tests := []struct {
		name      string
		req       dto.CreateOrderRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful order",
			req:  dto.CreateOrderRequest{BookingID: "bk-1", Amount: 1500},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.gateway.EXPECT().
					CreateOrder(gomock.Any(), float64(1500), "bk-1").
					Return(gateway.Order{ID: "order_abc", Amount: 150000, Currency: "INR"}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown booking",
			req:  dto.CreateOrderRequest{BookingID: "missing", Amount: 1500},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "gateway failure",
			req:  dto.CreateOrderRequest{BookingID: "bk-1", Amount: 1500},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.gateway.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gateway.Order{}, errors.New("gateway unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CreateOrder(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "order_abc", res.Order.ID)
		})
	}
}

func TestPaymentService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPaymentService(ctrl)

	booking := bookingModel.Booking{
		ID:         "bk-1",
		GuestName:  "Asha Rao",
		RoomNumber: "101",
		Folio: bookingModel.FolioItems{
			{ID: "f-1", Description: "Dinner", Amount: 650, Category: constant.FolioCategoryFnB},
			{ID: "f-2", Description: "Laundry", Amount: 200, Category: constant.FolioCategoryLaundry, IsPaid: true, PaymentMethod: constant.PaymentMethodCash},
		},
	}

	req := dto.VerifyRequest{
		BookingID:    "bk-1",
		OrderID:      "order_abc",
		PaymentID:    "pay_xyz",
		Signature:    "sig",
		Amount:       650,
		FolioItemIDs: []string{"f-1", "f-2"},
	}

	t.Run("bad signature changes nothing", func(t *testing.T) {
		m.gateway.EXPECT().
			VerifySignature("order_abc", "pay_xyz", "sig").
			Return(false)

		_, err := svc.Verify(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("verified payment settles the listed lines", func(t *testing.T) {
		m.gateway.EXPECT().
			VerifySignature("order_abc", "pay_xyz", "sig").
			Return(true)

		m.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		m.bookings.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				payments, ok := fields[bookingModel.FieldPayments].(bookingModel.Payments)
				assert.True(t, ok)
				assert.Len(t, payments, 1)
				assert.Equal(t, constant.PaymentStatusCompleted, payments[0].Status)
				assert.Equal(t, "pay_xyz", payments[0].GatewayRef)

				folio, ok := fields[bookingModel.FieldFolio].(bookingModel.FolioItems)
				assert.True(t, ok)
				assert.True(t, folio[0].IsPaid)
				// The already-paid line keeps its original method.
				assert.Equal(t, constant.PaymentMethodCash, folio[1].PaymentMethod)

				return nil
			})

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Verify(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "bk-1", res.BookingID)
		assert.NotEmpty(t, res.PaymentID)
		// f-2 was already paid, only f-1 settles now.
		assert.Equal(t, 1, res.ItemsSettled)
	})

	t.Run("unknown booking after a valid signature", func(t *testing.T) {
		m.gateway.EXPECT().
			VerifySignature(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true)

		m.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.Verify(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
