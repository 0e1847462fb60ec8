package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
	"go.uber.org/mock/gomock"

	settingsModel "syncguard/internal/domains/settings/model"

	"syncguard/infras/pdf"
	"syncguard/internal/domains/booking/model"
	"syncguard/internal/domains/booking/model/dto"
	rtModel "syncguard/internal/domains/roomtype/model"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
	"syncguard/shared/timezone"
)

func stayDate(offsetDays int) string {
	return timezone.Now().AddDate(0, 0, offsetDays).Format(constant.StayDateFormat)
}

// lateCutoff keeps the effective checkout date on today regardless of when
// the tests run.
var lateCutoff = "23:59"

func propertySettings() settingsModel.PropertySettings {
	return settingsModel.PropertySettings{
		ID:             constant.SettingsDefaultID,
		HotelName:      "Hotel Kaveri",
		GSTRatePercent: 12,
		CheckoutCutoff: lateCutoff,
	}
}

func TestBookingService_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	base := model.Booking{
		ID:         "bk-1",
		RoomTypeID: "rt-1",
		RoomNumber: "101",
		GuestName:  "Asha Rao",
		Status:     constant.BookingStatusCheckedIn,
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-13",
		Amount:     3000,
		Folio: model.FolioItems{{
			ID:          "f-1",
			Description: "Dinner",
			Amount:      650,
			Category:    constant.FolioCategoryFnB,
		}},
	}

	deluxe := rtModel.RoomType{ID: "rt-2", Name: "Deluxe", BasePrice: 2000}

	t.Run("settled bookings cannot move", func(t *testing.T) {
		settled := base
		settled.Status = constant.BookingStatusCheckedOut

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(settled, nil)

		_, err := svc.Transfer(actorContext(), "bk-1", dto.TransferRequest{
			NewRoomTypeID: "rt-2",
			NewRoomNumber: "201",
			EffectiveDate: "2025-03-11",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("effective date outside the stay", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(base, nil)

		_, err := svc.Transfer(actorContext(), "bk-1", dto.TransferRequest{
			NewRoomTypeID: "rt-2",
			NewRoomNumber: "201",
			EffectiveDate: "2025-03-13",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("occupied target room", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(base, nil)

		m.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), "201").
			Return([]model.Booking{{
				ID:       "other",
				CheckIn:  "2025-03-11",
				CheckOut: "2025-03-15",
			}}, nil)

		_, err := svc.Transfer(actorContext(), "bk-1", dto.TransferRequest{
			NewRoomTypeID: "rt-2",
			NewRoomNumber: "201",
			EffectiveDate: "2025-03-11",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("transfer on check-in date swaps in place", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(base, nil)

		m.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), "201").
			Return(nil, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "201", fields[model.FieldRoomNumber])
				// Three nights at the new base price.
				assert.Equal(t, float64(6000), fields[model.FieldAmount])

				return nil
			})

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Transfer(actorContext(), "bk-1", dto.TransferRequest{
			NewRoomTypeID: "rt-2",
			NewRoomNumber: "201",
			EffectiveDate: "2025-03-10",
		})

		assert.NoError(t, err)
		assert.Nil(t, res.NewSegment)
		assert.Equal(t, "201", res.Booking.RoomNumber)
		assert.Equal(t, float64(6000), res.Booking.Amount)
	})

	t.Run("mid-stay transfer splits the booking", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(base, nil)

		m.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), "201").
			Return(nil, nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, "2025-03-11", fields[model.FieldCheckOut])
				// One night at the original per-night rate.
				assert.Equal(t, float64(1000), fields[model.FieldAmount])
				assert.Empty(t, fields[model.FieldFolio])

				return nil
			})

		m.repo.EXPECT().
			InsertTx(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, segment model.Booking) error {
				assert.Equal(t, "201", segment.RoomNumber)
				assert.Equal(t, "2025-03-11", segment.CheckIn)
				assert.Equal(t, "2025-03-13", segment.CheckOut)
				// Two nights, rate carried over.
				assert.Equal(t, float64(2000), segment.Amount)
				assert.Len(t, segment.Folio, 1)
				assert.NotEmpty(t, segment.ReservationID)

				return nil
			})

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Transfer(actorContext(), "bk-1", dto.TransferRequest{
			NewRoomTypeID: "rt-2",
			NewRoomNumber: "201",
			EffectiveDate: "2025-03-11",
			KeepRate:      true,
			TransferFolio: true,
		})

		assert.NoError(t, err)
		assert.NotNil(t, res.NewSegment)
		assert.Equal(t, "2025-03-11", res.Booking.CheckOut)
		assert.Equal(t, float64(1000), res.Booking.Amount)
		assert.Empty(t, res.Booking.Folio)
		assert.Equal(t, res.Booking.ReservationID, res.NewSegment.ReservationID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestBookingService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	stay := func(inOffset, outOffset int) model.Booking {
		return model.Booking{
			ID:         "bk-1",
			RoomTypeID: "rt-1",
			RoomNumber: "101",
			GuestName:  "Asha Rao",
			Status:     constant.BookingStatusCheckedIn,
			CheckIn:    stayDate(inOffset),
			CheckOut:   stayDate(outOffset),
			Amount:     4000,
			Folio: model.FolioItems{{
				ID:          "f-1",
				Description: "Dinner",
				Amount:      650,
				Category:    constant.FolioCategoryFnB,
			}},
			Payments: model.Payments{{
				ID:        "p-1",
				Amount:    1000,
				Method:    constant.PaymentMethodUPI,
				Category:  "Partial",
				Status:    constant.PaymentStatusCompleted,
				Timestamp: stayDate(inOffset),
			}},
		}
	}

	t.Run("already settled", func(t *testing.T) {
		settled := stay(-2, 0)
		settled.IsSettled = true

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(settled, nil)

		_, err := svc.Checkout(actorContext(), "bk-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("on-time checkout settles the stay", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		wantInvoice := fmt.Sprintf("%s-%d-%0*d", constant.InvoicePrefix, timezone.Now().Year(), constant.InvoiceSequenceDigits, 42)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stay(-2, 0), nil)

		m.settings.EXPECT().
			GetModel(gomock.Any()).
			Return(propertySettings(), nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.settingsRepo.EXPECT().
			IncrementInvoiceCounterTx(gomock.Any(), tx).
			Return(42, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, constant.BookingStatusCheckedOut, fields[model.FieldStatus])
				assert.Equal(t, wantInvoice, fields[model.FieldInvoiceNumber])
				assert.Equal(t, true, fields[model.FieldIsSettled])

				folio, ok := fields[model.FieldFolio].(model.FolioItems)
				assert.True(t, ok)
				assert.True(t, folio[0].IsPaid)
				assert.Equal(t, constant.PaymentMethodSettled, folio[0].PaymentMethod)

				return nil
			})

		m.pdf.EXPECT().
			Invoice(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), wantInvoice+".pdf", constant.ContentTypePDF, gomock.Any()).
			Return("documents/"+wantInvoice+".pdf", nil)

		// A completed partial payment exists, so a receipt goes out too.
		m.pdf.EXPECT().
			Receipt(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), wantInvoice+"-R.pdf", constant.ContentTypePDF, gomock.Any()).
			Return("documents/"+wantInvoice+"-R.pdf", nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Checkout(actorContext(), "bk-1")

		assert.NoError(t, err)
		assert.Equal(t, wantInvoice, res.InvoiceNumber)
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, float64(4000), res.Amount)
		assert.Equal(t, stayDate(0), res.CheckOut)
		assert.NotEmpty(t, res.InvoicePath)
		assert.NotEmpty(t, res.ReceiptPath)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("cash-paid folio line earns a receipt", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		// No gateway payments at all, but the dinner was paid in cash
		// during the stay. The laundry line settles at checkout and must
		// not count as money received.
		paidAtDesk := stay(-2, 0)
		paidAtDesk.Payments = nil
		paidAtDesk.Folio = model.FolioItems{
			{
				ID:            "f-1",
				Description:   "Dinner",
				Amount:        650,
				Category:      constant.FolioCategoryFnB,
				IsPaid:        true,
				PaymentMethod: constant.PaymentMethodCash,
			},
			{
				ID:          "f-2",
				Description: "Laundry",
				Amount:      200,
				Category:    constant.FolioCategoryLaundry,
			},
		}

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(paidAtDesk, nil)

		m.settings.EXPECT().
			GetModel(gomock.Any()).
			Return(propertySettings(), nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.settingsRepo.EXPECT().
			IncrementInvoiceCounterTx(gomock.Any(), tx).
			Return(46, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			Return(nil)

		m.pdf.EXPECT().
			Invoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data pdf.InvoiceData) ([]byte, error) {
				// 4000 room + 650 + 200 folio, 12% GST, minus the cash 650.
				assert.InDelta(t, 4782, data.BalanceDue, 0.001)

				return []byte("%PDF"), nil
			})

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/invoice.pdf", nil)

		m.pdf.EXPECT().
			Receipt(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data pdf.ReceiptData) ([]byte, error) {
				assert.InDelta(t, 650, data.Amount, 0.001)

				return []byte("%PDF"), nil
			})

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/receipt.pdf", nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Checkout(actorContext(), "bk-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ReceiptPath)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("early departure rescales the room amount", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		// Four booked nights, leaving after one.
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stay(-1, 3), nil)

		m.settings.EXPECT().
			GetModel(gomock.Any()).
			Return(propertySettings(), nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.settingsRepo.EXPECT().
			IncrementInvoiceCounterTx(gomock.Any(), tx).
			Return(43, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			Return(nil)

		m.pdf.EXPECT().
			Invoice(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/invoice.pdf", nil)

		m.pdf.EXPECT().
			Receipt(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/receipt.pdf", nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Checkout(actorContext(), "bk-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Nights)
		assert.Equal(t, float64(1000), res.Amount)
	})

	t.Run("same-day checkout still bills one night", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stay(0, 2), nil)

		m.settings.EXPECT().
			GetModel(gomock.Any()).
			Return(propertySettings(), nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.settingsRepo.EXPECT().
			IncrementInvoiceCounterTx(gomock.Any(), tx).
			Return(44, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			Return(nil)

		m.pdf.EXPECT().
			Invoice(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/invoice.pdf", nil)

		m.pdf.EXPECT().
			Receipt(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/receipt.pdf", nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Checkout(actorContext(), "bk-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Nights)
		assert.Equal(t, float64(2000), res.Amount)
		assert.Equal(t, stayDate(1), res.CheckOut)
	})

	t.Run("checkout past the cutoff bills an extra night", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		// A midnight cutoff puts every departure past it, so the two
		// booked nights stretch to three and the amount rescales.
		midnightCutoff := propertySettings()
		midnightCutoff.CheckoutCutoff = "00:00"

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stay(-2, 0), nil)

		m.settings.EXPECT().
			GetModel(gomock.Any()).
			Return(midnightCutoff, nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.settingsRepo.EXPECT().
			IncrementInvoiceCounterTx(gomock.Any(), tx).
			Return(47, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, stayDate(1), fields[model.FieldCheckOut])
				assert.Equal(t, float64(6000), fields[model.FieldAmount])

				return nil
			})

		m.pdf.EXPECT().
			Invoice(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/invoice.pdf", nil)

		m.pdf.EXPECT().
			Receipt(gomock.Any(), gomock.Any()).
			Return([]byte("%PDF"), nil)

		m.storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("documents/receipt.pdf", nil)

		m.notifier.EXPECT().
			Emit(gomock.Any(), gomock.Any())

		res, err := svc.Checkout(actorContext(), "bk-1")

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, float64(6000), res.Amount)
		assert.Equal(t, stayDate(1), res.CheckOut)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("document failure rolls the settlement back", func(t *testing.T) {
		db, dbMock, err := sqlxmock.Newx()
		assert.NoError(t, err)

		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stay(-2, 0), nil)

		m.settings.EXPECT().
			GetModel(gomock.Any()).
			Return(propertySettings(), nil)

		m.repo.EXPECT().
			BeginTx(gomock.Any()).
			Return(tx, nil)

		m.settingsRepo.EXPECT().
			IncrementInvoiceCounterTx(gomock.Any(), tx).
			Return(45, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			Return(nil)

		m.pdf.EXPECT().
			Invoice(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("renderer crashed"))

		_, err = svc.Checkout(actorContext(), "bk-1")

		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
