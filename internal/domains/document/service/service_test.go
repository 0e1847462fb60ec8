package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/infras/otel/mocks"
	vlmMocks "syncguard/infras/vlm/mocks"
	"syncguard/internal/domains/document/model/dto"
	"syncguard/internal/domains/document/service"
	"syncguard/shared/constant"
)

func TestDocumentService_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVLM := vlmMocks.NewMockClient(ctrl)
	svc := service.New(mockVLM, mocks.NewOtel())

	t.Run("extracts guest details", func(t *testing.T) {
		mockVLM.EXPECT().
			Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(_ context.Context, _, _ string, images []string) (string, error) {
				// Bare base64 payloads become data URLs before the call.
				assert.Contains(t, images[0], "data:image/jpeg;base64,")

				return "Extracted:\n```json\n{\"name\":\"Asha Rao\",\"id_type\":\"Aadhaar\",\"id_number\":\"1234 5678 9012\"}\n```", nil
			})

		res, err := svc.Scan(context.Background(), dto.ScanRequest{Image: "aGVsbG8="})

		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", res.Guest.Name)
		assert.Equal(t, "Aadhaar", res.Guest.IDType)
	})

	t.Run("both sides of the card go to the model", func(t *testing.T) {
		mockVLM.EXPECT().
			Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Len(2)).
			Return(`{"name":"Asha Rao"}`, nil)

		_, err := svc.Scan(context.Background(), dto.ScanRequest{Image: "front", ImageBack: "back"})

		assert.NoError(t, err)
	})

	t.Run("reply without JSON", func(t *testing.T) {
		mockVLM.EXPECT().
			Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("I cannot read this document.", nil)

		_, err := svc.Scan(context.Background(), dto.ScanRequest{Image: "aGVsbG8="})

		assert.Error(t, err)
	})

	t.Run("model failure surfaces", func(t *testing.T) {
		mockVLM.EXPECT().
			Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("model unavailable"))

		_, err := svc.Scan(context.Background(), dto.ScanRequest{Image: "aGVsbG8="})

		assert.Error(t, err)
	})
}

func TestDocumentService_ParseEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVLM := vlmMocks.NewMockClient(ctrl)
	svc := service.New(mockVLM, mocks.NewOtel())

	t.Run("builds a booking draft", func(t *testing.T) {
		mockVLM.EXPECT().
			Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _, prompt string, _ []string) (string, error) {
				assert.Contains(t, prompt, "Subject: New booking")

				return `{"guest_name":"Ravi Kumar","source":"MMT","check_in":"2025-07-01","check_out":"2025-07-03","amount":5400,"reservation_id":"MMT-991"}`, nil
			})

		res, err := svc.ParseEmail(context.Background(), dto.ParseEmailRequest{
			Subject: "New booking",
			Body:    "Guest Ravi Kumar arrives July 1st...",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", res.Draft.GuestName)
		assert.Equal(t, constant.SourceMMT, res.Draft.Source)
		assert.Equal(t, "MMT-991", res.Draft.ReservationID)
	})

	t.Run("missing source defaults to direct", func(t *testing.T) {
		mockVLM.EXPECT().
			Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(`{"guest_name":"Ravi Kumar"}`, nil)

		res, err := svc.ParseEmail(context.Background(), dto.ParseEmailRequest{Body: "walk-in inquiry"})

		assert.NoError(t, err)
		assert.Equal(t, constant.SourceDirect, res.Draft.Source)
	})
}
