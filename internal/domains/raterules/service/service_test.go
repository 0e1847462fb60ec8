package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/infras/otel/mocks"
	rulesMocks "syncguard/internal/domains/raterules/mocks"
	"syncguard/internal/domains/raterules/model"
	"syncguard/internal/domains/raterules/service"
	rtMocks "syncguard/internal/domains/roomtype/mocks"
	rtModel "syncguard/internal/domains/roomtype/model"
	"syncguard/shared/failure"
)

func TestRateRulesService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rulesMocks.NewMockRateRules(ctrl)
	mockRoomTypes := rtMocks.NewMockRoomType(ctrl)

	svc := service.New(mockRepo, mockRoomTypes, mocks.NewOtel())

	deluxe := rtModel.RoomType{
		ID:           "rt-1",
		Name:         "Deluxe",
		BasePrice:    2000,
		FloorPrice:   1500,
		CeilingPrice: 3000,
	}

	rules := model.RateRules{
		ID: "default",
		WeeklyRules: model.WeeklyRules{
			// 2025-06-14 is a Saturday.
			"Saturday": {Type: model.AdjustmentPercent, Value: 20},
			"Monday":   {Type: model.AdjustmentFlat, Value: -700},
		},
		SpecialEvents: model.SpecialEvents{{
			Name:       "Dussehra",
			StartDate:  "2025-10-01",
			EndDate:    "2025-10-05",
			Adjustment: model.Adjustment{Type: model.AdjustmentPercent, Value: 80},
		}},
	}

	tests := []struct {
		name        string
		roomTypeID  string
		date        string
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantPrice   float64
		wantRule    string
		wantClamped bool
	}{
		{
			name:       "weekday rule applies",
			roomTypeID: "rt-1",
			date:       "2025-06-14",
			setupMock: func() {
				mockRoomTypes.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rules, nil)
			},
			wantPrice: 2400,
			wantRule:  "Saturday",
		},
		{
			name:       "no covering rule passes the base price through",
			roomTypeID: "rt-1",
			date:       "2025-06-13",
			setupMock: func() {
				mockRoomTypes.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rules, nil)
			},
			wantPrice: 2000,
			wantRule:  "",
		},
		{
			name:       "special event wins over the weekday rule",
			roomTypeID: "rt-1",
			// A Saturday inside the Dussehra window.
			date: "2025-10-04",
			setupMock: func() {
				mockRoomTypes.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rules, nil)
			},
			// 2000 * 1.8 = 3600, clamped to the ceiling.
			wantPrice:   3000,
			wantRule:    "Dussehra",
			wantClamped: true,
		},
		{
			name:       "flat discount clamps to the floor",
			roomTypeID: "rt-1",
			// A Monday.
			date: "2025-06-16",
			setupMock: func() {
				mockRoomTypes.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rules, nil)
			},
			// 2000 - 700 = 1300, clamped to the floor.
			wantPrice:   1500,
			wantRule:    "Monday",
			wantClamped: true,
		},
		{
			name:       "unknown room type",
			roomTypeID: "missing",
			date:       "2025-06-14",
			setupMock: func() {
				mockRoomTypes.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rtModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:       "malformed date",
			roomTypeID: "rt-1",
			date:       "14-06-2025",
			setupMock:  func() {},
			wantErr:    true,
			wantCode:   400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Quote(context.Background(), tt.roomTypeID, tt.date)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.FinalPrice)
			assert.Equal(t, tt.wantRule, res.AppliedRule)
			assert.Equal(t, tt.wantClamped, res.Clamped)
			assert.Equal(t, float64(2000), res.BasePrice)
		})
	}
}

func TestRateRulesService_GetSeedsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rulesMocks.NewMockRateRules(ctrl)
	mockRoomTypes := rtMocks.NewMockRoomType(ctrl)

	svc := service.New(mockRepo, mockRoomTypes, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.RateRules{}, nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seeded model.RateRules) error {
			assert.Equal(t, "default", seeded.ID)
			assert.NotNil(t, seeded.WeeklyRules)
			assert.NotNil(t, seeded.SpecialEvents)

			return nil
		})

	res, err := svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, res.WeeklyRules)
	assert.Empty(t, res.SpecialEvents)
}
