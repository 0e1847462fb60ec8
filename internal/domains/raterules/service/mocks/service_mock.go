// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	dto "syncguard/internal/domains/raterules/model/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockRateRules is a mock of RateRules interface.
type MockRateRules struct {
	ctrl     *gomock.Controller
	recorder *MockRateRulesMockRecorder
	isgomock struct{}
}

// MockRateRulesMockRecorder is the mock recorder for MockRateRules.
type MockRateRulesMockRecorder struct {
	mock *MockRateRules
}

// NewMockRateRules creates a new mock instance.
func NewMockRateRules(ctrl *gomock.Controller) *MockRateRules {
	mock := &MockRateRules{ctrl: ctrl}
	mock.recorder = &MockRateRulesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRateRules) EXPECT() *MockRateRulesMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockRateRules) Get(ctx context.Context) (dto.RateRulesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx)
	ret0, _ := ret[0].(dto.RateRulesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRateRulesMockRecorder) Get(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRateRules)(nil).Get), ctx)
}

// Quote mocks base method.
func (m *MockRateRules) Quote(ctx context.Context, roomTypeID, date string) (dto.QuoteResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Quote", ctx, roomTypeID, date)
	ret0, _ := ret[0].(dto.QuoteResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Quote indicates an expected call of Quote.
func (mr *MockRateRulesMockRecorder) Quote(ctx, roomTypeID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Quote", reflect.TypeOf((*MockRateRules)(nil).Quote), ctx, roomTypeID, date)
}

// Update mocks base method.
func (m *MockRateRules) Update(ctx context.Context, req dto.UpdateRateRulesRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRateRulesMockRecorder) Update(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRateRules)(nil).Update), ctx, req)
}
