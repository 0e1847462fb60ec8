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
	model "syncguard/internal/domains/booking/model"
	dto "syncguard/internal/domains/guest/model/dto"
	dto0 "syncguard/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockGuest is a mock of Guest interface.
type MockGuest struct {
	ctrl     *gomock.Controller
	recorder *MockGuestMockRecorder
	isgomock struct{}
}

// MockGuestMockRecorder is the mock recorder for MockGuest.
type MockGuestMockRecorder struct {
	mock *MockGuest
}

// NewMockGuest creates a new mock instance.
func NewMockGuest(ctrl *gomock.Controller) *MockGuest {
	mock := &MockGuest{ctrl: ctrl}
	mock.recorder = &MockGuestMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGuest) EXPECT() *MockGuestMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockGuest) Count(ctx context.Context, req dto0.QueryParams, filter dto0.FilterGroup) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, req, filter)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockGuestMockRecorder) Count(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockGuest)(nil).Count), ctx, req, filter)
}

// Delete mocks base method.
func (m *MockGuest) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGuestMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGuest)(nil).Delete), ctx, id)
}

// Get mocks base method.
func (m *MockGuest) Get(ctx context.Context, id string) (dto.GuestProfileResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(dto.GuestProfileResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockGuestMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockGuest)(nil).Get), ctx, id)
}

// GetAll mocks base method.
func (m *MockGuest) GetAll(ctx context.Context, req dto0.QueryParams, filter dto0.FilterGroup) (dto.GetGuestsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, req, filter)
	ret0, _ := ret[0].(dto.GetGuestsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockGuestMockRecorder) GetAll(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockGuest)(nil).GetAll), ctx, req, filter)
}

// Sync mocks base method.
func (m *MockGuest) Sync(ctx context.Context, details *model.GuestDetails, checkInDate string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sync", ctx, details, checkInDate)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Sync indicates an expected call of Sync.
func (mr *MockGuestMockRecorder) Sync(ctx, details, checkInDate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sync", reflect.TypeOf((*MockGuest)(nil).Sync), ctx, details, checkInDate)
}

// Update mocks base method.
func (m *MockGuest) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockGuestMockRecorder) Update(ctx, req, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockGuest)(nil).Update), ctx, req, id)
}
