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
	dto "syncguard/internal/domains/roomtype/model/dto"
	dto0 "syncguard/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockRoomType is a mock of RoomType interface.
type MockRoomType struct {
	ctrl     *gomock.Controller
	recorder *MockRoomTypeMockRecorder
	isgomock struct{}
}

// MockRoomTypeMockRecorder is the mock recorder for MockRoomType.
type MockRoomTypeMockRecorder struct {
	mock *MockRoomType
}

// NewMockRoomType creates a new mock instance.
func NewMockRoomType(ctrl *gomock.Controller) *MockRoomType {
	mock := &MockRoomType{ctrl: ctrl}
	mock.recorder = &MockRoomTypeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoomType) EXPECT() *MockRoomTypeMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockRoomType) Count(ctx context.Context, req dto0.QueryParams, filter dto0.FilterGroup) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, req, filter)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockRoomTypeMockRecorder) Count(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockRoomType)(nil).Count), ctx, req, filter)
}

// Create mocks base method.
func (m *MockRoomType) Create(ctx context.Context, req dto.CreateRoomTypeRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRoomTypeMockRecorder) Create(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRoomType)(nil).Create), ctx, req)
}

// Delete mocks base method.
func (m *MockRoomType) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRoomTypeMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRoomType)(nil).Delete), ctx, id)
}

// Get mocks base method.
func (m *MockRoomType) Get(ctx context.Context, id string) (dto.RoomTypeResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(dto.RoomTypeResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRoomTypeMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRoomType)(nil).Get), ctx, id)
}

// GetAll mocks base method.
func (m *MockRoomType) GetAll(ctx context.Context, req dto0.QueryParams, filter dto0.FilterGroup) (dto.GetRoomTypesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, req, filter)
	ret0, _ := ret[0].(dto.GetRoomTypesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockRoomTypeMockRecorder) GetAll(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockRoomType)(nil).GetAll), ctx, req, filter)
}

// Update mocks base method.
func (m *MockRoomType) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRoomTypeMockRecorder) Update(ctx, req, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRoomType)(nil).Update), ctx, req, id)
}
