// Code generated by MockGen. DO NOT EDIT.
// Source: ./repository.go
//
// Generated by this command:
//
//	mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "syncguard/internal/domains/guest/model"
	dto "syncguard/shared/dto"

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
func (m *MockGuest) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, filter)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockGuestMockRecorder) Count(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockGuest)(nil).Count), ctx, filter)
}

// Delete mocks base method.
func (m *MockGuest) Delete(ctx context.Context, filter dto.FilterGroup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, filter)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGuestMockRecorder) Delete(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGuest)(nil).Delete), ctx, filter)
}

// Exist mocks base method.
func (m *MockGuest) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exist", ctx, filter)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exist indicates an expected call of Exist.
func (mr *MockGuestMockRecorder) Exist(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exist", reflect.TypeOf((*MockGuest)(nil).Exist), ctx, filter)
}

// Get mocks base method.
func (m *MockGuest) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (model.GuestProfile, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, filter}
	for _, a := range columns {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Get", varargs...)
	ret0, _ := ret[0].(model.GuestProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockGuestMockRecorder) Get(ctx, filter any, columns ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, filter}, columns...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockGuest)(nil).Get), varargs...)
}

// GetAll mocks base method.
func (m *MockGuest) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]model.GuestProfile, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, params, filter}
	for _, a := range columns {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "GetAll", varargs...)
	ret0, _ := ret[0].([]model.GuestProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockGuestMockRecorder) GetAll(ctx, params, filter any, columns ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, params, filter}, columns...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockGuest)(nil).GetAll), varargs...)
}

// GetByNameAndPhone mocks base method.
func (m *MockGuest) GetByNameAndPhone(ctx context.Context, name, phone string) (model.GuestProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByNameAndPhone", ctx, name, phone)
	ret0, _ := ret[0].(model.GuestProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByNameAndPhone indicates an expected call of GetByNameAndPhone.
func (mr *MockGuestMockRecorder) GetByNameAndPhone(ctx, name, phone any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByNameAndPhone", reflect.TypeOf((*MockGuest)(nil).GetByNameAndPhone), ctx, name, phone)
}

// GetLatestByPhone mocks base method.
func (m *MockGuest) GetLatestByPhone(ctx context.Context, phone string) (model.GuestProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLatestByPhone", ctx, phone)
	ret0, _ := ret[0].(model.GuestProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLatestByPhone indicates an expected call of GetLatestByPhone.
func (mr *MockGuestMockRecorder) GetLatestByPhone(ctx, phone any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLatestByPhone", reflect.TypeOf((*MockGuest)(nil).GetLatestByPhone), ctx, phone)
}

// Insert mocks base method.
func (m *MockGuest) Insert(ctx context.Context, arg1 model.GuestProfile) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockGuestMockRecorder) Insert(ctx, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockGuest)(nil).Insert), ctx, arg1)
}

// Update mocks base method.
func (m *MockGuest) Update(ctx context.Context, req map[string]any, filter dto.FilterGroup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, filter)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockGuestMockRecorder) Update(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockGuest)(nil).Update), ctx, req, filter)
}
