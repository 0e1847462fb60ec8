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
	model "syncguard/internal/domains/raterules/model"
	dto "syncguard/shared/dto"

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

// Exist mocks base method.
func (m *MockRateRules) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exist", ctx, filter)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exist indicates an expected call of Exist.
func (mr *MockRateRulesMockRecorder) Exist(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exist", reflect.TypeOf((*MockRateRules)(nil).Exist), ctx, filter)
}

// Get mocks base method.
func (m *MockRateRules) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (model.RateRules, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, filter}
	for _, a := range columns {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Get", varargs...)
	ret0, _ := ret[0].(model.RateRules)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRateRulesMockRecorder) Get(ctx, filter any, columns ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, filter}, columns...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRateRules)(nil).Get), varargs...)
}

// Insert mocks base method.
func (m *MockRateRules) Insert(ctx context.Context, arg1 model.RateRules) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockRateRulesMockRecorder) Insert(ctx, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockRateRules)(nil).Insert), ctx, arg1)
}

// Update mocks base method.
func (m *MockRateRules) Update(ctx context.Context, req map[string]any, filter dto.FilterGroup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, filter)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRateRulesMockRecorder) Update(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRateRules)(nil).Update), ctx, req, filter)
}
