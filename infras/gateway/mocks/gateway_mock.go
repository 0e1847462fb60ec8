// Code generated by MockGen. DO NOT EDIT.
// Source: ./gateway.go
//
// Generated by this command:
//
//	mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	gateway "syncguard/infras/gateway"

	gomock "go.uber.org/mock/gomock"
)

// MockGateway is a mock of Gateway interface.
type MockGateway struct {
	ctrl     *gomock.Controller
	recorder *MockGatewayMockRecorder
	isgomock struct{}
}

// MockGatewayMockRecorder is the mock recorder for MockGateway.
type MockGatewayMockRecorder struct {
	mock *MockGateway
}

// NewMockGateway creates a new mock instance.
func NewMockGateway(ctrl *gomock.Controller) *MockGateway {
	mock := &MockGateway{ctrl: ctrl}
	mock.recorder = &MockGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGateway) EXPECT() *MockGatewayMockRecorder {
	return m.recorder
}

// CreateOrder mocks base method.
func (m *MockGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (gateway.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrder", ctx, amount, receipt)
	ret0, _ := ret[0].(gateway.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrder indicates an expected call of CreateOrder.
func (mr *MockGatewayMockRecorder) CreateOrder(ctx, amount, receipt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrder", reflect.TypeOf((*MockGateway)(nil).CreateOrder), ctx, amount, receipt)
}

// Enabled mocks base method.
func (m *MockGateway) Enabled() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enabled")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Enabled indicates an expected call of Enabled.
func (mr *MockGatewayMockRecorder) Enabled() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enabled", reflect.TypeOf((*MockGateway)(nil).Enabled))
}

// VerifySignature mocks base method.
func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifySignature", orderID, paymentID, signature)
	ret0, _ := ret[0].(bool)
	return ret0
}

// VerifySignature indicates an expected call of VerifySignature.
func (mr *MockGatewayMockRecorder) VerifySignature(orderID, paymentID, signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifySignature", reflect.TypeOf((*MockGateway)(nil).VerifySignature), orderID, paymentID, signature)
}
