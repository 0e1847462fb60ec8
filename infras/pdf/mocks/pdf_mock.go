// Code generated by MockGen. DO NOT EDIT.
// Source: ./pdf.go
//
// Generated by this command:
//
//	mockgen -source=./pdf.go -destination=./mocks/pdf_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	pdf "syncguard/infras/pdf"

	gomock "go.uber.org/mock/gomock"
)

// MockGenerator is a mock of Generator interface.
type MockGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockGeneratorMockRecorder
	isgomock struct{}
}

// MockGeneratorMockRecorder is the mock recorder for MockGenerator.
type MockGeneratorMockRecorder struct {
	mock *MockGenerator
}

// NewMockGenerator creates a new mock instance.
func NewMockGenerator(ctrl *gomock.Controller) *MockGenerator {
	mock := &MockGenerator{ctrl: ctrl}
	mock.recorder = &MockGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenerator) EXPECT() *MockGeneratorMockRecorder {
	return m.recorder
}

// Invoice mocks base method.
func (m *MockGenerator) Invoice(ctx context.Context, data pdf.InvoiceData) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Invoice", ctx, data)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Invoice indicates an expected call of Invoice.
func (mr *MockGeneratorMockRecorder) Invoice(ctx, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invoice", reflect.TypeOf((*MockGenerator)(nil).Invoice), ctx, data)
}

// Receipt mocks base method.
func (m *MockGenerator) Receipt(ctx context.Context, data pdf.ReceiptData) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Receipt", ctx, data)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Receipt indicates an expected call of Receipt.
func (mr *MockGeneratorMockRecorder) Receipt(ctx, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Receipt", reflect.TypeOf((*MockGenerator)(nil).Receipt), ctx, data)
}
