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
	dto "syncguard/internal/domains/document/model/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockDocument is a mock of Document interface.
type MockDocument struct {
	ctrl     *gomock.Controller
	recorder *MockDocumentMockRecorder
	isgomock struct{}
}

// MockDocumentMockRecorder is the mock recorder for MockDocument.
type MockDocumentMockRecorder struct {
	mock *MockDocument
}

// NewMockDocument creates a new mock instance.
func NewMockDocument(ctrl *gomock.Controller) *MockDocument {
	mock := &MockDocument{ctrl: ctrl}
	mock.recorder = &MockDocumentMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDocument) EXPECT() *MockDocumentMockRecorder {
	return m.recorder
}

// ParseEmail mocks base method.
func (m *MockDocument) ParseEmail(ctx context.Context, req dto.ParseEmailRequest) (dto.ParseEmailResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ParseEmail", ctx, req)
	ret0, _ := ret[0].(dto.ParseEmailResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ParseEmail indicates an expected call of ParseEmail.
func (mr *MockDocumentMockRecorder) ParseEmail(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ParseEmail", reflect.TypeOf((*MockDocument)(nil).ParseEmail), ctx, req)
}

// Scan mocks base method.
func (m *MockDocument) Scan(ctx context.Context, req dto.ScanRequest) (dto.ScanResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Scan", ctx, req)
	ret0, _ := ret[0].(dto.ScanResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Scan indicates an expected call of Scan.
func (mr *MockDocumentMockRecorder) Scan(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Scan", reflect.TypeOf((*MockDocument)(nil).Scan), ctx, req)
}
