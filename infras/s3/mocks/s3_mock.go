// Code generated by MockGen. DO NOT EDIT.
// Source: ./s3.go
//
// Generated by this command:
//
//	mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	multipart "mime/multipart"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockS3 is a mock of S3 interface.
type MockS3 struct {
	ctrl     *gomock.Controller
	recorder *MockS3MockRecorder
	isgomock struct{}
}

// MockS3MockRecorder is the mock recorder for MockS3.
type MockS3MockRecorder struct {
	mock *MockS3
}

// NewMockS3 creates a new mock instance.
func NewMockS3(ctrl *gomock.Controller) *MockS3 {
	mock := &MockS3{ctrl: ctrl}
	mock.recorder = &MockS3MockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockS3) EXPECT() *MockS3MockRecorder {
	return m.recorder
}

// DeleteFile mocks base method.
func (m *MockS3) DeleteFile(ctx context.Context, bucketName, directory, objectName string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteFile", ctx, bucketName, directory, objectName)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteFile indicates an expected call of DeleteFile.
func (mr *MockS3MockRecorder) DeleteFile(ctx, bucketName, directory, objectName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteFile", reflect.TypeOf((*MockS3)(nil).DeleteFile), ctx, bucketName, directory, objectName)
}

// GetObjectNameFromURL mocks base method.
func (m *MockS3) GetObjectNameFromURL(bucketName, url string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetObjectNameFromURL", bucketName, url)
	ret0, _ := ret[0].(string)
	return ret0
}

// GetObjectNameFromURL indicates an expected call of GetObjectNameFromURL.
func (mr *MockS3MockRecorder) GetObjectNameFromURL(bucketName, url any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetObjectNameFromURL", reflect.TypeOf((*MockS3)(nil).GetObjectNameFromURL), bucketName, url)
}

// UploadFile mocks base method.
func (m *MockS3) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadFile", ctx, bucketName, directory, file, fileHeader, fileName)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadFile indicates an expected call of UploadFile.
func (mr *MockS3MockRecorder) UploadFile(ctx, bucketName, directory, file, fileHeader, fileName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadFile", reflect.TypeOf((*MockS3)(nil).UploadFile), ctx, bucketName, directory, file, fileHeader, fileName)
}

// UploadFileBytes mocks base method.
func (m *MockS3) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadFileBytes", ctx, bucketName, directory, fileName, contentType, fileData)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadFileBytes indicates an expected call of UploadFileBytes.
func (mr *MockS3MockRecorder) UploadFileBytes(ctx, bucketName, directory, fileName, contentType, fileData any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadFileBytes", reflect.TypeOf((*MockS3)(nil).UploadFileBytes), ctx, bucketName, directory, fileName, contentType, fileData)
}
