// GoMock mocks for blob_store_interface.go, kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate when the
// interface changes:
//
//	mockgen -source=blob_store_interface.go -destination=mocks/mock_blob_store.go -package=mock_interfaces

// Package mock_interfaces holds GoMock mocks used by the unit tests.
package mock_interfaces

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIBlobStore is a mock of IBlobStore interface.
type MockIBlobStore struct {
	ctrl     *gomock.Controller
	recorder *MockIBlobStoreMockRecorder
	isgomock struct{}
}

// MockIBlobStoreMockRecorder is the mock recorder for MockIBlobStore.
type MockIBlobStoreMockRecorder struct {
	mock *MockIBlobStore
}

// NewMockIBlobStore creates a new mock instance.
func NewMockIBlobStore(ctrl *gomock.Controller) *MockIBlobStore {
	mock := &MockIBlobStore{ctrl: ctrl}
	mock.recorder = &MockIBlobStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIBlobStore) EXPECT() *MockIBlobStoreMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockIBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIBlobStoreMockRecorder) Get(ctx any, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIBlobStore)(nil).Get), ctx, key)
}

// Put mocks base method.
func (m *MockIBlobStore) Put(ctx context.Context, key string, data []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", ctx, key, data)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockIBlobStoreMockRecorder) Put(ctx any, key any, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockIBlobStore)(nil).Put), ctx, key, data)
}
