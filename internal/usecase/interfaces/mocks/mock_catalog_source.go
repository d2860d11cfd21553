// GoMock mocks for catalog_source_interface.go, kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate when the
// interface changes:
//
//	mockgen -source=catalog_source_interface.go -destination=mocks/mock_catalog_source.go -package=mock_interfaces

// Package mock_interfaces holds GoMock mocks used by the unit tests.
package mock_interfaces

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	entities "ucraft_estimates/internal/domain/entities"
)

// MockICatalogSource is a mock of ICatalogSource interface.
type MockICatalogSource struct {
	ctrl     *gomock.Controller
	recorder *MockICatalogSourceMockRecorder
	isgomock struct{}
}

// MockICatalogSourceMockRecorder is the mock recorder for MockICatalogSource.
type MockICatalogSourceMockRecorder struct {
	mock *MockICatalogSource
}

// NewMockICatalogSource creates a new mock instance.
func NewMockICatalogSource(ctrl *gomock.Controller) *MockICatalogSource {
	mock := &MockICatalogSource{ctrl: ctrl}
	mock.recorder = &MockICatalogSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockICatalogSource) EXPECT() *MockICatalogSourceMockRecorder {
	return m.recorder
}

// Load mocks base method.
func (m *MockICatalogSource) Load(ctx context.Context) (entities.ReferenceData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Load", ctx)
	ret0, _ := ret[0].(entities.ReferenceData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Load indicates an expected call of Load.
func (mr *MockICatalogSourceMockRecorder) Load(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Load", reflect.TypeOf((*MockICatalogSource)(nil).Load), ctx)
}
