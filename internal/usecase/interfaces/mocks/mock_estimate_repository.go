// GoMock mocks for estimate_repository_interface.go, kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate when the
// interface changes:
//
//	mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository.go -package=mock_interfaces

// Package mock_interfaces holds GoMock mocks used by the unit tests.
package mock_interfaces

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	entities "ucraft_estimates/internal/domain/entities"
)

// MockIEstimateRepository is a mock of IEstimateRepository interface.
type MockIEstimateRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIEstimateRepositoryMockRecorder
	isgomock struct{}
}

// MockIEstimateRepositoryMockRecorder is the mock recorder for MockIEstimateRepository.
type MockIEstimateRepositoryMockRecorder struct {
	mock *MockIEstimateRepository
}

// NewMockIEstimateRepository creates a new mock instance.
func NewMockIEstimateRepository(ctrl *gomock.Controller) *MockIEstimateRepository {
	mock := &MockIEstimateRepository{ctrl: ctrl}
	mock.recorder = &MockIEstimateRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIEstimateRepository) EXPECT() *MockIEstimateRepositoryMockRecorder {
	return m.recorder
}

// LoadDefaultSupplier mocks base method.
func (m *MockIEstimateRepository) LoadDefaultSupplier(ctx context.Context) (entities.Supplier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadDefaultSupplier", ctx)
	ret0, _ := ret[0].(entities.Supplier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadDefaultSupplier indicates an expected call of LoadDefaultSupplier.
func (mr *MockIEstimateRepositoryMockRecorder) LoadDefaultSupplier(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadDefaultSupplier", reflect.TypeOf((*MockIEstimateRepository)(nil).LoadDefaultSupplier), ctx)
}

// LoadEstimates mocks base method.
func (m *MockIEstimateRepository) LoadEstimates(ctx context.Context) ([]entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadEstimates", ctx)
	ret0, _ := ret[0].([]entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadEstimates indicates an expected call of LoadEstimates.
func (mr *MockIEstimateRepositoryMockRecorder) LoadEstimates(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadEstimates", reflect.TypeOf((*MockIEstimateRepository)(nil).LoadEstimates), ctx)
}

// SaveDefaultSupplier mocks base method.
func (m *MockIEstimateRepository) SaveDefaultSupplier(ctx context.Context, profile entities.Supplier) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveDefaultSupplier", ctx, profile)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveDefaultSupplier indicates an expected call of SaveDefaultSupplier.
func (mr *MockIEstimateRepositoryMockRecorder) SaveDefaultSupplier(ctx any, profile any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveDefaultSupplier", reflect.TypeOf((*MockIEstimateRepository)(nil).SaveDefaultSupplier), ctx, profile)
}

// SaveEstimates mocks base method.
func (m *MockIEstimateRepository) SaveEstimates(ctx context.Context, estimates []entities.Estimate) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveEstimates", ctx, estimates)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveEstimates indicates an expected call of SaveEstimates.
func (mr *MockIEstimateRepositoryMockRecorder) SaveEstimates(ctx any, estimates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveEstimates", reflect.TypeOf((*MockIEstimateRepository)(nil).SaveEstimates), ctx, estimates)
}
