// GoMock mocks for installment_payment_repository_interface.go, kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate when the
// interface changes:
//
//	mockgen -source=installment_payment_repository_interface.go -destination=mocks/mock_installment_payment_repository.go -package=mock_interfaces

// Package mock_interfaces holds GoMock mocks used by the unit tests.
package mock_interfaces

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	entities "ucraft_estimates/internal/domain/entities"
)

// MockIInstallmentPaymentRepository is a mock of IInstallmentPaymentRepository interface.
type MockIInstallmentPaymentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIInstallmentPaymentRepositoryMockRecorder
	isgomock struct{}
}

// MockIInstallmentPaymentRepositoryMockRecorder is the mock recorder for MockIInstallmentPaymentRepository.
type MockIInstallmentPaymentRepositoryMockRecorder struct {
	mock *MockIInstallmentPaymentRepository
}

// NewMockIInstallmentPaymentRepository creates a new mock instance.
func NewMockIInstallmentPaymentRepository(ctrl *gomock.Controller) *MockIInstallmentPaymentRepository {
	mock := &MockIInstallmentPaymentRepository{ctrl: ctrl}
	mock.recorder = &MockIInstallmentPaymentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIInstallmentPaymentRepository) EXPECT() *MockIInstallmentPaymentRepositoryMockRecorder {
	return m.recorder
}

// LoadPayments mocks base method.
func (m *MockIInstallmentPaymentRepository) LoadPayments(ctx context.Context, estimateID string) ([]entities.InstallmentPayment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadPayments", ctx, estimateID)
	ret0, _ := ret[0].([]entities.InstallmentPayment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadPayments indicates an expected call of LoadPayments.
func (mr *MockIInstallmentPaymentRepositoryMockRecorder) LoadPayments(ctx any, estimateID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadPayments", reflect.TypeOf((*MockIInstallmentPaymentRepository)(nil).LoadPayments), ctx, estimateID)
}

// SavePayments mocks base method.
func (m *MockIInstallmentPaymentRepository) SavePayments(ctx context.Context, estimateID string, payments []entities.InstallmentPayment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SavePayments", ctx, estimateID, payments)
	ret0, _ := ret[0].(error)
	return ret0
}

// SavePayments indicates an expected call of SavePayments.
func (mr *MockIInstallmentPaymentRepositoryMockRecorder) SavePayments(ctx any, estimateID any, payments any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SavePayments", reflect.TypeOf((*MockIInstallmentPaymentRepository)(nil).SavePayments), ctx, estimateID, payments)
}
