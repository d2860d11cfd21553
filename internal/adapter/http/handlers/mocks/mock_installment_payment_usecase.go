// GoMock mocks for ucraft_estimates/internal/usecase (IInstallmentPaymentUseCase), kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate (directive in
// ../installment_payment_handler.go) when the interface changes:
//
//	mockgen -destination=mocks/mock_installment_payment_usecase.go -package=mocks ucraft_estimates/internal/usecase IInstallmentPaymentUseCase

// Package mocks holds GoMock mocks used by the unit tests.
package mocks

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	entities "ucraft_estimates/internal/domain/entities"
	gomock "go.uber.org/mock/gomock"
)

// MockIInstallmentPaymentUseCase is a mock of IInstallmentPaymentUseCase interface.
type MockIInstallmentPaymentUseCase struct {
	ctrl     *gomock.Controller
	recorder *MockIInstallmentPaymentUseCaseMockRecorder
	isgomock struct{}
}

// MockIInstallmentPaymentUseCaseMockRecorder is the mock recorder for MockIInstallmentPaymentUseCase.
type MockIInstallmentPaymentUseCaseMockRecorder struct {
	mock *MockIInstallmentPaymentUseCase
}

// NewMockIInstallmentPaymentUseCase creates a new mock instance.
func NewMockIInstallmentPaymentUseCase(ctrl *gomock.Controller) *MockIInstallmentPaymentUseCase {
	mock := &MockIInstallmentPaymentUseCase{ctrl: ctrl}
	mock.recorder = &MockIInstallmentPaymentUseCaseMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIInstallmentPaymentUseCase) EXPECT() *MockIInstallmentPaymentUseCaseMockRecorder {
	return m.recorder
}

// PayInstallment mocks base method.
func (m *MockIInstallmentPaymentUseCase) PayInstallment(ctx context.Context, estimateID string, kind entities.Installment, providerPayload json.RawMessage) (entities.InstallmentPayment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PayInstallment", ctx, estimateID, kind, providerPayload)
	ret0, _ := ret[0].(entities.InstallmentPayment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PayInstallment indicates an expected call of PayInstallment.
func (mr *MockIInstallmentPaymentUseCaseMockRecorder) PayInstallment(ctx any, estimateID any, kind any, providerPayload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PayInstallment", reflect.TypeOf((*MockIInstallmentPaymentUseCase)(nil).PayInstallment), ctx, estimateID, kind, providerPayload)
}

// ListByEstimateID mocks base method.
func (m *MockIInstallmentPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.InstallmentPayment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByEstimateID", ctx, estimateID)
	ret0, _ := ret[0].([]entities.InstallmentPayment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByEstimateID indicates an expected call of ListByEstimateID.
func (mr *MockIInstallmentPaymentUseCaseMockRecorder) ListByEstimateID(ctx any, estimateID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByEstimateID", reflect.TypeOf((*MockIInstallmentPaymentUseCase)(nil).ListByEstimateID), ctx, estimateID)
}
